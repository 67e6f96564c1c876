package tools

import (
	"context"
	"sort"

	"hotel-telegram-bot/internal/pkg/errs"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var ErrUnknownTool = errs.New("unknown tool")

// Caller identifies the chat a tool runs for. The agent never supplies it.
type Caller struct {
	TelegramID int64
	SessionID  string
}

type Invocation struct {
	Caller Caller
	Args   map[string]any
}

// Result is the JSON-shaped outcome handed back to the agent.
type Result map[string]any

func errorResult(message string) Result {
	return Result{"status": StatusError, "message": message}
}

type Parameter struct {
	Name        string
	Type        string // "string" is the only type the catalog uses
	Description string
	Required    bool
	Enum        []string
}

// Tool failures the guest can act on come back as an error Result. A returned
// Go error means the store or an upstream service failed.
type Tool interface {
	Name() string
	Description() string
	Parameters() []Parameter
	Invoke(ctx context.Context, inv Invocation) (Result, error)
}

type Registry struct {
	tools map[string]Tool
}

func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		r.tools[t.Name()] = t
	}
	return r
}

func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Tools returns the registered tools sorted by name.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

func (r *Registry) Invoke(ctx context.Context, name string, inv Invocation) (Result, error) {
	t, ok := r.Lookup(name)
	if !ok {
		return nil, errs.Wrap(ErrUnknownTool, name)
	}
	if inv.Args == nil {
		inv.Args = map[string]any{}
	}
	return t.Invoke(ctx, inv)
}
