package gemini

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"hotel-telegram-bot/internal/agent"
	"hotel-telegram-bot/internal/domain/session"
	"hotel-telegram-bot/internal/pkg/errs"
	"hotel-telegram-bot/internal/usecase/tools"
)

// MaxToolRounds bounds the function-call exchanges within one turn.
const MaxToolRounds = 5

type ChatSession interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// ChatFactory opens a chat that continues from history.
type ChatFactory func(history []*genai.Content) ChatSession

type ToolCatalog interface {
	agent.ToolInvoker
	Tools() []tools.Tool
}

type Agent struct {
	tools   ToolCatalog
	newChat ChatFactory
}

func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to create Gemini client"), errs.ErrConfiguration)
	}
	return client, nil
}

func New(client *genai.Client, modelName string, catalog ToolCatalog) *Agent {
	model := client.GenerativeModel(modelName)
	model.SystemInstruction = genai.NewUserContent(genai.Text(SystemInstruction))
	model.Tools = []*genai.Tool{{FunctionDeclarations: Declarations(catalog.Tools())}}

	return NewWithChat(func(history []*genai.Content) ChatSession {
		cs := model.StartChat()
		cs.History = history
		return cs
	}, catalog)
}

func NewWithChat(newChat ChatFactory, catalog ToolCatalog) *Agent {
	return &Agent{tools: catalog, newChat: newChat}
}

// Respond runs the model until it answers with text. Model failures produce
// the fallback reply; store failures inside tools are returned.
func (a *Agent) Respond(ctx context.Context, turn agent.Turn) (*agent.Reply, error) {
	var history []session.Message
	if turn.Session != nil {
		history = turn.Session.History()
	}
	chat := a.newChat(toContents(history))

	resp, err := chat.SendMessage(ctx, genai.Text(turn.Text))
	if err != nil {
		slog.Error("Gemini request failed", "telegram_id", turn.Caller.TelegramID, "error", err.Error())
		return agent.NewReply(turn, ""), nil
	}

	for round := 0; ; round++ {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}
		if round >= MaxToolRounds {
			slog.Warn("Gemini exceeded tool rounds", "telegram_id", turn.Caller.TelegramID, "rounds", round)
			return agent.NewReply(turn, ""), nil
		}

		parts := make([]genai.Part, 0, len(calls))
		for _, fc := range calls {
			res, err := a.invoke(ctx, turn.Caller, fc)
			if err != nil {
				return nil, err
			}
			parts = append(parts, genai.FunctionResponse{Name: fc.Name, Response: res})
		}

		resp, err = chat.SendMessage(ctx, parts...)
		if err != nil {
			slog.Error("Gemini request failed", "telegram_id", turn.Caller.TelegramID, "error", err.Error())
			return agent.NewReply(turn, ""), nil
		}
	}

	return agent.NewReply(turn, responseText(resp)), nil
}

func (a *Agent) invoke(ctx context.Context, caller tools.Caller, fc genai.FunctionCall) (map[string]any, error) {
	slog.Debug("Gemini tool call", "tool", fc.Name, "telegram_id", caller.TelegramID)

	res, err := a.tools.Invoke(ctx, fc.Name, tools.Invocation{Caller: caller, Args: fc.Args})
	if err != nil {
		if !errs.Is(err, tools.ErrUnknownTool) {
			return nil, err
		}
		res = tools.Result{"status": tools.StatusError, "message": "Unknown tool " + fc.Name + "."}
	}
	return toResponse(res)
}

// toResponse flattens typed slices so the result converts to a protobuf Struct.
func toResponse(res tools.Result) (map[string]any, error) {
	raw, err := json.Marshal(res)
	if err != nil {
		return nil, errs.Wrap(err, "encode tool result")
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errs.Wrap(err, "decode tool result")
	}
	return out, nil
}

func toContents(history []session.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Role == session.RoleModel {
			role = "model"
		}
		contents = append(contents, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Text)}})
	}
	return contents
}

func firstContent(resp *genai.GenerateContentResponse) *genai.Content {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil
	}
	return resp.Candidates[0].Content
}

func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	content := firstContent(resp)
	if content == nil {
		return nil
	}
	var calls []genai.FunctionCall
	for _, p := range content.Parts {
		switch fc := p.(type) {
		case genai.FunctionCall:
			calls = append(calls, fc)
		case *genai.FunctionCall:
			calls = append(calls, *fc)
		}
	}
	return calls
}

func responseText(resp *genai.GenerateContentResponse) string {
	content := firstContent(resp)
	if content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range content.Parts {
		if text, ok := p.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
