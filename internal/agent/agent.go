package agent

import (
	"context"
	"strings"

	"hotel-telegram-bot/internal/domain/session"
	"hotel-telegram-bot/internal/usecase/tools"
)

// FallbackReply is sent when the agent produced no text.
const FallbackReply = "I'm sorry, I encountered a problem. Please try again."

type Turn struct {
	Session *session.Session
	Caller  tools.Caller
	Text    string
}

type Reply struct {
	Text string
	// History is the conversation including this turn, oldest first.
	History []session.Message
}

type Agent interface {
	Respond(ctx context.Context, turn Turn) (*Reply, error)
}

// ToolInvoker runs a named tool. *tools.Registry implements it.
type ToolInvoker interface {
	Invoke(ctx context.Context, name string, inv tools.Invocation) (tools.Result, error)
}

// NewReply appends the user text and the reply to the session history. An
// empty reply is replaced by FallbackReply.
func NewReply(turn Turn, text string) *Reply {
	text = strings.TrimSpace(text)
	if text == "" {
		text = FallbackReply
	}

	var history []session.Message
	if turn.Session != nil {
		history = turn.Session.History()
	}
	history = append(history,
		session.Message{Role: session.RoleUser, Text: turn.Text},
		session.Message{Role: session.RoleModel, Text: text},
	)
	return &Reply{Text: text, History: history}
}
