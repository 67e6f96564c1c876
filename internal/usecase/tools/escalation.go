package tools

import (
	"context"

	"hotel-telegram-bot/internal/usecase/commands"
)

const NameEscalateToHuman = "escalate_to_human"

type EscalateTool struct {
	escalations commands.EscalationCommands
}

func NewEscalateTool(escalations commands.EscalationCommands) *EscalateTool {
	return &EscalateTool{escalations: escalations}
}

func (t *EscalateTool) Name() string { return NameEscalateToHuman }

func (t *EscalateTool) Description() string {
	return "Logs a user complaint and signals for human intervention."
}

func (t *EscalateTool) Parameters() []Parameter {
	return []Parameter{
		{Name: "complaint", Type: "string", Description: "The guest's complaint in their own words.", Required: true},
	}
}

func (t *EscalateTool) Invoke(ctx context.Context, inv Invocation) (Result, error) {
	var args struct {
		Complaint string `mapstructure:"complaint" validate:"required"`
	}
	if msg, ok := decodeArgs(inv.Args, &args); !ok {
		return errorResult(msg), nil
	}

	ack, err := t.escalations.Escalate(ctx, commands.EscalateParams{
		Complaint:  args.Complaint,
		TelegramID: inv.Caller.TelegramID,
		SessionID:  inv.Caller.SessionID,
	})
	if err != nil {
		return errorResult("Please describe the problem so I can pass it on."), nil
	}
	return Result{"status": StatusSuccess, "message": ack.Message}, nil
}
