package usecase

import (
	"context"
	"log/slog"
	"strconv"

	"hotel-telegram-bot/internal/agent"
	"hotel-telegram-bot/internal/pkg/clock"
	"hotel-telegram-bot/internal/pkg/errs"
	"hotel-telegram-bot/internal/pkg/keylock"
	"hotel-telegram-bot/internal/usecase/commands"
	"hotel-telegram-bot/internal/usecase/tools"
)

type Message struct {
	ChatID int64
	Text   string
}

// ReplySender delivers text to a chat.
type ReplySender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type ConversationUseCase interface {
	// HandleMessage runs one chat turn and sends the reply. Messages from the
	// same chat are processed one at a time in arrival order.
	HandleMessage(ctx context.Context, msg Message) (string, error)
}

type conversationUseCaseImpl struct {
	sessions commands.SessionCommands
	agent    agent.Agent
	sender   ReplySender
	locks    *keylock.Locker
	clock    clock.Clock
	appName  string
}

func NewConversationUseCase(
	sessions commands.SessionCommands,
	ag agent.Agent,
	sender ReplySender,
	locks *keylock.Locker,
	clk clock.Clock,
	appName string,
) ConversationUseCase {
	return &conversationUseCaseImpl{
		sessions: sessions,
		agent:    ag,
		sender:   sender,
		locks:    locks,
		clock:    clk,
		appName:  appName,
	}
}

func (uc *conversationUseCaseImpl) HandleMessage(ctx context.Context, msg Message) (string, error) {
	unlock, err := uc.locks.Lock(ctx, strconv.FormatInt(msg.ChatID, 10))
	if err != nil {
		return "", errs.Wrap(err, "wait for chat lock")
	}
	defer unlock()

	s, err := uc.sessions.ResolveOrCreate(ctx, uc.appName, msg.ChatID)
	if err != nil {
		return "", err
	}

	reply, err := uc.agent.Respond(ctx, agent.Turn{
		Session: s,
		Caller: tools.Caller{
			TelegramID: msg.ChatID,
			SessionID:  s.Key().SessionID,
		},
		Text: msg.Text,
	})
	if err != nil {
		return "", err
	}

	s.ReplaceHistory(reply.History, uc.clock.Now())
	if err := uc.sessions.SaveState(ctx, s); err != nil {
		slog.Error("Failed to save conversation state",
			"chat_id", msg.ChatID,
			"error", err.Error())
	}

	if err := uc.sender.SendMessage(ctx, msg.ChatID, reply.Text); err != nil {
		slog.Error("Failed to send reply",
			"chat_id", msg.ChatID,
			"error", err.Error())
	}

	return reply.Text, nil
}
