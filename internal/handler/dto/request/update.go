package request

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"hotel-telegram-bot/internal/usecase"
)

// MessageFromUpdate extracts the chat id and text of an incoming text
// message. ok is false for updates that carry no text.
func MessageFromUpdate(u *tgbotapi.Update) (msg usecase.Message, ok bool) {
	if u == nil || u.Message == nil || u.Message.Chat == nil {
		return usecase.Message{}, false
	}
	if strings.TrimSpace(u.Message.Text) == "" {
		return usecase.Message{}, false
	}
	return usecase.Message{
		ChatID: u.Message.Chat.ID,
		Text:   u.Message.Text,
	}, true
}
