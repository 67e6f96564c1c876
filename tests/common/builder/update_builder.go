//go:build unit || e2e

package builder

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type UpdateBuilder struct {
	UpdateID int
	ChatID   int64
	Text     string
}

func NewUpdateBuilder() *UpdateBuilder {
	return &UpdateBuilder{
		UpdateID: 1,
		ChatID:   DefaultTelegramID,
		Text:     "Hello",
	}
}

func (u *UpdateBuilder) WithUpdateID(id int) *UpdateBuilder {
	u.UpdateID = id
	return u
}

func (u *UpdateBuilder) WithChatID(id int64) *UpdateBuilder {
	u.ChatID = id
	return u
}

func (u *UpdateBuilder) WithText(text string) *UpdateBuilder {
	u.Text = text
	return u
}

func (u *UpdateBuilder) Build() tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: u.UpdateID,
		Message: &tgbotapi.Message{
			MessageID: u.UpdateID,
			Date:      int(FixedTime.Unix()),
			From:      &tgbotapi.User{ID: u.ChatID, FirstName: "Alice"},
			Chat:      &tgbotapi.Chat{ID: u.ChatID, Type: "private"},
			Text:      u.Text,
		},
	}
}
