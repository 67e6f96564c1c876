package telegram

import (
	"context"
	"net/http"
	"time"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"hotel-telegram-bot/internal/pkg/errs"
)

// MaxMessageLength is the Bot API limit for one text message, in characters.
const MaxMessageLength = 4096

type Client struct {
	api *tgbotapi.BotAPI
}

type Option func(*tgbotapi.BotAPI)

// WithEndpoint overrides the Bot API endpoint, a format string taking the
// token and the method name.
func WithEndpoint(endpoint string) Option {
	return func(api *tgbotapi.BotAPI) {
		api.SetAPIEndpoint(endpoint)
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(api *tgbotapi.BotAPI) {
		api.Client = client
	}
}

// NewClient does not call getMe, so startup does not depend on Telegram being
// reachable.
func NewClient(token string, opts ...Option) *Client {
	api := &tgbotapi.BotAPI{
		Token:  token,
		Client: &http.Client{Timeout: 15 * time.Second},
		Buffer: 100,
	}
	api.SetAPIEndpoint(tgbotapi.APIEndpoint)
	for _, opt := range opts {
		opt(api)
	}
	return &Client{api: api}
}

// SendMessage sends text to the chat, splitting it when it exceeds the
// message length limit.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	for _, chunk := range splitMessage(text, MaxMessageLength) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := c.api.Send(tgbotapi.NewMessage(chatID, chunk)); err != nil {
			return errs.Mark(errs.Wrap(err, "telegram sendMessage"), errs.ErrUpstreamUnavailable)
		}
	}
	return nil
}

func (c *Client) SetWebhook(url string) error {
	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "invalid webhook url"), errs.ErrConfiguration)
	}
	if _, err := c.api.Request(wh); err != nil {
		return errs.Mark(errs.Wrap(err, "telegram setWebhook"), errs.ErrUpstreamUnavailable)
	}
	return nil
}

// splitMessage cuts text into chunks of at most limit runes, preferring the
// last newline inside each chunk.
func splitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	for len(runes) > limit {
		cut := limit
		for i := limit - 1; i > limit/2; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}
