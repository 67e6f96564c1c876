package telegram

import (
	"context"
	"log/slog"
	"time"
)

type WebhookSetter interface {
	SetWebhook(url string) error
}

// RegisterWebhook waits for delay and then points Telegram at url. Failure is
// logged; the server keeps running so the webhook can be set by hand.
func RegisterWebhook(ctx context.Context, setter WebhookSetter, url string, delay time.Duration) {
	if delay > 0 {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}

	if err := setter.SetWebhook(url); err != nil {
		slog.Error("Failed to register Telegram webhook", "error", err.Error())
		return
	}
	slog.Info("Telegram webhook registered")
}
