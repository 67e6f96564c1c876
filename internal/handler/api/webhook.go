package api

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	reqdto "hotel-telegram-bot/internal/handler/dto/request"
	resdto "hotel-telegram-bot/internal/handler/dto/response"
	"hotel-telegram-bot/internal/handler/httperr"
	"hotel-telegram-bot/internal/handler/middleware"
	"hotel-telegram-bot/internal/pkg/errs"
	"hotel-telegram-bot/internal/usecase"
)

// UpdateDeduplicator claims Telegram update ids. Claim returns false for an
// id that was already processed.
type UpdateDeduplicator interface {
	Claim(ctx context.Context, updateID int) (bool, error)
	Release(ctx context.Context, updateID int) error
}

// ChatLimiter decides whether a chat may send another message now.
type ChatLimiter interface {
	Allow(key string) bool
}

type WebhookHandler struct {
	conversation usecase.ConversationUseCase
	dedup        UpdateDeduplicator
	limiter      ChatLimiter
	botToken     string
}

func NewWebhookHandler(conversation usecase.ConversationUseCase, dedup UpdateDeduplicator, limiter ChatLimiter, botToken string) *WebhookHandler {
	return &WebhookHandler{
		conversation: conversation,
		dedup:        dedup,
		limiter:      limiter,
		botToken:     botToken,
	}
}

// @Summary Telegram webhook
// @Description Receives a Telegram Update and replies to the chat
// @Tags webhook
// @Accept json
// @Produce json
// @Param token path string true "Bot token"
// @Param update body object true "Telegram Update"
// @Success 200 {object} resdto.StatusResponse
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /webhook/{token} [post]
func (h *WebhookHandler) HandleUpdate(c *gin.Context) {
	if !h.validToken(c.Param("token")) {
		httperr.AbortWithError(c, http.StatusForbidden, errs.ErrAuthentication, "Invalid token", nil)
		return
	}

	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		slog.Warn("Ignoring malformed update", "error", err.Error())
		c.JSON(http.StatusOK, resdto.OK())
		return
	}

	msg, ok := reqdto.MessageFromUpdate(&update)
	if !ok {
		c.JSON(http.StatusOK, resdto.OK())
		return
	}
	c.Set(middleware.ChatIDKey, msg.ChatID)

	ctx := c.Request.Context()
	if !h.claim(ctx, update.UpdateID) {
		slog.Info("Skipping redelivered update", "update_id", update.UpdateID)
		c.JSON(http.StatusOK, resdto.OK())
		return
	}

	if !h.limiter.Allow(strconv.FormatInt(msg.ChatID, 10)) {
		slog.Warn("Rate limit exceeded, dropping message", "chat_id", msg.ChatID)
		c.JSON(http.StatusOK, resdto.OK())
		return
	}

	if _, err := h.conversation.HandleMessage(ctx, msg); err != nil {
		if errs.Is(err, errs.ErrUpstreamUnavailable) {
			// Telegram redelivers on 503; let that delivery through.
			if rerr := h.dedup.Release(context.WithoutCancel(ctx), update.UpdateID); rerr != nil {
				slog.Warn("Failed to release update claim", "update_id", update.UpdateID, "error", rerr.Error())
			}
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service is temporarily unavailable", nil)
			return
		}
		slog.Error("Failed to process update",
			"update_id", update.UpdateID,
			"chat_id", msg.ChatID,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 5))
		c.JSON(http.StatusOK, resdto.InternalError())
		return
	}

	c.JSON(http.StatusOK, resdto.OK())
}

func (h *WebhookHandler) validToken(token string) bool {
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.botToken)) == 1
}

// claim treats a de-duplication store failure as a first delivery.
func (h *WebhookHandler) claim(ctx context.Context, updateID int) bool {
	ok, err := h.dedup.Claim(ctx, updateID)
	if err != nil {
		slog.Warn("Update de-duplication unavailable", "update_id", updateID, "error", err.Error())
		return true
	}
	return ok
}
