package handler

import (
	"context"

	"backoffice/model"
	"backoffice/utils"

	"github.com/gin-gonic/gin"
)

// TelegramSettingsSource loads stored credentials for the test send.
type TelegramSettingsSource interface {
	GetTelegram(ctx context.Context) (*model.TelegramSettings, error)
}

// TelegramSender is the notifier as the test endpoint sees it.
type TelegramSender interface {
	Send(ctx context.Context, settings *model.TelegramSettings, text string) bool
}

type TelegramHandler struct {
	settings TelegramSettingsSource
	sender   TelegramSender
}

func NewTelegramHandler(settings TelegramSettingsSource, sender TelegramSender) *TelegramHandler {
	return &TelegramHandler{settings: settings, sender: sender}
}

// TestSend pushes a fixed message through the stored credentials so an
// operator can verify the bot wiring without waiting for a reminder.
func (h *TelegramHandler) TestSend(c *gin.Context) {
	settings, err := h.settings.GetTelegram(c.Request.Context())
	if err != nil {
		utils.InternalError(c, "Failed to load settings")
		return
	}
	if !settings.Configured() {
		utils.BadRequest(c, "Telegram credentials are not configured")
		return
	}

	if !h.sender.Send(c.Request.Context(), settings, "Test notification from the back-office server") {
		utils.BadGateway(c, "Telegram send failed")
		return
	}
	utils.Success(c, gin.H{"sent": true})
}
