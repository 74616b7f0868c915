package handler

import (
	"backoffice/dto"
	"backoffice/model"
	"backoffice/repository"
	"backoffice/utils"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	repo *repository.SettingsRepo
}

func NewSettingsHandler(repo *repository.SettingsRepo) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

// GetTelegram returns the stored credentials with the token masked.
func (h *SettingsHandler) GetTelegram(c *gin.Context) {
	settings, err := h.repo.GetTelegram(c.Request.Context())
	if err != nil {
		utils.InternalError(c, "Failed to load settings")
		return
	}
	utils.Success(c, dto.ToTelegramSettingsResponse(settings))
}

func (h *SettingsHandler) PutTelegram(c *gin.Context) {
	var req struct {
		BotToken string `json:"bot_token" binding:"required"`
		ChatID   string `json:"chat_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	settings := &model.TelegramSettings{
		BotToken: req.BotToken,
		ChatID:   req.ChatID,
	}
	if err := h.repo.PutTelegram(c.Request.Context(), settings); err != nil {
		utils.InternalError(c, "Failed to save settings")
		return
	}
	utils.Success(c, dto.ToTelegramSettingsResponse(settings))
}
