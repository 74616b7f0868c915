package dto

import (
	"strings"
	"time"

	"backoffice/model"
)

type TelegramSettingsResponse struct {
	BotToken   string    `json:"bot_token"` // masked
	ChatID     string    `json:"chat_id"`
	Configured bool      `json:"configured"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

// ToTelegramSettingsResponse masks the bot token so reads never leak the
// credential: only the last four characters survive.
func ToTelegramSettingsResponse(settings *model.TelegramSettings) TelegramSettingsResponse {
	if settings == nil {
		return TelegramSettingsResponse{}
	}
	return TelegramSettingsResponse{
		BotToken:   maskToken(settings.BotToken),
		ChatID:     settings.ChatID,
		Configured: settings.Configured(),
		UpdatedAt:  settings.UpdatedAt,
	}
}

func maskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}
