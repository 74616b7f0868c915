package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"backoffice/model"
	"backoffice/utils"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramNotifier delivers reminder texts through the Bot API. Credentials
// are passed per call because operators can change them at runtime; the
// notifier itself holds no state beyond the HTTP client.
type TelegramNotifier struct {
	HTTPClient *http.Client
	BaseURL    string
}

func NewTelegramNotifier() *TelegramNotifier {
	return &TelegramNotifier{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    telegramAPIBase,
	}
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

// Send posts one message and reports success. Any transport failure or
// non-ok API response counts as failure; retries are the caller's call
// and currently nobody retries.
func (n *TelegramNotifier) Send(ctx context.Context, settings *model.TelegramSettings, text string) bool {
	if !settings.Configured() {
		return false
	}

	payload, err := json.Marshal(sendMessageRequest{ChatID: settings.ChatID, Text: text})
	if err != nil {
		log.Printf("Failed to marshal telegram payload: %v", err)
		return false
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.BaseURL, settings.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		log.Printf("Failed to build telegram request: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.HTTPClient.Do(req)
	if err != nil {
		log.Printf("Telegram send failed: %v", err)
		utils.NotificationFailures.Inc()
		return false
	}
	defer resp.Body.Close()

	var result sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("Failed to decode telegram response: %v", err)
		utils.NotificationFailures.Inc()
		return false
	}

	if !result.OK {
		log.Printf("Telegram rejected message: %s", result.Description)
		utils.NotificationFailures.Inc()
		return false
	}
	return true
}
