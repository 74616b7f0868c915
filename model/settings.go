package model

import "time"

// TelegramSettings is the single credentials document for the notifier.
// The token is stored as-is and masked by the dto layer on reads.
type TelegramSettings struct {
	BotToken  string    `bson:"bot_token" json:"bot_token"`
	ChatID    string    `bson:"chat_id" json:"chat_id"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Configured reports whether both credential fields are present.
func (s *TelegramSettings) Configured() bool {
	return s != nil && s.BotToken != "" && s.ChatID != ""
}
