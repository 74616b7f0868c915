package utils

import "github.com/google/uuid"

// GenerateID returns an opaque unique token for new documents.
func GenerateID() string {
	return uuid.New().String()
}
