package models

import (
	"time"

	"github.com/google/uuid"
)

// Notice is a platform-wide announcement posted by an admin.
type Notice struct {
	ID       uuid.UUID `json:"id"`
	Text     string    `json:"text"`
	PostedAt time.Time `json:"posted_at"`
}
