package types

import (
	"time"

	"github.com/google/uuid"
)

type (
	// LogEvent is an append-only audit record of an admin action.
	LogEvent struct {
		ID         uuid.UUID `gorm:"primaryKey" json:"id"`
		Action     string    `gorm:"not null" json:"action"`
		Details    string    `gorm:"not null" json:"details"`
		User       string    `gorm:"not null" json:"user"`
		UserID     string    `json:"userId,omitempty"`
		SessionID  string    `json:"sessionId,omitempty"`
		DeviceInfo string    `json:"deviceInfo,omitempty"`
		CreatedAt  time.Time `json:"createdAt"`
	}

	CreateLogEventParams struct {
		Action     string `json:"action" validate:"required"`
		Details    string `json:"details" validate:"required"`
		User       string `json:"user" validate:"required"`
		UserID     string `json:"userId"`
		SessionID  string `json:"sessionId"`
		DeviceInfo string `json:"deviceInfo"`
	}
)
