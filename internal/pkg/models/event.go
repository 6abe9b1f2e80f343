package models

import "time"

// AuthEvent is published on the auth.* NATS subjects
type AuthEvent struct {
	UserID        string    `json:"user_id,omitempty"`
	Email         string    `json:"email,omitempty"`
	PhoneNumber   string    `json:"phone_number,omitempty"`
	InstitutionID string    `json:"institution_id,omitempty"`
	Role          Role      `json:"role,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
