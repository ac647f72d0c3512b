package models

import "time"

// Notification is pushed to a listing owner's websocket connection when an
// admin approves or rejects their submission.
type Notification struct {
	Type       string    `json:"type"`
	PropertyID string    `json:"property_id"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
