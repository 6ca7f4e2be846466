package notification

import "time"

type NotificationResponse struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Message    string         `json:"message,omitempty"`
	EntityType string         `json:"entity_type,omitempty"`
	EntityID   string         `json:"entity_id,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
	Read       bool           `json:"read"`
	CreatedAt  time.Time      `json:"created_at"`
}
