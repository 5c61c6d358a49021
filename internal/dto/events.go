package dto

import "time"

// CardHistoryEvent mirrors one history row on the event stream.
type CardHistoryEvent struct {
	HistoryID uint      `json:"history_id"`
	CardID    uint      `json:"card_id"`
	UserID    *uint     `json:"user_id,omitempty"`
	Action    string    `json:"action"`
	Field     *string   `json:"field,omitempty"`
	OldValue  *string   `json:"old_value,omitempty"`
	NewValue  *string   `json:"new_value,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
