package domain

import "time"

const (
	HistoryActionCreate = "create"
	HistoryActionUpdate = "update"
	HistoryActionDelete = "delete"
)

// CardHistory is an append-only audit row; entries are never updated or
// deleted. CardID is a plain indexed column rather than a foreign key so
// that delete entries outlive the card they describe.
type CardHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CardID    uint      `gorm:"not null;index" json:"card_id"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	Action    string    `gorm:"type:varchar(50);not null" json:"action"`
	Field     *string   `gorm:"type:varchar(50)" json:"field,omitempty"`
	OldValue  *string   `gorm:"type:text" json:"old_value,omitempty"`
	NewValue  *string   `gorm:"type:text" json:"new_value,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
