package domain

import "time"

type Column struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Position  int       `gorm:"default:0" json:"position"`
	BoardID   uint      `gorm:"not null;index" json:"board_id"`
	Color     *string   `json:"color,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
