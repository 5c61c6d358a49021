package domain

import "time"

type Card struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	Link        *string    `json:"link,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Color       *string    `json:"color,omitempty"`
	ColumnID    uint       `gorm:"not null;index" json:"column_id"`
	AssigneeID  *uint      `gorm:"index" json:"assignee_id,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
