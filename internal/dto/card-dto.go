package dto

import "time"

type CardCreate struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ColumnID    uint       `json:"column_id"`
	Color       *string    `json:"color,omitempty"`
	AssigneeID  *uint      `json:"assignee_id,omitempty"`
	Link        *string    `json:"link,omitempty"`
}

// CardUpdate carries a sparse patch: nil means "leave the field untouched".
type CardUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ColumnID    *uint      `json:"column_id,omitempty"`
	Color       *string    `json:"color,omitempty"`
	AssigneeID  *uint      `json:"assignee_id,omitempty"`
	Link        *string    `json:"link,omitempty"`
}
