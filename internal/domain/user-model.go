package domain

import "time"

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"uniqueIndex;not null" json:"name"`
	Email        *string `gorm:"uniqueIndex" json:"email,omitempty"`
	PasswordHash string  `gorm:"not null" json:"-"`

	// permission flags; the first registered user gets all of them
	IsAdmin            bool `gorm:"default:false" json:"is_admin"`
	IsActive           bool `gorm:"default:false" json:"is_active"`
	CanView            bool `gorm:"default:false" json:"can_view"`
	CanEdit            bool `gorm:"default:false" json:"can_edit"`
	CanDelete          bool `gorm:"default:false" json:"can_delete"`
	MustChangePassword bool `gorm:"default:false" json:"must_change_password"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
