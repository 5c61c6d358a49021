package dto

type UserCreate struct {
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Password string  `json:"password"`
}

type UserUpdate struct {
	IsAdmin            *bool `json:"is_admin,omitempty"`
	IsActive           *bool `json:"is_active,omitempty"`
	CanView            *bool `json:"can_view,omitempty"`
	CanEdit            *bool `json:"can_edit,omitempty"`
	CanDelete          *bool `json:"can_delete,omitempty"`
	MustChangePassword *bool `json:"must_change_password,omitempty"`
}

type PasswordChange struct {
	NewPassword string `json:"new_password"`
}
