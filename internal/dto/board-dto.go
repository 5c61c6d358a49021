package dto

type BoardCreate struct {
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

type BoardUpdate struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}
