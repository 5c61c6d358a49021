package dto

type ColumnCreate struct {
	Title    string  `json:"title"`
	Position *int    `json:"position,omitempty"`
	BoardID  uint    `json:"board_id"`
	Color    *string `json:"color,omitempty"`
}

type ColumnUpdate struct {
	Title    *string `json:"title,omitempty"`
	Position *int    `json:"position,omitempty"`
	BoardID  *uint   `json:"board_id,omitempty"`
	Color    *string `json:"color,omitempty"`
}
