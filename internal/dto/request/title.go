package request

type CreateTitleRequest struct {
	Name        string   `json:"name" validate:"required,max=256"`
	Year        int      `json:"year" validate:"required"`
	Description *string  `json:"description,omitempty"`
	Category    string   `json:"category" validate:"required"`
	Genres      []string `json:"genre" validate:"required,min=1"`
}

type UpdateTitleRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,max=256"`
	Year        *int      `json:"year,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Genres      *[]string `json:"genre,omitempty"`
}
