package response

import (
	"math"

	"kinohub/internal/data/entity"
)

type TitleResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Year        int               `json:"year"`
	Description *string           `json:"description,omitempty"`
	Rating      *float64          `json:"rating"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Genres      []GenreResponse   `json:"genre"`
}

// TitleToResponse converts the entity; the stored rating is unrounded,
// display rounds to 2 decimals.
func TitleToResponse(title *entity.Title) TitleResponse {
	resp := TitleResponse{
		ID:          title.ID.String(),
		Name:        title.Name,
		Year:        title.Year,
		Description: title.Description,
		Genres:      make([]GenreResponse, 0, len(title.Genres)),
	}

	if title.Rating != nil {
		rounded := math.Round(*title.Rating*100) / 100
		resp.Rating = &rounded
	}

	if title.Category != nil {
		category := CategoryToResponse(title.Category)
		resp.Category = &category
	}

	for i := range title.Genres {
		resp.Genres = append(resp.Genres, GenreToResponse(&title.Genres[i]))
	}

	return resp
}
