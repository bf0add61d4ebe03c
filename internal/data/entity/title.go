package entity

import (
	"github.com/google/uuid"
)

// Title is a catalogued work. Rating is derived from the review set and
// owned by the rating recompute, never written directly; nil means no
// reviews exist.
type Title struct {
	Base
	Name        string    `db:"name"`
	Year        int       `db:"year"`
	Description *string   `db:"description"`
	Rating      *float64  `db:"rating"`
	CategoryID  uuid.UUID `db:"category_id"`

	// Loaded associations
	Category *Category
	Genres   []Genre
}
