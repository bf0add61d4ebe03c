package entity

import (
	"github.com/google/uuid"
)

// Category is immutable reference data addressed by slug.
type Category struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
	Slug string    `db:"slug"`
}
