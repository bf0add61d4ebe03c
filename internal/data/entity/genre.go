package entity

import (
	"github.com/google/uuid"
)

// Genre is immutable reference data addressed by slug.
type Genre struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
	Slug string    `db:"slug"`
}
