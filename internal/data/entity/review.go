package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is one author's scored text on a title. At most one review per
// (author, title) pair, enforced by a unique constraint.
type Review struct {
	ID       uuid.UUID `db:"id"`
	TitleID  uuid.UUID `db:"title_id"`
	AuthorID uuid.UUID `db:"author_id"`
	Text     string    `db:"text"`
	Score    int       `db:"score"`
	PubDate  time.Time `db:"pub_date"`
}
