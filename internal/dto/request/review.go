package request

// Score bounds come from configuration, so they are enforced in the
// service rather than by a static validate tag.
type CreateReviewRequest struct {
	Text  string `json:"text" validate:"required"`
	Score int    `json:"score" validate:"required"`
}

type UpdateReviewRequest struct {
	Text  *string `json:"text,omitempty"`
	Score *int    `json:"score,omitempty"`
}
