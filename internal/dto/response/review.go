package response

import (
	"time"

	"kinohub/internal/data/entity"
)

type ReviewResponse struct {
	ID      string    `json:"id"`
	Title   string    `json:"title,omitempty"`
	Author  string    `json:"author,omitempty"`
	Text    string    `json:"text"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

// Helper converter; author and title names are resolved by the service.
func ReviewToResponse(review *entity.Review, author, titleName string) ReviewResponse {
	return ReviewResponse{
		ID:      review.ID.String(),
		Title:   titleName,
		Author:  author,
		Text:    review.Text,
		Score:   review.Score,
		PubDate: review.PubDate,
	}
}
