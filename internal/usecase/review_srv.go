package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"kinohub/internal/data/entity"
	"kinohub/internal/data/repository"
	"kinohub/internal/dto/request"
	"kinohub/internal/dto/response"
	"kinohub/pkg/permission"
	"kinohub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// contentRule guards reviews and comments: any authenticated caller may
// write, and an existing object may be modified by its author, staff, or
// an admin.
var contentRule = permission.AnyOf(
	permission.ModeratorOrAuthorOrAuthenticated{},
	permission.AuthorOrStaffOrReadOnly{},
)

type ReviewService interface {
	List(ctx context.Context, titleID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	Create(ctx context.Context, caller permission.Caller, titleID uuid.UUID, req request.CreateReviewRequest) (*response.ReviewResponse, error)
	Get(ctx context.Context, titleID, reviewID uuid.UUID) (*response.ReviewResponse, error)
	Update(ctx context.Context, caller permission.Caller, titleID, reviewID uuid.UUID, req request.UpdateReviewRequest) (*response.ReviewResponse, error)
	Delete(ctx context.Context, caller permission.Caller, titleID, reviewID uuid.UUID) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	titleRepo  repository.TitleRepository
	userRepo   repository.UserRepository
	score      utils.ScoreConfig
	log        *zap.Logger
}

func NewReviewService(reviewRepo repository.ReviewRepository, titleRepo repository.TitleRepository, userRepo repository.UserRepository, score utils.ScoreConfig, log *zap.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		titleRepo:  titleRepo,
		userRepo:   userRepo,
		score:      score,
		log:        log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) List(ctx context.Context, titleID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	title, err := s.requireTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByTitleID(ctx, titleID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.reviewRepo.CountByTitleID(ctx, titleID)
	if err != nil {
		return nil, err
	}

	items := make([]response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		author, err := s.authorUsername(ctx, review.AuthorID)
		if err != nil {
			return nil, err
		}
		items = append(items, response.ReviewToResponse(review, author, title.Name))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

// Create adds the caller's review. The unique constraint on
// (author, title) catches the second review; the title rating is already
// recomputed when the repository call returns.
func (s *reviewService) Create(ctx context.Context, caller permission.Caller, titleID uuid.UUID, req request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if err := s.validateScore(req.Score); err != nil {
		return nil, err
	}

	title, err := s.requireTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:       uuid.New(),
		TitleID:  titleID,
		AuthorID: caller.UserID,
		Text:     req.Text,
		Score:    req.Score,
		PubDate:  time.Now().UTC(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if err == repository.ErrDuplicate {
			return nil, fmt.Errorf("%w: you already reviewed this title", ErrConflict)
		}
		return nil, err
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("title_id", titleID.String()),
		zap.Int("score", review.Score),
	)

	author, err := s.authorUsername(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review, author, title.Name)
	return &resp, nil
}

func (s *reviewService) Get(ctx context.Context, titleID, reviewID uuid.UUID) (*response.ReviewResponse, error) {
	title, err := s.requireTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	review, err := s.requireReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	author, err := s.authorUsername(ctx, review.AuthorID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review, author, title.Name)
	return &resp, nil
}

func (s *reviewService) Update(ctx context.Context, caller permission.Caller, titleID, reviewID uuid.UUID, req request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	title, err := s.requireTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	review, err := s.requireReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if !contentRule.PermitsObject(caller, http.MethodPatch, review.AuthorID) {
		return nil, ErrForbidden
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		if err := s.validateScore(*req.Score); err != nil {
			return nil, err
		}
		review.Score = *req.Score
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		if err == repository.ErrNotFound {
			return nil, fmt.Errorf("%w: review %s", ErrNotFound, reviewID.String())
		}
		return nil, err
	}

	author, err := s.authorUsername(ctx, review.AuthorID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review, author, title.Name)
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, caller permission.Caller, titleID, reviewID uuid.UUID) error {
	if _, err := s.requireTitle(ctx, titleID); err != nil {
		return err
	}

	review, err := s.requireReview(ctx, titleID, reviewID)
	if err != nil {
		return err
	}

	if !contentRule.PermitsObject(caller, http.MethodDelete, review.AuthorID) {
		return ErrForbidden
	}

	if err := s.reviewRepo.Delete(ctx, reviewID, titleID); err != nil {
		if err == repository.ErrNotFound {
			return fmt.Errorf("%w: review %s", ErrNotFound, reviewID.String())
		}
		return err
	}

	return nil
}

func (s *reviewService) requireTitle(ctx context.Context, titleID uuid.UUID) (*entity.Title, error) {
	title, err := s.titleRepo.FindByID(ctx, titleID)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, fmt.Errorf("%w: title %s", ErrNotFound, titleID.String())
	}
	return title, nil
}

// requireReview loads the review and checks it belongs to the title, so
// a review cannot be addressed through another title's path.
func (s *reviewService) requireReview(ctx context.Context, titleID, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil || review.TitleID != titleID {
		return nil, fmt.Errorf("%w: review %s", ErrNotFound, reviewID.String())
	}
	return review, nil
}

func (s *reviewService) authorUsername(ctx context.Context, authorID uuid.UUID) (string, error) {
	user, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.Username, nil
}

func (s *reviewService) validateScore(score int) error {
	if score < s.score.Min || score > s.score.Max {
		return fmt.Errorf("%w: score must be between %d and %d", ErrBadRequest, s.score.Min, s.score.Max)
	}
	return nil
}
