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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CommentService interface {
	List(ctx context.Context, titleID, reviewID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error)
	Create(ctx context.Context, caller permission.Caller, titleID, reviewID uuid.UUID, req request.CreateCommentRequest) (*response.CommentResponse, error)
	Get(ctx context.Context, titleID, reviewID, commentID uuid.UUID) (*response.CommentResponse, error)
	Update(ctx context.Context, caller permission.Caller, titleID, reviewID, commentID uuid.UUID, req request.UpdateCommentRequest) (*response.CommentResponse, error)
	Delete(ctx context.Context, caller permission.Caller, titleID, reviewID, commentID uuid.UUID) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	reviewRepo  repository.ReviewRepository
	userRepo    repository.UserRepository
	log         *zap.Logger
}

func NewCommentService(commentRepo repository.CommentRepository, reviewRepo repository.ReviewRepository, userRepo repository.UserRepository, log *zap.Logger) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		log:         log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) List(ctx context.Context, titleID, reviewID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	if _, err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByReviewID(ctx, reviewID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.commentRepo.CountByReviewID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	items := make([]response.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		author, err := s.authorUsername(ctx, comment.AuthorID)
		if err != nil {
			return nil, err
		}
		items = append(items, response.CommentToResponse(comment, author))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *commentService) Create(ctx context.Context, caller permission.Caller, titleID, reviewID uuid.UUID, req request.CreateCommentRequest) (*response.CommentResponse, error) {
	if _, err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		ID:       uuid.New(),
		ReviewID: reviewID,
		AuthorID: caller.UserID,
		Text:     req.Text,
		PubDate:  time.Now().UTC(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("review_id", reviewID.String()),
	)

	author, err := s.authorUsername(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	resp := response.CommentToResponse(comment, author)
	return &resp, nil
}

func (s *commentService) Get(ctx context.Context, titleID, reviewID, commentID uuid.UUID) (*response.CommentResponse, error) {
	comment, err := s.requireComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	author, err := s.authorUsername(ctx, comment.AuthorID)
	if err != nil {
		return nil, err
	}

	resp := response.CommentToResponse(comment, author)
	return &resp, nil
}

func (s *commentService) Update(ctx context.Context, caller permission.Caller, titleID, reviewID, commentID uuid.UUID, req request.UpdateCommentRequest) (*response.CommentResponse, error) {
	comment, err := s.requireComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	if !contentRule.PermitsObject(caller, http.MethodPatch, comment.AuthorID) {
		return nil, ErrForbidden
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		if err == repository.ErrNotFound {
			return nil, fmt.Errorf("%w: comment %s", ErrNotFound, commentID.String())
		}
		return nil, err
	}

	author, err := s.authorUsername(ctx, comment.AuthorID)
	if err != nil {
		return nil, err
	}

	resp := response.CommentToResponse(comment, author)
	return &resp, nil
}

func (s *commentService) Delete(ctx context.Context, caller permission.Caller, titleID, reviewID, commentID uuid.UUID) error {
	comment, err := s.requireComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return err
	}

	if !contentRule.PermitsObject(caller, http.MethodDelete, comment.AuthorID) {
		return ErrForbidden
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		if err == repository.ErrNotFound {
			return fmt.Errorf("%w: comment %s", ErrNotFound, commentID.String())
		}
		return err
	}

	return nil
}

// requireReview checks the review exists under the given title.
func (s *commentService) requireReview(ctx context.Context, titleID, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil || review.TitleID != titleID {
		return nil, fmt.Errorf("%w: review %s", ErrNotFound, reviewID.String())
	}
	return review, nil
}

// requireComment checks the full title/review/comment chain.
func (s *commentService) requireComment(ctx context.Context, titleID, reviewID, commentID uuid.UUID) (*entity.Comment, error) {
	if _, err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil || comment.ReviewID != reviewID {
		return nil, fmt.Errorf("%w: comment %s", ErrNotFound, commentID.String())
	}
	return comment, nil
}

func (s *commentService) authorUsername(ctx context.Context, authorID uuid.UUID) (string, error) {
	user, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.Username, nil
}
