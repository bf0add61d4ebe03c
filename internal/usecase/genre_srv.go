package usecase

import (
	"context"
	"fmt"

	"kinohub/internal/data/entity"
	"kinohub/internal/data/repository"
	"kinohub/internal/dto/request"
	"kinohub/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GenreService interface {
	List(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error)
	Create(ctx context.Context, req request.CreateGenreRequest) (*response.GenreResponse, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type genreService struct {
	genreRepo repository.GenreRepository
	log       *zap.Logger
}

func NewGenreService(genreRepo repository.GenreRepository, log *zap.Logger) GenreService {
	return &genreService{
		genreRepo: genreRepo,
		log:       log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) List(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error) {
	genres, err := s.genreRepo.FindAll(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.genreRepo.CountAll(ctx, search)
	if err != nil {
		return nil, err
	}

	items := make([]response.GenreResponse, 0, len(genres))
	for _, genre := range genres {
		items = append(items, response.GenreToResponse(genre))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *genreService) Create(ctx context.Context, req request.CreateGenreRequest) (*response.GenreResponse, error) {
	genre := &entity.Genre{
		ID:   uuid.New(),
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.genreRepo.Create(ctx, genre); err != nil {
		if err == repository.ErrDuplicate {
			return nil, fmt.Errorf("%w: genre %s", ErrConflict, req.Slug)
		}
		return nil, err
	}

	s.log.Info("Genre created", zap.String("slug", genre.Slug))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) DeleteBySlug(ctx context.Context, slug string) error {
	if err := s.genreRepo.DeleteBySlug(ctx, slug); err != nil {
		if err == repository.ErrNotFound {
			return fmt.Errorf("%w: genre %s", ErrNotFound, slug)
		}
		return err
	}
	return nil
}
