package usecase

import (
	"context"
	"fmt"
	"time"

	"kinohub/internal/data/entity"
	"kinohub/internal/data/repository"
	"kinohub/internal/dto/request"
	"kinohub/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TitleService interface {
	List(ctx context.Context, filter repository.TitleFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error)
	Create(ctx context.Context, req request.CreateTitleRequest) (*response.TitleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*response.TitleResponse, error)
	Update(ctx context.Context, id uuid.UUID, req request.UpdateTitleRequest) (*response.TitleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type titleService struct {
	titleRepo    repository.TitleRepository
	categoryRepo repository.CategoryRepository
	genreRepo    repository.GenreRepository
	log          *zap.Logger
}

func NewTitleService(titleRepo repository.TitleRepository, categoryRepo repository.CategoryRepository, genreRepo repository.GenreRepository, log *zap.Logger) TitleService {
	return &titleService{
		titleRepo:    titleRepo,
		categoryRepo: categoryRepo,
		genreRepo:    genreRepo,
		log:          log.With(zap.String("service", "title")),
	}
}

func (s *titleService) List(ctx context.Context, filter repository.TitleFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error) {
	titles, err := s.titleRepo.FindAll(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.titleRepo.CountAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]response.TitleResponse, 0, len(titles))
	for _, title := range titles {
		title.Genres, err = s.genreRepo.FindByTitleID(ctx, title.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, response.TitleToResponse(title))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *titleService) Create(ctx context.Context, req request.CreateTitleRequest) (*response.TitleResponse, error) {
	if err := validateYear(req.Year); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	genres, genreIDs, err := s.resolveGenres(ctx, req.Genres)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	title := &entity.Title{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
		CategoryID:  category.ID,
		Category:    category,
		Genres:      genres,
	}

	if err := s.titleRepo.Create(ctx, title, genreIDs); err != nil {
		return nil, err
	}

	s.log.Info("Title created",
		zap.String("title_id", title.ID.String()),
		zap.String("name", title.Name),
	)

	resp := response.TitleToResponse(title)
	return &resp, nil
}

func (s *titleService) Get(ctx context.Context, id uuid.UUID) (*response.TitleResponse, error) {
	title, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	title.Genres, err = s.genreRepo.FindByTitleID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.TitleToResponse(title)
	return &resp, nil
}

func (s *titleService) Update(ctx context.Context, id uuid.UUID, req request.UpdateTitleRequest) (*response.TitleResponse, error) {
	title, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		if err := validateYear(*req.Year); err != nil {
			return nil, err
		}
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = req.Description
	}
	if req.Category != nil {
		category, err := s.resolveCategory(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = category.ID
		title.Category = category
	}
	title.UpdatedAt = time.Now().UTC()

	if err := s.titleRepo.Update(ctx, title); err != nil {
		if err == repository.ErrNotFound {
			return nil, fmt.Errorf("%w: title %s", ErrNotFound, id.String())
		}
		return nil, err
	}

	if req.Genres != nil {
		genres, genreIDs, err := s.resolveGenres(ctx, *req.Genres)
		if err != nil {
			return nil, err
		}
		if err := s.titleRepo.SetGenres(ctx, id, genreIDs); err != nil {
			return nil, err
		}
		title.Genres = genres
	} else {
		title.Genres, err = s.genreRepo.FindByTitleID(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	resp := response.TitleToResponse(title)
	return &resp, nil
}

func (s *titleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.titleRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return fmt.Errorf("%w: title %s", ErrNotFound, id.String())
		}
		return err
	}
	return nil
}

func (s *titleService) findByID(ctx context.Context, id uuid.UUID) (*entity.Title, error) {
	title, err := s.titleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, fmt.Errorf("%w: title %s", ErrNotFound, id.String())
	}
	return title, nil
}

func (s *titleService) resolveCategory(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: unknown category %s", ErrBadRequest, slug)
	}
	return category, nil
}

// resolveGenres maps slugs to genres, rejecting any unknown slug.
func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]entity.Genre, []uuid.UUID, error) {
	found, err := s.genreRepo.FindBySlugs(ctx, slugs)
	if err != nil {
		return nil, nil, err
	}

	bySlug := make(map[string]*entity.Genre, len(found))
	for _, genre := range found {
		bySlug[genre.Slug] = genre
	}

	genres := make([]entity.Genre, 0, len(slugs))
	genreIDs := make([]uuid.UUID, 0, len(slugs))
	for _, slug := range slugs {
		genre, ok := bySlug[slug]
		if !ok {
			return nil, nil, fmt.Errorf("%w: unknown genre %s", ErrBadRequest, slug)
		}
		genres = append(genres, *genre)
		genreIDs = append(genreIDs, genre.ID)
	}

	return genres, genreIDs, nil
}

// validateYear rejects titles from the future.
func validateYear(year int) error {
	if year > time.Now().UTC().Year() {
		return fmt.Errorf("%w: year %d is in the future", ErrBadRequest, year)
	}
	return nil
}
