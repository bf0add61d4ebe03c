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

type CategoryService interface {
	List(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error)
	Create(ctx context.Context, req request.CreateCategoryRequest) (*response.CategoryResponse, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	log          *zap.Logger
}

func NewCategoryService(categoryRepo repository.CategoryRepository, log *zap.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		log:          log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) List(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	categories, err := s.categoryRepo.FindAll(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.categoryRepo.CountAll(ctx, search)
	if err != nil {
		return nil, err
	}

	items := make([]response.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, response.CategoryToResponse(category))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *categoryService) Create(ctx context.Context, req request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	category := &entity.Category{
		ID:   uuid.New(),
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if err == repository.ErrDuplicate {
			return nil, fmt.Errorf("%w: category %s", ErrConflict, req.Slug)
		}
		return nil, err
	}

	s.log.Info("Category created", zap.String("slug", category.Slug))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) DeleteBySlug(ctx context.Context, slug string) error {
	if err := s.categoryRepo.DeleteBySlug(ctx, slug); err != nil {
		if err == repository.ErrNotFound {
			return fmt.Errorf("%w: category %s", ErrNotFound, slug)
		}
		return err
	}
	return nil
}
