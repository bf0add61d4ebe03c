package adaptor

import (
	"context"

	"kinohub/internal/data/repository"
	"kinohub/internal/dto/request"
	"kinohub/internal/dto/response"
	"kinohub/pkg/permission"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) SignUp(ctx context.Context, req request.SignUpRequest) (*response.SignUpResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.SignUpResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) TokenReceive(ctx context.Context, req request.TokenRequest) (*response.TokenResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.TokenResponse)
	return resp, args.Error(1)
}

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) List(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	args := m.Called(ctx, search, page)
	resp, _ := args.Get(0).(*response.PaginatedResponse[response.CategoryResponse])
	return resp, args.Error(1)
}

func (m *mockCategoryService) Create(ctx context.Context, req request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.CategoryResponse)
	return resp, args.Error(1)
}

func (m *mockCategoryService) DeleteBySlug(ctx context.Context, slug string) error {
	return m.Called(ctx, slug).Error(0)
}

type mockTitleService struct {
	mock.Mock
}

func (m *mockTitleService) List(ctx context.Context, filter repository.TitleFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error) {
	args := m.Called(ctx, filter, page)
	resp, _ := args.Get(0).(*response.PaginatedResponse[response.TitleResponse])
	return resp, args.Error(1)
}

func (m *mockTitleService) Create(ctx context.Context, req request.CreateTitleRequest) (*response.TitleResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.TitleResponse)
	return resp, args.Error(1)
}

func (m *mockTitleService) Get(ctx context.Context, id uuid.UUID) (*response.TitleResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*response.TitleResponse)
	return resp, args.Error(1)
}

func (m *mockTitleService) Update(ctx context.Context, id uuid.UUID, req request.UpdateTitleRequest) (*response.TitleResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*response.TitleResponse)
	return resp, args.Error(1)
}

func (m *mockTitleService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockReviewService struct {
	mock.Mock
}

func (m *mockReviewService) List(ctx context.Context, titleID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	args := m.Called(ctx, titleID, page)
	resp, _ := args.Get(0).(*response.PaginatedResponse[response.ReviewResponse])
	return resp, args.Error(1)
}

func (m *mockReviewService) Create(ctx context.Context, caller permission.Caller, titleID uuid.UUID, req request.CreateReviewRequest) (*response.ReviewResponse, error) {
	args := m.Called(ctx, caller, titleID, req)
	resp, _ := args.Get(0).(*response.ReviewResponse)
	return resp, args.Error(1)
}

func (m *mockReviewService) Get(ctx context.Context, titleID, reviewID uuid.UUID) (*response.ReviewResponse, error) {
	args := m.Called(ctx, titleID, reviewID)
	resp, _ := args.Get(0).(*response.ReviewResponse)
	return resp, args.Error(1)
}

func (m *mockReviewService) Update(ctx context.Context, caller permission.Caller, titleID, reviewID uuid.UUID, req request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	args := m.Called(ctx, caller, titleID, reviewID, req)
	resp, _ := args.Get(0).(*response.ReviewResponse)
	return resp, args.Error(1)
}

func (m *mockReviewService) Delete(ctx context.Context, caller permission.Caller, titleID, reviewID uuid.UUID) error {
	return m.Called(ctx, caller, titleID, reviewID).Error(0)
}
