package usecase

import (
	"context"
	"testing"
	"time"

	"kinohub/internal/data/entity"
	"kinohub/internal/data/repository"
	"kinohub/internal/dto/request"
	"kinohub/pkg/permission"
	"kinohub/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type reviewFixture struct {
	reviewRepo *mockReviewRepo
	titleRepo  *mockTitleRepo
	userRepo   *mockUserRepo
	service    ReviewService
}

func newReviewFixture() *reviewFixture {
	f := &reviewFixture{
		reviewRepo: new(mockReviewRepo),
		titleRepo:  new(mockTitleRepo),
		userRepo:   new(mockUserRepo),
	}
	f.service = NewReviewService(f.reviewRepo, f.titleRepo, f.userRepo,
		utils.ScoreConfig{Min: 1, Max: 10}, zap.NewNop())
	return f
}

func sampleTitle() *entity.Title {
	return &entity.Title{
		Base: entity.Base{ID: uuid.New()},
		Name: "The Seventh Seal",
		Year: 1957,
	}
}

func authorCaller(id uuid.UUID) permission.Caller {
	return permission.Caller{Authenticated: true, UserID: id, Role: permission.RoleUser}
}

func TestReviewCreate(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()

	title := sampleTitle()
	author := existingUser("bob", "bob@example.com")

	f.titleRepo.On("FindByID", ctx, title.ID).Return(title, nil)
	f.reviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	f.userRepo.On("FindByID", ctx, author.ID).Return(author, nil)

	resp, err := f.service.Create(ctx, authorCaller(author.ID), title.ID, request.CreateReviewRequest{
		Text:  "Memorable.",
		Score: 9,
	})
	require.NoError(t, err)

	assert.Equal(t, 9, resp.Score)
	assert.Equal(t, "bob", resp.Author)
	assert.Equal(t, "The Seventh Seal", resp.Title)
}

func TestReviewCreateScoreOutOfBounds(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()

	for _, score := range []int{0, 11, -5} {
		_, err := f.service.Create(ctx, authorCaller(uuid.New()), uuid.New(), request.CreateReviewRequest{
			Text:  "x",
			Score: score,
		})
		assert.ErrorIs(t, err, ErrBadRequest)
	}

	// No repository call happens for an invalid score.
	f.titleRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestReviewCreateUnknownTitle(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()

	titleID := uuid.New()
	f.titleRepo.On("FindByID", ctx, titleID).Return(nil, nil)

	_, err := f.service.Create(ctx, authorCaller(uuid.New()), titleID, request.CreateReviewRequest{
		Text:  "x",
		Score: 5,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewCreateDuplicate(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()

	title := sampleTitle()
	f.titleRepo.On("FindByID", ctx, title.ID).Return(title, nil)
	f.reviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).
		Return(repository.ErrDuplicate)

	_, err := f.service.Create(ctx, authorCaller(uuid.New()), title.ID, request.CreateReviewRequest{
		Text:  "again",
		Score: 5,
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestReviewUpdateByAuthor(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()

	title := sampleTitle()
	author := existingUser("bob", "bob@example.com")
	review := &entity.Review{
		ID:       uuid.New(),
		TitleID:  title.ID,
		AuthorID: author.ID,
		Text:     "old",
		Score:    5,
		PubDate:  time.Now(),
	}

	f.titleRepo.On("FindByID", ctx, title.ID).Return(title, nil)
	f.reviewRepo.On("FindByID", ctx, review.ID).Return(review, nil)
	f.reviewRepo.On("Update", ctx, review).Return(nil)
	f.userRepo.On("FindByID", ctx, author.ID).Return(author, nil)

	newScore := 8
	resp, err := f.service.Update(ctx, authorCaller(author.ID), title.ID, review.ID,
		request.UpdateReviewRequest{Score: &newScore})
	require.NoError(t, err)

	assert.Equal(t, 8, resp.Score)
	assert.Equal(t, "old", resp.Text)
}

func TestReviewUpdateByStrangerForbidden(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()

	title := sampleTitle()
	review := &entity.Review{
		ID:       uuid.New(),
		TitleID:  title.ID,
		AuthorID: uuid.New(),
	}

	f.titleRepo.On("FindByID", ctx, title.ID).Return(title, nil)
	f.reviewRepo.On("FindByID", ctx, review.ID).Return(review, nil)

	text := "hijacked"
	_, err := f.service.Update(ctx, authorCaller(uuid.New()), title.ID, review.ID,
		request.UpdateReviewRequest{Text: &text})
	assert.ErrorIs(t, err, ErrForbidden)

	f.reviewRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReviewDeleteByModerator(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()

	title := sampleTitle()
	review := &entity.Review{
		ID:       uuid.New(),
		TitleID:  title.ID,
		AuthorID: uuid.New(),
	}

	f.titleRepo.On("FindByID", ctx, title.ID).Return(title, nil)
	f.reviewRepo.On("FindByID", ctx, review.ID).Return(review, nil)
	f.reviewRepo.On("Delete", ctx, review.ID, title.ID).Return(nil)

	moderator := permission.Caller{
		Authenticated: true,
		UserID:        uuid.New(),
		Role:          permission.RoleModerator,
	}

	err := f.service.Delete(ctx, moderator, title.ID, review.ID)
	assert.NoError(t, err)
	f.reviewRepo.AssertExpectations(t)
}

func TestReviewGetWrongTitle(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()

	title := sampleTitle()
	review := &entity.Review{
		ID:       uuid.New(),
		TitleID:  uuid.New(), // belongs to a different title
		AuthorID: uuid.New(),
	}

	f.titleRepo.On("FindByID", ctx, title.ID).Return(title, nil)
	f.reviewRepo.On("FindByID", ctx, review.ID).Return(review, nil)

	_, err := f.service.Get(ctx, title.ID, review.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
