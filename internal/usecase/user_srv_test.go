package usecase

import (
	"context"
	"testing"

	"kinohub/internal/data/entity"
	"kinohub/internal/data/repository"
	"kinohub/internal/dto/request"
	"kinohub/pkg/permission"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserFixture() (*mockUserRepo, UserService) {
	userRepo := new(mockUserRepo)
	return userRepo, NewUserService(userRepo, zap.NewNop())
}

func TestUserCreateDefaultsRole(t *testing.T) {
	userRepo, service := newUserFixture()
	ctx := context.Background()

	var created *entity.User
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).Return(nil)

	resp, err := service.Create(ctx, request.CreateUserRequest{
		Username: "carol",
		Email:    "carol@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, permission.RoleUser, created.Role)
	assert.Equal(t, permission.RoleUser, resp.Role)
}

func TestUserCreateWithRole(t *testing.T) {
	userRepo, service := newUserFixture()
	ctx := context.Background()

	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	resp, err := service.Create(ctx, request.CreateUserRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Role:     "moderator",
	})
	require.NoError(t, err)
	assert.Equal(t, permission.RoleModerator, resp.Role)
}

func TestUserCreateDuplicate(t *testing.T) {
	userRepo, service := newUserFixture()
	ctx := context.Background()

	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicate)

	_, err := service.Create(ctx, request.CreateUserRequest{
		Username: "carol",
		Email:    "carol@example.com",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUserGetByUsernameNotFound(t *testing.T) {
	userRepo, service := newUserFixture()
	ctx := context.Background()

	userRepo.On("FindByUsername", ctx, "ghost").Return(nil, nil)

	_, err := service.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserUpdateByUsernameChangesRole(t *testing.T) {
	userRepo, service := newUserFixture()
	ctx := context.Background()

	user := existingUser("carol", "carol@example.com")
	userRepo.On("FindByUsername", ctx, "carol").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	role := "admin"
	resp, err := service.UpdateByUsername(ctx, "carol", request.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, permission.RoleAdmin, resp.Role)
}

func TestUpdateMeKeepsRole(t *testing.T) {
	userRepo, service := newUserFixture()
	ctx := context.Background()

	user := existingUser("carol", "carol@example.com")
	user.Role = permission.RoleModerator

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	bio := "hello"
	resp, err := service.UpdateMe(ctx, user.ID, request.UpdateMeRequest{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, "hello", resp.Bio)
	// The self-service patch cannot touch the role.
	assert.Equal(t, permission.RoleModerator, resp.Role)
}

func TestUserDeleteByUsername(t *testing.T) {
	userRepo, service := newUserFixture()
	ctx := context.Background()

	user := existingUser("carol", "carol@example.com")
	userRepo.On("FindByUsername", ctx, "carol").Return(user, nil)
	userRepo.On("Delete", ctx, user.ID).Return(nil)

	err := service.DeleteByUsername(ctx, "carol")
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}
