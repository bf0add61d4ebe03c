package usecase

import (
	"context"
	"fmt"
	"time"

	"kinohub/internal/data/entity"
	"kinohub/internal/data/repository"
	"kinohub/internal/dto/request"
	"kinohub/internal/dto/response"
	"kinohub/pkg/permission"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	List(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	Create(ctx context.Context, req request.CreateUserRequest) (*response.UserResponse, error)
	GetByUsername(ctx context.Context, username string) (*response.UserResponse, error)
	UpdateByUsername(ctx context.Context, username string, req request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteByUsername(ctx context.Context, username string) error
	Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, req request.UpdateMeRequest) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) List(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.userRepo.FindAll(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.userRepo.CountAll(ctx, search)
	if err != nil {
		return nil, err
	}

	items := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, response.UserToResponse(user))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

// Create is the admin-side user creation. No confirmation code is issued;
// the account holder still signs up to obtain one.
func (s *userService) Create(ctx context.Context, req request.CreateUserRequest) (*response.UserResponse, error) {
	role := permission.Role(req.Role)
	if req.Role == "" {
		role = permission.RoleUser
	}

	now := time.Now().UTC()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == repository.ErrDuplicate {
			return nil, fmt.Errorf("%w: username or email is already taken", ErrConflict)
		}
		return nil, err
	}

	s.log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*response.UserResponse, error) {
	user, err := s.findByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateByUsername(ctx context.Context, username string, req request.UpdateUserRequest) (*response.UserResponse, error) {
	user, err := s.findByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	applyUserPatch(user, req.Email, req.FirstName, req.LastName, req.Bio)
	if req.Role != nil {
		user.Role = permission.Role(*req.Role)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, user); err != nil {
		if err == repository.ErrDuplicate {
			return nil, fmt.Errorf("%w: email is already taken", ErrConflict)
		}
		if err == repository.ErrNotFound {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, username)
		}
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) DeleteByUsername(ctx context.Context, username string) error {
	user, err := s.findByUsername(ctx, username)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		if err == repository.ErrNotFound {
			return fmt.Errorf("%w: user %s", ErrNotFound, username)
		}
		return err
	}

	return nil
}

func (s *userService) Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID.String())
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// UpdateMe is the self-service patch. Role and superuser stay untouched.
func (s *userService) UpdateMe(ctx context.Context, userID uuid.UUID, req request.UpdateMeRequest) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID.String())
	}

	applyUserPatch(user, req.Email, req.FirstName, req.LastName, req.Bio)
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, user); err != nil {
		if err == repository.ErrDuplicate {
			return nil, fmt.Errorf("%w: email is already taken", ErrConflict)
		}
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) findByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, username)
	}
	return user, nil
}

func applyUserPatch(user *entity.User, email, firstName, lastName, bio *string) {
	if email != nil {
		user.Email = *email
	}
	if firstName != nil {
		user.FirstName = *firstName
	}
	if lastName != nil {
		user.LastName = *lastName
	}
	if bio != nil {
		user.Bio = *bio
	}
}
