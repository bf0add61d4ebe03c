package usecase

import (
	"context"
	"fmt"
	"time"

	"kinohub/internal/data/entity"
	"kinohub/internal/data/repository"
	"kinohub/internal/dto/request"
	"kinohub/internal/dto/response"
	"kinohub/pkg/mailer"
	"kinohub/pkg/permission"
	"kinohub/pkg/token"
	"kinohub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const confirmationCodeBytes = 32

type AuthService interface {
	SignUp(ctx context.Context, req request.SignUpRequest) (*response.SignUpResponse, error)
	TokenReceive(ctx context.Context, req request.TokenRequest) (*response.TokenResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	mail     mailer.Mailer
	tokens   *token.Manager
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, mail mailer.Mailer, tokens *token.Manager, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		mail:     mail,
		tokens:   tokens,
		log:      log.With(zap.String("service", "auth")),
	}
}

// SignUp registers a new account or re-issues a confirmation code for an
// existing (username, email) pair. A username or email already taken by a
// different pair is a conflict. The user row is persisted before the code
// is dispatched; a dispatch failure comes back as ErrCodeDispatch with
// the response still filled in.
func (s *authService) SignUp(ctx context.Context, req request.SignUpRequest) (*response.SignUpResponse, error) {
	byUsername, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	byEmail, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	var user *entity.User
	switch {
	case byUsername != nil && byUsername.Email == req.Email:
		// Same pair: re-issue the code.
		user = byUsername
	case byUsername != nil:
		return nil, fmt.Errorf("%w: username %s is already taken", ErrConflict, req.Username)
	case byEmail != nil:
		return nil, fmt.Errorf("%w: email %s is already taken", ErrConflict, req.Email)
	}

	code, err := utils.GenerateConfirmationCode(confirmationCodeBytes)
	if err != nil {
		return nil, fmt.Errorf("generate confirmation code: %w", err)
	}

	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash confirmation code: %w", err)
	}

	if user == nil {
		now := time.Now().UTC()
		user = &entity.User{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Username:         req.Username,
			Email:            req.Email,
			FirstName:        req.FirstName,
			LastName:         req.LastName,
			Bio:              req.Bio,
			Role:             permission.RoleUser,
			ConfirmationCode: string(codeHash),
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			if err == repository.ErrDuplicate {
				return nil, fmt.Errorf("%w: username or email is already taken", ErrConflict)
			}
			return nil, err
		}
		s.log.Info("User registered",
			zap.String("user_id", user.ID.String()),
			zap.String("username", user.Username),
		)
	} else {
		if err := s.userRepo.UpdateConfirmationCode(ctx, user.ID, string(codeHash)); err != nil {
			return nil, err
		}
		s.log.Info("Confirmation code re-issued",
			zap.String("user_id", user.ID.String()),
			zap.String("username", user.Username),
		)
	}

	resp := &response.SignUpResponse{
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Bio:       user.Bio,
	}

	if err := s.mail.SendConfirmationCode(ctx, user.Email, user.Username, code); err != nil {
		s.log.Warn("Confirmation code dispatch failed",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return resp, ErrCodeDispatch
	}

	return resp, nil
}

// TokenReceive exchanges a confirmation code for a signed access token.
// Unknown usernames are not found; a code mismatch is a bad request, per
// the constant-time bcrypt compare against the stored hash.
func (s *authService) TokenReceive(ctx context.Context, req request.TokenRequest) (*response.TokenResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, req.Username)
	}

	if user.ConfirmationCode == "" {
		return nil, ErrInvalidCode
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.ConfirmationCode), []byte(req.ConfirmationCode)); err != nil {
		return nil, ErrInvalidCode
	}

	signed, err := s.tokens.Issue(token.Claims{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		Superuser: user.Superuser,
	})
	if err != nil {
		return nil, fmt.Errorf("issue token for %s: %w", user.Username, err)
	}

	s.log.Info("Token issued", zap.String("username", user.Username))
	return &response.TokenResponse{Token: signed}, nil
}
