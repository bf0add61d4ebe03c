package usecase

import (
	"kinohub/internal/data/repository"
	"kinohub/pkg/mailer"
	"kinohub/pkg/token"
	"kinohub/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Category CategoryService
	Genre    GenreService
	Title    TitleService
	Review   ReviewService
	Comment  CommentService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, tokens *token.Manager, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo.User, mail, tokens, log),
		User:     NewUserService(repo.User, log),
		Category: NewCategoryService(repo.Category, log),
		Genre:    NewGenreService(repo.Genre, log),
		Title:    NewTitleService(repo.Title, repo.Category, repo.Genre, log),
		Review:   NewReviewService(repo.Review, repo.Title, repo.User, config.Score, log),
		Comment:  NewCommentService(repo.Comment, repo.Review, repo.User, log),
	}
}
