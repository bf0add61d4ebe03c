package wire

import (
	"net/http"

	"kinohub/internal/adaptor"
	"kinohub/internal/data/repository"
	"kinohub/internal/usecase"
	"kinohub/pkg/mailer"
	"kinohub/pkg/middleware"
	"kinohub/pkg/token"
	"kinohub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Wiring holds everything the routes need.
type Wiring struct {
	Handler  *adaptor.Handler
	Tokens   *token.Manager
	UserRepo repository.UserRepository
	Logger   *zap.Logger
}

// NewRouter assembles the service graph and mounts all routes under
// /api/v1.
func NewRouter(repo *repository.Repository, config *utils.Config, log *zap.Logger) *chi.Mux {
	tokens := token.NewManager(config.JWT.Secret, config.JWT.ExpiryHours)
	mail := mailer.New(config.Email, log)
	service := usecase.NewService(repo, config, mail, tokens, log)

	wiring := &Wiring{
		Handler:  adaptor.NewHandler(service, log),
		Tokens:   tokens,
		UserRepo: repo.User,
		Logger:   log,
	}

	r := chi.NewRouter()

	r.Use(middleware.Logger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", nil)
	})

	r.Route("/api/v1", func(api chi.Router) {
		AuthRoutes(api, wiring)
		UserRoutes(api, wiring)
		CatalogRoutes(api, wiring)
		TitleRoutes(api, wiring)
	})

	return r
}
