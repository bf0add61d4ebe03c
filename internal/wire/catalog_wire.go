package wire

import (
	"kinohub/pkg/middleware"
	"kinohub/pkg/permission"

	"github.com/go-chi/chi/v5"
)

// CatalogRoutes cover categories and genres: readable by anyone, writable
// by admins.
func CatalogRoutes(r chi.Router, w *Wiring) {
	maybeAuthenticate := middleware.MaybeAuthenticate(w.Tokens, w.UserRepo, w.Logger)
	adminOrReadOnly := middleware.Permit(permission.AdminOrReadOnly{})

	r.Route("/categories", func(r chi.Router) {
		r.Use(maybeAuthenticate, adminOrReadOnly)

		r.Get("/", w.Handler.Category.List)
		r.Post("/", w.Handler.Category.Create)
		r.Get("/{slug}", w.Handler.Category.Get)
		r.Delete("/{slug}", w.Handler.Category.Delete)
	})

	r.Route("/genres", func(r chi.Router) {
		r.Use(maybeAuthenticate, adminOrReadOnly)

		r.Get("/", w.Handler.Genre.List)
		r.Post("/", w.Handler.Genre.Create)
		r.Get("/{slug}", w.Handler.Genre.Get)
		r.Delete("/{slug}", w.Handler.Genre.Delete)
	})
}
