package wire

import (
	"kinohub/pkg/middleware"
	"kinohub/pkg/permission"

	"github.com/go-chi/chi/v5"
)

// TitleRoutes cover the title catalogue with reviews and comments nested
// underneath. Title writes are admin-only; review and comment routes
// carry their own rules.
func TitleRoutes(r chi.Router, w *Wiring) {
	maybeAuthenticate := middleware.MaybeAuthenticate(w.Tokens, w.UserRepo, w.Logger)
	adminOrReadOnly := middleware.Permit(permission.AdminOrReadOnly{})

	r.Route("/titles", func(r chi.Router) {
		r.Use(maybeAuthenticate)

		r.Group(func(r chi.Router) {
			r.Use(adminOrReadOnly)

			r.Get("/", w.Handler.Title.List)
			r.Post("/", w.Handler.Title.Create)
			r.Get("/{titleID}", w.Handler.Title.Get)
			r.Patch("/{titleID}", w.Handler.Title.Update)
			r.Delete("/{titleID}", w.Handler.Title.Delete)
		})

		ReviewRoutes(r, w)
	})
}
