package wire

import (
	"kinohub/pkg/middleware"
	"kinohub/pkg/permission"

	"github.com/go-chi/chi/v5"
)

// UserRoutes cover user administration plus the self-service profile.
// /users/me only needs authentication; everything else is admin-only.
func UserRoutes(r chi.Router, w *Wiring) {
	authenticate := middleware.Authenticate(w.Tokens, w.UserRepo, w.Logger)

	r.Route("/users", func(r chi.Router) {
		r.Use(authenticate)

		r.Route("/me", func(r chi.Router) {
			r.Get("/", w.Handler.User.Me)
			r.Patch("/", w.Handler.User.UpdateMe)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Permit(permission.AdminOnly{}))

			r.Get("/", w.Handler.User.List)
			r.Post("/", w.Handler.User.Create)
			r.Get("/{username}", w.Handler.User.Get)
			r.Patch("/{username}", w.Handler.User.Update)
			r.Delete("/{username}", w.Handler.User.Delete)
		})
	})
}
