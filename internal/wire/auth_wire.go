package wire

import (
	"github.com/go-chi/chi/v5"
)

// AuthRoutes are the public signup and token-exchange endpoints.
func AuthRoutes(r chi.Router, w *Wiring) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", w.Handler.Auth.SignUp)
		r.Post("/token", w.Handler.Auth.Token)
	})
}
