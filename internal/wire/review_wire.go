package wire

import (
	"kinohub/pkg/middleware"
	"kinohub/pkg/permission"

	"github.com/go-chi/chi/v5"
)

// ReviewRoutes cover reviews and their comments under a title. Reads are
// public; writes need authentication, and modifying an existing review or
// comment is additionally checked against its author in the service.
func ReviewRoutes(r chi.Router, w *Wiring) {
	contentPermit := middleware.Permit(permission.AnyOf(
		permission.ModeratorOrAuthorOrAuthenticated{},
		permission.AuthorOrStaffOrReadOnly{},
	))

	r.Route("/{titleID}/reviews", func(r chi.Router) {
		r.Use(contentPermit)

		r.Get("/", w.Handler.Review.List)
		r.Post("/", w.Handler.Review.Create)
		r.Get("/{reviewID}", w.Handler.Review.Get)
		r.Patch("/{reviewID}", w.Handler.Review.Update)
		r.Delete("/{reviewID}", w.Handler.Review.Delete)

		r.Route("/{reviewID}/comments", func(r chi.Router) {
			r.Get("/", w.Handler.Comment.List)
			r.Post("/", w.Handler.Comment.Create)
			r.Get("/{commentID}", w.Handler.Comment.Get)
			r.Patch("/{commentID}", w.Handler.Comment.Update)
			r.Delete("/{commentID}", w.Handler.Comment.Delete)
		})
	})
}
