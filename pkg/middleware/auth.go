package middleware

import (
	"net/http"
	"strings"

	"kinohub/internal/data/repository"
	"kinohub/pkg/permission"
	"kinohub/pkg/token"
	"kinohub/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate validates the bearer token and stores the caller on the
// request context. Requests without a token are rejected.
func Authenticate(tokens *token.Manager, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			caller, ok := resolveCaller(w, r, authHeader, tokens, userRepo, logger)
			if !ok {
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetCallerContext(r.Context(), caller)))
		})
	}
}

// MaybeAuthenticate resolves the caller when a token is present and lets
// anonymous requests continue. A token that is present but invalid is
// still rejected rather than downgraded to anonymous.
func MaybeAuthenticate(tokens *token.Manager, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r.WithContext(
					utils.SetCallerContext(r.Context(), permission.Anonymous())))
				return
			}

			caller, ok := resolveCaller(w, r, authHeader, tokens, userRepo, logger)
			if !ok {
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetCallerContext(r.Context(), caller)))
		})
	}
}

// resolveCaller parses the bearer token and loads the user so the caller
// carries the current role, not the one at token issue time. Writes the
// error response itself and reports success through the bool.
func resolveCaller(
	w http.ResponseWriter,
	r *http.Request,
	authHeader string,
	tokens *token.Manager,
	userRepo repository.UserRepository,
	logger *zap.Logger,
) (permission.Caller, bool) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
		return permission.Caller{}, false
	}

	claims, err := tokens.Parse(parts[1])
	if err != nil {
		logger.Warn("Invalid bearer token", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid or expired token")
		return permission.Caller{}, false
	}

	user, err := userRepo.FindByID(r.Context(), claims.UserID)
	if err != nil {
		logger.Error("Failed to load token user",
			zap.Error(err),
			zap.String("user_id", claims.UserID.String()))
		utils.ResponseInternalError(w, "Internal server error")
		return permission.Caller{}, false
	}
	if user == nil {
		utils.ResponseUnauthorized(w, "Invalid or expired token")
		return permission.Caller{}, false
	}

	return permission.Caller{
		Authenticated: true,
		UserID:        user.ID,
		Role:          user.Role,
		Superuser:     user.Superuser,
	}, true
}

// Permit runs the collection-level permission check for an endpoint.
// Anonymous denials map to 401, authenticated denials to 403.
func Permit(rule permission.Rule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := utils.GetCallerFromContext(r.Context())
			if !rule.Permits(caller, r.Method) {
				if !caller.Authenticated {
					utils.ResponseUnauthorized(w, "Authentication required")
					return
				}
				utils.ResponseForbidden(w, "You do not have permission to perform this action")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
