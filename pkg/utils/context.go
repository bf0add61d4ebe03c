package utils

import (
	"context"

	"kinohub/pkg/permission"

	"github.com/google/uuid"
)

type contextKey string

const callerKey contextKey = "caller"

// SetCallerContext stores the authenticated caller on the request context.
func SetCallerContext(ctx context.Context, caller permission.Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// GetCallerFromContext returns the caller set by the auth middleware.
// Requests that never passed through authentication yield an anonymous
// caller.
func GetCallerFromContext(ctx context.Context) permission.Caller {
	callerVal := ctx.Value(callerKey)
	if callerVal == nil {
		return permission.Anonymous()
	}

	caller, ok := callerVal.(permission.Caller)
	if !ok {
		return permission.Anonymous()
	}
	return caller
}

// GetUserIDFromContext returns the authenticated user's ID.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	caller := GetCallerFromContext(ctx)
	if !caller.Authenticated {
		return uuid.Nil, false
	}
	return caller.UserID, true
}
