package ctxutil

import (
	"context"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

type ctxKey string

const (
	ownerKey     ctxKey = "owner_id"
	requestIDKey ctxKey = "request_id"
)

// WithOwner stores the acting owner in the context.
func WithOwner(ctx context.Context, owner domain.OwnerID) context.Context {
	return context.WithValue(ctx, ownerKey, owner)
}

// OwnerFromCtx extracts the acting owner from the context.
// Returns "" and false if the value is missing, empty, or wrong type.
func OwnerFromCtx(ctx context.Context) (domain.OwnerID, bool) {
	owner, ok := ctx.Value(ownerKey).(domain.OwnerID)
	if !ok || owner == "" {
		return "", false
	}
	return owner, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
