package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
	"github.com/heartmarshall/mooddiary-backend/pkg/ctxutil"
)

// ownerResolver reports the owner currently bound to the device.
type ownerResolver interface {
	CurrentOwner(ctx context.Context) (domain.OwnerID, bool, error)
}

// Owner binds the device's current owner into the request context.
// Requests proceed without an owner when none is bound; services then
// answer with an authorization failure.
func Owner(resolver ownerResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			owner, ok, err := resolver.CurrentOwner(r.Context())
			if err != nil {
				logger.ErrorContext(r.Context(), "resolve current owner", slog.String("error", err.Error()))
				writeAppError(w, http.StatusInternalServerError, domain.NewStorageError(err))
				return
			}
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			tagOwner(r.Context(), owner)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithOwner(r.Context(), owner)))
		})
	}
}

type ownerTagKey struct{}

// ownerTag lets an outer middleware learn the owner bound further in.
type ownerTag struct {
	owner domain.OwnerID
}

func withOwnerTag(ctx context.Context, tag *ownerTag) context.Context {
	return context.WithValue(ctx, ownerTagKey{}, tag)
}

func tagOwner(ctx context.Context, owner domain.OwnerID) {
	if tag, ok := ctx.Value(ownerTagKey{}).(*ownerTag); ok {
		tag.owner = owner
	}
}

func writeAppError(w http.ResponseWriter, status int, appErr *domain.AppError) {
	writeErrorBody(w, status, appErr.Kind.String(), appErr.Message())
}

// writeErrorBody writes the {"error":{"kind","message"}} envelope the REST
// handlers use.
func writeErrorBody(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
		"error": map[string]string{
			"kind":    kind,
			"message": message,
		},
	})
}
