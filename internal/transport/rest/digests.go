package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// digestService defines the digest operations needed by DigestHandler.
type digestService interface {
	EnsureMonthlyDigest(ctx context.Context, ym string) (*domain.MonthlyDigest, error)
	EnsureLastMonth(ctx context.Context) (*domain.MonthlyDigest, error)
	Year(ctx context.Context, year int) ([]domain.MonthlyDigest, error)
}

// DigestHandler serves monthly digests.
type DigestHandler struct {
	digests digestService
	log     *slog.Logger
}

// NewDigestHandler creates a DigestHandler.
func NewDigestHandler(digests digestService, logger *slog.Logger) *DigestHandler {
	return &DigestHandler{digests: digests, log: logger.With("handler", "digests")}
}

// Ensure handles POST /digests/{ym}. The literal "last" selects the
// previous calendar month.
func (h *DigestHandler) Ensure(w http.ResponseWriter, r *http.Request) {
	ym := chi.URLParam(r, "ym")

	var (
		d   *domain.MonthlyDigest
		err error
	)
	if ym == "last" {
		d, err = h.digests.EnsureLastMonth(r.Context())
	} else {
		d, err = h.digests.EnsureMonthlyDigest(r.Context(), ym)
	}
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDigestResponse(*d))
}

// Year handles GET /digests?year=.
func (h *DigestHandler) Year(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeBadRequest(w, "year must be a number")
		return
	}

	digests, err := h.digests.Year(r.Context(), year)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	out := make([]digestResponse, len(digests))
	for i, d := range digests {
		out[i] = toDigestResponse(d)
	}
	writeJSON(w, http.StatusOK, out)
}
