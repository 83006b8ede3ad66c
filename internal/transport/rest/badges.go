package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
	"github.com/heartmarshall/mooddiary-backend/pkg/ctxutil"
)

// badgeService defines the badge operations needed by BadgeHandler.
type badgeService interface {
	Statuses(ctx context.Context, owner domain.OwnerID) ([]domain.BadgeStatus, error)
	Stats(ctx context.Context, owner domain.OwnerID) (domain.BadgeStats, error)
	SelectBadge(ctx context.Context, owner domain.OwnerID, badgeID int64) error
}

// BadgeHandler serves the badge collection.
type BadgeHandler struct {
	badges badgeService
	log    *slog.Logger
}

// NewBadgeHandler creates a BadgeHandler.
func NewBadgeHandler(badges badgeService, logger *slog.Logger) *BadgeHandler {
	return &BadgeHandler{badges: badges, log: logger.With("handler", "badges")}
}

type badgesResponse struct {
	Badges []badgeStatusResponse `json:"badges"`
	Stats  badgeStatsResponse    `json:"stats"`
}

type badgeStatsResponse struct {
	EntryCount   int `json:"entryCount"`
	Streak       int `json:"streak"`
	DistinctMood int `json:"distinctMood"`
}

// List handles GET /badges.
func (h *BadgeHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := ctxutil.OwnerFromCtx(r.Context())
	if !ok {
		writeError(w, r, h.log, domain.ErrUnauthorized)
		return
	}

	statuses, err := h.badges.Statuses(r.Context(), owner)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	stats, err := h.badges.Stats(r.Context(), owner)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := badgesResponse{
		Badges: make([]badgeStatusResponse, len(statuses)),
		Stats: badgeStatsResponse{
			EntryCount:   stats.EntryCount,
			Streak:       stats.Streak,
			DistinctMood: stats.DistinctMood,
		},
	}
	for i, s := range statuses {
		resp.Badges[i] = badgeStatusResponse{
			badgeResponse: toBadgeResponse(s.Badge),
			IsEarned:      s.IsEarned,
			IsSelected:    s.IsSelected,
			EarnedAt:      s.EarnedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Select handles PUT /badges/selected.
func (h *BadgeHandler) Select(w http.ResponseWriter, r *http.Request) {
	owner, ok := ctxutil.OwnerFromCtx(r.Context())
	if !ok {
		writeError(w, r, h.log, domain.ErrUnauthorized)
		return
	}

	var req struct {
		BadgeID int64 `json:"badgeId"`
	}
	if err := decodeJSON(r, &req); err != nil || req.BadgeID <= 0 {
		writeBadRequest(w, "badgeId is required")
		return
	}

	if err := h.badges.SelectBadge(r.Context(), owner, req.BadgeID); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
