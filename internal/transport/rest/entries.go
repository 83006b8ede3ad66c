package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
	"github.com/heartmarshall/mooddiary-backend/internal/service/journal"
)

// journalService defines the journal operations needed by EntryHandler.
type journalService interface {
	Entry(ctx context.Context, id int64) (*domain.Entry, error)
	EntryByDate(ctx context.Context, ymd string) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, id int64) error
	EntriesInRange(ctx context.Context, startYmd, endYmd string) ([]domain.Entry, error)
	EntriesByMonth(ctx context.Context, ym string) ([]domain.Entry, error)
	SetFavorite(ctx context.Context, id int64, favorite bool) error
	Favorites(ctx context.Context) ([]domain.FavoriteCard, error)
	MoodMap(ctx context.Context, ym string) (map[string]domain.Mood, error)
	MoodStats(ctx context.Context, ym string) ([]domain.MoodStat, error)
	TagCounts(ctx context.Context, ym string) ([]domain.TagCount, error)
	TopTag(ctx context.Context, ym string) (string, error)
}

// analysisService defines the analysis operations needed by EntryHandler.
type analysisService interface {
	AnalyzeSafe(ctx context.Context, entryID int64) (*domain.Analysis, error)
	PreviewFor(ctx context.Context, entryID int64) (*domain.MindCardPreview, error)
	Detail(ctx context.Context, entryID int64) (*domain.MindCardDetail, error)
}

// mindCardService saves an entry and prepares its card in one step.
type mindCardService interface {
	SaveAndPrepare(ctx context.Context, input journal.EntryInput) (*domain.MindCardPreview, error)
}

// EntryHandler serves diary entry, analysis and statistics endpoints.
type EntryHandler struct {
	journal  journalService
	analysis analysisService
	cards    mindCardService
	log      *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(journal journalService, analysis analysisService, cards mindCardService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{journal: journal, analysis: analysis, cards: cards, log: logger.With("handler", "entries")}
}

type upsertEntryRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Mood    string   `json:"mood"`
	Tags    []string `json:"tags"`
}

// Upsert handles PUT /entries/{key}, where key is the YYYY-MM-DD date. It
// saves the page for that date and answers with its mind-card preview.
func (h *EntryHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	mood, ok := domain.ParseMood(strings.ToUpper(strings.TrimSpace(req.Mood)))
	if !ok {
		writeError(w, r, h.log, domain.NewValidationError("mood", "unknown mood"))
		return
	}

	preview, err := h.cards.SaveAndPrepare(r.Context(), journal.EntryInput{
		DateYmd: chi.URLParam(r, "key"),
		Title:   req.Title,
		Content: req.Content,
		Mood:    mood,
		Tags:    req.Tags,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPreviewResponse(preview))
}

// Get handles GET /entries/{key}. A numeric key is an entry id, anything
// else is looked up as a YYYY-MM-DD date.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var (
		e   *domain.Entry
		err error
	)
	if id, perr := strconv.ParseInt(key, 10, 64); perr == nil {
		e, err = h.journal.Entry(r.Context(), id)
	} else {
		e, err = h.journal.EntryByDate(r.Context(), key)
	}
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(*e))
}

// Delete handles DELETE /entries/{key}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}
	if err := h.journal.DeleteEntry(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /entries?from=&to= and GET /entries?month=.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		entries []domain.Entry
		err     error
	)
	if month := q.Get("month"); month != "" {
		entries, err = h.journal.EntriesByMonth(r.Context(), month)
	} else {
		entries, err = h.journal.EntriesInRange(r.Context(), q.Get("from"), q.Get("to"))
	}
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// Analyze handles POST /entries/{key}/analysis.
func (h *EntryHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}
	a, err := h.analysis.AnalyzeSafe(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalysisResponse(*a))
}

// Preview handles GET /entries/{key}/preview.
func (h *EntryHandler) Preview(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}
	p, err := h.analysis.PreviewFor(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPreviewResponse(p))
}

// Detail handles GET /entries/{key}/detail.
func (h *EntryHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}
	d, err := h.analysis.Detail(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDetailResponse(d))
}

// SetFavorite handles PUT /entries/{key}/favorite.
func (h *EntryHandler) SetFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}
	var req struct {
		Favorite bool `json:"favorite"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.journal.SetFavorite(r.Context(), id, req.Favorite); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Favorites handles GET /favorites.
func (h *EntryHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	cards, err := h.journal.Favorites(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	out := make([]favoriteResponse, len(cards))
	for i, c := range cards {
		out[i] = favoriteResponse{Entry: toEntryResponse(c.Entry), Analysis: toAnalysisResponse(c.Analysis)}
	}
	writeJSON(w, http.StatusOK, out)
}

// MonthStats handles GET /stats/{ym}.
func (h *EntryHandler) MonthStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ym := chi.URLParam(r, "ym")

	moodMap, err := h.journal.MoodMap(ctx, ym)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	moods, err := h.journal.MoodStats(ctx, ym)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	tags, err := h.journal.TagCounts(ctx, ym)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	top, err := h.journal.TopTag(ctx, ym)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := monthStatsResponse{
		Month:   ym,
		MoodMap: make(map[string]string, len(moodMap)),
		Moods:   make([]moodCount, len(moods)),
		Tags:    make([]tagCount, len(tags)),
		TopTag:  top,
	}
	for date, m := range moodMap {
		resp.MoodMap[date] = m.String()
	}
	for i, s := range moods {
		resp.Moods[i] = moodCount{Mood: s.Mood.String(), Count: s.Count}
	}
	for i, t := range tags {
		resp.Tags[i] = tagCount{Tag: t.Tag, Count: t.Count}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *EntryHandler) entryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "key"), 10, 64)
	if err != nil || id <= 0 {
		writeBadRequest(w, "invalid entry id")
		return 0, false
	}
	return id, true
}
