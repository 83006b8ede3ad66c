// Package rest exposes the diary over a local JSON API.
package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/mooddiary-backend/internal/adapter/metrics"
	"github.com/heartmarshall/mooddiary-backend/internal/config"
	"github.com/heartmarshall/mooddiary-backend/internal/transport/middleware"
)

// RouterDeps holds the handlers and infrastructure mounted by NewRouter.
type RouterDeps struct {
	Logger  *slog.Logger
	CORS    config.CORSConfig
	Session sessionService
	Metrics *metrics.Metrics
	Limiter *middleware.RateLimiter

	// AnalysisPerMinute caps provider-backed requests per owner. Zero disables the cap.
	AnalysisPerMinute int

	Accounts *AccountHandler
	Entries  *EntryHandler
	Badges   *BadgeHandler
	Digests  *DigestHandler
	Health   *HealthHandler
}

// NewRouter builds the HTTP handler of the local API.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
		middleware.When(d.Metrics != nil, d.Metrics.InstrumentHandler),
	).Then)

	r.Get("/health", d.Health.Health)
	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())

	r.Post("/session/anonymous", d.Accounts.StartAnonymous)
	r.Get("/session", d.Accounts.Current)
	r.Get("/auth/email-available", d.Accounts.EmailAvailable)
	r.Post("/auth/register", d.Accounts.Register)
	r.Post("/auth/login", d.Accounts.Login)
	r.Post("/auth/logout", d.Accounts.Logout)
	r.Delete("/account", d.Accounts.Withdraw)
	r.Get("/profile", d.Accounts.Profile)
	r.Patch("/profile", d.Accounts.UpdateProfile)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Owner(d.Session, d.Logger))

		r.Get("/entries", d.Entries.List)
		r.Put("/entries/{key}", d.Entries.Upsert)
		r.Get("/entries/{key}", d.Entries.Get)
		r.Delete("/entries/{key}", d.Entries.Delete)
		r.Get("/entries/{key}/preview", d.Entries.Preview)
		r.Get("/entries/{key}/detail", d.Entries.Detail)
		r.Put("/entries/{key}/favorite", d.Entries.SetFavorite)
		r.Get("/favorites", d.Entries.Favorites)
		r.Get("/stats/{ym}", d.Entries.MonthStats)

		r.Get("/badges", d.Badges.List)
		r.Put("/badges/selected", d.Badges.Select)

		r.Get("/digests", d.Digests.Year)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Chain(
				middleware.When(d.Limiter != nil, d.Limiter.Limit(d.AnalysisPerMinute)),
			).Then)

			r.Post("/entries/{key}/analysis", d.Entries.Analyze)
			r.Post("/digests/{ym}", d.Digests.Ensure)
		})
	})

	return r
}
