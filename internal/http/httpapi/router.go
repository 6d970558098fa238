package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"server/internal/http/handlers"
	"server/internal/infra"
	"server/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.Get("/", app.Index)
	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/contributions", func(r chi.Router) {
		r.Get("/", app.ContributionsList)
		r.Get("/summary", app.ContributionsSummary)
		r.With(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute)).Post("/", app.ContributionsCreate)
	})

	return r
}
