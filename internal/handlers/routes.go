package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

// RouterOptions configures the outer HTTP surface.
type RouterOptions struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// Router mounts every endpoint. Write endpoints go through AdminTokenMiddleware.
func (h *Handler) Router(opts RouterOptions) http.Handler {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(opts.RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Admin-Token"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}))

	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/openapi.json", h.OpenAPI)

		// Teams
		r.Get("/teams", h.ListTeams)
		r.Get("/teams/{teamId}", h.GetTeam)

		// Matches
		r.Get("/matches", h.ListMatches)
		r.Get("/matches/today", h.TodayMatches)
		r.Get("/matches/{matchId}", h.GetMatch)

		// Analysis
		r.Get("/analysis/match/{matchId}", h.AnalyzeMatch)
		r.Get("/analysis/match/{matchId}/history", h.GetPredictionHistory)
		r.Get("/analysis/trends", h.GetTrends)
		r.Get("/analysis/team/{teamId}/form", h.GetTeamForm)

		r.Group(func(r chi.Router) {
			r.Use(h.AdminTokenMiddleware)

			r.Post("/teams", h.CreateTeam)
			r.Put("/teams/{teamId}", h.UpdateTeam)
			r.Delete("/teams/{teamId}", h.DeleteTeam)
			r.Post("/teams/{teamId}/recompute", h.RecomputeTeam)

			r.Post("/matches", h.CreateMatch)
			r.Put("/matches/{matchId}", h.UpdateMatch)

			r.Post("/analysis/match/{matchId}/annotate", h.AnnotateMatch)

			r.Post("/system/install", h.InstallDatabase)
			r.Post("/system/recompute", h.RecomputeAll)
		})
	})

	return r
}

// OpenAPI serves the registered swagger document
func (h *Handler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.errorResponse(w, http.StatusNotFound, "API documentation not registered")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}
