package routes

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jobtrack/jobtrack-go/docs"
	"github.com/jobtrack/jobtrack-go/internal/api/analytics"
	"github.com/jobtrack/jobtrack-go/internal/api/auth"
	"github.com/jobtrack/jobtrack-go/internal/api/health"
	"github.com/jobtrack/jobtrack-go/internal/api/jobs"
	"github.com/jobtrack/jobtrack-go/internal/config"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRoutes(db *sql.DB, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // max time in seconds for OPTIONS preflight response cache
	})

	r.Use(corsMiddleware.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(2 * time.Minute))

	// init services & handlers
	authHandler := auth.NewAuthHandler(cfg.JWTSecret, cfg.TokenTTL, db)
	jobHandler := jobs.NewJobHandler(db)
	analyticsHandler := analytics.NewAnalyticsHandler(db)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Job Tracker API",
			"docs":    "/docs",
			"version": docs.SwaggerInfo.Version,
		})
	})

	r.Get("/health", health.HealthHandler)

	// public auth routes
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// protected routes
	r.Group(func(r chi.Router) {
		r.Use(authHandler.AuthMiddleware)

		r.Get("/auth/me", authHandler.Me)

		r.Get("/jobs", jobHandler.ListJobs)
		r.Post("/jobs", jobHandler.CreateJob)
		r.Get("/jobs/{id}", jobHandler.GetJob)
		r.Put("/jobs/{id}", jobHandler.UpdateJob)
		r.Delete("/jobs/{id}", jobHandler.DeleteJob)

		r.Get("/analytics/summary", analyticsHandler.GetSummary)
	})

	// init swagger
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.WrapHandler)

	return r
}
