package ui

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"loansight/app"
)

// App is the HTTP surface over the advisor service.
type App struct {
	router  *chi.Mux
	advisor *app.AdvisorService
}

// Config holds HTTP application configuration
type Config struct {
	Port string
}

// NewApp wires the router around an already-trained advisor service.
func NewApp(advisor *app.AdvisorService) *App {
	a := &App{
		router:  chi.NewRouter(),
		advisor: advisor,
	}

	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	a.router.Get("/health", a.handleHealth)
	a.router.Route("/api", func(r chi.Router) {
		r.Post("/predict", a.handlePredict)
		r.Post("/analyze", a.handleAnalyze)
		r.Post("/report", a.handleReport)
		r.Post("/similar", a.handleSimilar)
		r.Post("/generate", a.handleGenerate)
		r.Get("/stats", a.handleStats)
		r.Get("/stats/shape/{field}", a.handleShape)
	})

	return a
}

// Start blocks serving HTTP on the configured port.
func (a *App) Start(cfg Config) error {
	addr := ":" + cfg.Port
	log.Printf("[UI] serving on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the mux for tests.
func (a *App) Router() http.Handler {
	return a.router
}
