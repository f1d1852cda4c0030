package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/fintrack/internal/adapter/http/handler"
	"github.com/iho/fintrack/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	TransactionHandler *handler.TransactionHandler
	BudgetHandler      *handler.BudgetHandler
	BillHandler        *handler.BillHandler
	AnalyticsHandler   *handler.AnalyticsHandler
	CategoryHandler    *handler.CategoryHandler
	LedgerHandler      *handler.LedgerHandler
	HealthHandler      *handler.HealthHandler
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Transactions
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", cfg.TransactionHandler.Create)
			r.Get("/", cfg.TransactionHandler.List)
			r.Get("/recent", cfg.TransactionHandler.Recent)
			r.Get("/by-date", cfg.TransactionHandler.ByDate)
			r.Delete("/{id}", cfg.TransactionHandler.Delete)
		})

		// Budgets and alerts
		r.Route("/budgets", func(r chi.Router) {
			r.Post("/", cfg.BudgetHandler.Set)
			r.Get("/", cfg.BudgetHandler.List)
		})
		r.Get("/alerts", cfg.BudgetHandler.Alerts)

		// Bills
		r.Route("/bills", func(r chi.Router) {
			r.Post("/", cfg.BillHandler.Create)
			r.Get("/", cfg.BillHandler.List)
			r.Get("/next", cfg.BillHandler.Next)
			r.Post("/{id}/pay", cfg.BillHandler.Pay)
			r.Delete("/{id}", cfg.BillHandler.Delete)
		})

		// Analytics
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/top-expenses", cfg.AnalyticsHandler.TopExpenses)
			r.Get("/top-categories", cfg.AnalyticsHandler.TopCategories)
			r.Get("/summary/{month}", cfg.AnalyticsHandler.MonthlySummary)
		})

		// Categories and autocomplete
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", cfg.CategoryHandler.List)
			r.Get("/suggest", cfg.CategoryHandler.Suggest)
		})
		r.Get("/payees/suggest", cfg.CategoryHandler.SuggestPayees)

		// Undo and dashboard
		r.Post("/undo", cfg.LedgerHandler.Undo)
		r.Get("/dashboard", cfg.LedgerHandler.Dashboard)
	})

	return r
}
