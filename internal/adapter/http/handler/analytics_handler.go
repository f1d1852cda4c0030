package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/domain"
)

// AnalyticsService defines the behavior needed by AnalyticsHandler.
type AnalyticsService interface {
	TopExpenses(ctx context.Context, k int) []domain.Transaction
	TopCategories(ctx context.Context, k int) []domain.CategoryTotal
	MonthlySummary(ctx context.Context, month string) (*domain.MonthlySummary, error)
}

// AnalyticsHandler handles spending-analytics HTTP requests.
type AnalyticsHandler struct {
	ledgerUC AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(ledgerUC AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{ledgerUC: ledgerUC}
}

// TopExpenses returns the k largest expense transactions.
func (h *AnalyticsHandler) TopExpenses(w http.ResponseWriter, r *http.Request) {
	k := parseIntQuery(r, "k", 5)

	transactions := h.ledgerUC.TopExpenses(r.Context(), k)
	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(transactions),
		Total:        len(transactions),
	})
}

// TopCategories returns the k categories with highest expense totals.
func (h *AnalyticsHandler) TopCategories(w http.ResponseWriter, r *http.Request) {
	k := parseIntQuery(r, "k", 5)

	totals := h.ledgerUC.TopCategories(r.Context(), k)
	writeJSON(w, http.StatusOK, dto.CategoryTotalsFromDomain(totals))
}

// MonthlySummary returns income, expenses and a category breakdown for a
// YYYY-MM month.
func (h *AnalyticsHandler) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")

	summary, err := h.ledgerUC.MonthlySummary(r.Context(), month)
	if err != nil {
		writeError(w, mapDomainError(err), "invalid month", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MonthlySummaryFromDomain(summary))
}
