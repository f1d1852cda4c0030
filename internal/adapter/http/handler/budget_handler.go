package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/domain"
	"github.com/shopspring/decimal"
)

// BudgetService defines the behavior needed by BudgetHandler.
type BudgetService interface {
	SetBudget(ctx context.Context, category string, limit decimal.Decimal) (*domain.Budget, error)
	Budgets(ctx context.Context) []domain.Budget
	BudgetAlerts(ctx context.Context) []domain.BudgetAlert
}

// BudgetHandler handles budget-related HTTP requests.
type BudgetHandler struct {
	ledgerUC BudgetService
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(ledgerUC BudgetService) *BudgetHandler {
	return &BudgetHandler{ledgerUC: ledgerUC}
}

// Set creates or updates a category budget.
func (h *BudgetHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req dto.SetBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	b, err := h.ledgerUC.SetBudget(r.Context(), req.Category, req.Limit)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to set budget", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BudgetFromDomain(b))
}

// List lists all budgets.
func (h *BudgetHandler) List(w http.ResponseWriter, r *http.Request) {
	budgets := h.ledgerUC.Budgets(r.Context())
	writeJSON(w, http.StatusOK, dto.BudgetsFromDomain(budgets))
}

// Alerts lists active budget alerts.
func (h *BudgetHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	alerts := h.ledgerUC.BudgetAlerts(r.Context())
	writeJSON(w, http.StatusOK, dto.AlertsFromDomain(alerts))
}
