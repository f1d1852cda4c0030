package handler

import (
	"context"
	"net/http"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/domain"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	Undo(ctx context.Context) bool
	Dashboard(ctx context.Context, recentN int) *domain.DashboardSummary
}

// LedgerHandler handles undo and dashboard HTTP requests.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// Undo reverses the most recent recorded action.
func (h *LedgerHandler) Undo(w http.ResponseWriter, r *http.Request) {
	if !h.ledgerUC.Undo(r.Context()) {
		writeError(w, http.StatusConflict, "nothing to undo", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.UndoResponse{Undone: true})
}

// Dashboard returns an overview of the current ledger state.
func (h *LedgerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	recentN := parseIntQuery(r, "recent", 5)

	summary := h.ledgerUC.Dashboard(r.Context(), recentN)
	writeJSON(w, http.StatusOK, dto.DashboardFromDomain(summary))
}
