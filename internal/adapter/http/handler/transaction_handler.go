package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/ledger"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	AddTransaction(ctx context.Context, input ledger.AddTransactionInput) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) bool
	Transactions(ctx context.Context, category string, kind domain.Kind) []domain.Transaction
	RecentTransactions(ctx context.Context, n int) []domain.Transaction
	TransactionsByDate(ctx context.Context, start, end string, descending bool) ([]domain.Transaction, error)
}

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	ledgerUC TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerUC TransactionService) *TransactionHandler {
	return &TransactionHandler{ledgerUC: ledgerUC}
}

// Create adds a new transaction.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AddTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	t, err := h.ledgerUC.AddTransaction(r.Context(), req.ToInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(t))
}

// Delete removes a transaction by ID.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	if !h.ledgerUC.DeleteTransaction(r.Context(), id) {
		writeError(w, http.StatusNotFound, "transaction not found", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists transactions, optionally filtered by category or kind.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	kind := domain.Kind(r.URL.Query().Get("kind"))
	if kind != "" && !kind.Valid() {
		writeError(w, http.StatusBadRequest, "invalid kind filter", string(kind))
		return
	}

	transactions := h.ledgerUC.Transactions(r.Context(), category, kind)
	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(transactions),
		Total:        len(transactions),
	})
}

// Recent lists the most recently added transactions.
func (h *TransactionHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 10)

	transactions := h.ledgerUC.RecentTransactions(r.Context(), limit)
	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(transactions),
		Total:        len(transactions),
	})
}

// ByDate lists transactions in date order, or a date range when start/end
// are supplied.
func (h *TransactionHandler) ByDate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	start := query.Get("start")
	end := query.Get("end")
	descending := query.Get("order") == "desc"

	transactions, err := h.ledgerUC.TransactionsByDate(r.Context(), start, end, descending)
	if err != nil {
		writeError(w, mapDomainError(err), "invalid date range", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(transactions),
		Total:        len(transactions),
	})
}
