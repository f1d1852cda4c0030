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

// BillService defines the behavior needed by BillHandler.
type BillService interface {
	AddBill(ctx context.Context, input ledger.AddBillInput) (*domain.Bill, error)
	Bills(ctx context.Context, status, ref string) []domain.Bill
	NextBill(ctx context.Context) (domain.Bill, bool)
	PayBill(ctx context.Context, id string) bool
	DeleteBill(ctx context.Context, id string) bool
}

// BillHandler handles bill-related HTTP requests.
type BillHandler struct {
	ledgerUC BillService
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(ledgerUC BillService) *BillHandler {
	return &BillHandler{ledgerUC: ledgerUC}
}

// Create schedules a new bill.
func (h *BillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AddBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	b, err := h.ledgerUC.AddBill(r.Context(), req.ToInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add bill", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BillFromDomain(b))
}

// List lists bills, optionally filtered by status (unpaid, overdue).
func (h *BillHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	status := query.Get("status")
	if status != "" && status != "unpaid" && status != "overdue" {
		writeError(w, http.StatusBadRequest, "invalid status filter", status)
		return
	}

	bills := h.ledgerUC.Bills(r.Context(), status, query.Get("as_of"))
	writeJSON(w, http.StatusOK, dto.BillsFromDomain(bills))
}

// Next returns the bill that has waited longest unpaid.
func (h *BillHandler) Next(w http.ResponseWriter, r *http.Request) {
	b, ok := h.ledgerUC.NextBill(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, "no pending bills", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.BillFromDomain(&b))
}

// Pay marks a bill as paid.
func (h *BillHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing bill ID", "")
		return
	}

	if !h.ledgerUC.PayBill(r.Context(), id) {
		writeError(w, http.StatusNotFound, "bill not found", id)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"paid": true})
}

// Delete removes a bill by ID.
func (h *BillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing bill ID", "")
		return
	}

	if !h.ledgerUC.DeleteBill(r.Context(), id) {
		writeError(w, http.StatusNotFound, "bill not found", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
