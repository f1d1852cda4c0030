package handler

import (
	"context"
	"net/http"

	"github.com/iho/fintrack/internal/adapter/http/dto"
)

// CategoryService defines the behavior needed by CategoryHandler.
type CategoryService interface {
	AllCategories(ctx context.Context) []string
	CategorySuggestions(ctx context.Context, prefix string, limit int) []string
	PayeeSuggestions(ctx context.Context, prefix string, limit int) []string
}

// CategoryHandler handles category and autocomplete HTTP requests.
type CategoryHandler struct {
	ledgerUC CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(ledgerUC CategoryService) *CategoryHandler {
	return &CategoryHandler{ledgerUC: ledgerUC}
}

// List lists all known categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories := h.ledgerUC.AllCategories(r.Context())
	writeJSON(w, http.StatusOK, dto.SuggestionsResponse{Suggestions: categories})
}

// Suggest completes a category name prefix.
func (h *CategoryHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	limit := parseIntQuery(r, "limit", 0)

	suggestions := h.ledgerUC.CategorySuggestions(r.Context(), prefix, limit)
	writeJSON(w, http.StatusOK, dto.SuggestionsResponse{Suggestions: suggestions})
}

// SuggestPayees completes a transaction description prefix.
func (h *CategoryHandler) SuggestPayees(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	limit := parseIntQuery(r, "limit", 0)

	suggestions := h.ledgerUC.PayeeSuggestions(r.Context(), prefix, limit)
	writeJSON(w, http.StatusOK, dto.SuggestionsResponse{Suggestions: suggestions})
}
