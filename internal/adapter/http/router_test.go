package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/adapter/http/handler"
	"github.com/iho/fintrack/internal/infrastructure/metrics"
	"github.com/iho/fintrack/internal/ledger"
	"github.com/iho/fintrack/internal/usecase"
)

// promauto registers into the default registry; one shared instance keeps
// the test binary from double-registering collectors.
var testMetrics = metrics.New()

func newTestRouter() http.Handler {
	uc := usecase.NewLedgerUseCase(ledger.New(ledger.Config{}), nil, testMetrics, zerolog.Nop())

	return NewRouter(RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(uc),
		BudgetHandler:      handler.NewBudgetHandler(uc),
		BillHandler:        handler.NewBillHandler(uc),
		AnalyticsHandler:   handler.NewAnalyticsHandler(uc),
		CategoryHandler:    handler.NewCategoryHandler(uc),
		LedgerHandler:      handler.NewLedgerHandler(uc),
		HealthHandler:      handler.NewHealthHandler(nil),
		Logger:             zerolog.Nop(),
	})
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_ReadinessWithoutRedis(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /ready to return 200 without redis, got %d", rec.Code)
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_TransactionLifecycle(t *testing.T) {
	router := newTestRouter()

	body, _ := json.Marshal(dto.AddTransactionRequest{
		Kind:     "expense",
		Amount:   decimal.NewFromInt(42),
		Category: "Food",
		Date:     "2025-07-01",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// The new transaction is visible through the list endpoint.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	router.ServeHTTP(rec, req)

	var listed dto.ListTransactionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if listed.Total != 1 || listed.Transactions[0].ID != created.ID {
		t.Fatalf("expected the created transaction listed, got %+v", listed)
	}

	// Delete through the path parameter route.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/transactions/"+created.ID, nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestNewRouter_UndoEmptyLogConflicts(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/undo", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for empty undo log, got %d", rec.Code)
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
