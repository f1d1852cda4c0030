package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/ledger"
)

type transactionServiceStub struct {
	addFn    func(ctx context.Context, input ledger.AddTransactionInput) (*domain.Transaction, error)
	deleteFn func(ctx context.Context, id string) bool
	listFn   func(ctx context.Context, category string, kind domain.Kind) []domain.Transaction
	recentFn func(ctx context.Context, n int) []domain.Transaction
	byDateFn func(ctx context.Context, start, end string, descending bool) ([]domain.Transaction, error)
}

func (s *transactionServiceStub) AddTransaction(ctx context.Context, input ledger.AddTransactionInput) (*domain.Transaction, error) {
	return s.addFn(ctx, input)
}

func (s *transactionServiceStub) DeleteTransaction(ctx context.Context, id string) bool {
	return s.deleteFn(ctx, id)
}

func (s *transactionServiceStub) Transactions(ctx context.Context, category string, kind domain.Kind) []domain.Transaction {
	return s.listFn(ctx, category, kind)
}

func (s *transactionServiceStub) RecentTransactions(ctx context.Context, n int) []domain.Transaction {
	return s.recentFn(ctx, n)
}

func (s *transactionServiceStub) TransactionsByDate(ctx context.Context, start, end string, descending bool) ([]domain.Transaction, error) {
	return s.byDateFn(ctx, start, end, descending)
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}

func TestTransactionHandler_Create_Success(t *testing.T) {
	created := &domain.Transaction{
		ID:       "tx-1",
		Kind:     domain.KindExpense,
		Amount:   decimal.NewFromInt(42),
		Category: "Food",
		Date:     "2025-07-01",
	}

	var captured ledger.AddTransactionInput
	handler := NewTransactionHandler(&transactionServiceStub{
		addFn: func(ctx context.Context, input ledger.AddTransactionInput) (*domain.Transaction, error) {
			captured = input
			return created, nil
		},
	})

	body, _ := json.Marshal(dto.AddTransactionRequest{
		Kind:     "expense",
		Amount:   decimal.NewFromInt(42),
		Category: "Food",
		Date:     "2025-07-01",
	})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Category != "Food" || captured.Kind != domain.KindExpense {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "tx-1" {
		t.Fatalf("expected transaction ID tx-1, got %s", resp.ID)
	}
}

func TestTransactionHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		addFn: func(ctx context.Context, input ledger.AddTransactionInput) (*domain.Transaction, error) {
			t.Fatal("AddTransaction should not be called for invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create_ValidationError(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		addFn: func(ctx context.Context, input ledger.AddTransactionInput) (*domain.Transaction, error) {
			return nil, domain.ErrInvalidAmount
		},
	})

	body, _ := json.Marshal(dto.AddTransactionRequest{Kind: "expense", Category: "Food", Date: "2025-07-01"})
	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid input, got %d", rec.Code)
	}
}

func TestTransactionHandler_Delete(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		deleteFn: func(ctx context.Context, id string) bool { return id == "tx-1" },
	})

	req := httptest.NewRequest(http.MethodDelete, "/transactions/tx-1", nil)
	req = setChiURLParam(req, "id", "tx-1")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/transactions/missing", nil)
	req = setChiURLParam(req, "id", "missing")
	rec = httptest.NewRecorder()

	handler.Delete(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown ID, got %d", rec.Code)
	}
}

func TestTransactionHandler_List(t *testing.T) {
	var gotCategory string
	var gotKind domain.Kind
	handler := NewTransactionHandler(&transactionServiceStub{
		listFn: func(ctx context.Context, category string, kind domain.Kind) []domain.Transaction {
			gotCategory, gotKind = category, kind
			return []domain.Transaction{{ID: "tx-1"}}
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions?category=Food", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotCategory != "Food" || gotKind != "" {
		t.Fatalf("expected category filter passed through, got %q %q", gotCategory, gotKind)
	}

	var resp dto.ListTransactionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("expected total 1, got %d", resp.Total)
	}
}

func TestTransactionHandler_List_InvalidKind(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		listFn: func(ctx context.Context, category string, kind domain.Kind) []domain.Transaction {
			t.Fatal("service should not be called for invalid kind")
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions?kind=transfer", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Recent(t *testing.T) {
	var gotN int
	handler := NewTransactionHandler(&transactionServiceStub{
		recentFn: func(ctx context.Context, n int) []domain.Transaction {
			gotN = n
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions/recent?limit=3", nil)
	rec := httptest.NewRecorder()

	handler.Recent(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotN != 3 {
		t.Fatalf("expected limit 3 passed through, got %d", gotN)
	}
}

func TestTransactionHandler_ByDate(t *testing.T) {
	var gotStart, gotEnd string
	var gotDesc bool
	handler := NewTransactionHandler(&transactionServiceStub{
		byDateFn: func(ctx context.Context, start, end string, descending bool) ([]domain.Transaction, error) {
			gotStart, gotEnd, gotDesc = start, end, descending
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions/by-date?start=2025-07-01&end=2025-07-31&order=desc", nil)
	rec := httptest.NewRecorder()

	handler.ByDate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotStart != "2025-07-01" || gotEnd != "2025-07-31" || !gotDesc {
		t.Fatalf("query not passed through: %q %q %v", gotStart, gotEnd, gotDesc)
	}
}

func TestTransactionHandler_ByDate_InvalidRange(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		byDateFn: func(ctx context.Context, start, end string, descending bool) ([]domain.Transaction, error) {
			return nil, domain.ErrInvalidDate
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions/by-date?start=bad", nil)
	rec := httptest.NewRecorder()

	handler.ByDate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
