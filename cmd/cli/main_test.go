package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func withTestServer(t *testing.T, h http.HandlerFunc) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	origURL, origTimeout := baseURL, timeout
	baseURL = srv.URL
	timeout = 5 * time.Second
	t.Cleanup(func() {
		baseURL = origURL
		timeout = origTimeout
	})
}

func TestAddTransactionPrintsID(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/transactions" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"tx-1","kind":"expense"}`))
	})

	out := captureOutput(t, func() {
		addTransaction("expense", "42.50", "Food", "2025-07-01", "lunch")
	})

	if !strings.Contains(out, "Added transaction tx-1") {
		t.Fatalf("expected the transaction id in output, got %q", out)
	}
}

func TestListTransactionsPrintsRows(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"transactions":[{"id":"tx-1","kind":"expense","amount":"42.5","category":"Food","date":"2025-07-01"}],"total":1}`))
	})

	out := captureOutput(t, func() {
		listTransactions()
	})

	if !strings.Contains(out, "tx-1") || !strings.Contains(out, "Total: 1") {
		t.Fatalf("unexpected list output: %q", out)
	}
}

func TestUndoNothingToUndo(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"nothing to undo"}`))
	})

	out := captureOutput(t, func() {
		undo()
	})

	if strings.TrimSpace(out) != "Nothing to undo" {
		t.Fatalf("expected 'Nothing to undo', got %q", out)
	}
}

func TestShowDashboard(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"balance":"100","total_income":"150","total_expenses":"50","transaction_count":2,"budget_count":1,"bill_count":0}`))
	})

	out := captureOutput(t, func() {
		showDashboard()
	})

	if !strings.Contains(out, "Balance: 100") {
		t.Fatalf("expected balance in output, got %q", out)
	}
}
