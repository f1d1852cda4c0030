package ledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

func TestSnapshotRestoreRoundtrip(t *testing.T) {
	l := newTestLedger()
	addExpense(t, l, 100, "Food", "2025-07-01")
	addIncome(t, l, 2000, "Salary", "2025-07-02")
	addExpense(t, l, 50, "Transport", "2025-07-03")
	l.SetBudget("Food", decimal.NewFromInt(300))
	bill := addTestBill(t, l, "Rent", "2025-07-10")
	l.PayBill(bill.ID)

	snap := l.Snapshot()

	restored := New(Config{IDGenerator: &seqIDGenerator{prefix: "other"}})
	if err := restored.Restore(snap); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	// Chronological order is reproduced exactly.
	want := l.Transactions()
	got := restored.Transactions()
	if len(got) != len(want) {
		t.Fatalf("expected %d transactions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Fatalf("order diverged at %d: %s vs %s", i, got[i].ID, want[i].ID)
		}
	}

	// Budget spent is recomputed from the replayed transactions.
	budget, ok := restored.Budget("Food")
	if !ok {
		t.Fatal("budget missing after restore")
	}
	if !budget.Spent.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected spent 100, got %s", budget.Spent)
	}

	// Bills keep their paid flag and queue order.
	bills := restored.Bills()
	if len(bills) != 1 || !bills[0].Paid || bills[0].ID != bill.ID {
		t.Fatalf("unexpected bills after restore: %+v", bills)
	}
}

func TestSnapshot_TransactionsOldestFirst(t *testing.T) {
	l := newTestLedger()
	first := addExpense(t, l, 1, "Food", "2025-07-01")
	second := addExpense(t, l, 2, "Food", "2025-07-02")

	snap := l.Snapshot()
	if snap.Transactions[0].ID != first.ID || snap.Transactions[1].ID != second.ID {
		t.Fatalf("expected oldest-first, got %+v", snap.Transactions)
	}
}

func TestLoadTransaction_NotUndoable(t *testing.T) {
	l := newTestLedger()
	err := l.LoadTransaction(domain.Transaction{
		ID:       "hist-1",
		Kind:     domain.KindExpense,
		Amount:   decimal.NewFromInt(10),
		Category: "Food",
		Date:     "2025-01-01",
	})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if l.TransactionCount() != 1 {
		t.Fatalf("expected 1 transaction, got %d", l.TransactionCount())
	}
	if l.CanUndo() {
		t.Fatal("loads must not record actions")
	}
}

func TestLoadTransaction_GeneratesMissingID(t *testing.T) {
	l := newTestLedger()
	if err := l.LoadTransaction(domain.Transaction{
		Kind:     domain.KindExpense,
		Amount:   decimal.NewFromInt(10),
		Category: "Food",
		Date:     "2025-01-01",
	}); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got := l.Transactions(); got[0].ID == "" {
		t.Fatal("expected a generated ID")
	}
}

func TestLoadTransaction_Validates(t *testing.T) {
	l := newTestLedger()
	err := l.LoadTransaction(domain.Transaction{
		ID:       "bad",
		Kind:     domain.KindExpense,
		Amount:   decimal.NewFromInt(10),
		Category: "Food",
		Date:     "not-a-date",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if l.TransactionCount() != 0 {
		t.Fatal("invalid load must not index anything")
	}
}

func TestLoadBudget_RecomputesSpent(t *testing.T) {
	l := newTestLedger()
	addExpense(t, l, 75, "Food", "2025-07-01")

	// The stored spent value is ignored; only the limit is trusted.
	if err := l.LoadBudget("Food", decimal.NewFromInt(200)); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	budget, _ := l.Budget("Food")
	if !budget.Spent.Equal(decimal.NewFromInt(75)) {
		t.Fatalf("expected recomputed spent 75, got %s", budget.Spent)
	}
}
