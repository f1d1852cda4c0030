// Package usecase is the command boundary over the ledger core. The core
// itself is single-writer with no internal locking; this layer is the
// single mutual-exclusion boundary a served deployment requires, and the
// place where boundary concerns live: snapshot persistence after mutating
// commands, metrics, and logging.
package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/metrics"
	"github.com/iho/fintrack/internal/ledger"
)

// LedgerUseCase exposes the command set over a single ledger instance.
type LedgerUseCase struct {
	mu      sync.Mutex // coarse-grained: no index is independently safe
	ledger  *ledger.Ledger
	store   SnapshotStore // nil disables persistence
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(l *ledger.Ledger, store SnapshotStore, m *metrics.Metrics, logger zerolog.Logger) *LedgerUseCase {
	return &LedgerUseCase{
		ledger:  l,
		store:   store,
		metrics: m,
		logger:  logger,
	}
}

// Bootstrap replays the stored snapshot into the ledger at startup.
// Replayed state goes through the bulk-load path and is not undoable.
func (uc *LedgerUseCase) Bootstrap(ctx context.Context) error {
	if uc.store == nil {
		return nil
	}
	snap, err := uc.store.Load(ctx)
	if err != nil {
		return err
	}
	if snap == nil {
		return nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.ledger.Restore(snap); err != nil {
		return err
	}

	uc.logger.Info().
		Int("transactions", len(snap.Transactions)).
		Int("budgets", len(snap.Budgets)).
		Int("bills", len(snap.Bills)).
		Msg("ledger state restored from snapshot")
	return nil
}

// persist saves the snapshot taken under the lock. Persistence is
// best-effort boundary work: failures are logged and counted, never
// surfaced to the command's caller.
func (uc *LedgerUseCase) persist(ctx context.Context, snap *domain.Snapshot) {
	if uc.store == nil || snap == nil {
		return
	}
	start := time.Now()
	if err := uc.store.Save(ctx, snap); err != nil {
		uc.metrics.SnapshotErrors.Inc()
		uc.logger.Error().Err(err).Msg("failed to persist snapshot")
		return
	}
	uc.metrics.SnapshotSaves.Inc()
	uc.metrics.SnapshotDuration.Observe(time.Since(start).Seconds())
}

// AddTransaction handles the add_transaction command.
func (uc *LedgerUseCase) AddTransaction(ctx context.Context, input ledger.AddTransactionInput) (*domain.Transaction, error) {
	uc.mu.Lock()
	t, err := uc.ledger.AddTransaction(input)
	var snap *domain.Snapshot
	if err == nil {
		snap = uc.ledger.Snapshot()
	}
	uc.mu.Unlock()

	if err != nil {
		return nil, err
	}

	uc.metrics.TransactionsCreated.Inc()
	uc.metrics.TransactionAmount.Observe(t.Amount.InexactFloat64())
	uc.logger.Debug().Str("id", t.ID).Str("category", t.Category).Msg("transaction added")
	uc.persist(ctx, snap)
	return t, nil
}

// DeleteTransaction handles the delete_transaction command. A missing ID
// is an expected outcome, reported as false.
func (uc *LedgerUseCase) DeleteTransaction(ctx context.Context, id string) bool {
	uc.mu.Lock()
	ok := uc.ledger.DeleteTransaction(id)
	var snap *domain.Snapshot
	if ok {
		snap = uc.ledger.Snapshot()
	}
	uc.mu.Unlock()

	if !ok {
		return false
	}
	uc.metrics.TransactionsDeleted.Inc()
	uc.persist(ctx, snap)
	return true
}

// Transactions handles get_transactions, with optional category/kind filters.
func (uc *LedgerUseCase) Transactions(_ context.Context, category string, kind domain.Kind) []domain.Transaction {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	switch {
	case category != "":
		return uc.ledger.TransactionsByCategory(category)
	case kind != "":
		return uc.ledger.TransactionsByKind(kind)
	default:
		return uc.ledger.Transactions()
	}
}

// RecentTransactions handles get_recent_transactions.
func (uc *LedgerUseCase) RecentTransactions(_ context.Context, n int) []domain.Transaction {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.ledger.RecentTransactions(n)
}

// TransactionsByDate handles get_transactions_by_date. With a range it
// issues a date-index range query; otherwise a full ordered traversal.
func (uc *LedgerUseCase) TransactionsByDate(_ context.Context, start, end string, descending bool) ([]domain.Transaction, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if start != "" || end != "" {
		return uc.ledger.TransactionsInRange(start, end)
	}
	if descending {
		return uc.ledger.TransactionsByDateDesc(), nil
	}
	return uc.ledger.TransactionsByDateAsc(), nil
}

// SetBudget handles the set_budget command.
func (uc *LedgerUseCase) SetBudget(ctx context.Context, category string, limit decimal.Decimal) (*domain.Budget, error) {
	uc.mu.Lock()
	budget, err := uc.ledger.SetBudget(category, limit)
	var snap *domain.Snapshot
	if err == nil {
		snap = uc.ledger.Snapshot()
	}
	uc.mu.Unlock()

	if err != nil {
		return nil, err
	}
	uc.metrics.BudgetsSet.Inc()
	uc.persist(ctx, snap)
	return budget, nil
}

// Budgets handles get_budgets.
func (uc *LedgerUseCase) Budgets(_ context.Context) []domain.Budget {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.ledger.Budgets()
}

// BudgetAlerts handles get_alerts.
func (uc *LedgerUseCase) BudgetAlerts(_ context.Context) []domain.BudgetAlert {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.ledger.BudgetAlerts()
}

// AddBill handles the add_bill command.
func (uc *LedgerUseCase) AddBill(ctx context.Context, input ledger.AddBillInput) (*domain.Bill, error) {
	uc.mu.Lock()
	bill, err := uc.ledger.AddBill(input)
	var snap *domain.Snapshot
	if err == nil {
		snap = uc.ledger.Snapshot()
	}
	uc.mu.Unlock()

	if err != nil {
		return nil, err
	}
	uc.metrics.BillsCreated.Inc()
	uc.persist(ctx, snap)
	return bill, nil
}

// Bills handles get_bills. status filters to "unpaid" or "overdue";
// overdue compares against ref (today when empty).
func (uc *LedgerUseCase) Bills(_ context.Context, status, ref string) []domain.Bill {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	switch status {
	case "unpaid":
		return uc.ledger.UnpaidBills()
	case "overdue":
		if ref == "" {
			ref = time.Now().UTC().Format("2006-01-02")
		}
		return uc.ledger.OverdueBills(ref)
	default:
		return uc.ledger.Bills()
	}
}

// NextBill peeks at the head of the bill queue.
func (uc *LedgerUseCase) NextBill(_ context.Context) (domain.Bill, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.ledger.NextBill()
}

// PayBill handles the pay_bill command.
func (uc *LedgerUseCase) PayBill(ctx context.Context, id string) bool {
	uc.mu.Lock()
	ok := uc.ledger.PayBill(id)
	var snap *domain.Snapshot
	if ok {
		snap = uc.ledger.Snapshot()
	}
	uc.mu.Unlock()

	if !ok {
		return false
	}
	uc.metrics.BillsPaid.Inc()
	uc.persist(ctx, snap)
	return true
}

// DeleteBill handles the delete_bill command.
func (uc *LedgerUseCase) DeleteBill(ctx context.Context, id string) bool {
	uc.mu.Lock()
	ok := uc.ledger.DeleteBill(id)
	var snap *domain.Snapshot
	if ok {
		snap = uc.ledger.Snapshot()
	}
	uc.mu.Unlock()

	if !ok {
		return false
	}
	uc.metrics.BillsDeleted.Inc()
	uc.persist(ctx, snap)
	return true
}

// TopExpenses handles get_top_expenses.
func (uc *LedgerUseCase) TopExpenses(_ context.Context, k int) []domain.Transaction {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.ledger.TopExpenses(k)
}

// TopCategories handles get_top_categories.
func (uc *LedgerUseCase) TopCategories(_ context.Context, k int) []domain.CategoryTotal {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.ledger.TopCategories(k)
}

// MonthlySummary handles get_monthly_summary.
func (uc *LedgerUseCase) MonthlySummary(_ context.Context, month string) (*domain.MonthlySummary, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.ledger.MonthlySummary(month)
}

// CategorySuggestions handles get_category_suggestions.
func (uc *LedgerUseCase) CategorySuggestions(_ context.Context, prefix string, limit int) []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.ledger.CategorySuggestions(prefix, limit)
}

// PayeeSuggestions completes transaction descriptions.
func (uc *LedgerUseCase) PayeeSuggestions(_ context.Context, prefix string, limit int) []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.ledger.PayeeSuggestions(prefix, limit)
}

// AllCategories handles get_all_categories.
func (uc *LedgerUseCase) AllCategories(_ context.Context) []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.ledger.AllCategories()
}

// Undo handles the undo command. An empty log is an expected outcome,
// reported as false. A successful undo persists like any other mutation
// but records no new action.
func (uc *LedgerUseCase) Undo(ctx context.Context) bool {
	uc.mu.Lock()
	ok := uc.ledger.Undo()
	var snap *domain.Snapshot
	if ok {
		snap = uc.ledger.Snapshot()
	}
	uc.mu.Unlock()

	if !ok {
		uc.metrics.UndoEmpty.Inc()
		return false
	}
	uc.metrics.UndoApplied.Inc()
	uc.persist(ctx, snap)
	return true
}

// Dashboard handles get_dashboard.
func (uc *LedgerUseCase) Dashboard(_ context.Context, recentN int) *domain.DashboardSummary {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.ledger.Dashboard(recentN)
}
