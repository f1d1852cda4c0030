package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// LoadTransaction replays a historical transaction: appended at the
// chronological back, aggregated, indexed, but never recorded in the
// action log. Loads are not undoable.
func (l *Ledger) LoadTransaction(t domain.Transaction) error {
	if t.ID == "" {
		t.ID = l.ids.Generate()
	}
	input := AddTransactionInput{
		Kind:     t.Kind,
		Amount:   t.Amount,
		Category: t.Category,
		Date:     t.Date,
	}
	if err := input.validate(); err != nil {
		return err
	}
	l.insertTransaction(t, false)
	return nil
}

// LoadBudget replays a stored budget without recording an action. Spent
// is recomputed from the already-loaded expense totals, not trusted from
// the stored value.
func (l *Ledger) LoadBudget(category string, limit decimal.Decimal) error {
	if err := domain.ValidateCategory(category); err != nil {
		return err
	}
	spent, _ := l.expenseTotals.Get(category)
	l.budgets.Set(category, domain.Budget{Category: category, Limit: limit, Spent: spent})
	l.categories.Insert(category)
	return nil
}

// LoadBill replays a stored bill, paid flag included, without recording
// an action.
func (l *Ledger) LoadBill(b domain.Bill) error {
	if b.ID == "" {
		b.ID = l.ids.Generate()
	}
	bill := b
	l.bills.Enqueue(&bill)
	return nil
}

// Snapshot captures the full queryable state for the persistence
// collaborator. Transactions come out oldest-first so replaying them
// through LoadTransaction rebuilds the identical chronological order.
func (l *Ledger) Snapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Transactions: l.chrono.Backward(),
		Budgets:      l.Budgets(),
		Bills:        l.bills.All(),
	}
}

// Restore replays a snapshot into an empty ledger: transactions first so
// budget spent values seed correctly, then budgets, then bills.
func (l *Ledger) Restore(snap *domain.Snapshot) error {
	for _, t := range snap.Transactions {
		if err := l.LoadTransaction(t); err != nil {
			return err
		}
	}
	for _, b := range snap.Budgets {
		if err := l.LoadBudget(b.Category, b.Limit); err != nil {
			return err
		}
	}
	for _, b := range snap.Bills {
		if err := l.LoadBill(b); err != nil {
			return err
		}
	}
	return nil
}
