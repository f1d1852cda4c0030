// Package ledger implements the multi-index transaction store: one
// authoritative transaction set kept queryable through several synchronized
// access structures, with a bounded undo log able to reverse any mutation
// across all of them consistently.
package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/index"
)

// defaultCategories seeds the autocomplete index on construction.
var defaultCategories = []string{
	"Food", "Transport", "Shopping", "Entertainment", "Bills",
	"Healthcare", "Education", "Salary", "Freelance", "Investment",
	"Rent", "Utilities", "Groceries", "Dining", "Travel",
}

// Config tunes a Ledger. The zero value is usable.
type Config struct {
	// UndoCapacity bounds the action log; <= 0 applies the default.
	UndoCapacity int
	// IDGenerator overrides the default ULID generator, mainly for tests.
	IDGenerator IDGenerator
}

// Ledger is the facade over every index. It is single-writer: operations
// run to completion before the next begins, and no index is exposed for
// external mutation. A served deployment must wrap the whole facade behind
// one mutual-exclusion boundary.
type Ledger struct {
	ids           IDGenerator
	arena         *index.Arena
	chrono        *index.ChronoList
	dates         *index.DateTree
	budgets       *index.CategoryMap[domain.Budget]
	expenseTotals *index.CategoryMap[decimal.Decimal]
	bills         *index.BillQueue
	actions       *index.ActionLog
	categories    *index.Trie
	payees        *index.Trie
}

// New creates an empty ledger with the default category suggestions seeded.
func New(cfg Config) *Ledger {
	ids := cfg.IDGenerator
	if ids == nil {
		ids = NewULIDGenerator()
	}

	arena := index.NewArena()
	l := &Ledger{
		ids:           ids,
		arena:         arena,
		chrono:        index.NewChronoList(arena),
		dates:         index.NewDateTree(arena),
		budgets:       index.NewCategoryMap[domain.Budget](),
		expenseTotals: index.NewCategoryMap[decimal.Decimal](),
		bills:         index.NewBillQueue(),
		actions:       index.NewActionLog(cfg.UndoCapacity),
		categories:    index.NewTrie(),
		payees:        index.NewTrie(),
	}

	for _, category := range defaultCategories {
		l.categories.Insert(category)
	}

	return l
}

// AddTransactionInput carries the fields of a new transaction.
type AddTransactionInput struct {
	Kind        domain.Kind
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        string
}

func (in *AddTransactionInput) validate() error {
	if err := domain.ValidateKind(in.Kind); err != nil {
		return err
	}
	if err := domain.ValidateAmount(in.Amount); err != nil {
		return err
	}
	if err := domain.ValidateCategory(in.Category); err != nil {
		return err
	}
	return domain.ValidateDate(in.Date)
}

// AddTransaction validates the input, then inserts the new transaction into
// every index and records a reversible action. Validation happens before
// any index is touched, so a rejected input is never partially applied.
func (l *Ledger) AddTransaction(input AddTransactionInput) (*domain.Transaction, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	t := domain.Transaction{
		ID:          l.ids.Generate(),
		Kind:        input.Kind,
		Amount:      input.Amount,
		Category:    strings.TrimSpace(input.Category),
		Description: input.Description,
		Date:        input.Date,
	}

	l.insertTransaction(t, true)

	snapshot := t
	l.actions.Push(domain.Action{
		Kind:        domain.ActionAddTransaction,
		Transaction: &snapshot,
	})

	return &t, nil
}

// DeleteTransaction removes the transaction from every index and reverses
// its aggregation. Absence is an expected outcome: unknown IDs return
// false with no action recorded.
func (l *Ledger) DeleteTransaction(id string) bool {
	t, ok := l.removeTransaction(id)
	if !ok {
		return false
	}
	l.actions.Push(domain.Action{
		Kind:        domain.ActionDeleteTransaction,
		Transaction: &t,
	})
	return true
}

// insertTransaction applies t to every index. front selects the
// chronological end: new transactions go to the front, historical
// re-inserts and bulk loads to the back.
func (l *Ledger) insertTransaction(t domain.Transaction, front bool) {
	h := l.arena.Alloc(t)
	if front {
		l.chrono.PushFront(h)
	} else {
		l.chrono.PushBack(h)
	}
	l.dates.Insert(t.Date, h)
	l.trackExpense(&t, true)
	l.categories.Insert(t.Category)
	if t.Description != "" {
		l.payees.Insert(t.Description)
	}
}

// removeTransaction takes the transaction out of every index without
// touching the action log; callers decide whether the removal is undoable.
func (l *Ledger) removeTransaction(id string) (domain.Transaction, bool) {
	h, ok := l.chrono.Find(id)
	if !ok {
		return domain.Transaction{}, false
	}
	record, _ := l.arena.Get(h)
	t := *record

	l.chrono.Remove(h)
	l.dates.Remove(t.Date, h)
	l.arena.Free(h)
	l.trackExpense(&t, false)

	return t, true
}

// trackExpense keeps the raw per-category expense total and the matching
// budget's spent field numerically equal. Totals floor at zero so spent
// never goes negative, even against inconsistent data.
func (l *Ledger) trackExpense(t *domain.Transaction, add bool) {
	if t.Kind != domain.KindExpense {
		return
	}

	current, _ := l.expenseTotals.Get(t.Category)
	var next decimal.Decimal
	if add {
		next = current.Add(t.Amount)
	} else {
		next = current.Sub(t.Amount)
		if next.IsNegative() {
			next = decimal.Zero
		}
	}
	l.expenseTotals.Set(t.Category, next)

	if budget, ok := l.budgets.Get(t.Category); ok {
		budget.Spent = next
		l.budgets.Set(t.Category, budget)
	}
}

// Transactions returns every transaction, newest-first.
func (l *Ledger) Transactions() []domain.Transaction {
	return l.chrono.Forward()
}

// TransactionsByCategory filters by category, newest-first.
func (l *Ledger) TransactionsByCategory(category string) []domain.Transaction {
	return l.chrono.FilterByCategory(category)
}

// TransactionsByKind filters by kind, newest-first.
func (l *Ledger) TransactionsByKind(kind domain.Kind) []domain.Transaction {
	return l.chrono.FilterByKind(kind)
}

// RecentTransactions returns up to n of the most recently added.
func (l *Ledger) RecentTransactions(n int) []domain.Transaction {
	if n <= 0 {
		n = 10
	}
	return l.chrono.FirstN(n)
}

// TransactionsByDateAsc returns all transactions in ascending date order.
func (l *Ledger) TransactionsByDateAsc() []domain.Transaction {
	return l.dates.InOrder()
}

// TransactionsByDateDesc returns all transactions in descending date order.
func (l *Ledger) TransactionsByDateDesc() []domain.Transaction {
	return l.dates.ReverseInOrder()
}

// TransactionsInRange returns transactions with start <= date <= end.
func (l *Ledger) TransactionsInRange(start, end string) ([]domain.Transaction, error) {
	if err := domain.ValidateDate(start); err != nil {
		return nil, err
	}
	if err := domain.ValidateDate(end); err != nil {
		return nil, err
	}
	return l.dates.Range(start, end), nil
}

// TransactionCount returns the number of live transactions.
func (l *Ledger) TransactionCount() int {
	return l.chrono.Len()
}
