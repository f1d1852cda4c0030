package domain

import "github.com/shopspring/decimal"

// Kind classifies a transaction as money in or money out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether k is one of the two recognized kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is a single ledger record. It is immutable after creation;
// indexes reference it by ID and never mutate it.
type Transaction struct {
	ID          string
	Kind        Kind
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        string // YYYY-MM-DD, lexicographically comparable
}
