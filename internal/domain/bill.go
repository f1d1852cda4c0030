package domain

import "github.com/shopspring/decimal"

// Bill is a scheduled payment. Bills keep their arrival order; the paid
// flag is the only field mutated in place.
type Bill struct {
	ID       string
	Name     string
	Amount   decimal.Decimal
	DueDate  string // YYYY-MM-DD
	Category string
	Paid     bool
}

// OverdueAt reports whether the bill is unpaid and due strictly before ref.
// Overdue is always computed against a caller-supplied date, never stored.
func (b *Bill) OverdueAt(ref string) bool {
	return !b.Paid && b.DueDate < ref
}
