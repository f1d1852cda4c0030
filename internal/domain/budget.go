package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AlertLevel classifies a budget's spend ratio.
type AlertLevel string

const (
	AlertNormal   AlertLevel = "normal"
	AlertCaution  AlertLevel = "caution"
	AlertWarning  AlertLevel = "warning"
	AlertExceeded AlertLevel = "exceeded"
)

// Budget tracks a spending limit for one category. Spent is derived: it
// always equals the sum of non-deleted expense transactions in the category.
type Budget struct {
	Category string
	Limit    decimal.Decimal
	Spent    decimal.Decimal
}

// PercentUsed returns spent/limit as a percentage, 0 when no limit is set.
func (b *Budget) PercentUsed() float64 {
	if b.Limit.IsZero() {
		return 0
	}
	percent, _ := b.Spent.Div(b.Limit).Mul(decimal.NewFromInt(100)).Float64()
	return percent
}

// Level derives the alert level from the current spend ratio.
func (b *Budget) Level() AlertLevel {
	percent := b.PercentUsed()
	switch {
	case percent >= 100:
		return AlertExceeded
	case percent >= 80:
		return AlertWarning
	case percent >= 50:
		return AlertCaution
	default:
		return AlertNormal
	}
}

// BudgetAlert is a point-in-time view of a budget over its thresholds.
// Alerts are recomputed on every read, never stored.
type BudgetAlert struct {
	Category    string
	Level       AlertLevel
	PercentUsed float64
	Spent       decimal.Decimal
	Limit       decimal.Decimal
	Message     string
}

// AlertFromBudget derives the alert for b, or nil while spending is normal.
func AlertFromBudget(b *Budget) *BudgetAlert {
	level := b.Level()
	if level == AlertNormal {
		return nil
	}

	var message string
	switch level {
	case AlertExceeded:
		message = fmt.Sprintf("Budget exceeded! You've spent $%s of $%s",
			b.Spent.Truncate(0).String(), b.Limit.Truncate(0).String())
	case AlertWarning:
		message = "Warning: 80%+ of budget used"
	default:
		message = "Caution: 50%+ of budget used"
	}

	return &BudgetAlert{
		Category:    b.Category,
		Level:       level,
		PercentUsed: b.PercentUsed(),
		Spent:       b.Spent,
		Limit:       b.Limit,
		Message:     message,
	}
}
