package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// SetBudget creates or updates the limit for a category. Spent is seeded
// from the running expense total, so a budget set after the fact starts
// correct. Updates record the previous limit for undo; creations record
// the category.
func (l *Ledger) SetBudget(category string, limit decimal.Decimal) (*domain.Budget, error) {
	if err := domain.ValidateCategory(category); err != nil {
		return nil, err
	}
	if limit.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	category = strings.TrimSpace(category)

	if existing, ok := l.budgets.Get(category); ok {
		l.actions.Push(domain.Action{
			Kind:      domain.ActionUpdateBudget,
			Category:  category,
			PrevLimit: existing.Limit,
		})
		existing.Limit = limit
		l.budgets.Set(category, existing)
		l.categories.Insert(category)
		return &existing, nil
	}

	l.actions.Push(domain.Action{
		Kind:     domain.ActionAddBudget,
		Category: category,
	})

	spent, _ := l.expenseTotals.Get(category)
	budget := domain.Budget{Category: category, Limit: limit, Spent: spent}
	l.budgets.Set(category, budget)
	l.categories.Insert(category)
	return &budget, nil
}

// Budget returns the budget for a category, if one was set.
func (l *Ledger) Budget(category string) (domain.Budget, bool) {
	return l.budgets.Get(category)
}

// Budgets returns every budget, sorted by category for stable output.
func (l *Ledger) Budgets() []domain.Budget {
	pairs := l.budgets.Pairs()
	result := make([]domain.Budget, 0, len(pairs))
	for _, pair := range pairs {
		result = append(result, pair.Value)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Category < result[j].Category })
	return result
}

// BudgetAlerts derives the non-normal alerts from the current budgets.
// Nothing is cached: the alerts always reflect the latest spent values.
func (l *Ledger) BudgetAlerts() []domain.BudgetAlert {
	var alerts []domain.BudgetAlert
	for _, budget := range l.Budgets() {
		if alert := domain.AlertFromBudget(&budget); alert != nil {
			alerts = append(alerts, *alert)
		}
	}
	return alerts
}

// BudgetCount returns the number of budgeted categories.
func (l *Ledger) BudgetCount() int {
	return l.budgets.Len()
}
