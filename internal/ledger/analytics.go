package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/index"
)

// TopExpenses returns up to k expense transactions by descending amount.
// The heap is rebuilt from the authoritative transaction set on every call;
// it is a throwaway scratch structure, never kept incrementally consistent.
// Ties between equal amounts come out in unspecified order.
func (l *Ledger) TopExpenses(k int) []domain.Transaction {
	if k <= 0 {
		k = 5
	}
	heap := index.NewMaxHeap(func(a, b domain.Transaction) bool {
		return a.Amount.GreaterThan(b.Amount)
	})
	heap.Build(l.chrono.FilterByKind(domain.KindExpense))
	return heap.TopK(k)
}

// TopCategories returns up to k categories by descending expense total.
// Categories whose running total dropped to zero are excluded.
func (l *Ledger) TopCategories(k int) []domain.CategoryTotal {
	if k <= 0 {
		k = 5
	}
	var totals []domain.CategoryTotal
	for _, pair := range l.expenseTotals.Pairs() {
		if pair.Value.IsPositive() {
			totals = append(totals, domain.CategoryTotal{Category: pair.Key, Total: pair.Value})
		}
	}
	heap := index.NewMaxHeap(func(a, b domain.CategoryTotal) bool {
		return a.Total.GreaterThan(b.Total)
	})
	heap.Build(totals)
	return heap.TopK(k)
}

// MonthlySummary aggregates the month's transactions via a date-range
// query over [month-01, month-31]. The upper key is safe for short months
// because dates compare as strings, not calendar values; the month shape
// is validated first so a malformed key never reaches the comparison.
func (l *Ledger) MonthlySummary(month string) (*domain.MonthlySummary, error) {
	if err := domain.ValidateMonth(month); err != nil {
		return nil, err
	}

	transactions := l.dates.Range(month+"-01", month+"-31")

	summary := &domain.MonthlySummary{Month: month}
	byCategory := make(map[string]decimal.Decimal)

	for i := range transactions {
		t := &transactions[i]
		summary.TransactionCount++
		if t.Kind == domain.KindIncome {
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
			continue
		}
		summary.TotalExpenses = summary.TotalExpenses.Add(t.Amount)
		byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
	}
	summary.NetSavings = summary.TotalIncome.Sub(summary.TotalExpenses)

	for category, total := range byCategory {
		summary.CategoryBreakdown = append(summary.CategoryBreakdown,
			domain.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(summary.CategoryBreakdown, func(i, j int) bool {
		return summary.CategoryBreakdown[i].Category < summary.CategoryBreakdown[j].Category
	})

	return summary, nil
}

// CategorySuggestions returns categories completing prefix.
func (l *Ledger) CategorySuggestions(prefix string, limit int) []string {
	return l.categories.WordsWithPrefix(prefix, limit)
}

// PayeeSuggestions returns transaction descriptions completing prefix.
func (l *Ledger) PayeeSuggestions(prefix string, limit int) []string {
	return l.payees.WordsWithPrefix(prefix, limit)
}

// AllCategories returns every known category name.
func (l *Ledger) AllCategories() []string {
	return l.categories.All()
}

// TotalBalance returns income minus expenses over all transactions.
func (l *Ledger) TotalBalance() decimal.Decimal {
	balance := decimal.Zero
	for _, t := range l.chrono.Forward() {
		if t.Kind == domain.KindIncome {
			balance = balance.Add(t.Amount)
		} else {
			balance = balance.Sub(t.Amount)
		}
	}
	return balance
}

// TotalIncome sums all income transactions.
func (l *Ledger) TotalIncome() decimal.Decimal {
	return sumAmounts(l.chrono.FilterByKind(domain.KindIncome))
}

// TotalExpenses sums all expense transactions.
func (l *Ledger) TotalExpenses() decimal.Decimal {
	return sumAmounts(l.chrono.FilterByKind(domain.KindExpense))
}

func sumAmounts(transactions []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for i := range transactions {
		total = total.Add(transactions[i].Amount)
	}
	return total
}

// Dashboard assembles the combined state a dashboard renders: balances,
// counts, recent transactions, active alerts and unpaid bills.
func (l *Ledger) Dashboard(recentN int) *domain.DashboardSummary {
	return &domain.DashboardSummary{
		Balance:            l.TotalBalance(),
		TotalIncome:        l.TotalIncome(),
		TotalExpenses:      l.TotalExpenses(),
		TransactionCount:   l.TransactionCount(),
		BudgetCount:        l.BudgetCount(),
		BillCount:          l.BillCount(),
		RecentTransactions: l.RecentTransactions(recentN),
		Alerts:             l.BudgetAlerts(),
		UnpaidBills:        l.UnpaidBills(),
	}
}
