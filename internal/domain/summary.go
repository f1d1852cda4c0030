package domain

import "github.com/shopspring/decimal"

// CategoryTotal pairs a category with its running expense total.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// MonthlySummary aggregates one calendar month of transactions.
type MonthlySummary struct {
	Month             string // YYYY-MM
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	NetSavings        decimal.Decimal
	TransactionCount  int
	CategoryBreakdown []CategoryTotal
}

// DashboardSummary is the combined state a dashboard view renders.
type DashboardSummary struct {
	Balance            decimal.Decimal
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	TransactionCount   int
	BudgetCount        int
	BillCount          int
	RecentTransactions []Transaction
	Alerts             []BudgetAlert
	UnpaidBills        []Bill
}

// Snapshot is the full queryable state handed to the persistence
// collaborator. Transactions are ordered oldest-first so a reload through
// the bulk-load path rebuilds the same chronological order.
type Snapshot struct {
	Transactions []Transaction
	Budgets      []Budget
	Bills        []Bill
}
