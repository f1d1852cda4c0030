package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		Kind:        string(t.Kind),
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i := range transactions {
		result[i] = TransactionFromDomain(&transactions[i])
	}
	return result
}

// ListTransactionsResponse wraps a transaction list.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int                    `json:"total"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	Category    string          `json:"category"`
	Limit       decimal.Decimal `json:"limit"`
	Spent       decimal.Decimal `json:"spent"`
	PercentUsed float64         `json:"percent_used"`
	AlertLevel  string          `json:"alert_level"`
}

// BudgetFromDomain converts a domain budget to a response.
func BudgetFromDomain(b *domain.Budget) *BudgetResponse {
	return &BudgetResponse{
		Category:    b.Category,
		Limit:       b.Limit,
		Spent:       b.Spent,
		PercentUsed: b.PercentUsed(),
		AlertLevel:  string(b.Level()),
	}
}

// BudgetsFromDomain converts domain budgets to responses.
func BudgetsFromDomain(budgets []domain.Budget) []*BudgetResponse {
	result := make([]*BudgetResponse, len(budgets))
	for i := range budgets {
		result[i] = BudgetFromDomain(&budgets[i])
	}
	return result
}

// AlertResponse represents a budget alert in API responses.
type AlertResponse struct {
	Category    string          `json:"category"`
	Level       string          `json:"level"`
	PercentUsed float64         `json:"percent_used"`
	Spent       decimal.Decimal `json:"spent"`
	Limit       decimal.Decimal `json:"limit"`
	Message     string          `json:"message"`
}

// AlertsFromDomain converts domain alerts to responses.
func AlertsFromDomain(alerts []domain.BudgetAlert) []*AlertResponse {
	result := make([]*AlertResponse, len(alerts))
	for i, a := range alerts {
		result[i] = &AlertResponse{
			Category:    a.Category,
			Level:       string(a.Level),
			PercentUsed: a.PercentUsed,
			Spent:       a.Spent,
			Limit:       a.Limit,
			Message:     a.Message,
		}
	}
	return result
}

// BillResponse represents a bill in API responses.
type BillResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  string          `json:"due_date"`
	Category string          `json:"category"`
	Paid     bool            `json:"paid"`
}

// BillFromDomain converts a domain bill to a response.
func BillFromDomain(b *domain.Bill) *BillResponse {
	return &BillResponse{
		ID:       b.ID,
		Name:     b.Name,
		Amount:   b.Amount,
		DueDate:  b.DueDate,
		Category: b.Category,
		Paid:     b.Paid,
	}
}

// BillsFromDomain converts domain bills to responses.
func BillsFromDomain(bills []domain.Bill) []*BillResponse {
	result := make([]*BillResponse, len(bills))
	for i := range bills {
		result[i] = BillFromDomain(&bills[i])
	}
	return result
}

// CategoryTotalResponse represents a ranked category in API responses.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// CategoryTotalsFromDomain converts domain category totals to responses.
func CategoryTotalsFromDomain(totals []domain.CategoryTotal) []*CategoryTotalResponse {
	result := make([]*CategoryTotalResponse, len(totals))
	for i, ct := range totals {
		result[i] = &CategoryTotalResponse{Category: ct.Category, Total: ct.Total}
	}
	return result
}

// MonthlySummaryResponse represents a monthly summary in API responses.
type MonthlySummaryResponse struct {
	Month             string                   `json:"month"`
	TotalIncome       decimal.Decimal          `json:"total_income"`
	TotalExpenses     decimal.Decimal          `json:"total_expenses"`
	NetSavings        decimal.Decimal          `json:"net_savings"`
	TransactionCount  int                      `json:"transaction_count"`
	CategoryBreakdown []*CategoryTotalResponse `json:"category_breakdown"`
}

// MonthlySummaryFromDomain converts a domain summary to a response.
func MonthlySummaryFromDomain(s *domain.MonthlySummary) *MonthlySummaryResponse {
	return &MonthlySummaryResponse{
		Month:             s.Month,
		TotalIncome:       s.TotalIncome,
		TotalExpenses:     s.TotalExpenses,
		NetSavings:        s.NetSavings,
		TransactionCount:  s.TransactionCount,
		CategoryBreakdown: CategoryTotalsFromDomain(s.CategoryBreakdown),
	}
}

// SuggestionsResponse wraps an autocomplete result.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// UndoResponse reports whether an action was reversed.
type UndoResponse struct {
	Undone bool `json:"undone"`
}

// DashboardResponse represents the dashboard in API responses.
type DashboardResponse struct {
	Balance            decimal.Decimal        `json:"balance"`
	TotalIncome        decimal.Decimal        `json:"total_income"`
	TotalExpenses      decimal.Decimal        `json:"total_expenses"`
	TransactionCount   int                    `json:"transaction_count"`
	BudgetCount        int                    `json:"budget_count"`
	BillCount          int                    `json:"bill_count"`
	RecentTransactions []*TransactionResponse `json:"recent_transactions"`
	Alerts             []*AlertResponse       `json:"alerts"`
	UnpaidBills        []*BillResponse        `json:"unpaid_bills"`
}

// DashboardFromDomain converts a domain dashboard summary to a response.
func DashboardFromDomain(d *domain.DashboardSummary) *DashboardResponse {
	return &DashboardResponse{
		Balance:            d.Balance,
		TotalIncome:        d.TotalIncome,
		TotalExpenses:      d.TotalExpenses,
		TransactionCount:   d.TransactionCount,
		BudgetCount:        d.BudgetCount,
		BillCount:          d.BillCount,
		RecentTransactions: TransactionsFromDomain(d.RecentTransactions),
		Alerts:             AlertsFromDomain(d.Alerts),
		UnpaidBills:        BillsFromDomain(d.UnpaidBills),
	}
}
