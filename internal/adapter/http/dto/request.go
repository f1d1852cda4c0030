package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/ledger"
)

// AddTransactionRequest represents a request to add a transaction.
type AddTransactionRequest struct {
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date"`
}

// ToInput converts to the ledger input.
func (r *AddTransactionRequest) ToInput() ledger.AddTransactionInput {
	return ledger.AddTransactionInput{
		Kind:        domain.Kind(r.Kind),
		Amount:      r.Amount,
		Category:    r.Category,
		Description: r.Description,
		Date:        r.Date,
	}
}

// SetBudgetRequest represents a request to set a category budget.
type SetBudgetRequest struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
}

// AddBillRequest represents a request to schedule a bill.
type AddBillRequest struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  string          `json:"due_date"`
	Category string          `json:"category"`
}

// ToInput converts to the ledger input.
func (r *AddBillRequest) ToInput() ledger.AddBillInput {
	return ledger.AddBillInput{
		Name:     r.Name,
		Amount:   r.Amount,
		DueDate:  r.DueDate,
		Category: r.Category,
	}
}
