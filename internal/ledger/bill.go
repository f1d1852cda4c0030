package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// AddBillInput carries the fields of a new bill.
type AddBillInput struct {
	Name     string
	Amount   decimal.Decimal
	DueDate  string
	Category string
}

func (in *AddBillInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrEmptyBillName
	}
	if err := domain.ValidateAmount(in.Amount); err != nil {
		return err
	}
	if err := domain.ValidateDate(in.DueDate); err != nil {
		return err
	}
	return domain.ValidateCategory(in.Category)
}

// AddBill enqueues a new unpaid bill and records a reversible action.
func (l *Ledger) AddBill(input AddBillInput) (*domain.Bill, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	bill := &domain.Bill{
		ID:       l.ids.Generate(),
		Name:     strings.TrimSpace(input.Name),
		Amount:   input.Amount,
		DueDate:  input.DueDate,
		Category: strings.TrimSpace(input.Category),
	}
	l.bills.Enqueue(bill)

	l.actions.Push(domain.Action{
		Kind:   domain.ActionAddBill,
		BillID: bill.ID,
	})

	result := *bill
	return &result, nil
}

// PayBill marks the bill paid. Unknown IDs return false, nothing recorded.
func (l *Ledger) PayBill(id string) bool {
	if _, ok := l.bills.FindByID(id); !ok {
		return false
	}
	l.actions.Push(domain.Action{
		Kind:   domain.ActionPayBill,
		BillID: id,
	})
	return l.bills.MarkPaid(id)
}

// DeleteBill splices the bill out of the queue, recording its snapshot so
// undo can re-enqueue it.
func (l *Ledger) DeleteBill(id string) bool {
	removed, ok := l.bills.RemoveByID(id)
	if !ok {
		return false
	}
	snapshot := *removed
	l.actions.Push(domain.Action{
		Kind: domain.ActionDeleteBill,
		Bill: &snapshot,
	})
	return true
}

// Bills returns every bill in FIFO order.
func (l *Ledger) Bills() []domain.Bill {
	return l.bills.All()
}

// UnpaidBills returns the bills not yet paid, in FIFO order.
func (l *Ledger) UnpaidBills() []domain.Bill {
	return l.bills.Unpaid()
}

// OverdueBills returns unpaid bills due strictly before ref.
func (l *Ledger) OverdueBills(ref string) []domain.Bill {
	return l.bills.OverdueAt(ref)
}

// NextBill peeks at the bill at the head of the queue.
func (l *Ledger) NextBill() (domain.Bill, bool) {
	bill, ok := l.bills.Peek()
	if !ok {
		return domain.Bill{}, false
	}
	return *bill, true
}

// BillCount returns the number of queued bills.
func (l *Ledger) BillCount() int {
	return l.bills.Len()
}
