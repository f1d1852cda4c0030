package ledger

import "github.com/iho/fintrack/internal/domain"

// Undo pops the most recent action and applies its exact inverse. It
// returns false when the log is empty. An undo never records a new action:
// the transaction cases go through internal paths that bypass the log, so
// undoing an add cannot leave a stray delete action behind.
//
// Known limitation: undoing a bill deletion re-enqueues the bill at the
// back of the queue; its original FIFO position is not restored.
func (l *Ledger) Undo() bool {
	action, ok := l.actions.Pop()
	if !ok {
		return false
	}

	switch action.Kind {
	case domain.ActionAddTransaction:
		l.removeTransaction(action.Transaction.ID)

	case domain.ActionDeleteTransaction:
		// Re-insert at the chronological back: the record is
		// historical, not newly created.
		l.insertTransaction(*action.Transaction, false)

	case domain.ActionAddBudget:
		l.budgets.Remove(action.Category)

	case domain.ActionUpdateBudget:
		if budget, ok := l.budgets.Get(action.Category); ok {
			// Spent is derived from transactions and never
			// undone directly.
			budget.Limit = action.PrevLimit
			l.budgets.Set(action.Category, budget)
		}

	case domain.ActionAddBill:
		l.bills.RemoveByID(action.BillID)

	case domain.ActionDeleteBill:
		restored := *action.Bill
		l.bills.Enqueue(&restored)

	case domain.ActionPayBill:
		if bill, ok := l.bills.FindByID(action.BillID); ok {
			bill.Paid = false
		}
	}

	return true
}

// CanUndo reports whether any action remains to reverse.
func (l *Ledger) CanUndo() bool {
	return l.actions.Len() > 0
}

// UndoDepth returns the number of undoable actions.
func (l *Ledger) UndoDepth() int {
	return l.actions.Len()
}
