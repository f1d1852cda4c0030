package domain

import "github.com/shopspring/decimal"

// ActionKind tags the mutation an Action can reverse.
type ActionKind string

const (
	ActionAddTransaction    ActionKind = "add_transaction"
	ActionDeleteTransaction ActionKind = "delete_transaction"
	ActionAddBudget         ActionKind = "add_budget"
	ActionUpdateBudget      ActionKind = "update_budget"
	ActionAddBill           ActionKind = "add_bill"
	ActionDeleteBill        ActionKind = "delete_bill"
	ActionPayBill           ActionKind = "pay_bill"
)

// Action describes one past mutation with the minimal typed payload its
// inverse needs. Only the fields matching the kind are set.
type Action struct {
	Kind ActionKind

	// AddTransaction and DeleteTransaction carry the full record;
	// DeleteTransaction needs the pre-delete snapshot to re-insert it.
	Transaction *Transaction

	// AddBudget carries the category; UpdateBudget also carries the
	// limit in force before the update.
	Category  string
	PrevLimit decimal.Decimal

	// AddBill and PayBill carry the bill ID; DeleteBill carries the
	// full pre-delete snapshot.
	BillID string
	Bill   *Bill
}
