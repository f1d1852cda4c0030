package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for ledger operations.
type Metrics struct {
	// Transaction metrics
	TransactionsCreated prometheus.Counter
	TransactionsDeleted prometheus.Counter
	TransactionAmount   prometheus.Histogram

	// Budget metrics
	BudgetsSet prometheus.Counter

	// Bill metrics
	BillsCreated prometheus.Counter
	BillsPaid    prometheus.Counter
	BillsDeleted prometheus.Counter

	// Undo metrics
	UndoApplied prometheus.Counter
	UndoEmpty   prometheus.Counter

	// Snapshot metrics
	SnapshotSaves    prometheus.Counter
	SnapshotErrors   prometheus.Counter
	SnapshotDuration prometheus.Histogram
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		TransactionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_transactions_created_total",
			Help: "Total number of transactions added",
		}),
		TransactionsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_transactions_deleted_total",
			Help: "Total number of transactions deleted",
		}),
		TransactionAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fintrack_transaction_amount",
			Help:    "Transaction amounts",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
		}),
		BudgetsSet: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_budgets_set_total",
			Help: "Total number of budget set/update operations",
		}),
		BillsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_bills_created_total",
			Help: "Total number of bills added",
		}),
		BillsPaid: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_bills_paid_total",
			Help: "Total number of bills marked paid",
		}),
		BillsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_bills_deleted_total",
			Help: "Total number of bills deleted",
		}),
		UndoApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_undo_applied_total",
			Help: "Total number of undone actions",
		}),
		UndoEmpty: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_undo_empty_total",
			Help: "Total number of undo attempts with an empty log",
		}),
		SnapshotSaves: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_snapshot_saves_total",
			Help: "Total number of successful snapshot saves",
		}),
		SnapshotErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_snapshot_errors_total",
			Help: "Total number of failed snapshot saves",
		}),
		SnapshotDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fintrack_snapshot_duration_seconds",
			Help:    "Duration of snapshot save operations",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
