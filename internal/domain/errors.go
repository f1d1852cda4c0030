package domain

import "errors"

var (
	// Transaction errors
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidKind   = errors.New("kind must be income or expense")
	ErrInvalidDate   = errors.New("date must be in YYYY-MM-DD format")
	ErrEmptyCategory = errors.New("category cannot be empty")

	// Analytics errors
	ErrInvalidMonth = errors.New("month must be in YYYY-MM format")

	// Bill errors
	ErrEmptyBillName = errors.New("bill name cannot be empty")
)

// IsInvalidInput reports whether err belongs to the invalid-input family,
// the only error class that surfaces to the transport boundary. Absence
// and empty-log conditions are boolean outcomes, not errors.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrEmptyCategory) ||
		errors.Is(err, ErrInvalidMonth) ||
		errors.Is(err, ErrEmptyBillName)
}
