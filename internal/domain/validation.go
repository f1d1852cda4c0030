package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// ValidateAmount rejects zero and negative amounts.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateKind rejects anything but the two recognized kinds.
func ValidateKind(kind Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidKind, string(kind))
	}
	return nil
}

// ValidateDate checks the YYYY-MM-DD shape. Date keys are compared
// lexicographically, so a malformed key would silently corrupt range
// queries rather than fail them.
func ValidateDate(date string) error {
	if !dateRegex.MatchString(date) {
		return fmt.Errorf("%w: got %q", ErrInvalidDate, date)
	}
	return nil
}

// ValidateMonth checks the YYYY-MM shape used by monthly summaries.
func ValidateMonth(month string) error {
	if !monthRegex.MatchString(month) {
		return fmt.Errorf("%w: got %q", ErrInvalidMonth, month)
	}
	return nil
}

// ValidateCategory rejects empty or blank category names.
func ValidateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrEmptyCategory
	}
	return nil
}
