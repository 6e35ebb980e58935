package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks missing or malformed input. Detected before any
	// mutating step, so it never touches storage.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound marks an absent account, product, order or activity.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientFunds is returned by a debit whose amount exceeds the
	// account's current balance. No mutation is performed.
	ErrInsufficientFunds = errors.New("insufficient coin balance")

	// ErrAlreadyApproved guards the approval state machine: an activity in
	// a terminal approved state cannot be approved again.
	ErrAlreadyApproved = errors.New("recycling activity is already approved")

	// ErrDuplicateReference is returned when a ledger entry already exists
	// for a (reference_id, reference_type) pair. During reconciliation it
	// signals "already correct" rather than a failure.
	ErrDuplicateReference = errors.New("duplicate ledger reference")

	// ErrInvalidCategory is returned on submission against a nonexistent
	// recycling category.
	ErrInvalidCategory = errors.New("invalid recycling category")
)

// OutOfStockError names the product that cannot satisfy a requested
// quantity.
type OutOfStockError struct {
	ProductID int64
	Name      string
	Requested int64
	Available int64
}

func (e *OutOfStockError) Error() string {
	name := e.Name
	if name == "" {
		name = fmt.Sprintf("product %d", e.ProductID)
	}
	return fmt.Sprintf("%s is out of stock or has insufficient quantity (requested %d, available %d)", name, e.Requested, e.Available)
}
