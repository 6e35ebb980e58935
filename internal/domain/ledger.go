package domain

import "time"

type EntryKind string

const (
	EntryKindEarned EntryKind = "earned"
	EntryKindSpent  EntryKind = "spent"
)

type ReferenceType string

const (
	ReferenceRecycling ReferenceType = "recycling"
	ReferencePurchase  ReferenceType = "purchase"
)

// LedgerEntry is an immutable record of a single signed coin movement.
// Amount is positive for earned entries and negative for spent ones.
// (ReferenceID, ReferenceType) identifies the business event that caused
// the movement and doubles as the idempotency key: the store enforces at
// most one entry per pair.
type LedgerEntry struct {
	ID            int64         `json:"id"`
	AccountID     int64         `json:"account_id"`
	Amount        int64         `json:"amount"`
	Kind          EntryKind     `json:"kind"`
	ReferenceID   int64         `json:"reference_id"`
	ReferenceType ReferenceType `json:"reference_type"`
	Description   string        `json:"description"`
	CreatedAt     time.Time     `json:"created_at"`
}
