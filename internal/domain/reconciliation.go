package domain

// RepairedTransaction describes one ledger credit recreated by a
// reconciliation pass.
type RepairedTransaction struct {
	ActivityID     int64 `json:"activity_id"`
	AccountID      int64 `json:"account_id"`
	CoinsEarned    int64 `json:"coins_earned"`
	UpdatedBalance int64 `json:"updated_balance"`
}

type ReconciliationError struct {
	ActivityID int64  `json:"activity_id"`
	Message    string `json:"message"`
}

// ReconciliationReport summarizes a single reconciliation run.
type ReconciliationReport struct {
	FixedCount int                   `json:"fixed_count"`
	ErrorCount int                   `json:"error_count"`
	Fixed      []RepairedTransaction `json:"fixed_transactions"`
	Errors     []ReconciliationError `json:"errors"`
}
