package domain

import "time"

type ActivityStatus string

const (
	ActivityStatusPending  ActivityStatus = "pending"
	ActivityStatusApproved ActivityStatus = "approved"
	ActivityStatusRejected ActivityStatus = "rejected"
)

type PickupStatus string

const (
	PickupStatusNotRequired PickupStatus = "not_required"
	PickupStatusScheduled   PickupStatus = "scheduled"
	PickupStatusCollected   PickupStatus = "collected"
	PickupStatusCancelled   PickupStatus = "cancelled"
)

// RecyclingActivity is a submission of recyclable material. CoinsEarned
// is fixed at submission time from category.coin_value * quantity and is
// never recalculated. Status moves from pending into exactly one of the
// terminal states; PickupStatus is an independent sub-state that never
// touches the ledger.
type RecyclingActivity struct {
	ID             int64          `json:"id"`
	AccountID      int64          `json:"account_id"`
	CategoryID     int64          `json:"category_id"`
	CategoryName   string         `json:"category_name,omitempty"`
	Quantity       int64          `json:"quantity"`
	CoinsEarned    int64          `json:"coins_earned"`
	Status         ActivityStatus `json:"status"`
	ProofImage     string         `json:"proof_image"`
	Notes          string         `json:"notes"`
	PickupDate     *string        `json:"pickup_date,omitempty"`
	PickupTimeSlot *string        `json:"pickup_time_slot,omitempty"`
	PickupAddress  *string        `json:"pickup_address,omitempty"`
	PickupStatus   PickupStatus   `json:"pickup_status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type RecyclingCategory struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CoinValue   int64     `json:"coin_value"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

type SubmitActivityRequest struct {
	AccountID      int64  `json:"account_id"`
	CategoryID     int64  `json:"category_id"`
	Quantity       int64  `json:"quantity"`
	ProofImage     string `json:"proof_image"`
	Notes          string `json:"notes"`
	PickupDate     string `json:"pickup_date"`
	PickupTimeSlot string `json:"pickup_time_slot"`
	PickupAddress  string `json:"pickup_address"`
}

type UpdatePickupRequest struct {
	ActivityID     int64        `json:"id"`
	PickupStatus   PickupStatus `json:"pickup_status"`
	PickupDate     *string      `json:"pickup_date"`
	PickupTimeSlot *string      `json:"pickup_time_slot"`
	PickupAddress  *string      `json:"pickup_address"`
}
