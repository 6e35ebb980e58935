package domain

import "time"

// Account is the balance-bearing side of a user. CoinBalance is a
// denormalized cache of the signed sum of the account's ledger entries;
// it is only ever written through the ledger credit/debit paths.
type Account struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CoinBalance int64     `json:"coin_balance"`
	CreatedAt   time.Time `json:"created_at"`
}
