package model

import "github.com/shopspring/decimal"

// AccountType classifies an account.
type AccountType string

const (
	AccountTypeChecking AccountType = "Checking"
	AccountTypeSavings  AccountType = "Savings"
)

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	AccountStatusActive AccountStatus = "Active"
	AccountStatusClosed AccountStatus = "Closed"
	AccountStatusFrozen AccountStatus = "Frozen"
)

// Account is a ledger account. Balance is held as a decimal so repeated
// small mutations never accumulate floating-point drift.
type Account struct {
	AccountID   string          `json:"account_id"`
	AccountName string          `json:"account_name"`
	AccountType AccountType     `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	Status      AccountStatus   `json:"status"`
}
