package model

import "github.com/shopspring/decimal"

// TransactionDirection is the sign a transaction applies to its account's
// balance: a credit adds the amount, a debit subtracts it.
type TransactionDirection string

const (
	DirectionCredit TransactionDirection = "credit"
	DirectionDebit  TransactionDirection = "debit"
)

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "Pending"
	TransactionStatusCompleted TransactionStatus = "Completed"
	TransactionStatusFailed    TransactionStatus = "Failed"
)

// Transaction is a single ledger entry against one account. Transactions are
// immutable once created; there is no update or reversal operation.
type Transaction struct {
	TransactionID string               `json:"transaction_id"`
	AccountID     string               `json:"account_id"`
	Type          TransactionDirection `json:"type"`
	Amount        decimal.Decimal      `json:"amount"`
	Description   string               `json:"description"`
	Date          string               `json:"date"` // ISO calendar date (YYYY-MM-DD)
	Category      string               `json:"category"`
	Status        TransactionStatus    `json:"status"`
}
