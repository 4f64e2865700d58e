// file: model/request.go

package model

import "github.com/shopspring/decimal"

// CreateTransactionRequest defines the payload for recording a single-entry
// transaction. Amount is decoded as a decimal so callers may send either a
// JSON number or a numeric string without losing precision; positivity is
// checked by the ledger service since validator tags cannot inspect decimals.
type CreateTransactionRequest struct {
	AccountID   string          `json:"account_id" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=credit debit"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Date        string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// TransferRequest defines the payload for a double-entry transfer between two
// accounts.
type TransferRequest struct {
	FromAccount string          `json:"from_account" validate:"required"`
	ToAccount   string          `json:"to_account" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required"`
	Date        string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// TransactionFilter holds the optional query filters for listing
// transactions. All set filters are applied as a conjunction. Dates compare
// lexicographically, so callers must supply ISO (YYYY-MM-DD) dates.
type TransactionFilter struct {
	AccountID string
	Category  string
	StartDate string
	EndDate   string
}
