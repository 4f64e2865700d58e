package model

import "github.com/shopspring/decimal"

// Card is a payment card linked to an account. Cards are read-only in this
// service: no endpoint mutates them, they only appear in listings and the
// financial summary.
type Card struct {
	CardID         string          `json:"card_id"`
	CardNumber     string          `json:"card_number"` // masked, e.g. "**** **** **** 1234"
	CardType       string          `json:"card_type"`
	AccountID      string          `json:"account_id"`
	Expiry         string          `json:"expiry"`
	Status         string          `json:"status"`
	SpentThisMonth decimal.Decimal `json:"spent_this_month"`
}
