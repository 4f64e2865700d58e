package model

import "fmt"

// LedgerDocument is the aggregate root: the complete persisted state of the
// service. The whole document is the unit of load and save; there is no
// partial persistence.
//
// NextTransactionSeq is a monotonic counter persisted alongside the
// collections. Transaction IDs are minted from it rather than from
// len(Transactions), so IDs stay unique even if transactions were ever
// removed from the document.
type LedgerDocument struct {
	NextTransactionSeq int           `json:"next_transaction_seq"`
	Accounts           []Account     `json:"accounts"`
	Transactions       []Transaction `json:"transactions"`
	Cards              []Card        `json:"cards"`
}

// NewLedgerDocument returns an empty document with initialized collections.
func NewLedgerDocument() *LedgerDocument {
	return &LedgerDocument{
		Accounts:     []Account{},
		Transactions: []Transaction{},
		Cards:        []Card{},
	}
}

// FindAccount returns a pointer into the document's account slice for the
// given ID, or nil if no such account exists. The pointer is only valid until
// the slice is next modified.
func (d *LedgerDocument) FindAccount(accountID string) *Account {
	for i := range d.Accounts {
		if d.Accounts[i].AccountID == accountID {
			return &d.Accounts[i]
		}
	}
	return nil
}

// NextTransactionID mints the next transaction identifier and advances the
// persisted counter. Documents written before the counter existed carry a
// zero counter; for those the counter is first caught up to the transaction
// count so minted IDs never collide with existing ones.
func (d *LedgerDocument) NextTransactionID() string {
	if d.NextTransactionSeq < len(d.Transactions) {
		d.NextTransactionSeq = len(d.Transactions)
	}
	d.NextTransactionSeq++
	return fmt.Sprintf("TXN%03d", d.NextTransactionSeq)
}
