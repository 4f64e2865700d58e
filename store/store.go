// file: store/store.go

package store

import "go-ledger-api/model"

// DocumentStore defines the contract for loading and saving the ledger
// document. The document is always read and written as a whole; there is no
// partial persistence.
type DocumentStore interface {
	// Load returns the persisted document, or an empty document when no
	// store exists yet. Malformed persisted data is an error, never repaired.
	Load() (*model.LedgerDocument, error)
	// Save atomically replaces the persisted document.
	Save(doc *model.LedgerDocument) error
	// InitIfAbsent writes the given document only when no store exists, so
	// repeated startups never clobber real data.
	InitIfAbsent(doc *model.LedgerDocument) error
}
