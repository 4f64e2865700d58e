// file: store/jsonstore.go

package store

import (
	"encoding/json"
	"fmt"
	"go-ledger-api/logger"
	"go-ledger-api/model"
	"os"
)

// JSONStore persists the ledger document as a single JSON file. Saves go
// through a temp file followed by os.Rename so an interrupted write never
// corrupts the existing store.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load reads and decodes the full document. A missing file yields an empty
// document; a file that exists but cannot be decoded is surfaced as an error.
func (s *JSONStore) Load() (*model.LedgerDocument, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewLedgerDocument(), nil
		}
		logger.Log.WithError(err).Error("Failed to open ledger document")
		return nil, fmt.Errorf("failed to open ledger document: %w", err)
	}
	defer f.Close()

	doc := model.NewLedgerDocument()
	if err := json.NewDecoder(f).Decode(doc); err != nil {
		logger.Log.WithError(err).Error("Failed to decode ledger document")
		return nil, fmt.Errorf("failed to decode ledger document: %w", err)
	}
	return doc, nil
}

// Save writes the document to path+".tmp" and renames it over the real file.
func (s *JSONStore) Save(doc *model.LedgerDocument) error {
	tmp := s.path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to create temp ledger file")
		return fmt.Errorf("failed to create temp ledger file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		os.Remove(tmp)
		logger.Log.WithError(err).Error("Failed to encode ledger document")
		return fmt.Errorf("failed to encode ledger document: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close temp ledger file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		logger.Log.WithError(err).Error("Failed to replace ledger document")
		return fmt.Errorf("failed to replace ledger document: %w", err)
	}
	return nil
}

// InitIfAbsent seeds the store only when the file does not exist yet.
func (s *JSONStore) InitIfAbsent(doc *model.LedgerDocument) error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat ledger document: %w", err)
	}

	logger.Log.WithField("path", s.path).Info("No ledger document found, writing seed data")
	return s.Save(doc)
}
