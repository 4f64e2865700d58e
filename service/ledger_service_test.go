// service/ledger_service_test.go
package service

import (
	"errors"
	"go-ledger-api/logger"
	"go-ledger-api/model"
	"go-ledger-api/store"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestMain runs setup before any tests in this package are executed.
func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// MockDocumentStore is a mock for store.DocumentStore.
type MockDocumentStore struct{ mock.Mock }

func (m *MockDocumentStore) Load() (*model.LedgerDocument, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LedgerDocument), args.Error(1)
}

func (m *MockDocumentStore) Save(doc *model.LedgerDocument) error {
	args := m.Called(doc)
	return args.Error(0)
}

func (m *MockDocumentStore) InitIfAbsent(doc *model.LedgerDocument) error {
	args := m.Called(doc)
	return args.Error(0)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seededStore returns a file-backed store preloaded with the seed document.
func seededStore(t *testing.T) *store.JSONStore {
	t.Helper()
	s := store.NewJSONStore(filepath.Join(t.TempDir(), "ledger.json"))
	if err := s.Save(store.SeedDocument()); err != nil {
		t.Fatalf("could not seed test store: %v", err)
	}
	return s
}

func accountBalance(t *testing.T, s store.DocumentStore, accountID string) decimal.Decimal {
	t.Helper()
	doc, err := s.Load()
	assert.NoError(t, err)
	account := doc.FindAccount(accountID)
	if account == nil {
		t.Fatalf("account %s missing from document", accountID)
	}
	return account.Balance
}

func TestLedgerService_RecordTransaction(t *testing.T) {
	t.Run("credit is applied and persisted", func(t *testing.T) {
		s := seededStore(t)
		ledger := NewLedgerService(s)

		txn, balance, err := ledger.RecordTransaction(model.CreateTransactionRequest{
			AccountID:   "ACC001",
			Type:        "credit",
			Amount:      dec("100.25"),
			Description: "Refund",
			Category:    "Shopping",
			Date:        "2024-02-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, "TXN006", txn.TransactionID)
		assert.Equal(t, model.TransactionStatusPending, txn.Status)
		assert.Equal(t, "2024-02-01", txn.Date)
		assert.True(t, balance.Equal(dec("12601.00")))
		assert.True(t, accountBalance(t, s, "ACC001").Equal(dec("12601.00")))
	})

	t.Run("debit may overdraw the account", func(t *testing.T) {
		s := seededStore(t)
		ledger := NewLedgerService(s)

		_, balance, err := ledger.RecordTransaction(model.CreateTransactionRequest{
			AccountID:   "ACC003",
			Type:        "debit",
			Amount:      dec("9000.00"),
			Description: "Tuition",
			Category:    "Education",
			Date:        "2024-02-01",
		})

		assert.NoError(t, err)
		assert.True(t, balance.Equal(dec("-499.75")), "single-entry debits have no minimum-balance check")
	})

	t.Run("defaults the date when none is given", func(t *testing.T) {
		s := seededStore(t)
		ledger := NewLedgerService(s)

		txn, _, err := ledger.RecordTransaction(model.CreateTransactionRequest{
			AccountID:   "ACC001",
			Type:        "debit",
			Amount:      dec("5.00"),
			Description: "Coffee",
			Category:    "Food",
		})

		assert.NoError(t, err)
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, txn.Date)
	})

	t.Run("rejects non-positive amounts before touching state", func(t *testing.T) {
		s := seededStore(t)
		ledger := NewLedgerService(s)

		for _, amount := range []string{"0", "-10.50"} {
			_, _, err := ledger.RecordTransaction(model.CreateTransactionRequest{
				AccountID:   "ACC001",
				Type:        "debit",
				Amount:      dec(amount),
				Description: "bad",
				Category:    "Misc",
			})
			assert.Equal(t, ErrInvalidAmount, err)
		}

		doc, err := s.Load()
		assert.NoError(t, err)
		assert.Len(t, doc.Transactions, 5, "document must be unchanged after rejected input")
		assert.True(t, accountBalance(t, s, "ACC001").Equal(dec("12500.75")))
	})

	t.Run("rejects missing description or category", func(t *testing.T) {
		s := seededStore(t)
		ledger := NewLedgerService(s)

		_, _, err := ledger.RecordTransaction(model.CreateTransactionRequest{
			AccountID: "ACC001",
			Type:      "debit",
			Amount:    dec("10"),
		})
		assert.Equal(t, ErrMissingField, err)

		doc, _ := s.Load()
		assert.Len(t, doc.Transactions, 5)
	})

	t.Run("rejects unknown directions", func(t *testing.T) {
		ledger := NewLedgerService(seededStore(t))

		_, _, err := ledger.RecordTransaction(model.CreateTransactionRequest{
			AccountID:   "ACC001",
			Type:        "withdrawal",
			Amount:      dec("10"),
			Description: "bad",
			Category:    "Misc",
		})

		assert.Equal(t, ErrInvalidDirection, err)
	})

	t.Run("rejects unknown accounts", func(t *testing.T) {
		s := seededStore(t)
		ledger := NewLedgerService(s)

		_, _, err := ledger.RecordTransaction(model.CreateTransactionRequest{
			AccountID:   "ACC999",
			Type:        "credit",
			Amount:      dec("10"),
			Description: "bad",
			Category:    "Misc",
		})

		assert.Equal(t, ErrAccountNotFound, err)

		doc, _ := s.Load()
		assert.Len(t, doc.Transactions, 5)
	})

	t.Run("load failure is surfaced", func(t *testing.T) {
		mockStore := new(MockDocumentStore)
		mockStore.On("Load").Return(nil, errors.New("disk gone")).Once()
		ledger := NewLedgerService(mockStore)

		_, _, err := ledger.RecordTransaction(model.CreateTransactionRequest{
			AccountID:   "ACC001",
			Type:        "credit",
			Amount:      dec("10"),
			Description: "x",
			Category:    "Misc",
		})

		assert.Error(t, err)
		mockStore.AssertExpectations(t)
	})

	t.Run("save failure is surfaced", func(t *testing.T) {
		mockStore := new(MockDocumentStore)
		mockStore.On("Load").Return(store.SeedDocument(), nil).Once()
		mockStore.On("Save", mock.AnythingOfType("*model.LedgerDocument")).Return(errors.New("disk full")).Once()
		ledger := NewLedgerService(mockStore)

		_, _, err := ledger.RecordTransaction(model.CreateTransactionRequest{
			AccountID:   "ACC001",
			Type:        "credit",
			Amount:      dec("10"),
			Description: "x",
			Category:    "Misc",
		})

		assert.Error(t, err)
		mockStore.AssertExpectations(t)
	})
}

func TestLedgerService_Transfer(t *testing.T) {
	t.Run("moves funds and records a completed pair", func(t *testing.T) {
		s := seededStore(t)
		ledger := NewLedgerService(s)

		result, err := ledger.Transfer(model.TransferRequest{
			FromAccount: "ACC001",
			ToAccount:   "ACC002",
			Amount:      dec("500.00"),
			Description: "rent split",
		})

		assert.NoError(t, err)
		assert.True(t, result.NewBalance.Equal(dec("12000.75")))
		assert.Len(t, result.Transactions, 2)

		debit, credit := result.Transactions[0], result.Transactions[1]
		assert.Equal(t, model.DirectionDebit, debit.Type)
		assert.Equal(t, "ACC001", debit.AccountID)
		assert.Equal(t, model.DirectionCredit, credit.Type)
		assert.Equal(t, "ACC002", credit.AccountID)
		assert.Equal(t, debit.Date, credit.Date)
		assert.True(t, debit.Amount.Equal(credit.Amount))
		assert.Equal(t, model.TransactionStatusCompleted, debit.Status)
		assert.Equal(t, model.TransactionStatusCompleted, credit.Status)
		assert.NotEqual(t, debit.TransactionID, credit.TransactionID)

		// Descriptions cross-reference the counterparty's name.
		assert.Contains(t, debit.Description, "Transfer to John Doe")
		assert.Contains(t, credit.Description, "Transfer from John Doe")
		assert.Contains(t, debit.Description, "rent split")

		assert.True(t, accountBalance(t, s, "ACC001").Equal(dec("12000.75")))
		assert.True(t, accountBalance(t, s, "ACC002").Equal(dec("45500.50")))
	})

	t.Run("insufficient funds leaves the document unchanged", func(t *testing.T) {
		s := seededStore(t)
		ledger := NewLedgerService(s)

		_, err := ledger.Transfer(model.TransferRequest{
			FromAccount: "ACC003",
			ToAccount:   "ACC001",
			Amount:      dec("99999.00"),
			Description: "too much",
		})

		assert.Equal(t, ErrInsufficientFunds, err)

		doc, loadErr := s.Load()
		assert.NoError(t, loadErr)
		assert.Len(t, doc.Transactions, 5)
		assert.True(t, accountBalance(t, s, "ACC003").Equal(dec("8500.25")))
		assert.True(t, accountBalance(t, s, "ACC001").Equal(dec("12500.75")))
	})

	t.Run("rejects a transfer to the same account", func(t *testing.T) {
		ledger := NewLedgerService(seededStore(t))

		_, err := ledger.Transfer(model.TransferRequest{
			FromAccount: "ACC001",
			ToAccount:   "ACC001",
			Amount:      dec("10"),
			Description: "loop",
		})

		assert.Equal(t, ErrSameAccountTransfer, err)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		ledger := NewLedgerService(seededStore(t))

		_, err := ledger.Transfer(model.TransferRequest{
			FromAccount: "ACC001",
			ToAccount:   "ACC002",
			Amount:      dec("0"),
			Description: "nothing",
		})

		assert.Equal(t, ErrInvalidAmount, err)
	})

	t.Run("rejects when either account is missing", func(t *testing.T) {
		ledger := NewLedgerService(seededStore(t))

		_, err := ledger.Transfer(model.TransferRequest{
			FromAccount: "ACC001",
			ToAccount:   "ACC999",
			Amount:      dec("10"),
			Description: "nowhere",
		})
		assert.Equal(t, ErrAccountNotFound, err)

		_, err = ledger.Transfer(model.TransferRequest{
			FromAccount: "ACC999",
			ToAccount:   "ACC001",
			Amount:      dec("10"),
			Description: "nowhere",
		})
		assert.Equal(t, ErrAccountNotFound, err)
	})
}

// The account balance must always equal its seed balance plus all credits
// minus all debits applied to it, across any mix of operations.
func TestLedgerService_BalanceInvariant(t *testing.T) {
	s := seededStore(t)
	ledger := NewLedgerService(s)

	ops := []model.CreateTransactionRequest{
		{AccountID: "ACC001", Type: "credit", Amount: dec("1000.00"), Description: "Bonus", Category: "Income", Date: "2024-02-01"},
		{AccountID: "ACC001", Type: "debit", Amount: dec("0.01"), Description: "Fee", Category: "Fees", Date: "2024-02-02"},
		{AccountID: "ACC001", Type: "debit", Amount: dec("333.33"), Description: "Utilities", Category: "Housing", Date: "2024-02-03"},
		{AccountID: "ACC001", Type: "credit", Amount: dec("0.07"), Description: "Interest", Category: "Income", Date: "2024-02-04"},
	}
	for _, op := range ops {
		_, _, err := ledger.RecordTransaction(op)
		assert.NoError(t, err)
	}

	_, err := ledger.Transfer(model.TransferRequest{
		FromAccount: "ACC001",
		ToAccount:   "ACC003",
		Amount:      dec("250.50"),
		Description: "shared dinner",
	})
	assert.NoError(t, err)

	doc, err := s.Load()
	assert.NoError(t, err)

	// Recompute ACC001 from its full transaction history against the seed
	// balance (seed transactions predate the seed balance).
	expected := dec("12500.75")
	seedTxns := map[string]bool{"TXN001": true, "TXN002": true, "TXN003": true, "TXN004": true, "TXN005": true}
	for _, txn := range doc.Transactions {
		if txn.AccountID != "ACC001" || seedTxns[txn.TransactionID] {
			continue
		}
		if txn.Type == model.DirectionCredit {
			expected = expected.Add(txn.Amount)
		} else {
			expected = expected.Sub(txn.Amount)
		}
	}
	assert.True(t, doc.FindAccount("ACC001").Balance.Equal(expected),
		"balance %s != recomputed %s", doc.FindAccount("ACC001").Balance, expected)
}

// Concurrent mutations must serialize: no duplicate transaction IDs and every
// balance change reflected.
func TestLedgerService_ConcurrentRecordTransaction(t *testing.T) {
	s := seededStore(t)
	ledger := NewLedgerService(s)

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_, _, err := ledger.RecordTransaction(model.CreateTransactionRequest{
				AccountID:   "ACC002",
				Type:        "credit",
				Amount:      dec("1.00"),
				Description: "ping",
				Category:    "Misc",
				Date:        "2024-03-01",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	doc, err := s.Load()
	assert.NoError(t, err)
	assert.Len(t, doc.Transactions, 5+writers)

	seen := map[string]bool{}
	for _, txn := range doc.Transactions {
		assert.False(t, seen[txn.TransactionID], "duplicate transaction ID %s", txn.TransactionID)
		seen[txn.TransactionID] = true
	}

	assert.True(t, doc.FindAccount("ACC002").Balance.Equal(dec("45020.50")))
}
