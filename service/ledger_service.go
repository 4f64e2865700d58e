package service

import (
	"errors"
	"fmt"
	"go-ledger-api/logger"
	"go-ledger-api/model"
	"go-ledger-api/store"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInvalidDirection    = errors.New("transaction type must be credit or debit")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrSameAccountTransfer = errors.New("cannot transfer money to the same account")
	ErrMissingField        = errors.New("missing required field")
)

// LedgerService owns every mutation of the ledger document. The whole
// document is loaded, mutated in memory, and saved back, so all mutations run
// under a single mutex: two writers racing on Load would silently lose one
// writer's changes and could mint colliding transaction IDs.
type LedgerService struct {
	mu    sync.Mutex
	store store.DocumentStore
}

func NewLedgerService(store store.DocumentStore) *LedgerService {
	return &LedgerService{store: store}
}

// today returns the current calendar date in ISO form, the default for
// transactions created without an explicit date.
func today() string {
	return time.Now().Format("2006-01-02")
}

// RecordTransaction appends a single-entry transaction and applies its signed
// amount to the referenced account's balance. No minimum-balance check is
// enforced on this path, so a debit may overdraw the account. All validation
// happens before any state is touched; returns the created transaction and
// the account's resulting balance.
func (s *LedgerService) RecordTransaction(req model.CreateTransactionRequest) (*model.Transaction, decimal.Decimal, error) {
	direction := model.TransactionDirection(req.Type)
	if direction != model.DirectionCredit && direction != model.DirectionDebit {
		return nil, decimal.Zero, ErrInvalidDirection
	}
	if !req.Amount.IsPositive() {
		return nil, decimal.Zero, ErrInvalidAmount
	}
	if req.AccountID == "" || req.Description == "" || req.Category == "" {
		return nil, decimal.Zero, ErrMissingField
	}

	log := logger.Log.WithFields(logrus.Fields{
		"account_id": req.AccountID,
		"type":       req.Type,
		"amount":     req.Amount.String(),
		"category":   req.Category,
	})
	log.Info("Recording transaction")

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load()
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("could not load ledger document: %w", err)
	}

	account := doc.FindAccount(req.AccountID)
	if account == nil {
		return nil, decimal.Zero, ErrAccountNotFound
	}

	date := req.Date
	if date == "" {
		date = today()
	}

	transaction := model.Transaction{
		TransactionID: doc.NextTransactionID(),
		AccountID:     req.AccountID,
		Type:          direction,
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          date,
		Category:      req.Category,
		Status:        model.TransactionStatusPending,
	}

	if direction == model.DirectionCredit {
		account.Balance = account.Balance.Add(req.Amount)
	} else {
		account.Balance = account.Balance.Sub(req.Amount)
	}
	doc.Transactions = append(doc.Transactions, transaction)

	if err := s.store.Save(doc); err != nil {
		return nil, decimal.Zero, fmt.Errorf("could not save ledger document: %w", err)
	}

	log.WithField("transaction_id", transaction.TransactionID).Info("Transaction recorded")
	return &transaction, account.Balance, nil
}

// Transfer moves funds between two accounts as an atomic double entry: the
// source balance is decremented, the destination balance incremented, and a
// debit/credit transaction pair is appended, all within one load-mutate-save
// cycle. Every check runs before the first mutation, so a failed transfer
// leaves the document untouched.
func (s *LedgerService) Transfer(req model.TransferRequest) (*model.TransferResult, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if req.FromAccount == "" || req.ToAccount == "" || req.Description == "" {
		return nil, ErrMissingField
	}
	if req.FromAccount == req.ToAccount {
		return nil, ErrSameAccountTransfer
	}

	log := logger.Log.WithFields(logrus.Fields{
		"from_account": req.FromAccount,
		"to_account":   req.ToAccount,
		"amount":       req.Amount.String(),
	})
	log.Info("Starting transfer")

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load ledger document: %w", err)
	}

	fromAccount := doc.FindAccount(req.FromAccount)
	toAccount := doc.FindAccount(req.ToAccount)
	if fromAccount == nil || toAccount == nil {
		return nil, ErrAccountNotFound
	}

	if fromAccount.Balance.LessThan(req.Amount) {
		return nil, ErrInsufficientFunds
	}

	date := req.Date
	if date == "" {
		date = today()
	}

	fromAccount.Balance = fromAccount.Balance.Sub(req.Amount)
	toAccount.Balance = toAccount.Balance.Add(req.Amount)

	debit := model.Transaction{
		TransactionID: doc.NextTransactionID(),
		AccountID:     req.FromAccount,
		Type:          model.DirectionDebit,
		Amount:        req.Amount,
		Description:   fmt.Sprintf("Transfer to %s: %s", toAccount.AccountName, req.Description),
		Date:          date,
		Category:      "Transfer",
		Status:        model.TransactionStatusCompleted,
	}
	credit := model.Transaction{
		TransactionID: doc.NextTransactionID(),
		AccountID:     req.ToAccount,
		Type:          model.DirectionCredit,
		Amount:        req.Amount,
		Description:   fmt.Sprintf("Transfer from %s: %s", fromAccount.AccountName, req.Description),
		Date:          date,
		Category:      "Transfer",
		Status:        model.TransactionStatusCompleted,
	}
	doc.Transactions = append(doc.Transactions, debit, credit)

	if err := s.store.Save(doc); err != nil {
		return nil, fmt.Errorf("could not save ledger document: %w", err)
	}

	log.Info("Transfer completed successfully")
	return &model.TransferResult{
		NewBalance:   fromAccount.Balance,
		Transactions: []model.Transaction{debit, credit},
	}, nil
}
