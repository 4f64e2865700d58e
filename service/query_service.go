// file: service/query_service.go

package service

import (
	"fmt"
	"go-ledger-api/model"
	"go-ledger-api/store"
	"sort"

	"github.com/shopspring/decimal"
)

// QueryService serves the read-only projections. Each call loads a fresh
// snapshot of the document and never writes, so queries run without the
// ledger mutex and see eventually consistent state relative to in-flight
// mutations.
type QueryService struct {
	store store.DocumentStore
}

func NewQueryService(store store.DocumentStore) *QueryService {
	return &QueryService{store: store}
}

// ListAccounts returns all accounts with their balance sum and count.
func (s *QueryService) ListAccounts() (*model.AccountList, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load ledger document: %w", err)
	}

	total := decimal.Zero
	for _, acc := range doc.Accounts {
		total = total.Add(acc.Balance)
	}

	return &model.AccountList{
		Accounts:     doc.Accounts,
		TotalBalance: total,
		Count:        len(doc.Accounts),
	}, nil
}

// GetAccount returns one account and its last 10 transactions in insertion
// order, or ErrAccountNotFound.
func (s *QueryService) GetAccount(accountID string) (*model.AccountDetail, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load ledger document: %w", err)
	}

	account := doc.FindAccount(accountID)
	if account == nil {
		return nil, ErrAccountNotFound
	}

	recent := []model.Transaction{}
	for _, t := range doc.Transactions {
		if t.AccountID == accountID {
			recent = append(recent, t)
		}
	}
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}

	return &model.AccountDetail{
		Account:            *account,
		RecentTransactions: recent,
	}, nil
}

// ListTransactions applies the filter as a conjunction, sorts the result by
// date descending (stable, so same-date transactions keep insertion order),
// and computes debit/credit totals over exactly the filtered set.
func (s *QueryService) ListTransactions(filter model.TransactionFilter) (*model.TransactionList, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load ledger document: %w", err)
	}

	filtered := []model.Transaction{}
	for _, t := range doc.Transactions {
		if filter.AccountID != "" && t.AccountID != filter.AccountID {
			continue
		}
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		// ISO dates order lexicographically, both bounds inclusive.
		if filter.StartDate != "" && t.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && t.Date > filter.EndDate {
			continue
		}
		filtered = append(filtered, t)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})

	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for _, t := range filtered {
		if t.Type == model.DirectionDebit {
			totalDebits = totalDebits.Add(t.Amount)
		} else {
			totalCredits = totalCredits.Add(t.Amount)
		}
	}

	return &model.TransactionList{
		Transactions: filtered,
		Summary: model.TransactionSummary{
			TotalTransactions: len(filtered),
			TotalDebits:       totalDebits,
			TotalCredits:      totalCredits,
			NetFlow:           totalCredits.Sub(totalDebits),
		},
	}, nil
}

// ListCards returns all cards and their count.
func (s *QueryService) ListCards() (*model.CardList, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load ledger document: %w", err)
	}

	return &model.CardList{
		Cards: doc.Cards,
		Count: len(doc.Cards),
	}, nil
}

// FinancialSummary aggregates the whole document: balance and record counts,
// the five most recent transactions, and debit totals grouped by category in
// order of each category's first appearance.
func (s *QueryService) FinancialSummary() (*model.FinancialSummary, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load ledger document: %w", err)
	}

	totalBalance := decimal.Zero
	for _, acc := range doc.Accounts {
		totalBalance = totalBalance.Add(acc.Balance)
	}

	activeCards := 0
	for _, c := range doc.Cards {
		if c.Status == "Active" {
			activeCards++
		}
	}

	recent := doc.Transactions
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}

	byCategory := []model.CategoryAmount{}
	categoryIndex := map[string]int{}
	for _, t := range doc.Transactions {
		if t.Type != model.DirectionDebit {
			continue
		}
		if i, ok := categoryIndex[t.Category]; ok {
			byCategory[i].Amount = byCategory[i].Amount.Add(t.Amount)
		} else {
			categoryIndex[t.Category] = len(byCategory)
			byCategory = append(byCategory, model.CategoryAmount{Category: t.Category, Amount: t.Amount})
		}
	}

	return &model.FinancialSummary{
		Summary: model.SummaryFigures{
			TotalBalance:       totalBalance,
			TotalAccounts:      len(doc.Accounts),
			ActiveCards:        activeCards,
			TotalTransactions:  len(doc.Transactions),
			RecentTransactions: recent,
		},
		SpendingByCategory: byCategory,
	}, nil
}
