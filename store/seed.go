// file: store/seed.go

package store

import (
	"go-ledger-api/model"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// SeedDocument builds the starter document written on first run: a few
// example accounts, transactions, and cards. The transaction counter starts
// at the seeded transaction count so minted IDs continue the sequence.
func SeedDocument() *model.LedgerDocument {
	return &model.LedgerDocument{
		NextTransactionSeq: 5,
		Accounts: []model.Account{
			{
				AccountID:   "ACC001",
				AccountName: "John Doe",
				AccountType: model.AccountTypeChecking,
				Balance:     dec("12500.75"),
				Currency:    "USD",
				Status:      model.AccountStatusActive,
			},
			{
				AccountID:   "ACC002",
				AccountName: "John Doe",
				AccountType: model.AccountTypeSavings,
				Balance:     dec("45000.50"),
				Currency:    "USD",
				Status:      model.AccountStatusActive,
			},
			{
				AccountID:   "ACC003",
				AccountName: "Jane Smith",
				AccountType: model.AccountTypeChecking,
				Balance:     dec("8500.25"),
				Currency:    "USD",
				Status:      model.AccountStatusActive,
			},
		},
		Transactions: []model.Transaction{
			{
				TransactionID: "TXN001",
				AccountID:     "ACC001",
				Type:          model.DirectionDebit,
				Amount:        dec("250.00"),
				Description:   "Grocery Store",
				Date:          "2024-01-15",
				Category:      "Food",
				Status:        model.TransactionStatusCompleted,
			},
			{
				TransactionID: "TXN002",
				AccountID:     "ACC001",
				Type:          model.DirectionCredit,
				Amount:        dec("1500.00"),
				Description:   "Salary Deposit",
				Date:          "2024-01-14",
				Category:      "Income",
				Status:        model.TransactionStatusCompleted,
			},
			{
				TransactionID: "TXN003",
				AccountID:     "ACC002",
				Type:          model.DirectionCredit,
				Amount:        dec("500.00"),
				Description:   "Transfer from Checking",
				Date:          "2024-01-13",
				Category:      "Transfer",
				Status:        model.TransactionStatusCompleted,
			},
			{
				TransactionID: "TXN004",
				AccountID:     "ACC001",
				Type:          model.DirectionDebit,
				Amount:        dec("89.99"),
				Description:   "Online Shopping",
				Date:          "2024-01-12",
				Category:      "Shopping",
				Status:        model.TransactionStatusCompleted,
			},
			{
				TransactionID: "TXN005",
				AccountID:     "ACC003",
				Type:          model.DirectionDebit,
				Amount:        dec("1200.00"),
				Description:   "Rent Payment",
				Date:          "2024-01-10",
				Category:      "Housing",
				Status:        model.TransactionStatusCompleted,
			},
		},
		Cards: []model.Card{
			{
				CardID:         "CARD001",
				CardNumber:     "**** **** **** 1234",
				CardType:       "Visa Debit",
				AccountID:      "ACC001",
				Expiry:         "12/2026",
				Status:         "Active",
				SpentThisMonth: dec("1250.75"),
			},
			{
				CardID:         "CARD002",
				CardNumber:     "**** **** **** 5678",
				CardType:       "Mastercard Credit",
				AccountID:      "ACC002",
				Expiry:         "08/2025",
				Status:         "Active",
				SpentThisMonth: dec("500.00"),
			},
		},
	}
}
