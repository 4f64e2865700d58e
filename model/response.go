// file: model/response.go

package model

import "github.com/shopspring/decimal"

// AccountList is the projection returned when listing all accounts.
type AccountList struct {
	Accounts     []Account       `json:"accounts"`
	TotalBalance decimal.Decimal `json:"total_balance"`
	Count        int             `json:"count"`
}

// AccountDetail is a single account together with its most recent
// transactions.
type AccountDetail struct {
	Account            Account       `json:"account"`
	RecentTransactions []Transaction `json:"recent_transactions"`
}

// TransactionSummary aggregates the filtered transaction set: counts and
// debit/credit totals, with net flow defined as credits minus debits.
type TransactionSummary struct {
	TotalTransactions int             `json:"total_transactions"`
	TotalDebits       decimal.Decimal `json:"total_debits"`
	TotalCredits      decimal.Decimal `json:"total_credits"`
	NetFlow           decimal.Decimal `json:"net_flow"`
}

// TransactionList is the filtered, date-descending transaction listing plus
// its summary.
type TransactionList struct {
	Transactions []Transaction      `json:"transactions"`
	Summary      TransactionSummary `json:"summary"`
}

// CardList is the card listing projection.
type CardList struct {
	Cards []Card `json:"cards"`
	Count int    `json:"count"`
}

// CategoryAmount is a debit total grouped under one category label.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// SummaryFigures carries the headline numbers of the financial summary.
type SummaryFigures struct {
	TotalBalance       decimal.Decimal `json:"total_balance"`
	TotalAccounts      int             `json:"total_accounts"`
	ActiveCards        int             `json:"active_cards"`
	TotalTransactions  int             `json:"total_transactions"`
	RecentTransactions []Transaction   `json:"recent_transactions"`
}

// FinancialSummary is the full summary projection: headline figures plus
// debit spending broken down by category.
type FinancialSummary struct {
	Summary            SummaryFigures   `json:"summary"`
	SpendingByCategory []CategoryAmount `json:"spending_by_category"`
}

// TransferResult is returned by a successful transfer: the source account's
// new balance and the debit/credit transaction pair that was created.
type TransferResult struct {
	NewBalance   decimal.Decimal `json:"new_balance"`
	Transactions []Transaction   `json:"transactions"`
}
