package router

import (
	"go-ledger-api/handler"
	"net/http"
)

func NewRouter(
	accountHandler *handler.AccountHandler,
	transactionHandler *handler.TransactionHandler,
	cardHandler *handler.CardHandler,
	summaryHandler *handler.SummaryHandler,
	staticDir string,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", handler.HealthCheck)

	mux.Handle("GET /api/accounts", handler.ErrorHandlingMiddleware(accountHandler.ListAccounts))
	mux.Handle("GET /api/accounts/{accountId}", handler.ErrorHandlingMiddleware(accountHandler.GetAccount))

	mux.Handle("GET /api/transactions", handler.ErrorHandlingMiddleware(transactionHandler.ListTransactions))
	mux.Handle("POST /api/transactions", handler.ErrorHandlingMiddleware(transactionHandler.CreateTransaction))
	mux.Handle("POST /api/transfer", handler.ErrorHandlingMiddleware(transactionHandler.CreateTransfer))

	mux.Handle("GET /api/cards", handler.ErrorHandlingMiddleware(cardHandler.ListCards))
	mux.Handle("GET /api/summary", handler.ErrorHandlingMiddleware(summaryHandler.FinancialSummary))

	// Dashboard assets (index.html, style.css) are served from the static dir.
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))

	return mux
}
