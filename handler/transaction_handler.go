package handler

import (
	"encoding/json"
	"go-ledger-api/common"
	"go-ledger-api/model"
	"go-ledger-api/service"
	"net/http"
)

// TransactionHandler holds dependencies for transaction-related handlers.
type TransactionHandler struct {
	ledger  *service.LedgerService
	queries *service.QueryService
}

// NewTransactionHandler creates a new TransactionHandler with its dependencies.
func NewTransactionHandler(ledger *service.LedgerService, queries *service.QueryService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger, queries: queries}
}

// ListTransactions godoc
// @Summary      List transactions
// @Description  Lists transactions filtered by account, category, and inclusive date range, newest first, with debit/credit totals over the filtered set.
// @Tags         transactions
// @Produce      json
// @Param        account_id  query  string  false  "Exact account ID match"
// @Param        category    query  string  false  "Exact category match"
// @Param        start_date  query  string  false  "Inclusive lower bound, ISO date"
// @Param        end_date    query  string  false  "Inclusive upper bound, ISO date"
// @Success      200  {object}  model.TransactionList
// @Failure      500  {object}  common.AppError "Internal server error while retrieving transactions"
// @Router       /api/transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) *common.AppError {
	query := r.URL.Query()
	filter := model.TransactionFilter{
		AccountID: query.Get("account_id"),
		Category:  query.Get("category"),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}

	result, err := h.queries.ListTransactions(filter)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve transactions", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)

	return nil
}

// CreateTransaction godoc
// @Summary      Record a transaction
// @Description  Appends a single-entry credit or debit against an account and applies it to the account balance.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transaction body model.CreateTransactionRequest true "Transaction to record"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  common.AppError "Invalid amount, type, or missing field"
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError "Internal server error while recording the transaction"
// @Router       /api/transactions [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateTransactionRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	transaction, balance, err := h.ledger.RecordTransaction(req)
	if err != nil {
		switch err {
		case service.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		case service.ErrInvalidAmount, service.ErrInvalidDirection, service.ErrMissingField:
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not record transaction", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":     "Transaction added successfully",
		"transaction": transaction,
		"balance":     balance,
	})

	return nil
}

// CreateTransfer godoc
// @Summary      Transfer money between accounts
// @Description  Moves the amount from one account to another, recording a completed debit/credit transaction pair.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transfer body model.TransferRequest true "Details of the transfer"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  common.AppError "Bad Request (e.g., insufficient funds, invalid amount, same account)"
// @Failure      404  {object}  common.AppError "Source or destination account not found"
// @Failure      500  {object}  common.AppError "Internal server error while processing transfer"
// @Router       /api/transfer [post]
func (h *TransactionHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TransferRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	result, err := h.ledger.Transfer(req)
	if err != nil {
		switch err {
		case service.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		case service.ErrInsufficientFunds, service.ErrInvalidAmount, service.ErrSameAccountTransfer, service.ErrMissingField:
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not process transfer", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":      "Transfer completed successfully",
		"new_balance":  result.NewBalance,
		"transactions": result.Transactions,
	})

	return nil
}
