package handler

import (
	"encoding/json"
	"go-ledger-api/common"
	"go-ledger-api/logger"
	"go-ledger-api/service"
	"net/http"
)

type AccountHandler struct {
	queries *service.QueryService
}

func NewAccountHandler(queries *service.QueryService) *AccountHandler {
	return &AccountHandler{queries: queries}
}

// ListAccounts returns every account plus the sum of balances and the count.
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) *common.AppError {
	result, err := h.queries.ListAccounts()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve accounts", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)

	return nil
}

// GetAccount returns a single account and its most recent transactions.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountID := r.PathValue("accountId")

	logger.Log.WithField("account_id", accountID).Info("Get account request received")

	detail, err := h.queries.GetAccount(accountID)
	if err != nil {
		switch err {
		case service.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, "Account not found", err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve account", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(detail)

	return nil
}
