package handler

import (
	"encoding/json"
	"go-ledger-api/common"
	"go-ledger-api/service"
	"net/http"
)

type SummaryHandler struct {
	queries *service.QueryService
}

func NewSummaryHandler(queries *service.QueryService) *SummaryHandler {
	return &SummaryHandler{queries: queries}
}

// FinancialSummary returns the aggregate figures and the per-category debit
// breakdown.
func (h *SummaryHandler) FinancialSummary(w http.ResponseWriter, r *http.Request) *common.AppError {
	result, err := h.queries.FinancialSummary()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not compute financial summary", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)

	return nil
}
