package handler

import (
	"encoding/json"
	"go-ledger-api/common"
	"go-ledger-api/service"
	"net/http"
)

type CardHandler struct {
	queries *service.QueryService
}

func NewCardHandler(queries *service.QueryService) *CardHandler {
	return &CardHandler{queries: queries}
}

// ListCards returns every card and the count. Cards have no write endpoints.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) *common.AppError {
	result, err := h.queries.ListCards()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve cards", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)

	return nil
}
