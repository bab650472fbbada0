// src/handlers/bond_handler.go
package handlers

import (
	"net/http"

	"github.com/username/fincalc/src/logger"
	"github.com/username/fincalc/src/services"
	"github.com/username/fincalc/src/utils"
)

type BondHandler struct {
	service services.CalculatorService
}

func NewBondHandler(service services.CalculatorService) *BondHandler {
	return &BondHandler{service: service}
}

func (h *BondHandler) HandleGetValue(w http.ResponseWriter, r *http.Request) {
	purchaseDate := r.URL.Query().Get("purchase_date")
	if purchaseDate == "" {
		utils.SendJSONError(w, "purchase_date is required", http.StatusBadRequest)
		return
	}
	principal, err := floatParam(r, "principal")
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	earlyPenalty, err := optionalBoolParam(r, "early_penalty", true)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	value, err := h.service.BondValue(r.Context(), services.BondValuationRequest{
		PurchaseDate:   purchaseDate,
		Principal:      principal,
		EvaluationDate: r.URL.Query().Get("date"),
		EarlyPenalty:   earlyPenalty,
	})
	if err != nil {
		logger.FromContext(r.Context()).Warn("Bond valuation failed",
			"purchaseDate", purchaseDate, "principal", principal, "error", err)
		utils.SendJSONError(w, err.Error(), statusForError(err))
		return
	}
	utils.SendJSON(w, map[string]int{"value": value}, http.StatusOK)
}
