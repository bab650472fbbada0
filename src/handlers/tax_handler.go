// src/handlers/tax_handler.go
package handlers

import (
	"net/http"

	"github.com/username/fincalc/src/logger"
	"github.com/username/fincalc/src/services"
	"github.com/username/fincalc/src/utils"
)

type TaxHandler struct {
	service services.CalculatorService
}

func NewTaxHandler(service services.CalculatorService) *TaxHandler {
	return &TaxHandler{service: service}
}

type taxResponse struct {
	TaxableIncome float64 `json:"taxable_income"`
	Year          int     `json:"year"`
	FilingStatus  string  `json:"filing_status"`
	Tax           float64 `json:"tax"`
}

func (h *TaxHandler) HandleFederalTax(w http.ResponseWriter, r *http.Request) {
	h.handleTax(w, r, h.service.FederalTax)
}

func (h *TaxHandler) HandleStateTax(w http.ResponseWriter, r *http.Request) {
	h.handleTax(w, r, h.service.StateTax)
}

func (h *TaxHandler) handleTax(w http.ResponseWriter, r *http.Request, compute func(float64, int, string) (float64, error)) {
	income, err := floatParam(r, "income")
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	year, err := optionalIntParam(r, "year", 0)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	status := r.URL.Query().Get("status")
	if status == "" {
		status = services.DefaultFilingStatus
	}

	tax, err := compute(income, year, status)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Tax computation failed",
			"income", income, "year", year, "status", status, "error", err)
		utils.SendJSONError(w, err.Error(), statusForError(err))
		return
	}
	utils.SendJSON(w, taxResponse{
		TaxableIncome: income,
		Year:          year,
		FilingStatus:  status,
		Tax:           tax,
	}, http.StatusOK)
}

func (h *TaxHandler) HandleStandardDeduction(w http.ResponseWriter, r *http.Request) {
	year, err := optionalIntParam(r, "year", 0)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	status := r.URL.Query().Get("status")

	amount, err := h.service.StandardDeduction(year, status)
	if err != nil {
		utils.SendJSONError(w, err.Error(), statusForError(err))
		return
	}
	utils.SendJSON(w, map[string]float64{"standard_deduction": amount}, http.StatusOK)
}
