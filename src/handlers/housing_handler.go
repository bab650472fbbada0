// src/handlers/housing_handler.go
package handlers

import (
	"net/http"

	"github.com/username/fincalc/src/processors"
	"github.com/username/fincalc/src/utils"
)

// HousingHandler serves the small home-ownership estimates. These are plain
// rate-times-value figures, so it calls the processors directly.
type HousingHandler struct{}

func NewHousingHandler() *HousingHandler {
	return &HousingHandler{}
}

func (h *HousingHandler) HandleGetInsurance(w http.ResponseWriter, r *http.Request) {
	h.handleEstimate(w, r, processors.DefaultInsuranceRate, processors.AnnualInsurance, "annual_insurance")
}

func (h *HousingHandler) HandleGetPropertyTax(w http.ResponseWriter, r *http.Request) {
	h.handleEstimate(w, r, processors.DefaultPropertyTaxRate, processors.AnnualPropertyTax, "annual_property_tax")
}

func (h *HousingHandler) handleEstimate(w http.ResponseWriter, r *http.Request, defaultRate float64, estimate func(float64, float64) (float64, error), field string) {
	value, err := floatParam(r, "value")
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	rate, err := optionalFloatParam(r, "rate", defaultRate)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	amount, err := estimate(value, rate)
	if err != nil {
		utils.SendJSONError(w, err.Error(), statusForError(err))
		return
	}
	utils.SendJSON(w, map[string]float64{field: amount}, http.StatusOK)
}
