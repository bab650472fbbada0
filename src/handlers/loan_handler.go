// src/handlers/loan_handler.go
package handlers

import (
	"net/http"

	"github.com/username/fincalc/src/logger"
	"github.com/username/fincalc/src/services"
	"github.com/username/fincalc/src/utils"
)

type LoanHandler struct {
	service services.CalculatorService
}

func NewLoanHandler(service services.CalculatorService) *LoanHandler {
	return &LoanHandler{service: service}
}

// loanParams pulls the common rate/term/principal triple out of the query.
func loanParams(r *http.Request) (float64, int, float64, error) {
	rate, err := floatParam(r, "rate")
	if err != nil {
		return 0, 0, 0, err
	}
	termMonths, err := intParam(r, "term_months")
	if err != nil {
		return 0, 0, 0, err
	}
	principal, err := floatParam(r, "principal")
	if err != nil {
		return 0, 0, 0, err
	}
	return rate, termMonths, principal, nil
}

func (h *LoanHandler) HandleGetSchedule(w http.ResponseWriter, r *http.Request) {
	rate, termMonths, principal, err := loanParams(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	precision, err := optionalIntParam(r, "precision", 0)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	schedule, err := h.service.LoanSchedule(r.Context(), services.ScheduleRequest{
		AnnualRate: rate,
		TermMonths: termMonths,
		Principal:  principal,
		Precision:  precision,
		StartDate:  r.URL.Query().Get("start_date"),
	})
	if err != nil {
		logger.FromContext(r.Context()).Warn("Schedule generation failed",
			"rate", rate, "termMonths", termMonths, "principal", principal, "error", err)
		utils.SendJSONError(w, err.Error(), statusForError(err))
		return
	}
	utils.SendJSON(w, schedule, http.StatusOK)
}

func (h *LoanHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	rate, termMonths, principal, err := loanParams(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	period, err := intParam(r, "period")
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	balance, err := h.service.LoanBalance(rate, termMonths, principal, period)
	if err != nil {
		utils.SendJSONError(w, err.Error(), statusForError(err))
		return
	}
	utils.SendJSON(w, map[string]interface{}{"period": period, "balance": balance}, http.StatusOK)
}

func (h *LoanHandler) HandleGetDeductibleInterest(w http.ResponseWriter, r *http.Request) {
	rate, termMonths, principal, err := loanParams(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	capPrincipal, err := optionalFloatParam(r, "cap", 0)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	years, err := h.service.DeductibleInterest(r.Context(), rate, termMonths, principal, capPrincipal)
	if err != nil {
		utils.SendJSONError(w, err.Error(), statusForError(err))
		return
	}
	utils.SendJSON(w, years, http.StatusOK)
}
