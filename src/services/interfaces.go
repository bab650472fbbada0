// src/services/interfaces.go
package services

import (
	"context"
	"time"

	"github.com/username/fincalc/src/models"
)

const (
	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

// DefaultFilingStatus is the only filing status the bundled tables carry.
const DefaultFilingStatus = "MFJ"

// BondValuationRequest bundles the inputs of a bond valuation. Dates are
// ISO-8601 calendar dates; EvaluationDate defaults to today when empty.
type BondValuationRequest struct {
	PurchaseDate   string  `json:"purchase_date"`
	Principal      float64 `json:"principal"`
	EvaluationDate string  `json:"evaluation_date,omitempty"`
	EarlyPenalty   bool    `json:"early_penalty"`
}

// ScheduleRequest bundles the inputs of a schedule generation. StartDate is
// optional; Precision <= 0 means the default of 2 decimals.
type ScheduleRequest struct {
	AnnualRate float64 `json:"annual_rate"`
	TermMonths int     `json:"term_months"`
	Principal  float64 `json:"principal"`
	Precision  int     `json:"precision,omitempty"`
	StartDate  string  `json:"start_date,omitempty"`
}

// CalculatorService exposes every calculation in the system. Implementations
// are stateless apart from read-only tables and an optional result cache, so
// all methods are safe to call concurrently.
type CalculatorService interface {
	FederalTax(income float64, year int, status string) (float64, error)
	StateTax(income float64, year int, status string) (float64, error)
	StandardDeduction(year int, status string) (float64, error)

	LoanSchedule(ctx context.Context, req ScheduleRequest) ([]models.AmortizationPeriod, error)
	LoanBalance(annualRate float64, termMonths int, principal float64, period int) (float64, error)
	DeductibleInterest(ctx context.Context, annualRate float64, termMonths int, principal, capPrincipal float64) ([]models.YearlyInterest, error)

	BondValue(ctx context.Context, req BondValuationRequest) (int, error)
}
