// src/processors/amortization.go
package processors

import (
	"fmt"
	"math"
	"time"

	"github.com/username/fincalc/src/models"
	"github.com/username/fincalc/src/utils"
)

// DefaultSchedulePrecision is the decimal precision applied to schedule
// amounts when the caller does not override it.
const DefaultSchedulePrecision = 2

type scheduleConfig struct {
	precision int
	startDate *time.Time
}

// ScheduleOption customizes schedule generation.
type ScheduleOption func(*scheduleConfig)

// WithPrecision sets the decimal precision used when rounding the generated
// schedule.
func WithPrecision(places int) ScheduleOption {
	return func(c *scheduleConfig) { c.precision = places }
}

// WithStartDate attaches calendar dates to the schedule, one month apart
// starting at the given date. The day-of-month is preserved by anchoring at
// the first of each month and adding the day offset, so a day past the end
// of a short month spills into the next one.
func WithStartDate(start time.Time) ScheduleOption {
	return func(c *scheduleConfig) { c.startDate = &start }
}

func validateLoanTerms(annualRate float64, termMonths int, principal float64) error {
	if termMonths <= 0 {
		return fmt.Errorf("%w: term must be positive, got %d months", models.ErrInvalidInput, termMonths)
	}
	if principal <= 0 {
		return fmt.Errorf("%w: principal must be positive, got %v", models.ErrInvalidInput, principal)
	}
	if annualRate < 0 {
		return fmt.Errorf("%w: annual rate must be >= 0, got %v", models.ErrInvalidInput, annualRate)
	}
	return nil
}

// MonthlyPayment returns the level monthly payment that amortizes principal
// over termMonths at the given APR (closed-form annuity payment).
func MonthlyPayment(annualRate float64, termMonths int, principal float64) (float64, error) {
	if err := validateLoanTerms(annualRate, termMonths, principal); err != nil {
		return 0, err
	}
	monthlyRate := annualRate / 12
	if monthlyRate == 0 {
		return principal / float64(termMonths), nil
	}
	return principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(termMonths))), nil
}

// GenerateSchedule produces the full amortization schedule for a
// fixed-payment loan: one period per month, 1-indexed. Interest for period k
// is charged on the previous ending balance; the rest of the level payment
// retires principal. The whole schedule is computed at full precision and
// rounded once at the end, so rounding error does not compound period over
// period.
func GenerateSchedule(annualRate float64, termMonths int, principal float64, opts ...ScheduleOption) ([]models.AmortizationPeriod, error) {
	cfg := scheduleConfig{precision: DefaultSchedulePrecision}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.precision < 0 {
		return nil, fmt.Errorf("%w: precision must be >= 0, got %d", models.ErrInvalidInput, cfg.precision)
	}

	payment, err := MonthlyPayment(annualRate, termMonths, principal)
	if err != nil {
		return nil, err
	}

	monthlyRate := annualRate / 12
	schedule := make([]models.AmortizationPeriod, termMonths)
	balance := principal
	for k := 0; k < termMonths; k++ {
		interest := balance * monthlyRate
		principalPortion := payment - interest
		balance -= principalPortion
		schedule[k] = models.AmortizationPeriod{
			Month:            k + 1,
			Payment:          payment,
			PrincipalPortion: principalPortion,
			InterestPortion:  interest,
			EndingBalance:    balance,
		}
	}

	for k := range schedule {
		schedule[k].Payment = utils.RoundCurrency(schedule[k].Payment, cfg.precision)
		schedule[k].PrincipalPortion = utils.RoundCurrency(schedule[k].PrincipalPortion, cfg.precision)
		schedule[k].InterestPortion = utils.RoundCurrency(schedule[k].InterestPortion, cfg.precision)
		schedule[k].EndingBalance = utils.RoundCurrency(schedule[k].EndingBalance, cfg.precision)
	}

	if cfg.startDate != nil {
		year, month, day := cfg.startDate.Date()
		for k := range schedule {
			monthStart := time.Date(year, month+time.Month(k), 1, 0, 0, 0, 0, time.UTC)
			schedule[k].Date = monthStart.AddDate(0, 0, day-1).Format("2006-01-02")
		}
	}

	return schedule, nil
}

// BalanceAtPeriod returns the loan balance remaining after the given payment
// period. It is defined as the ending balance of that period in the full
// schedule, so the two access paths can never drift apart.
func BalanceAtPeriod(annualRate float64, termMonths int, principal float64, period int) (float64, error) {
	if err := validateLoanTerms(annualRate, termMonths, principal); err != nil {
		return 0, err
	}
	if period < 1 || period > termMonths {
		return 0, fmt.Errorf("%w: period %d not in [1, %d]", models.ErrOutOfRange, period, termMonths)
	}
	schedule, err := GenerateSchedule(annualRate, termMonths, principal)
	if err != nil {
		return 0, err
	}
	return schedule[period-1].EndingBalance, nil
}

// AnnualDeductibleInterest sums the interest paid in each consecutive
// 12-month chunk of the schedule, capping the principal used for the
// computation at capPrincipal (the schedule is regenerated at the capped
// principal, not pro-rated). The final chunk may cover fewer than 12 months.
func AnnualDeductibleInterest(annualRate float64, termMonths int, principal, capPrincipal float64, precision int) ([]models.YearlyInterest, error) {
	if capPrincipal <= 0 {
		return nil, fmt.Errorf("%w: cap principal must be positive, got %v", models.ErrInvalidInput, capPrincipal)
	}
	cappedPrincipal := math.Min(principal, capPrincipal)
	schedule, err := GenerateSchedule(annualRate, termMonths, cappedPrincipal, WithPrecision(precision))
	if err != nil {
		return nil, err
	}

	var years []models.YearlyInterest
	for start := 0; start < len(schedule); start += 12 {
		end := start + 12
		if end > len(schedule) {
			end = len(schedule)
		}
		var sum float64
		for _, period := range schedule[start:end] {
			sum += period.InterestPortion
		}
		years = append(years, models.YearlyInterest{
			Year:     start/12 + 1,
			Interest: utils.RoundCurrency(sum, precision),
		})
	}
	return years, nil
}
