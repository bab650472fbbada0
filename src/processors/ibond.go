// src/processors/ibond.go
package processors

import (
	"fmt"
	"math"
	"time"

	"github.com/username/fincalc/src/models"
)

// Bonds held less than this many months forfeit the last 3 months of
// interest when redeemed.
const earlyPenaltyHorizonMonths = 60

// RatePeriodStart returns the start of the 6-month rate period covering d.
// Periods begin on May 1 and November 1; January through April fall under
// the previous year's November period.
func RatePeriodStart(d time.Time) time.Time {
	switch {
	case d.Month() < time.May:
		return time.Date(d.Year()-1, time.November, 1, 0, 0, 0, 0, time.UTC)
	case d.Month() < time.November:
		return time.Date(d.Year(), time.May, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(d.Year(), time.November, 1, 0, 0, 0, 0, time.UTC)
	}
}

func monthStart(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// accrualTrace simulates a bond month by month and returns one value
// snapshot per elapsed month, starting with the uncompounded principal.
//
// The fixed rate is locked from the purchase date's rate period for the life
// of the bond. The floating rate resets every 6 months of *holding*, not at
// calendar rate-reset dates: for compounding month k the active period is
// derived from purchase + 6*floor(k/6) months, a pure function of the inputs.
func accrualTrace(purchaseMonth, evaluationMonth time.Time, principal float64, table models.IBondRateTable) ([]float64, error) {
	issuePeriod, err := table.RateFor(RatePeriodStart(purchaseMonth))
	if err != nil {
		return nil, err
	}
	fixedRate := issuePeriod.FixedRate

	trace := []float64{principal}
	elapsed := monthsBetween(purchaseMonth, evaluationMonth)
	for k := 0; k < elapsed; k++ {
		anchor := purchaseMonth.AddDate(0, k-k%6, 0)
		period, err := table.RateFor(RatePeriodStart(anchor))
		if err != nil {
			return nil, err
		}
		compositeRate := fixedRate + 2*period.FloatingRate + fixedRate*period.FloatingRate
		trace = append(trace, trace[len(trace)-1]*(1+compositeRate/12))
	}
	return trace, nil
}

// roundRedemption applies Treasury redemption rounding: values are rounded
// to a multiple of $4, downward when the remainder is 0 or 1 and upward when
// it is 2 or 3.
func roundRedemption(value float64) int {
	remainder := math.Mod(value, 4)
	if remainder < 2 {
		value -= remainder
	} else {
		value += 4 - remainder
	}
	return int(math.Round(value))
}

// ValuateIBond computes the redemption value of a Series I savings bond
// purchased on purchase for the given principal, as of evaluation. Both
// dates are normalized to the first of their month before elapsed months are
// counted, so the day-of-month never shifts which month is the last
// completed one.
//
// With earlyPenalty set, a bond held less than 5 years returns the value
// from 3 months before the evaluation month (the last 3 months of interest
// are forfeited). The returned value is rounded to a multiple of $4.
func ValuateIBond(purchase time.Time, principal float64, evaluation time.Time, earlyPenalty bool, table models.IBondRateTable) (int, error) {
	if principal <= 0 {
		return 0, fmt.Errorf("%w: principal must be positive, got %v", models.ErrInvalidInput, principal)
	}
	purchaseMonth := monthStart(purchase)
	evaluationMonth := monthStart(evaluation)
	if evaluationMonth.Before(purchaseMonth) {
		return 0, fmt.Errorf("%w: %s precedes %s", models.ErrInvalidDateOrder,
			evaluation.Format("2006-01-02"), purchase.Format("2006-01-02"))
	}

	trace, err := accrualTrace(purchaseMonth, evaluationMonth, principal, table)
	if err != nil {
		return 0, err
	}

	elapsedMonths := len(trace) - 1
	value := trace[len(trace)-1]
	if earlyPenalty && elapsedMonths < earlyPenaltyHorizonMonths {
		if len(trace) < 4 {
			return 0, fmt.Errorf("%w: only %d months accrued", models.ErrInsufficientHistory, elapsedMonths)
		}
		value = trace[len(trace)-4]
	}
	return roundRedemption(value), nil
}
