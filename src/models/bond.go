package models

import (
	"fmt"
	"time"
)

// RatePeriodKeyLayout is the date layout used to key I bond rate tables.
// Rate periods always start on May 1 or November 1.
const RatePeriodKeyLayout = "2006-01-02"

// CompositeRatePeriod holds the fixed and floating (semiannual inflation)
// rates published for one 6-month rate period.
type CompositeRatePeriod struct {
	FixedRate    float64 `json:"fixed_rate"`
	FloatingRate float64 `json:"floating_rate"`
}

// IBondRateTable maps a rate-period start date (YYYY-MM-DD) to the rates
// published for that period. It is read-only configuration.
type IBondRateTable map[string]CompositeRatePeriod

// RateFor returns the rates published for the period starting at
// periodStart. A missing entry is an explicit failure; there is no
// fallthrough to neighbouring periods.
func (t IBondRateTable) RateFor(periodStart time.Time) (CompositeRatePeriod, error) {
	key := periodStart.Format(RatePeriodKeyLayout)
	p, ok := t[key]
	if !ok {
		return CompositeRatePeriod{}, fmt.Errorf("%w: %s", ErrUnknownRatePeriod, key)
	}
	return p, nil
}
