package models

import "fmt"

// TaxBracket is one rung of a progressive tax table: all income above
// Threshold (up to the next bracket's threshold) is taxed at Rate.
type TaxBracket struct {
	Threshold float64 `json:"threshold"`
	Rate      float64 `json:"rate"`
}

// TaxBracketTable is an ordered set of brackets. The first threshold must be
// zero and thresholds must be strictly increasing; the last bracket has no
// upper bound.
type TaxBracketTable []TaxBracket

// Validate checks the structural invariants of the table.
func (t TaxBracketTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: table is empty", ErrInvalidTable)
	}
	if t[0].Threshold != 0 {
		return fmt.Errorf("%w: first threshold must be 0, got %v", ErrInvalidTable, t[0].Threshold)
	}
	for i, b := range t {
		if b.Rate <= 0 || b.Rate >= 1 {
			return fmt.Errorf("%w: rate at threshold %v must be in (0, 1), got %v", ErrInvalidTable, b.Threshold, b.Rate)
		}
		if i > 0 && b.Threshold <= t[i-1].Threshold {
			return fmt.Errorf("%w: thresholds must be strictly increasing (%v after %v)", ErrInvalidTable, b.Threshold, t[i-1].Threshold)
		}
	}
	return nil
}
