// src/processors/tax.go
package processors

import (
	"fmt"
	"math"

	"github.com/username/fincalc/src/models"
	"github.com/username/fincalc/src/utils"
)

// ComputeTax computes the income tax owed on taxableIncome under a
// progressive bracket table. Each bracket taxes the slice of income between
// its threshold and the next bracket's threshold at its marginal rate; the
// last bracket has no upper bound. Income landing exactly on a threshold is
// taxed entirely at the lower bracket. The result is rounded to 2 decimals.
//
// Year and filing-status selection happen upstream: the caller picks the
// table, this function only integrates over it.
func ComputeTax(taxableIncome float64, table models.TaxBracketTable) (float64, error) {
	if err := table.Validate(); err != nil {
		return 0, err
	}
	if taxableIncome < 0 {
		return 0, fmt.Errorf("%w: taxable income must be >= 0, got %v", models.ErrInvalidInput, taxableIncome)
	}

	var tax float64
	for i, bracket := range table {
		upper := math.Inf(1)
		if i+1 < len(table) {
			upper = table[i+1].Threshold
		}
		if taxableIncome > upper {
			tax += (upper - bracket.Threshold) * bracket.Rate
			continue
		}
		// Final bracket for this income: tax the remainder and stop.
		tax += (taxableIncome - bracket.Threshold) * bracket.Rate
		break
	}
	return utils.RoundCurrency(tax, 2), nil
}
