package processors

import (
	"fmt"

	"github.com/username/fincalc/src/models"
	"github.com/username/fincalc/src/utils"
)

// Typical rates used when the caller does not supply one.
const (
	DefaultInsuranceRate   = 0.0025
	DefaultPropertyTaxRate = 0.0127
)

// AnnualInsurance estimates the yearly homeowner's insurance premium as a
// percentage of home value.
func AnnualInsurance(homeValue, rate float64) (float64, error) {
	if err := validateHousingInput(homeValue, rate); err != nil {
		return 0, err
	}
	return utils.RoundCurrency(homeValue*rate, 2), nil
}

// AnnualPropertyTax computes the yearly property tax on a taxable home value.
func AnnualPropertyTax(homeValue, rate float64) (float64, error) {
	if err := validateHousingInput(homeValue, rate); err != nil {
		return 0, err
	}
	return utils.RoundCurrency(homeValue*rate, 2), nil
}

func validateHousingInput(homeValue, rate float64) error {
	if homeValue <= 0 {
		return fmt.Errorf("%w: home value must be positive, got %v", models.ErrInvalidInput, homeValue)
	}
	if rate < 0 {
		return fmt.Errorf("%w: rate must be >= 0, got %v", models.ErrInvalidInput, rate)
	}
	return nil
}
