package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/fincalc/src/models"
)

func TestAnnualInsurance(t *testing.T) {
	amount, err := AnnualInsurance(400000, DefaultInsuranceRate)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, amount)

	_, err = AnnualInsurance(0, DefaultInsuranceRate)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestAnnualPropertyTax(t *testing.T) {
	amount, err := AnnualPropertyTax(400000, DefaultPropertyTaxRate)
	require.NoError(t, err)
	assert.Equal(t, 5080.0, amount)

	_, err = AnnualPropertyTax(400000, -0.01)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
