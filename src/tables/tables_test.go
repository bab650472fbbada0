package tables

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/fincalc/src/logger"
	"github.com/username/fincalc/src/models"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

func TestLoad(t *testing.T) {
	store, err := Load("testdata")
	require.NoError(t, err)

	federal, err := store.FederalTax(2021, "MFJ")
	require.NoError(t, err)
	require.Len(t, federal, 7)
	assert.Equal(t, 0.0, federal[0].Threshold)
	assert.Equal(t, 0.37, federal[6].Rate)

	state, err := store.StateTax(2021, "MFJ")
	require.NoError(t, err)
	assert.Len(t, state, 9)

	deduction, err := store.StandardDeduction(2021, "MFJ")
	require.NoError(t, err)
	assert.Equal(t, 25100.0, deduction)

	rates := store.BondRates()
	period, ok := rates["2021-11-01"]
	require.True(t, ok)
	assert.Equal(t, 0.0356, period.FloatingRate)
}

func TestLoadRejectsMalformedBracketTable(t *testing.T) {
	_, err := Load("testdata/bad")
	assert.ErrorIs(t, err, models.ErrInvalidTable)
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load("testdata/nope")
	assert.Error(t, err)
}

func TestLookupFailures(t *testing.T) {
	store, err := Load("testdata")
	require.NoError(t, err)

	_, err = store.FederalTax(1985, "MFJ")
	assert.ErrorIs(t, err, models.ErrTableNotFound)

	_, err = store.FederalTax(2021, "SINGLE")
	assert.ErrorIs(t, err, models.ErrTableNotFound)

	_, err = store.StandardDeduction(1985, "MFJ")
	assert.ErrorIs(t, err, models.ErrTableNotFound)

	_, err = store.StandardDeduction(2021, "SINGLE")
	assert.ErrorIs(t, err, models.ErrTableNotFound)
}
