package services

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/fincalc/src/logger"
	"github.com/username/fincalc/src/models"
	"github.com/username/fincalc/src/tables"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

// spyCache records traffic so tests can assert on cache behavior.
type spyCache struct {
	entries map[string]string
	gets    int
	sets    int
}

func newSpyCache() *spyCache {
	return &spyCache{entries: map[string]string{}}
}

func (c *spyCache) Get(_ context.Context, key string) (string, bool) {
	c.gets++
	v, ok := c.entries[key]
	return v, ok
}

func (c *spyCache) Set(_ context.Context, key, value string) {
	c.sets++
	c.entries[key] = value
}

func testStore() *tables.Store {
	federal := tables.TaxTables{
		2021: {"MFJ": models.TaxBracketTable{
			{Threshold: 0, Rate: 0.10},
			{Threshold: 19900, Rate: 0.12},
			{Threshold: 81050, Rate: 0.22},
		}},
	}
	state := tables.TaxTables{
		2021: {"MFJ": models.TaxBracketTable{
			{Threshold: 0, Rate: 0.01},
			{Threshold: 18650, Rate: 0.02},
		}},
	}
	deductions := tables.DeductionTables{2021: {"MFJ": 25100}}
	rates := models.IBondRateTable{
		"2021-05-01": {FixedRate: 0, FloatingRate: 0.0177},
		"2021-11-01": {FixedRate: 0, FloatingRate: 0.0356},
		"2022-05-01": {FixedRate: 0, FloatingRate: 0.0481},
		"2022-11-01": {FixedRate: 0.004, FloatingRate: 0.0324},
	}
	return tables.NewStore(federal, state, deductions, rates)
}

func TestFederalTax(t *testing.T) {
	svc := NewCalculatorService(testStore(), newSpyCache())

	tax, err := svc.FederalTax(30000, 2021, "MFJ")
	require.NoError(t, err)
	assert.Equal(t, 3202.00, tax)

	// Status defaults to MFJ.
	tax, err = svc.FederalTax(30000, 2021, "")
	require.NoError(t, err)
	assert.Equal(t, 3202.00, tax)

	_, err = svc.FederalTax(30000, 1985, "MFJ")
	assert.ErrorIs(t, err, models.ErrTableNotFound)
}

func TestStateTax(t *testing.T) {
	svc := NewCalculatorService(testStore(), newSpyCache())

	tax, err := svc.StateTax(10000, 2021, "MFJ")
	require.NoError(t, err)
	assert.Equal(t, 100.00, tax)
}

func TestStandardDeduction(t *testing.T) {
	svc := NewCalculatorService(testStore(), newSpyCache())

	amount, err := svc.StandardDeduction(2021, "MFJ")
	require.NoError(t, err)
	assert.Equal(t, 25100.0, amount)

	_, err = svc.StandardDeduction(2021, "SINGLE")
	assert.ErrorIs(t, err, models.ErrTableNotFound)
}

func TestLoanScheduleCaching(t *testing.T) {
	spy := newSpyCache()
	svc := NewCalculatorService(testStore(), spy)
	ctx := context.Background()
	req := ScheduleRequest{AnnualRate: 0.03, TermMonths: 12, Principal: 1200}

	first, err := svc.LoanSchedule(ctx, req)
	require.NoError(t, err)
	require.Len(t, first, 12)
	assert.Equal(t, 1, spy.sets)

	second, err := svc.LoanSchedule(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, spy.sets, "cache hit must not recompute")
	assert.Equal(t, 2, spy.gets)
}

func TestLoanScheduleInvalidStartDate(t *testing.T) {
	svc := NewCalculatorService(testStore(), newSpyCache())

	_, err := svc.LoanSchedule(context.Background(), ScheduleRequest{
		AnnualRate: 0.03, TermMonths: 12, Principal: 1200, StartDate: "31/01/2024",
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestLoanBalance(t *testing.T) {
	svc := NewCalculatorService(testStore(), newSpyCache())

	balance, err := svc.LoanBalance(0, 12, 1200, 6)
	require.NoError(t, err)
	assert.Equal(t, 600.0, balance)

	_, err = svc.LoanBalance(0, 12, 1200, 13)
	assert.ErrorIs(t, err, models.ErrOutOfRange)
}

func TestDeductibleInterestDefaultsCap(t *testing.T) {
	svc := NewCalculatorService(testStore(), newSpyCache())
	ctx := context.Background()

	defaulted, err := svc.DeductibleInterest(ctx, 0.04, 360, 900000, 0)
	require.NoError(t, err)
	explicit, err := svc.DeductibleInterest(ctx, 0.04, 360, 900000, models.DefaultMortgageInterestCap)
	require.NoError(t, err)
	assert.Equal(t, explicit, defaulted)
}

func TestBondValue(t *testing.T) {
	spy := newSpyCache()
	svc := NewCalculatorService(testStore(), spy)
	ctx := context.Background()

	req := BondValuationRequest{
		PurchaseDate:   "2021-11-01",
		Principal:      10000,
		EvaluationDate: "2021-12-01",
		EarlyPenalty:   false,
	}
	value, err := svc.BondValue(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 10060, value)

	again, err := svc.BondValue(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, value, again)
	assert.Equal(t, 1, spy.sets, "second call served from cache")
}

func TestBondValueBadDates(t *testing.T) {
	svc := NewCalculatorService(testStore(), newSpyCache())
	ctx := context.Background()

	_, err := svc.BondValue(ctx, BondValuationRequest{PurchaseDate: "11/01/2021", Principal: 100})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = svc.BondValue(ctx, BondValuationRequest{
		PurchaseDate: "2022-06-01", Principal: 100, EvaluationDate: "2021-06-01",
	})
	assert.ErrorIs(t, err, models.ErrInvalidDateOrder)
}
