package processors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/fincalc/src/models"
)

func TestMonthlyPayment(t *testing.T) {
	payment, err := MonthlyPayment(0.03, 12, 1200)
	require.NoError(t, err)
	assert.InDelta(t, 101.63, payment, 0.005)

	// Degenerate zero-rate case falls back to straight division.
	payment, err = MonthlyPayment(0, 12, 1200)
	require.NoError(t, err)
	assert.Equal(t, 100.0, payment)
}

func TestGenerateSchedule(t *testing.T) {
	schedule, err := GenerateSchedule(0.03, 12, 1200)
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	first := schedule[0]
	assert.Equal(t, 1, first.Month)
	assert.Equal(t, 101.63, first.Payment)
	assert.Equal(t, 3.00, first.InterestPortion)
	assert.Equal(t, 98.63, first.PrincipalPortion)
	assert.Equal(t, 1101.37, first.EndingBalance)

	last := schedule[len(schedule)-1]
	assert.Equal(t, 12, last.Month)
	assert.InDelta(t, 0, last.EndingBalance, 0.01)
}

func TestGenerateScheduleInvariants(t *testing.T) {
	cases := []models.LoanTerms{
		{AnnualRate: 0.03, TermMonths: 12, Principal: 1200},
		{AnnualRate: 0.065, TermMonths: 360, Principal: 500000},
		{AnnualRate: 0, TermMonths: 48, Principal: 24000},
		{AnnualRate: 0.12, TermMonths: 7, Principal: 999.99},
	}

	for _, terms := range cases {
		schedule, err := GenerateSchedule(terms.AnnualRate, terms.TermMonths, terms.Principal)
		require.NoError(t, err)
		require.Len(t, schedule, terms.TermMonths)

		tolerance := 0.01 * float64(terms.TermMonths)
		var principalSum float64
		for _, period := range schedule {
			principalSum += period.PrincipalPortion
			assert.InDelta(t, period.Payment, period.PrincipalPortion+period.InterestPortion, 0.02,
				"period %d of %+v", period.Month, terms)
		}
		assert.InDelta(t, terms.Principal, principalSum, tolerance, "principal sum for %+v", terms)
		assert.InDelta(t, 0, schedule[len(schedule)-1].EndingBalance, tolerance, "final balance for %+v", terms)
	}
}

func TestGenerateScheduleZeroRate(t *testing.T) {
	schedule, err := GenerateSchedule(0, 12, 1200)
	require.NoError(t, err)
	for i, period := range schedule {
		assert.Equal(t, 100.0, period.Payment)
		assert.Equal(t, 0.0, period.InterestPortion)
		assert.Equal(t, 100.0, period.PrincipalPortion)
		assert.Equal(t, 1200-float64(i+1)*100, period.EndingBalance)
	}
}

func TestGenerateScheduleWithStartDate(t *testing.T) {
	start := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	schedule, err := GenerateSchedule(0.05, 3, 9000, WithStartDate(start))
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15", schedule[0].Date)
	assert.Equal(t, "2024-04-15", schedule[1].Date)
	assert.Equal(t, "2024-05-15", schedule[2].Date)
}

func TestGenerateScheduleStartDateSpillsShortMonths(t *testing.T) {
	// Day 31 anchored against February lands in early March.
	start := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	schedule, err := GenerateSchedule(0.05, 3, 9000, WithStartDate(start))
	require.NoError(t, err)

	assert.Equal(t, "2024-01-31", schedule[0].Date)
	assert.Equal(t, "2024-03-02", schedule[1].Date)
	assert.Equal(t, "2024-03-31", schedule[2].Date)
}

func TestGenerateSchedulePrecision(t *testing.T) {
	schedule, err := GenerateSchedule(0.03, 12, 1200, WithPrecision(4))
	require.NoError(t, err)
	assert.InDelta(t, 101.6324, schedule[0].Payment, 0.0001)

	_, err = GenerateSchedule(0.03, 12, 1200, WithPrecision(-1))
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestGenerateScheduleInvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		annualRate float64
		termMonths int
		principal  float64
	}{
		{"zero term", 0.05, 0, 1000},
		{"negative term", 0.05, -12, 1000},
		{"zero principal", 0.05, 12, 0},
		{"negative principal", 0.05, 12, -1000},
		{"negative rate", -0.05, 12, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSchedule(tt.annualRate, tt.termMonths, tt.principal)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

func TestBalanceAtPeriodMatchesSchedule(t *testing.T) {
	schedule, err := GenerateSchedule(0.04, 24, 10000)
	require.NoError(t, err)

	for period := 1; period <= 24; period++ {
		balance, err := BalanceAtPeriod(0.04, 24, 10000, period)
		require.NoError(t, err)
		assert.Equal(t, schedule[period-1].EndingBalance, balance, "period %d", period)
	}
}

func TestBalanceAtPeriodOutOfRange(t *testing.T) {
	for _, period := range []int{0, -1, 25} {
		_, err := BalanceAtPeriod(0.04, 24, 10000, period)
		assert.ErrorIs(t, err, models.ErrOutOfRange, "period %d", period)
	}
}

func TestAnnualDeductibleInterest(t *testing.T) {
	years, err := AnnualDeductibleInterest(0.05, 30, 100000, models.DefaultMortgageInterestCap, 2)
	require.NoError(t, err)
	require.Len(t, years, 3) // two full years plus a 6-month tail

	assert.Equal(t, 1, years[0].Year)
	assert.Equal(t, 2, years[1].Year)
	assert.Equal(t, 3, years[2].Year)
	assert.Greater(t, years[0].Interest, years[1].Interest, "interest declines as the balance drops")
	assert.Greater(t, years[1].Interest, years[2].Interest)
}

func TestAnnualDeductibleInterestCapsPrincipal(t *testing.T) {
	capped, err := AnnualDeductibleInterest(0.04, 360, 800000, models.DefaultMortgageInterestCap, 2)
	require.NoError(t, err)
	cappedHigher, err := AnnualDeductibleInterest(0.04, 360, 900000, models.DefaultMortgageInterestCap, 2)
	require.NoError(t, err)
	atCap, err := AnnualDeductibleInterest(0.04, 360, 750000, models.DefaultMortgageInterestCap, 2)
	require.NoError(t, err)

	// Above the cap, the actual principal no longer matters.
	assert.Equal(t, atCap, capped)
	assert.Equal(t, atCap, cappedHigher)
}

func TestAnnualDeductibleInterestInvalidCap(t *testing.T) {
	_, err := AnnualDeductibleInterest(0.04, 360, 800000, 0, 2)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
