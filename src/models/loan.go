package models

// DefaultMortgageInterestCap is the principal cap used when computing
// deductible mortgage interest (IRS limit for loans originated after 2017).
const DefaultMortgageInterestCap = 750000.0

// LoanTerms fully determines an amortization schedule.
type LoanTerms struct {
	AnnualRate float64 `json:"annual_rate"`
	TermMonths int     `json:"term_months"`
	Principal  float64 `json:"principal"`
}

// AmortizationPeriod is one month of a fixed-payment amortization schedule.
// Payment = PrincipalPortion + InterestPortion, and the ending balance of the
// final period is zero within rounding tolerance.
type AmortizationPeriod struct {
	Month            int     `json:"month"`
	Date             string  `json:"date,omitempty"` // YYYY-MM-DD, set when a start date was supplied
	Payment          float64 `json:"payment"`
	PrincipalPortion float64 `json:"principal_portion"`
	InterestPortion  float64 `json:"interest_portion"`
	EndingBalance    float64 `json:"ending_balance"`
}

// YearlyInterest is the interest paid during one 12-month chunk of a
// schedule. Year is 1-indexed from the start of the loan.
type YearlyInterest struct {
	Year     int     `json:"year"`
	Interest float64 `json:"interest"`
}
