// src/services/calculator_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/username/fincalc/src/cache"
	"github.com/username/fincalc/src/logger"
	"github.com/username/fincalc/src/models"
	"github.com/username/fincalc/src/processors"
	"github.com/username/fincalc/src/tables"
)

type calculatorService struct {
	tables *tables.Store
	cache  cache.Cache
}

// NewCalculatorService wires the calculators to a table store and a result
// cache. Schedules and bond valuations are cached by their full parameter
// set; tax lookups are cheap enough to recompute every time.
func NewCalculatorService(store *tables.Store, resultCache cache.Cache) CalculatorService {
	return &calculatorService{tables: store, cache: resultCache}
}

func (s *calculatorService) FederalTax(income float64, year int, status string) (float64, error) {
	table, err := s.resolveTaxTable(s.tables.FederalTax, year, status)
	if err != nil {
		return 0, err
	}
	return processors.ComputeTax(income, table)
}

func (s *calculatorService) StateTax(income float64, year int, status string) (float64, error) {
	table, err := s.resolveTaxTable(s.tables.StateTax, year, status)
	if err != nil {
		return 0, err
	}
	return processors.ComputeTax(income, table)
}

func (s *calculatorService) StandardDeduction(year int, status string) (float64, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	if status == "" {
		status = DefaultFilingStatus
	}
	return s.tables.StandardDeduction(year, status)
}

func (s *calculatorService) resolveTaxTable(lookup func(int, string) (models.TaxBracketTable, error), year int, status string) (models.TaxBracketTable, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	if status == "" {
		status = DefaultFilingStatus
	}
	return lookup(year, status)
}

func (s *calculatorService) LoanSchedule(ctx context.Context, req ScheduleRequest) ([]models.AmortizationPeriod, error) {
	precision := req.Precision
	if precision <= 0 {
		precision = processors.DefaultSchedulePrecision
	}
	cacheKey := fmt.Sprintf("schedule:%v:%d:%v:%d:%s",
		req.AnnualRate, req.TermMonths, req.Principal, precision, req.StartDate)

	var schedule []models.AmortizationPeriod
	if hit(ctx, s.cache, cacheKey, &schedule) {
		return schedule, nil
	}

	opts := []processors.ScheduleOption{processors.WithPrecision(precision)}
	if req.StartDate != "" {
		start, err := parseISODate(req.StartDate)
		if err != nil {
			return nil, err
		}
		opts = append(opts, processors.WithStartDate(start))
	}
	schedule, err := processors.GenerateSchedule(req.AnnualRate, req.TermMonths, req.Principal, opts...)
	if err != nil {
		return nil, err
	}
	store(ctx, s.cache, cacheKey, schedule)
	return schedule, nil
}

func (s *calculatorService) LoanBalance(annualRate float64, termMonths int, principal float64, period int) (float64, error) {
	return processors.BalanceAtPeriod(annualRate, termMonths, principal, period)
}

func (s *calculatorService) DeductibleInterest(ctx context.Context, annualRate float64, termMonths int, principal, capPrincipal float64) ([]models.YearlyInterest, error) {
	if capPrincipal == 0 {
		capPrincipal = models.DefaultMortgageInterestCap
	}
	cacheKey := fmt.Sprintf("dedint:%v:%d:%v:%v", annualRate, termMonths, principal, capPrincipal)

	var years []models.YearlyInterest
	if hit(ctx, s.cache, cacheKey, &years) {
		return years, nil
	}
	years, err := processors.AnnualDeductibleInterest(annualRate, termMonths, principal, capPrincipal, processors.DefaultSchedulePrecision)
	if err != nil {
		return nil, err
	}
	store(ctx, s.cache, cacheKey, years)
	return years, nil
}

func (s *calculatorService) BondValue(ctx context.Context, req BondValuationRequest) (int, error) {
	purchase, err := parseISODate(req.PurchaseDate)
	if err != nil {
		return 0, err
	}
	evaluation := time.Now().UTC()
	if req.EvaluationDate != "" {
		evaluation, err = parseISODate(req.EvaluationDate)
		if err != nil {
			return 0, err
		}
	}

	cacheKey := fmt.Sprintf("ibond:%s:%v:%s:%v",
		purchase.Format("2006-01-02"), req.Principal, evaluation.Format("2006-01"), req.EarlyPenalty)
	if cached, found := s.cache.Get(ctx, cacheKey); found {
		if value, err := strconv.Atoi(cached); err == nil {
			logger.FromContext(ctx).Debug("Bond valuation cache hit", "key", cacheKey)
			return value, nil
		}
	}

	value, err := processors.ValuateIBond(purchase, req.Principal, evaluation, req.EarlyPenalty, s.tables.BondRates())
	if err != nil {
		return 0, err
	}
	s.cache.Set(ctx, cacheKey, strconv.Itoa(value))
	return value, nil
}

func parseISODate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", models.ErrInvalidInput, s)
	}
	return d, nil
}

// hit loads a cached JSON value into out, reporting whether the key was
// present and decodable.
func hit(ctx context.Context, c cache.Cache, key string, out interface{}) bool {
	cached, found := c.Get(ctx, key)
	if !found {
		return false
	}
	if err := json.Unmarshal([]byte(cached), out); err != nil {
		logger.FromContext(ctx).Warn("Dropping undecodable cache entry", "key", key, "error", err)
		return false
	}
	logger.FromContext(ctx).Debug("Result cache hit", "key", key)
	return true
}

func store(ctx context.Context, c cache.Cache, key string, v interface{}) {
	encoded, err := json.Marshal(v)
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to encode result for caching", "key", key, "error", err)
		return
	}
	c.Set(ctx, key, string(encoded))
}
