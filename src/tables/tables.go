// src/tables/tables.go
package tables

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/username/fincalc/src/logger"
	"github.com/username/fincalc/src/models"
)

// File names expected under the configured data directory.
const (
	federalTaxFile = "federal_tax.json"
	stateTaxFile   = "state_tax.json"
	deductionsFile = "standard_deductions.json"
	bondRatesFile  = "ibond_rates.json"
)

// TaxTables maps year -> filing status -> ordered brackets.
type TaxTables map[int]map[string]models.TaxBracketTable

// DeductionTables maps year -> filing status -> standard deduction amount.
type DeductionTables map[int]map[string]float64

// Store holds every rate and tax table the calculators consume. It is
// populated once at startup and never mutated afterwards, so lookups are
// safe from any goroutine.
type Store struct {
	federalTax TaxTables
	stateTax   TaxTables
	deductions DeductionTables
	bondRates  models.IBondRateTable
}

// NewStore builds a store from already-parsed tables. Used directly in tests;
// production code goes through Load.
func NewStore(federal, state TaxTables, deductions DeductionTables, bondRates models.IBondRateTable) *Store {
	return &Store{
		federalTax: federal,
		stateTax:   state,
		deductions: deductions,
		bondRates:  bondRates,
	}
}

// Load reads all table files from dataDir and validates every bracket table
// before returning. A malformed table fails startup rather than surfacing
// later as a wrong calculation.
func Load(dataDir string) (*Store, error) {
	federal, err := loadTaxTables(filepath.Join(dataDir, federalTaxFile))
	if err != nil {
		return nil, fmt.Errorf("loading federal tax tables: %w", err)
	}
	state, err := loadTaxTables(filepath.Join(dataDir, stateTaxFile))
	if err != nil {
		return nil, fmt.Errorf("loading state tax tables: %w", err)
	}
	deductions, err := loadDeductions(filepath.Join(dataDir, deductionsFile))
	if err != nil {
		return nil, fmt.Errorf("loading standard deductions: %w", err)
	}
	bondRates, err := loadBondRates(filepath.Join(dataDir, bondRatesFile))
	if err != nil {
		return nil, fmt.Errorf("loading I bond rates: %w", err)
	}

	logger.L.Info("Rate tables loaded",
		"federalYears", len(federal),
		"stateYears", len(state),
		"deductionYears", len(deductions),
		"bondRatePeriods", len(bondRates))

	return NewStore(federal, state, deductions, bondRates), nil
}

// FederalTax returns the federal bracket table for a year and filing status.
func (s *Store) FederalTax(year int, status string) (models.TaxBracketTable, error) {
	return lookupTaxTable(s.federalTax, year, status)
}

// StateTax returns the state bracket table for a year and filing status.
func (s *Store) StateTax(year int, status string) (models.TaxBracketTable, error) {
	return lookupTaxTable(s.stateTax, year, status)
}

// StandardDeduction returns the standard deduction for a year and filing
// status.
func (s *Store) StandardDeduction(year int, status string) (float64, error) {
	byStatus, ok := s.deductions[year]
	if !ok {
		return 0, fmt.Errorf("%w: year %d", models.ErrTableNotFound, year)
	}
	amount, ok := byStatus[status]
	if !ok {
		return 0, fmt.Errorf("%w: filing status %q in %d", models.ErrTableNotFound, status, year)
	}
	return amount, nil
}

// BondRates returns the I bond rate table.
func (s *Store) BondRates() models.IBondRateTable {
	return s.bondRates
}

func lookupTaxTable(t TaxTables, year int, status string) (models.TaxBracketTable, error) {
	byStatus, ok := t[year]
	if !ok {
		return nil, fmt.Errorf("%w: year %d", models.ErrTableNotFound, year)
	}
	table, ok := byStatus[status]
	if !ok {
		return nil, fmt.Errorf("%w: filing status %q in %d", models.ErrTableNotFound, status, year)
	}
	return table, nil
}

func loadTaxTables(path string) (TaxTables, error) {
	raw := map[string]map[string]models.TaxBracketTable{}
	if err := readJSONFile(path, &raw); err != nil {
		return nil, err
	}
	tables := TaxTables{}
	for yearStr, byStatus := range raw {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Errorf("%w: year key %q in %s", models.ErrInvalidTable, yearStr, path)
		}
		for status, table := range byStatus {
			if err := table.Validate(); err != nil {
				return nil, fmt.Errorf("%s/%s in %s: %w", yearStr, status, path, err)
			}
		}
		tables[year] = byStatus
	}
	return tables, nil
}

func loadDeductions(path string) (DeductionTables, error) {
	raw := map[string]map[string]float64{}
	if err := readJSONFile(path, &raw); err != nil {
		return nil, err
	}
	tables := DeductionTables{}
	for yearStr, byStatus := range raw {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Errorf("%w: year key %q in %s", models.ErrInvalidTable, yearStr, path)
		}
		tables[year] = byStatus
	}
	return tables, nil
}

func loadBondRates(path string) (models.IBondRateTable, error) {
	table := models.IBondRateTable{}
	if err := readJSONFile(path, &table); err != nil {
		return nil, err
	}
	return table, nil
}

func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
