package models

import "errors"

// Calculation errors. All failures are deterministic functions of the input;
// handlers map them onto HTTP status codes with errors.Is.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidTable        = errors.New("invalid bracket table")
	ErrOutOfRange          = errors.New("period out of range")
	ErrUnknownRatePeriod   = errors.New("no rate published for period")
	ErrInvalidDateOrder    = errors.New("evaluation date precedes purchase date")
	ErrInsufficientHistory = errors.New("insufficient accrual history for early-redemption penalty")
	ErrTableNotFound       = errors.New("no table for requested year or filing status")
)
