package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/username/fincalc/src/models"
)

// statusForError maps calculation errors onto HTTP status codes. Bad
// arguments are the client's fault; a missing table or rate period means the
// requested year/date is outside the configured data.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrInvalidTable),
		errors.Is(err, models.ErrOutOfRange),
		errors.Is(err, models.ErrInvalidDateOrder),
		errors.Is(err, models.ErrInsufficientHistory):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrTableNotFound),
		errors.Is(err, models.ErrUnknownRatePeriod):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Query parameter helpers. Required parameters report their name; optional
// ones return the fallback when absent.

func floatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

func optionalFloatParam(r *http.Request, name string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

func intParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

func optionalIntParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

func optionalBoolParam(r *http.Request, name string, fallback bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false", name)
	}
	return v, nil
}
