package domain

import "errors"

var (
	// ErrValidation input rejected before any request was made
	ErrValidation = errors.New("invalid input")

	// ErrRateNotFound the rate source had no record for the currency and date
	ErrRateNotFound = errors.New("rate not found")

	// ErrRetrieval the rate source could not be reached or answered with an error
	ErrRetrieval = errors.New("API error")

	// ErrExternalTool a helper program is missing or failed
	ErrExternalTool = errors.New("external tool failed")
)
