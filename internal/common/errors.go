package common

import "errors"

var (
	// Lookup errors; package sentinels wrap it.
	ErrorNotFound = errors.New("not found")

	// Validation errors raised by the view layer before the ledger is called.
	ErrorValidation = errors.New("validation error")
)
