package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotText indicates the input value has no textual representation
	// and cannot enter the normalization pipeline.
	ErrNotText = errors.New("input has no textual representation")

	// ErrNonDigitICO indicates the input contains a character outside 0-9.
	// Negative numbers, decimals and alphabetic input all fail here.
	ErrNonDigitICO = errors.New("ICO contains a non-digit character")

	// ErrICOTooLong indicates the input exceeds the eight-digit identifier
	// space. Longer input is never valid and is never truncated.
	ErrICOTooLong = errors.New("ICO exceeds 8 digits")

	// ErrNotFound indicates the registry reported no subject for the
	// identifier, or the registry could not be reached. The two cases are
	// collapsed by contract; the wrapped cause remains on the error chain.
	ErrNotFound = errors.New("subject not found")

	// ErrMalformedResponse indicates the registry returned a success status
	// with a body that could not be decoded as a subject record.
	ErrMalformedResponse = errors.New("malformed registry response")

	// ErrIncompleteRecord indicates a subject record is missing a field
	// required for the formal description. Expected for sparse upstream
	// data, never raised as a fault.
	ErrIncompleteRecord = errors.New("subject record is incomplete")
)
