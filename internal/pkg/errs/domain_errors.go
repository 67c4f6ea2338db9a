package errs

import "errors"

// Error taxonomy shared by the usecase and handler layers.
// Specific errors are attached to one of these with Mark so callers can branch
// on the category while logs keep the original message.
var (
	// Malformed input (bad vehicle number, pincode, negative price...). Never retried.
	ErrValidation = errors.New("validation error")

	// Business rule violation: double booking, deleting occupied resources,
	// duplicate lot codes. Also returned when storage contention outlasts the retry budget.
	ErrConflict = errors.New("conflict")

	// Lot has no Available spot at commit time. Caller may try another lot.
	ErrCapacity = errors.New("capacity exhausted")

	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)
