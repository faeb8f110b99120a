package errs

import "errors"

// Error classes shared by every use case. Specific sentinels are marked with
// one of these so the HTTP layer can map a whole family to one status.
var (
	// Referenced record does not exist
	ErrNotFound = errors.New("not found")

	// Caller-supplied data failed domain validation
	ErrValidation = errors.New("validation failed")

	// Operation is not allowed in the current state
	ErrConflict = errors.New("conflict")

	// Backing store failed
	ErrStoreOperationFailed = errors.New("store operation failed")
)
