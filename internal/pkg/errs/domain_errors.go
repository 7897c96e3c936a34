package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Receipt errors
	ErrInvalidReceipt  = errors.New("receipt validation failed")
	ErrReceiptNotFound = errors.New("receipt not found")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
