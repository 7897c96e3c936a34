package receipt

import "strings"

// ValidationError carries every field violation found in one submission.
// The receipt is rejected all-or-nothing: callers surface the joined message
// and store nothing.
type ValidationError struct {
	violations []string
}

func newValidationError(violations []string) *ValidationError {
	return &ValidationError{violations: violations}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.violations, ", ")
}

func (e *ValidationError) Violations() []string {
	return append([]string(nil), e.violations...)
}

// ItemInput is the raw, not-yet-validated form of an item.
type ItemInput struct {
	ShortDescription string
	Price            string
}

// Snapshot is the plain serializable form of a validated receipt, used by
// stores. FromSnapshot revalidates on the way back in.
type Snapshot struct {
	Retailer     string         `json:"retailer"`
	PurchaseDate string         `json:"purchaseDate"`
	PurchaseTime string         `json:"purchaseTime"`
	Items        []ItemSnapshot `json:"items"`
	Total        string         `json:"total"`
}

type ItemSnapshot struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"`
}
