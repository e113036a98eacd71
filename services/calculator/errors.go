package calculator

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to the caller. The calculator is fail-fast: any error
// aborts the whole calculation and no partial quote is ever returned.
const (
	ErrKindConfiguration    = "configurationError"    // missing/empty price components or tier tables
	ErrKindOutOfRange       = "outOfRangeError"       // quantity matches no tier
	ErrKindMismatch         = "mismatchError"         // service/business or address/service linkage broken
	ErrKindExternalProvider = "externalProviderError" // distance lookup failed or timed out
	ErrKindValidation       = "validationError"       // malformed input
)

// CalculationError carries the error kind so callers can decide whether to
// retry, prompt the user, or escalate.
type CalculationError struct {
	Kind    string
	Message string
	Err     error
}

func (e *CalculationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}

func newConfigurationError(format string, args ...any) error {
	return &CalculationError{Kind: ErrKindConfiguration, Message: fmt.Sprintf(format, args...)}
}

func newOutOfRangeError(format string, args ...any) error {
	return &CalculationError{Kind: ErrKindOutOfRange, Message: fmt.Sprintf(format, args...)}
}

func newMismatchError(format string, args ...any) error {
	return &CalculationError{Kind: ErrKindMismatch, Message: fmt.Sprintf(format, args...)}
}

func newExternalProviderError(err error, format string, args ...any) error {
	return &CalculationError{Kind: ErrKindExternalProvider, Message: fmt.Sprintf(format, args...), Err: err}
}

func newValidationError(format string, args ...any) error {
	return &CalculationError{Kind: ErrKindValidation, Message: fmt.Sprintf(format, args...)}
}

// ErrorKind extracts the calculation error kind, or "" for foreign errors.
func ErrorKind(err error) string {
	var ce *CalculationError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}
