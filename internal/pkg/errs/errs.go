package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the targets of errors.Is across the application.
var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrBusinessRule           = errors.New("business rule violated")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrValueIsRequired        = errors.New("value is required")
)

// Machine-readable codes carried by BusinessRuleError. The presentation layer
// maps them to user-facing messages; the core only guarantees their stability.
const (
	CodeSupplierInactive    = "SUPPLIER_INACTIVE"
	CodeUserInactive        = "USER_INACTIVE"
	CodeEmptyLines          = "EMPTY_LINES"
	CodeProductInactive     = "PRODUCT_INACTIVE"
	CodeProductNotInCatalog = "PRODUCT_NOT_IN_CATALOG"
	CodeInvalidStatus       = "INVALID_STATUS"
	CodeLinesLocked         = "LINES_LOCKED"
	CodeOrderNotDeletable   = "ORDER_NOT_DELETABLE"
)

// sanitize strips newlines from values before they are embedded in error
// messages, keeping single-line log output intact.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError indicates that a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// BusinessRuleError indicates that a domain rule was violated. Code is a
// stable machine-readable identifier for the violated rule.
type BusinessRuleError struct {
	Message string
	Code    string
	Cause   error
}

func NewBusinessRuleError(message, code string) *BusinessRuleError {
	return &BusinessRuleError{Message: message, Code: code}
}

func NewBusinessRuleErrorWithCause(message, code string, cause error) *BusinessRuleError {
	return &BusinessRuleError{Message: message, Code: code, Cause: cause}
}

func (e *BusinessRuleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrBusinessRule, sanitize(e.Message), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrBusinessRule, sanitize(e.Message))
}

func (e *BusinessRuleError) Unwrap() error {
	return ErrBusinessRule
}

// InvalidStateTransitionError indicates a status change that the order state
// machine does not permit.
type InvalidStateTransitionError struct {
	From string
	To   string
}

func NewInvalidStateTransitionError(from, to string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{From: from, To: to}
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot change status from '%s' to '%s'",
		ErrInvalidStateTransition, e.From, e.To)
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// ValueIsInvalidError indicates that a provided value is not acceptable.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value falls outside its allowed range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v (cause: %v)",
			ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}
