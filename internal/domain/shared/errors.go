package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")

	// ErrUnbalancedTransaction is returned when the debit and credit sides of a
	// ledger transaction do not sum to the same amount. The posting is rejected
	// in full; account balances are never touched.
	ErrUnbalancedTransaction = NewDomainError("UNBALANCED_TRANSACTION", "Total debits must equal total credits")

	// ErrRateNotFound is returned when neither a direct nor an invertible
	// exchange rate exists for the requested pair on or before the requested
	// date. A rate is never fabricated.
	ErrRateNotFound = NewDomainError("RATE_NOT_FOUND", "No exchange rate available for the requested currency pair and date")

	// ErrNegativeStock is returned when an issue would drive on-hand quantity
	// below zero. The caller has a business-logic bug; the quantity is never
	// clamped.
	ErrNegativeStock = NewDomainError("NEGATIVE_STOCK", "Stock issue would drive on-hand quantity negative")
)

// IsNotFound reports whether err carries the NOT_FOUND domain error code
func IsNotFound(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == ErrNotFound.Code
}

// IsConcurrencyConflict reports whether err carries the CONCURRENCY_CONFLICT code
func IsConcurrencyConflict(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == ErrConcurrencyConflict.Code
}
