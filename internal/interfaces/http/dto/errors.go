package dto

import "net/http"

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is used when request validation fails
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeUnauthorized is used when authentication is required but missing
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "RATE_LIMITED"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall back to 422: they are business rule
// violations raised by the domain layer.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeRateLimited:  http.StatusTooManyRequests,

	"NOT_FOUND":         http.StatusNotFound,
	"RATE_NOT_FOUND":    http.StatusNotFound,
	"UNKNOWN_PRODUCT":   http.StatusNotFound,
	"UNKNOWN_ACCOUNT":   http.StatusNotFound,
	"ITEM_NOT_FOUND":    http.StatusNotFound,
	"LINE_NOT_FOUND":    http.StatusNotFound,

	"ALREADY_EXISTS":       http.StatusConflict,
	"CODE_EXISTS":          http.StatusConflict,
	"DUPLICATE_NUMBER":     http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	"INVALID_INPUT":    http.StatusBadRequest,
	"INVALID_CURRENCY": http.StatusBadRequest,
	"INVALID_AMOUNT":   http.StatusBadRequest,
	"INVALID_QUANTITY": http.StatusBadRequest,
	"INVALID_RATE":     http.StatusBadRequest,
	"INVALID_PAIR":     http.StatusBadRequest,
	"INVALID_TYPE":     http.StatusBadRequest,
	"INVALID_DATE":     http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for a domain error code
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusUnprocessableEntity
}
