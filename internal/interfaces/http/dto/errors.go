package dto

import (
	"net/http"
	"strings"
)

// Error codes used by the HTTP layer itself. Domain errors carry their own
// codes (NOT_FOUND, ALREADY_EXISTS, ...) and are mapped below.
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeRateLimited  = "RATE_LIMITED"
)

// errorCodeStatus maps error codes to HTTP status codes
var errorCodeStatus = map[string]int{
	// Input
	ErrCodeBadRequest:     http.StatusBadRequest,
	ErrCodeValidation:     http.StatusBadRequest,
	"CONFIGURATION_ERROR": http.StatusBadRequest,

	// Authentication and access
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"INVALID_TOKEN":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,
	"COMPANY_INACTIVE":    http.StatusForbidden,

	// Resources
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeConflict:        http.StatusConflict,
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Business rules
	"PLAN_LIMIT_REACHED": http.StatusUnprocessableEntity,
	"DEFAULT_CATEGORY":   http.StatusUnprocessableEntity,
	"SELF_DEACTIVATION":  http.StatusUnprocessableEntity,
	"SELF_DELETION":      http.StatusUnprocessableEntity,
	"ALREADY_PAID":       http.StatusUnprocessableEntity,
	"ALREADY_UNPAID":     http.StatusUnprocessableEntity,

	// Infrastructure
	ErrCodeInternal:          http.StatusInternalServerError,
	"DB_ERROR":               http.StatusInternalServerError,
	"CODE_GENERATION_FAILED": http.StatusInternalServerError,
	ErrCodeRateLimited:       http.StatusTooManyRequests,
	"REQUEST_TOO_LARGE":      http.StatusRequestEntityTooLarge,
}

// GetHTTPStatus returns the HTTP status for an error code. Codes without an
// explicit mapping fall back on their prefix: INVALID_* and CANNOT_* are
// client mistakes, ALREADY_* are state conflicts, everything else is a 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeStatus[code]; ok {
		return status
	}
	switch {
	case strings.HasPrefix(code, "INVALID_"), strings.HasPrefix(code, "CANNOT_"):
		return http.StatusBadRequest
	case strings.HasPrefix(code, "ALREADY_"):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
