package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- File Import (IMP) ----

func ErrUnsupportedFormat(ext string) *AppError {
	return New("IMP_001", fmt.Sprintf("Unsupported file format %q, expected .csv, .xls or .xlsx", ext), http.StatusBadRequest)
}

func ErrParse(err error) *AppError {
	return Wrap("IMP_002", "Malformed payroll file", http.StatusBadRequest, err)
}

func ErrMissingColumn(column string) *AppError {
	return New("IMP_003", fmt.Sprintf("Missing required column: %s", column), http.StatusBadRequest)
}

func ErrNoValidRows() *AppError {
	return New("IMP_004", "File contains no valid payroll rows", http.StatusBadRequest)
}

// ---- Claim Lifecycle (CLM) ----

func ErrInvalidClaimToken() *AppError {
	return New("CLM_001", "Invalid or corrupted claim token", http.StatusUnauthorized)
}

func ErrAlreadyClaimed() *AppError {
	return New("CLM_002", "Allotment for this period has already been claimed", http.StatusConflict)
}

func ErrNotEligible() *AppError {
	return New("CLM_003", "Period is outside the entry's claimable range", http.StatusUnprocessableEntity)
}

// ---- Relayed Transfers (RLY) ----

func ErrInvalidSignature() *AppError {
	return New("RLY_001", "Signature does not match the authorizing user", http.StatusUnauthorized)
}

func ErrExpiredAuthorization() *AppError {
	return New("RLY_002", "Authorization deadline has elapsed", http.StatusForbidden)
}

func ErrNonceReused() *AppError {
	return New("RLY_003", "Authorization nonce has already been used", http.StatusConflict)
}

func ErrInsufficientFunds() *AppError {
	return New("RLY_004", "Insufficient vault balance for transfer", http.StatusPaymentRequired)
}

func ErrNetwork(err error) *AppError {
	return Wrap("RLY_005", "Custody layer rejected or failed the submission", http.StatusBadGateway, err)
}

// ---- Payroll Business Logic (PAY) ----

func ErrNotFound(entity string) *AppError {
	return New("PAY_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrInvalidAmount() *AppError {
	return New("PAY_002", "Invalid amount", http.StatusBadRequest)
}

func ErrPayrollNotActive() *AppError {
	return New("PAY_003", "Payroll is not active", http.StatusUnprocessableEntity)
}

func ErrEntryCountMismatch() *AppError {
	return New("PAY_004", "Employee and amount lists must have matching lengths", http.StatusBadRequest)
}

// ---- System & Infrastructure (SYS) ----

func ErrRateLimitExceeded() *AppError {
	return New("SYS_002", "Rate limit exceeded", http.StatusTooManyRequests)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a generic request validation error. Domain amount
// checks use ErrInvalidAmount instead so their code stays distinct.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
