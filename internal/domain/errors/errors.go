package errors

import (
	"net/http"

	"bureau/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Customer-related errors
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Customer not found",
		"",
	)

	ErrCustomerUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"CUSTOMER_UPDATE_FAILED",
		"Failed to update customer",
		"",
	)

	ErrCustomerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CUSTOMER_ALREADY_EXISTS",
		"Customer already exists",
		"",
	)

	ErrCustomerCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"CUSTOMER_CREATION_FAILED",
		"Failed to create customer",
		"",
	)

	// Employee-related errors
	ErrEmployeeNotFound = NewBaseError(
		http.StatusNotFound,
		"EMPLOYEE_NOT_FOUND",
		"Employee not found",
		"",
	)

	ErrEmployeeInactive = NewBaseError(
		http.StatusConflict,
		"EMPLOYEE_INACTIVE",
		"Employee account is inactive",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Workflow-related errors
	ErrUnknownTrackField = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_TRACK_FIELD",
		"Field does not belong to any track",
		"",
	)

	ErrCrossTrackUpdate = NewBaseError(
		http.StatusBadRequest,
		"CROSS_TRACK_UPDATE",
		"A single update may only touch one track",
		"",
	)

	ErrAdminApprovalForbidden = NewBaseError(
		http.StatusForbidden,
		"ADMIN_APPROVAL_FORBIDDEN",
		"Only an admin may set approval fields",
		"",
	)

	ErrLookupNotFound = NewBaseError(
		http.StatusNotFound,
		"LOOKUP_NOT_FOUND",
		"Unknown lookup table",
		"",
	)

	ErrAssignmentFailed = NewBaseError(
		http.StatusInternalServerError,
		"ASSIGNMENT_FAILED",
		"Failed to assign customer to employee",
		"",
	)

	ErrFileStoreFailed = NewBaseError(
		http.StatusInternalServerError,
		"FILE_STORE_FAILED",
		"Failed to store uploaded file",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// ValidationError carries per-field error messages in the same shape the
// backend returns them, so client-side and server-side failures get a
// uniform treatment in the UI.
type ValidationError struct {
	fields map[string][]string
}

// NewValidationError creates a field-scoped validation error
func NewValidationError(fields map[string][]string) *ValidationError {
	return &ValidationError{fields: fields}
}

// NewFieldError creates a validation error for a single field
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{fields: map[string][]string{field: {message}}}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "input validation failed"
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Input validation failed"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return "one or more fields failed validation"
}

// Fields returns the per-field error messages
func (e *ValidationError) Fields() map[string][]string {
	return e.fields
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
