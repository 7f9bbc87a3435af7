package errors

import (
	"net/http"

	"harvest/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // Human-readable message suitable for a notification
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	kind      *BaseError
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches the error itself and the kind it was derived from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t == e || t == e.root()
}

func (e *BaseError) root() *BaseError {
	if e.kind != nil {
		return e.kind
	}

	return e
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
		kind:      e.root(),
	}
}

// Derive creates a more specific error of the same kind with its own message
func (e *BaseError) Derive(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		kind:      e.root(),
	}
}

// Error kinds
var (
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Please sign in to continue",
		"",
	)

	ErrNetwork = NewBaseError(
		http.StatusBadGateway,
		"NETWORK_ERROR",
		"Could not reach the marketplace, please try again",
		"",
	)

	ErrLocationUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"LOCATION_UNAVAILABLE",
		"Unable to retrieve your location",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong",
		"",
	)
)

// Chat errors
var (
	ErrEmptyMessage = ErrValidation.Derive("Message text cannot be empty")

	ErrSelfConversation = ErrValidation.Derive("You cannot start a conversation with yourself")

	ErrConversationNotFound = NewBaseError(
		http.StatusNotFound,
		"CONVERSATION_NOT_FOUND",
		"Conversation not found",
		"",
	)

	ErrNoActiveConversation = NewBaseError(
		http.StatusConflict,
		"NO_ACTIVE_CONVERSATION",
		"No conversation is open",
		"",
	)

	ErrSendInFlight = NewBaseError(
		http.StatusConflict,
		"SEND_IN_FLIGHT",
		"A message is already being sent",
		"",
	)

	ErrSendThrottled = NewBaseError(
		http.StatusTooManyRequests,
		"SEND_THROTTLED",
		"You are sending messages too quickly",
		"",
	)

	ErrStartChatFailed = ErrNetwork.Derive("Failed to start chat")

	ErrSendFailed = ErrNetwork.Derive("Failed to send message")
)

// NetworkError represents a REST or push channel failure, implementing the AppError interface
type NetworkError struct {
	err     error
	kind    *BaseError
	details string
}

// NewNetworkError creates a network error of the generic NETWORK_ERROR kind
func NewNetworkError(err error, details string) AppError {
	return &NetworkError{err: err, kind: ErrNetwork, details: details}
}

// NewNetworkErrorAs creates a network error that surfaces a more specific message,
// such as ErrSendFailed
func NewNetworkErrorAs(kind *BaseError, err error, details string) AppError {
	return &NetworkError{err: err, kind: kind, details: details}
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	if e.err == nil {
		return e.kind.Message()
	}

	return errors.Wrap(e.err, e.kind.Message()).Error()
}

// Unwrap returns the underlying transport error
func (e *NetworkError) Unwrap() error {
	return e.err
}

// Is matches ErrNetwork and the specific kind the error was created with
func (e *NetworkError) Is(target error) bool {
	return e.kind.Is(target)
}

// HTTPCode returns the HTTP status code
func (e *NetworkError) HTTPCode() int {
	return e.kind.HTTPCode()
}

// ErrorCode returns the business error code
func (e *NetworkError) ErrorCode() string {
	return e.kind.ErrorCode()
}

// Message returns the user-friendly error message
func (e *NetworkError) Message() string {
	return e.kind.Message()
}

// Details returns detailed error information
func (e *NetworkError) Details() string {
	return e.details
}

// AsAppError extracts the AppError from err, falling back to ErrInternalError
func AsAppError(err error) AppError {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return ErrInternalError.WithDetails(err.Error())
}
