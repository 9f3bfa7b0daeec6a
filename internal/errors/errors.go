package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeAuthUnauthorized ErrorCode = "AUTH-001"
	ErrCodeAuthLoginFailed  ErrorCode = "AUTH-002"
	ErrCodeAuthRegisterFail ErrorCode = "AUTH-003"
	ErrCodeAuthNotLoggedIn  ErrorCode = "AUTH-004"
	ErrCodeAuthStoreCorrupt ErrorCode = "AUTH-005"

	// API errors (API-001 to API-099)
	ErrCodeAPIRequest     ErrorCode = "API-001"
	ErrCodeAPIResponse    ErrorCode = "API-002"
	ErrCodeAPIRejected    ErrorCode = "API-003"
	ErrCodeAPINotFound    ErrorCode = "API-004"
	ErrCodeAPIForbidden   ErrorCode = "API-005"
	ErrCodeAPIUnavailable ErrorCode = "API-006"

	// Society errors (SOCIETY-001 to SOCIETY-099)
	ErrCodeSocietyNoneSelected ErrorCode = "SOCIETY-001"
	ErrCodeSocietyNotMember    ErrorCode = "SOCIETY-002"
	ErrCodeSocietyRefresh      ErrorCode = "SOCIETY-003"
	ErrCodeSocietyNotAllowed   ErrorCode = "SOCIETY-004"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileReadFailed  ErrorCode = "IO-001"
	ErrCodeFileWriteFailed ErrorCode = "IO-002"
	ErrCodeFileUnmarshal   ErrorCode = "IO-003"
)

// SocietyError represents an enhanced error with code, suggestions, and a cause
type SocietyError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *SocietyError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *SocietyError) Unwrap() error {
	return e.Cause
}

// New creates a new SocietyError
func New(code ErrorCode, message string) *SocietyError {
	return &SocietyError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new SocietyError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *SocietyError {
	return &SocietyError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *SocietyError) WithSuggestion(suggestion string) *SocietyError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *SocietyError) WithSuggestions(suggestions ...string) *SocietyError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Common error constructors for frequently used errors

// NewUnauthorizedError creates an error for a rejected credential.
// The session has already been torn down by the time callers see this.
func NewUnauthorizedError() *SocietyError {
	return New(ErrCodeAuthUnauthorized, "session expired or token invalid").
		WithSuggestion("Run 'societyctl auth login' to authenticate again")
}

// NewNotLoggedInError creates an error for commands that require a session
func NewNotLoggedInError() *SocietyError {
	return New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestion("Run 'societyctl auth login --email you@example.com'").
		WithSuggestion("Run 'societyctl auth register' if you do not have an account")
}

// NewNoSocietyError creates an error for commands that need a selected society
func NewNoSocietyError() *SocietyError {
	return New(ErrCodeSocietyNoneSelected, "no society selected").
		WithSuggestion("Run 'societyctl society list' to see your societies").
		WithSuggestion("Run 'societyctl society switch <id>' to select one")
}

// NewNotAllowedError creates an error for actions the current role cannot perform
func NewNotAllowedError(action, role string) *SocietyError {
	return New(ErrCodeSocietyNotAllowed, fmt.Sprintf("your role (%s) cannot %s", role, action)).
		WithSuggestion("Ask a society manager to perform this action")
}

// NewAPIError creates an error carrying the backend's detail message verbatim
func NewAPIError(status int, detail string) *SocietyError {
	code := ErrCodeAPIRejected
	switch {
	case status == 401:
		code = ErrCodeAuthUnauthorized
	case status == 403:
		code = ErrCodeAPIForbidden
	case status == 404:
		code = ErrCodeAPINotFound
	case status >= 500:
		code = ErrCodeAPIUnavailable
	}
	return New(code, detail)
}

// NewConfigInvalidError creates a config parse error
func NewConfigInvalidError(path string, cause error) *SocietyError {
	return Wrap(ErrCodeConfigInvalid, fmt.Sprintf("invalid config file: %s", path), cause).
		WithSuggestion("Check the YAML syntax of the config file").
		WithSuggestion("Remove the file to fall back to defaults")
}
