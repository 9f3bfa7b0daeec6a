package exitcode

import (
	stderrors "errors"
	"os"

	"github.com/socfin/societyctl/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication failure
	AuthError = 3

	// PermissionError indicates the backend refused the action for this role
	PermissionError = 4

	// NetworkError indicates a network connectivity issue
	NetworkError = 5

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}
	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var socErr *errors.SocietyError
	if stderrors.As(err, &socErr) {
		switch socErr.Code {
		case errors.ErrCodeAuthUnauthorized,
			errors.ErrCodeAuthLoginFailed,
			errors.ErrCodeAuthRegisterFail,
			errors.ErrCodeAuthNotLoggedIn:
			return AuthError
		case errors.ErrCodeAPIForbidden,
			errors.ErrCodeSocietyNotMember,
			errors.ErrCodeSocietyNotAllowed:
			return PermissionError
		case errors.ErrCodeAPIRequest,
			errors.ErrCodeAPIUnavailable:
			return NetworkError
		}
	}

	return GeneralError
}
