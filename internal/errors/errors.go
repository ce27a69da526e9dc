// Package errors provides centralized error handling for verdict.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrMalformedEvent indicates that a line of the result log is not a
	// well-formed JSON test event. Classification of that module stops.
	ErrMalformedEvent = errors.New("malformed test event")

	// ErrResultLogUnreadable indicates that the result log exists but could
	// not be opened or read.
	ErrResultLogUnreadable = errors.New("result log unreadable")

	// ErrUnknownResult indicates a Result value that is neither a lint nor a test result.
	ErrUnknownResult = errors.New("unknown result type")

	// ErrUnknownFlavor indicates that a flavor name is not one of the known build flavors.
	ErrUnknownFlavor = errors.New("unknown flavor")

	// ErrModuleNotFound indicates that a requested module is not part of the configured modules.
	ErrModuleNotFound = errors.New("module not found")

	// ErrTestsFailed indicates that at least one module reported failing tests.
	ErrTestsFailed = errors.New("tests failed")

	// ErrLintFailed indicates that at least one module reported lint failures.
	ErrLintFailed = errors.New("lint failed")

	// ErrCommandTimeout indicates a command exceeded its timeout duration.
	ErrCommandTimeout = errors.New("command timeout exceeded")

	// ErrWorkDirMissing indicates that the module directory does not exist.
	ErrWorkDirMissing = errors.New("module directory missing")

	// ErrRunInProgress indicates that another run holds the repository's run lock.
	ErrRunInProgress = errors.New("another verdict run is in progress")

	// ErrMissingRequiredTools indicates that a required external tool is missing or outdated.
	ErrMissingRequiredTools = errors.New("required tools missing")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidTest indicates an invalid test configuration value.
	ErrConfigInvalidTest = errors.New("invalid test configuration")

	// ErrConfigInvalidLint indicates an invalid lint configuration value.
	ErrConfigInvalidLint = errors.New("invalid lint configuration")

	// ErrConfigInvalidCI indicates an invalid CI configuration value.
	ErrConfigInvalidCI = errors.New("invalid CI configuration")

	// ErrConfigInvalidModule indicates an invalid module entry in the configuration.
	ErrConfigInvalidModule = errors.New("invalid module configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrJSONErrorOutput indicates that an error has already been output as JSON.
	// This ensures a non-zero exit code while preventing duplicate error messages.
	ErrJSONErrorOutput = errors.New("error output as JSON")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
