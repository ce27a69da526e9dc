package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// A slice rather than a map because errors.Is() needs chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Results
	// ===================
	{
		err: ErrMalformedEvent,
		info: ErrorInfo{
			Message: "The result log contains a line that is not a valid test event.",
			Action:  "Check that the log was written by 'gotestsum --jsonfile' or 'go test -json'.",
		},
	},
	{
		err: ErrResultLogUnreadable,
		info: ErrorInfo{
			Message: "The result log could not be read.",
			Action:  "Check file permissions on the result log.",
		},
	},
	{
		err: ErrTestsFailed,
		info: ErrorInfo{
			Message: "Tests failed. Check the report above for the failing packages and tests.",
			Action:  "Fix the failing tests and run 'verdict test' again.",
		},
	},
	{
		err: ErrLintFailed,
		info: ErrorInfo{
			Message: "Linters reported issues. Check the report above.",
			Action:  "Fix the reported issues and run 'verdict lint' again.",
		},
	},

	// ===================
	// Selection
	// ===================
	{
		err: ErrUnknownFlavor,
		info: ErrorInfo{
			Message: "The requested flavor is not known.",
			Action:  "Run 'verdict flavors' to list the available flavors.",
		},
	},
	{
		err: ErrModuleNotFound,
		info: ErrorInfo{
			Message: "The requested module is not configured.",
			Action:  "Add the module to the 'modules' section of .verdict/config.yaml or pass --targets.",
		},
	},

	// ===================
	// Commands
	// ===================
	{
		err: ErrCommandTimeout,
		info: ErrorInfo{
			Message: "Command execution timed out.",
			Action:  "Increase 'test.timeout' or 'lint.timeout', or check if the command is stuck.",
		},
	},
	{
		err: ErrWorkDirMissing,
		info: ErrorInfo{
			Message: "The module directory does not exist.",
			Action:  "Check the module path in your configuration.",
		},
	},

	{
		err: ErrRunInProgress,
		info: ErrorInfo{
			Message: "Another verdict run is using this checkout.",
			Action:  "Wait for the other run to finish and try again.",
		},
	},
	{
		err: ErrMissingRequiredTools,
		info: ErrorInfo{
			Message: "Required tools are missing or outdated.",
			Action:  "Run 'verdict doctor' and install the listed tools.",
		},
	},

	// ===================
	// Configuration
	// ===================
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is not loaded.",
			Action:  "Ensure .verdict/config.yaml is valid YAML.",
		},
	},
	{
		err: ErrConfigInvalidTest,
		info: ErrorInfo{
			Message: "Invalid test configuration.",
			Action:  "Check the 'test' section in .verdict/config.yaml for invalid values.",
		},
	},
	{
		err: ErrConfigInvalidLint,
		info: ErrorInfo{
			Message: "Invalid lint configuration.",
			Action:  "Check the 'lint' section in .verdict/config.yaml for invalid values.",
		},
	},
	{
		err: ErrConfigInvalidCI,
		info: ErrorInfo{
			Message: "Invalid CI configuration.",
			Action:  "Check the 'ci' section in .verdict/config.yaml for invalid values.",
		},
	},
	{
		err: ErrConfigInvalidModule,
		info: ErrorInfo{
			Message: "Invalid module configuration.",
			Action:  "Every entry in 'modules' needs a non-empty path.",
		},
	},

	// ===================
	// Misc
	// ===================
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid output format.",
			Action:  "Use --output text or --output json.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// Direct sentinel matches hit the map; wrapped errors fall back to errors.Is().
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
