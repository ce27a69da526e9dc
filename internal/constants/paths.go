package constants

// Directory names and paths used by verdict.
const (
	// VerdictHome is the hidden directory name where verdict stores its data.
	// It exists both in the user's home directory and in a project root.
	VerdictHome = ".verdict"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// File names.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.verdict/logs/verdict.log
	CLILogFileName = "verdict.log"

	// RunLockFileName is the lock file inside the project's .verdict directory
	// held while tests or linters run.
	RunLockFileName = "run.lock"

	// ConfigFileName is the name of both the global and project configuration files.
	ConfigFileName = "config.yaml"
)

// Environment variables.
const (
	// EnvPrefix is the prefix for configuration environment variables (VERDICT_*).
	EnvPrefix = "VERDICT"

	// EnvNoColor disables styled output when present.
	EnvNoColor = "NO_COLOR"
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the size at which the log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files kept.
	LogMaxBackups = 5

	// LogMaxAgeDays is how long rotated files are kept.
	LogMaxAgeDays = 30

	// LogCompress gzips rotated files.
	LogCompress = true
)
