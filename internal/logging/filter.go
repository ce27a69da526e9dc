// Package logging keeps CI credentials out of verdict's logs.
//
// Test and lint output is copied into log entries verbatim, and CI runners
// export tokens into the environment those tools run in. Everything written
// to the rotating log file passes through a FilteringWriter.
package logging

import (
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// RedactedValue is the replacement string for sensitive data.
const RedactedValue = "[REDACTED]"

//nolint:gochecknoglobals // compiled once
var sensitivePatterns = []*regexp.Regexp{
	// GitHub tokens (ghp_, gho_, ghu_, ghs_, ghr_) and fine-grained PATs
	regexp.MustCompile(`gh[pousr]_[a-zA-Z0-9]{20,}`),
	regexp.MustCompile(`github_pat_[a-zA-Z0-9_]{22,}`),

	// GitLab personal, deploy and runner tokens
	regexp.MustCompile(`gl(?:pat|dt|rt|cbt)-[a-zA-Z0-9_-]{20,}`),

	// Datadog API and application keys assigned in environment dumps
	regexp.MustCompile(`(?i)(dd|datadog)_(api|app)_key\s*[:=]\s*["']?[a-f0-9]{32,40}["']?`),

	// CI job tokens
	regexp.MustCompile(`(?i)(ci_job_token|ci_registry_password)\s*[:=]\s*["']?[^\s"']{8,}["']?`),

	// Bearer tokens
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._-]{20,}`),

	// Generic secret assignments
	regexp.MustCompile(`(?i)(secret|password|passwd|token)\s*[:=]\s*["']?[^\s"']{8,}["']?`),

	// Private key blocks
	regexp.MustCompile(`-----BEGIN[A-Z\s]+PRIVATE KEY-----`),
}

//nolint:gochecknoglobals // fixed lookup table
var sensitiveFieldNames = []string{
	"api_key",
	"app_key",
	"token",
	"password",
	"passwd",
	"secret",
	"credential",
	"private_key",
	"authorization",
}

// SensitiveDataHook flags log entries whose message looks like it carries a
// credential. zerolog cannot rewrite a message from a hook; the file writer
// does the actual redaction.
type SensitiveDataHook struct{}

// NewSensitiveDataHook creates a new SensitiveDataHook.
func NewSensitiveDataHook() *SensitiveDataHook {
	return &SensitiveDataHook{}
}

// Run implements zerolog.Hook.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSensitiveData(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// ContainsSensitiveData reports whether s matches any credential pattern.
func ContainsSensitiveData(s string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// FilterSensitiveValue replaces every credential-looking substring of value
// with RedactedValue.
func FilterSensitiveValue(value string) string {
	for _, pattern := range sensitivePatterns {
		value = pattern.ReplaceAllString(value, RedactedValue)
	}
	return value
}

// IsSensitiveFieldName reports whether a field name suggests a secret value.
func IsSensitiveFieldName(fieldName string) bool {
	lower := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFieldNames {
		if strings.Contains(lower, sensitive) {
			return true
		}
	}
	return false
}

// SafeValue returns value with credentials removed, or RedactedValue outright
// when the field name itself is sensitive.
//
//	log.Debug().Str("command", logging.SafeValue("command", cmd)).Msg("running tool")
func SafeValue(fieldName, value string) string {
	if IsSensitiveFieldName(fieldName) {
		return RedactedValue
	}
	return FilterSensitiveValue(value)
}

// FilteringWriter redacts credentials from everything written through it.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter wraps w.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write implements io.Writer. It reports the length of p, not of the
// filtered bytes, so callers never see a short write.
func (fw *FilteringWriter) Write(p []byte) (int, error) {
	if _, err := fw.w.Write([]byte(FilterSensitiveValue(string(p)))); err != nil {
		return 0, err
	}
	return len(p), nil
}
