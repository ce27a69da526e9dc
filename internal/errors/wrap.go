package errors

import "fmt"

// Wrap adds context to errors at package boundaries.
// It returns nil if err is nil, allowing for safe inline usage:
//
//	if err := r.Close(); err != nil {
//	    return errors.Wrap(err, "failed to close result log")
//	}
//
// The original error chain is preserved, so errors.Is() still matches
// sentinels such as ErrMalformedEvent after wrapping.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf adds formatted context to errors at package boundaries.
// It returns nil if err is nil:
//
//	return errors.Wrapf(err, "line %d of %s", lineNo, path)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}
