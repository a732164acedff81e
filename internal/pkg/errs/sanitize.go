package errs

import "strings"

// sanitize strips newlines from values interpolated into error messages so a
// single error always renders as a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
