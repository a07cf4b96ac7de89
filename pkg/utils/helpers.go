package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// isoDate matches YYYY-MM-DD with an optional time and zone suffix.
var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([T ]\d{2}:\d{2}(:\d{2}(\.\d+)?)?(Z|[+-]\d{2}:?\d{2})?)?$`)

// ParseDuration safely parses duration string like "5m", falling back to def.
func ParseDuration(d string, def time.Duration) time.Duration {
	if d == "" {
		return def
	}
	duration, err := time.ParseDuration(d)
	if err != nil {
		return def
	}
	return duration
}

// ParseNumber parses a finite decimal number, ignoring surrounding space.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// IsISODate reports whether s looks like an ISO-8601 date or date-time.
// It checks the shape only; "2018-13-45" passes.
func IsISODate(s string) bool {
	return isoDate.MatchString(strings.TrimSpace(s))
}

// CleanHeader trims whitespace, a UTF-8 byte order mark and all quotes
// from a column header.
func CleanHeader(h string) string {
	h = strings.TrimPrefix(h, "\uFEFF")
	h = strings.TrimSpace(h)
	return strings.ReplaceAll(h, `"`, "")
}
