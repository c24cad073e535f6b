package converters

import (
	"strconv"
	"strings"
	"time"
)

// parseInt returns the integer in s, or 0 when s is empty or not a number
func parseInt(field, s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		reportMalformed(kindMalformedNumber, field, s)
		return 0
	}
	return n
}

// parseInts parses every entry of values, dropping the ones that are empty
// or not numbers
func parseInts(field string, values []string) []int {
	if len(values) == 0 {
		return nil
	}
	out := make([]int, 0, len(values))
	for _, v := range values {
		if n := parseInt(field, v); n != 0 {
			out = append(out, n)
		}
	}
	return out
}

// parseBool accepts the API's "1"/"0" as well as "true"/"false"
func parseBool(field, s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		reportMalformed(kindMalformedBool, field, s)
		return false
	}
	return b
}

// parseDurationMs reads a millisecond count into a time.Duration
func parseDurationMs(field, s string) time.Duration {
	return time.Duration(parseInt(field, s)) * time.Millisecond
}
