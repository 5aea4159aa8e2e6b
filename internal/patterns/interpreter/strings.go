package interpreter

import (
	"strconv"
	"strings"
)

// DoubleValue parses s, ignoring surrounding blanks.
func DoubleValue(s string) (float64, bool) {
	f, err := strconv.ParseFloat(Trim(s), 64)
	return f, err == nil
}

// IntegerValue parses s as a number and truncates it toward zero.
func IntegerValue(s string) (int, bool) {
	f, ok := DoubleValue(s)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func Contains(s, find string) bool { return strings.Contains(s, find) }

// Trim strips spaces and tabs, but not newlines.
func Trim(s string) string { return strings.Trim(s, " \t") }
