package dataprocessing

import (
	"regexp"
	"strconv"
	"strings"
)

// RawRecord is one input row keyed by column header. Missing columns
// simply have no entry; lookups for them behave like empty values.
type RawRecord map[string]string

// Field returns the trimmed value of the named column, or "" when the
// column is absent from the row.
func (r RawRecord) Field(name string) string {
	return strings.TrimSpace(r[name])
}

// Height strings arrive in forms like "6' 0", "5' 11" or "6'".
var (
	feetInchesRe = regexp.MustCompile(`^(\d+)'?\s*(\d+)`)
	feetOnlyRe   = regexp.MustCompile(`^(\d+)'`)
)

// ParseHeight converts a feet-and-inches height string to total inches.
// Malformed or empty input degrades to nil rather than an error.
func ParseHeight(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if m := feetInchesRe.FindStringSubmatch(s); m != nil {
		feet, _ := strconv.Atoi(m[1])
		inches, _ := strconv.Atoi(m[2])
		v := float64(feet*12 + inches)
		return &v
	}

	// Feet only, e.g. "6'"
	if m := feetOnlyRe.FindStringSubmatch(s); m != nil {
		feet, _ := strconv.Atoi(m[1])
		v := float64(feet * 12)
		return &v
	}

	return nil
}

// CleanNumeric parses a raw cell value as a floating-point number.
// Empty, missing or unparseable input maps to nil; it never errors.
func CleanNumeric(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
