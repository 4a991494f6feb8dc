// Package gstin validates the structure of GST identification numbers.
package gstin

import (
	"regexp"
	"strings"
)

// A GSTIN is 15 characters: a two digit state code, a ten character PAN
// (5 letters, 4 digits, 1 letter), an entity code, the literal 'Z' and a
// check character. The entity code excludes '0'.
//
// This is the strict grammar; a looser alphanumeric variant exists in the
// wild but everything the portal issues matches this one.
var pattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// Valid reports whether s is a structurally well-formed GSTIN.
// Matching is case-insensitive and never panics on arbitrary input.
func Valid(s string) bool {
	if len(s) != 15 {
		return false
	}
	return pattern.MatchString(strings.ToUpper(s))
}

// Normalize upper-cases a GSTIN for use in requests and output.
// It does not validate.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
