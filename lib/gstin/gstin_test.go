package gstin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"27AAPFU0939F1ZV", true},
		{"29AABCT1332L1ZN", true},
		{"27AADCI7885M1ZJ", true},
		{"27aapfu0939f1zv", true},
		{"27AaPfU0939F1Zv", true},
		{"", false},
		{"short", false},
		{"27AAPFU0939F1ZVX", false},
		{"27AAPFU0939F1YV", false},  // position 13 must be 'Z'
		{"27AAPFU0939F0ZV", false},  // entity code excludes '0'
		{"A7AAPFU0939F1ZV", false},  // state code must be digits
		{"27AAPF40939F1ZV", false},  // PAN letters
		{"27AAPFUO939F1ZV", false},  // PAN digits
		{"27AAPFU09391 ZV", false},
		{strings.Repeat("2", 15), false},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, Valid(test.input), "input: %q", test.input)
	}
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "27AAPFU0939F1ZV", Normalize(" 27aapfu0939f1zv "))
}
