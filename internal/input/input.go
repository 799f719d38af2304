// Package input parses a comma-separated array specification into a
// bounded slice of integers.
package input

import (
	"strconv"
	"strings"
)

const (
	// MaxElements bounds the array so a full trace stays small.
	MaxElements = 50

	// Delimiter separates tokens in the raw string.
	Delimiter = ","
)

// Parse splits raw on Delimiter, trims each token and converts it to an
// int. One bad token rejects the whole input.
//
// A blank or whitespace-only string is empty. Any other string yields at
// least one token, so "5,,3" fails on the blank middle token rather than
// being treated as two elements.
func Parse(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyInput
	}

	tokens := strings.Split(raw, Delimiter)
	if len(tokens) > MaxElements {
		return nil, ErrTooLarge
	}

	values := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &TokenError{Index: i, Token: tok, Err: ErrParse}
		}
		values = append(values, v)
	}

	return values, nil
}

// MustParse is Parse for inputs known to be valid, such as presets.
func MustParse(raw string) []int {
	values, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return values
}

// Format renders values back into the canonical input form.
func Format(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, Delimiter)
}
