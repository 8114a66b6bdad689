// Copyright (C) 2025 Ovid. All Rights Reserved.

package fauxson

import (
	"regexp"

	"github.com/creachadair/mds/mapset"
)

// nonJSON is the set of characters that, found outside a string literal,
// mark the input as some other syntax entirely: Perl-style hash literals,
// statement terminators, single-quoted strings. Rejecting on sight is a
// deliberately coarse heuristic that saves tokenizing obvious non-JSON.
var nonJSON = mapset.New('=', ';', '\'')

// trailingComma matches a comma whose next non-space character closes an
// array or object.
var trailingComma = regexp.MustCompile(`,(\s*[\]}])`)

// sanitize prepares a candidate substring for tokenization. Trailing commas
// before a closer are removed; the rewrite is purely textual and makes no
// attempt to skip string literals. sanitize reports false if the candidate
// contains a character from nonJSON outside a string literal.
func sanitize(body string) (string, bool) {
	clean := trailingComma.ReplaceAllString(body, "$1")

	var inString, escaped bool
	for i := 0; i < len(clean); i++ {
		c := clean[i]
		if escaped {
			escaped = false
			continue
		}
		if inString {
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
		} else if nonJSON.Has(rune(c)) {
			return "", false
		}
	}
	return clean, true
}
