// Copyright (C) 2025 Ovid. All Rights Reserved.

package fauxson

import (
	"strings"

	"github.com/Ovid/fauxson/internal/escape"
	"go4.org/mem"
)

// Kind is the type of a lexical token in the tolerant JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	Number              // number of the shape -?digits(.digits)?
	String              // string, possibly unterminated
	True                // constant: true
	False               // constant: false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}

// A Token is a single lexical token. Text holds the unescaped content of a
// String, the raw text of a Number, or the punctuation character itself.
// Tokens carry no position information beyond their order.
type Token struct {
	Kind Kind
	Text string
}

// maxTokens caps the number of tokens produced from one input. The cap is a
// guard against pathological input size and nesting, at the cost of
// truncating any legitimate structure that large.
const maxTokens = 10000

// Tokenize converts text into a token stream, left to right. Whitespace and
// unrecognizable characters outside strings are skipped; a run of numeric
// characters that does not have a numeric shape is discarded rather than
// emitted. A string whose closing quote is never found still yields a String
// token with the partial content; the first whitespace-delimited word of that
// content is returned as unterminated, the pointer to where the input broke.
func Tokenize(text string) (toks []Token, unterminated string) {
	i := 0
	for i < len(text) && len(toks) < maxTokens {
		c := text[i]
		switch {
		case isSpace(c):
			i++

		case c == '"':
			content, rest, closed := scanString(text[i+1:])
			toks = append(toks, Token{Kind: String, Text: content})
			if !closed {
				if w := strings.Fields(content); len(w) > 0 {
					unterminated = w[0]
				}
			}
			i = len(text) - len(rest)

		case isLetter(c):
			j := i
			for j < len(text) && isLetter(text[j]) {
				j++
			}
			if k, ok := literalKind(text[i:j]); ok {
				toks = append(toks, Token{Kind: k, Text: text[i:j]})
			}
			i = j

		case c == '-' || c == '.' || isDigit(c):
			j := i
			for j < len(text) && (text[j] == '-' || text[j] == '.' || isDigit(text[j])) {
				j++
			}
			if isNumericShape(text[i:j]) {
				toks = append(toks, Token{Kind: Number, Text: text[i:j]})
			}
			i = j

		default:
			if k, ok := selfDelim(c); ok {
				toks = append(toks, Token{Kind: k, Text: string(c)})
			}
			i++
		}
	}
	return toks, unterminated
}

// scanString consumes string content up to an unescaped closing quote.
// Escaping is recognized only through the single preceding backslash. The
// returned content is unescaped; rest is the input after the closing quote,
// or empty if the quote was never found.
func scanString(text string) (content, rest string, closed bool) {
	var escaped bool
	for i := 0; i < len(text); i++ {
		if escaped {
			escaped = false
			continue
		}
		switch text[i] {
		case '\\':
			escaped = true
		case '"':
			return string(escape.UnquoteLoose(mem.S(text[:i]))), text[i+1:], true
		}
	}
	return string(escape.UnquoteLoose(mem.S(text))), "", false
}

func literalKind(word string) (Kind, bool) {
	w := mem.S(word)
	switch {
	case w.EqualString("true"):
		return True, true
	case w.EqualString("false"):
		return False, true
	case w.EqualString("null"):
		return Null, true
	}
	return Invalid, false
}

// isNumericShape reports whether s matches -?digits(.digits)?, the only
// numeric form the builder accepts. Anything looser is discarded so that
// NaN-like garbage cannot leak into the tree.
func isNumericShape(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	whole, frac, dotted := strings.Cut(s, ".")
	if !allDigits(whole) || whole == "" {
		return false
	}
	if dotted && (!allDigits(frac) || frac == "") {
		return false
	}
	return true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(c byte) (Kind, bool) {
	i := strings.IndexByte("{}[],:", c)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}

func isSpace(c byte) bool  { return c == ' ' || c == '\r' || c == '\n' || c == '\t' }
func isDigit(c byte) bool  { return '0' <= c && c <= '9' }
func isLetter(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }
