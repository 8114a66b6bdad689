// Copyright (C) 2025 Ovid. All Rights Reserved.

package fauxson_test

import (
	"strings"
	"testing"

	"github.com/Ovid/fauxson"
	"github.com/google/go-cmp/cmp"
)

func kinds(toks []fauxson.Token) []fauxson.Kind {
	var ks []fauxson.Kind
	for _, t := range toks {
		ks = append(ks, t.Kind)
	}
	return ks
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []fauxson.Kind
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []fauxson.Kind{fauxson.True, fauxson.False, fauxson.Null}},

		// Words that merely resemble constants are discarded.
		{"truely nullx False NULL", nil},

		// Punctuation
		{"{ [ ] } , :", []fauxson.Kind{
			fauxson.LBrace, fauxson.LSquare, fauxson.RSquare, fauxson.RBrace,
			fauxson.Comma, fauxson.Colon,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []fauxson.Kind{fauxson.String, fauxson.String, fauxson.String}},

		// Numbers: only the -?digits(.digits)? shape survives.
		{`0 -1 5139 2.3 -0.001`, []fauxson.Kind{
			fauxson.Number, fauxson.Number, fauxson.Number, fauxson.Number, fauxson.Number,
		}},
		{`1.2.3 --1 - . 12e`, []fauxson.Kind{fauxson.Number}}, // only the 12 of 12e; the e is dropped

		// Stray punctuation outside strings is skipped.
		{`@ # ! {`, []fauxson.Kind{fauxson.LBrace}},

		// Mixed
		{`{"a": true, "b":[null, 1, 0.5]}`, []fauxson.Kind{
			fauxson.LBrace,
			fauxson.String, fauxson.Colon, fauxson.True, fauxson.Comma,
			fauxson.String, fauxson.Colon,
			fauxson.LSquare,
			fauxson.Null, fauxson.Comma, fauxson.Number, fauxson.Comma, fauxson.Number,
			fauxson.RSquare,
			fauxson.RBrace,
		}},
	}
	for _, test := range tests {
		toks, unterminated := fauxson.Tokenize(test.input)
		if unterminated != "" {
			t.Errorf("Tokenize(%#q): unexpected unterminated string at %q", test.input, unterminated)
		}
		if diff := cmp.Diff(test.want, kinds(toks)); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestTokenize_text(t *testing.T) {
	tests := []struct {
		input string
		want  []fauxson.Token
	}{
		{`"a b c"`, []fauxson.Token{{fauxson.String, "a b c"}}},
		{`"a\nb"`, []fauxson.Token{{fauxson.String, "a\nb"}}},
		{`"say \"hi\""`, []fauxson.Token{{fauxson.String, `say "hi"`}}},
		{`"pièce"`, []fauxson.Token{{fauxson.String, "pièce"}}},
		{`-12.5`, []fauxson.Token{{fauxson.Number, "-12.5"}}},
		{`{:`, []fauxson.Token{{fauxson.LBrace, "{"}, {fauxson.Colon, ":"}}},
	}
	for _, test := range tests {
		toks, _ := fauxson.Tokenize(test.input)
		if diff := cmp.Diff(test.want, toks); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestTokenize_unterminated(t *testing.T) {
	tests := []struct {
		input string
		lead  string // "" means the input terminates cleanly
		last  string // content of the final string token
	}{
		{`"alpha beta`, "alpha", "alpha beta"},
		{`"alpha beta"`, "", "alpha beta"},
		{`["x", "y`, "y", "y"},
		{`"  spaced out`, "spaced", "  spaced out"},
		{`"trailing\`, "trailing", "trailing"},
		{`"`, "", ""},
		{`"   `, "", "   "},
	}
	for _, test := range tests {
		toks, unterminated := fauxson.Tokenize(test.input)
		if unterminated != test.lead {
			t.Errorf("Tokenize(%#q): lead word %q, want %q", test.input, unterminated, test.lead)
		}
		if len(toks) == 0 {
			t.Errorf("Tokenize(%#q): no tokens", test.input)
			continue
		}
		last := toks[len(toks)-1]
		if last.Kind != fauxson.String || last.Text != test.last {
			t.Errorf("Tokenize(%#q): last token {%v %q}, want {string %q}",
				test.input, last.Kind, last.Text, test.last)
		}
	}
}

func TestTokenize_cap(t *testing.T) {
	// One open bracket plus six thousand "0," pairs is over the cap; the
	// stream is truncated rather than rejected.
	input := "[" + strings.Repeat("0,", 6000)
	toks, _ := fauxson.Tokenize(input)
	if len(toks) != 10000 {
		t.Errorf("Tokenize: got %d tokens, want the 10000 cap", len(toks))
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind fauxson.Kind
		want string
	}{
		{fauxson.LBrace, `"{"`},
		{fauxson.Number, "number"},
		{fauxson.String, "string"},
		{fauxson.Null, "null"},
		{fauxson.Kind(200), "invalid token"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("Kind(%d).String: got %q, want %q", test.kind, got, test.want)
		}
	}
}
