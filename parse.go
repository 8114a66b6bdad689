// Copyright (C) 2025 Ovid. All Rights Reserved.

package fauxson

import "strings"

// A Parser holds the configuration of a parse. The zero value parses a
// single document; set JSONL to treat each non-blank input line as an
// independent document. A Parser is a plain value and may be copied freely.
type Parser struct {
	// JSONL selects line-mode parsing.
	JSONL bool
}

// Parse recovers as much structured data as possible from text. It never
// returns an error: every outcome, including catastrophic malformation, is a
// fully populated Result.
func (p Parser) Parse(text string) *Result {
	if p.JSONL {
		return parseLines(text)
	}
	return parseDocument(text)
}

// Parse recovers a single document from text. See Parser.Parse.
func Parse(text string) *Result { return Parser{}.Parse(text) }

// ParseJSONL parses each non-blank line of text as an independent document
// and aggregates the outcomes. See Parser.Parse.
func ParseJSONL(text string) *Result { return Parser{JSONL: true}.Parse(text) }

// parseDocument runs the single-document pipeline: locate the structure,
// sanitize it, tokenize it, build the tree, then derive the verdict. Each
// stage failure is terminal; the decision points after a successful build
// run in a fixed order chosen so that an unclosed string, the single most
// actionable truncation diagnostic, is never masked by the generic extra
// text verdict.
func parseDocument(text string) *Result {
	r := new(Result)

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return r.fail(NoStructure, "No valid JSON structure found")
	}

	loc, found := locate(trimmed)
	if !found {
		return r.fail(NoStructure, "Failed to parse: No valid JSON structure found")
	}

	clean, ok := sanitize(loc.body())
	if !ok {
		return r.fail(InvalidFormat, "Failed to parse: Invalid JSON format")
	}

	toks, unterminated := Tokenize(clean)
	if len(toks) == 0 {
		return r.fail(NoStructure, "Failed to parse: No valid JSON structure found")
	}

	b := newBuilder(toks)
	data, defined := b.value()
	if !defined {
		if r.reason == "" {
			r.reason = "Failed to parse: Invalid JSON structure"
		}
		r.codes = append(r.codes, InvalidStructure)
		return r
	}
	r.success = true
	r.data = data

	if unterminated != "" {
		r.flag(UnclosedString, `Unclosed string starting at "`+unterminated)
		return r
	}
	if !b.complete && r.reason == "" {
		// Advisory only: the extra-text check below may still override the
		// message, while the trace keeps both codes.
		r.reason = "Incomplete JSON structure"
		r.codes = append(r.codes, Incomplete)
	}
	if loc.hasExtraText() || b.leftover() {
		r.flag(ExtraText, "Found extra text outside JSON structure")
		return r
	}
	r.valid = r.reason == ""
	return r
}
