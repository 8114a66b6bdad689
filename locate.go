// Copyright (C) 2025 Ovid. All Rights Reserved.

package fauxson

import "strings"

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A structure is the candidate JSON span located in an input, together with
// the text on either side of it.
type structure struct {
	src        string
	span       Span // location of body in src
	terminated bool // whether a depth-zero closer was found
}

func (c structure) body() string     { return c.src[c.span.Pos:c.span.End] }
func (c structure) leading() string  { return c.src[:c.span.Pos] }
func (c structure) trailing() string { return c.src[c.span.End:] }

// hasExtraText reports whether non-whitespace content surrounds the body.
func (c structure) hasExtraText() bool {
	return strings.TrimSpace(c.leading()) != "" || strings.TrimSpace(c.trailing()) != ""
}

// locate finds the first plausible JSON structure in text: the span from the
// first "{" or "[" to its matching closer. Nesting is tracked outside string
// literals only, and a backslash escapes the quote that follows it. If the
// closer is never reached the span runs to the end of the input and the
// structure is reported as unterminated rather than rejected; truncated input
// is a recoverable condition here. locate reports false if text contains no
// opening bracket at all.
func locate(text string) (structure, bool) {
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return structure{}, false
	}

	var (
		depth    int
		inString bool
		escaped  bool
	)
	for i := start; i < len(text); i++ {
		c := text[i]
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
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return structure{src: text, span: Span{Pos: start, End: i + 1}, terminated: true}, true
			}
		}
	}
	return structure{src: text, span: Span{Pos: start, End: len(text)}}, true
}
