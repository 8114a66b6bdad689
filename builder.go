// Copyright (C) 2025 Ovid. All Rights Reserved.

package fauxson

import (
	"strconv"

	"github.com/Ovid/fauxson/ast"
)

// A builder reconstructs a value tree from a token stream, tolerating
// incomplete and malformed token sequences. It is a recursive-descent
// consumer with a single forward cursor and one token of lookahead.
type builder struct {
	toks     []Token
	pos      int
	complete bool // false once the stream ran out before a closer
}

func newBuilder(toks []Token) *builder { return &builder{toks: toks, complete: true} }

func (b *builder) peek() (Token, bool) {
	if b.pos >= len(b.toks) {
		return Token{}, false
	}
	return b.toks[b.pos], true
}

// leftover reports whether unconsumed tokens remain after the top-level
// value was built.
func (b *builder) leftover() bool { return b.pos < len(b.toks) }

// value parses one value at the cursor. The Boolean result reports whether a
// value was produced: null parses to no value at all, consistent with arrays
// and objects dropping undefined entries. value always consumes at least one
// token when any remain.
func (b *builder) value() (ast.Value, bool) {
	tok, ok := b.peek()
	if !ok {
		b.complete = false
		return nil, false
	}
	b.pos++
	switch tok.Kind {
	case LBrace:
		return b.object()
	case LSquare:
		return b.array()
	case String:
		return ast.String(tok.Text), true
	case Number:
		n, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, false
		}
		return ast.Number(n), true
	case True:
		return ast.Bool(true), true
	case False:
		return ast.Bool(false), true
	case Null:
		return nil, false
	default:
		// Unexpected punctuation in value position. Degrade to a leaf
		// holding the token text rather than aborting the whole parse.
		return ast.String(tok.Text), true
	}
}

// array parses elements until "]" or the end of the stream. Elements that
// fail to parse contribute nothing, not a null placeholder. Exhaustion
// before "]" returns the partial array and marks the build incomplete.
func (b *builder) array() (ast.Value, bool) {
	arr := ast.Array{}
	for {
		tok, ok := b.peek()
		if !ok {
			b.complete = false
			break
		}
		if tok.Kind == RSquare {
			b.pos++
			break
		}
		if v, ok := b.value(); ok {
			arr = append(arr, v)
		}
		if tok, ok := b.peek(); ok && tok.Kind == Comma {
			b.pos++
		}
	}
	return arr, true
}

// object parses members until "}" or the end of the stream. A key is
// accepted only from a string token; anything else in key position is
// skipped. A missing ":" does not abort, the value parse is attempted right
// after the key. Pairs whose value fails to parse are dropped, and a
// duplicate key overwrites the earlier member (last write wins).
func (b *builder) object() (ast.Value, bool) {
	obj := ast.Object{}
	for {
		tok, ok := b.peek()
		if !ok {
			b.complete = false
			break
		}
		if tok.Kind == RBrace {
			b.pos++
			break
		}
		if tok.Kind != String {
			b.pos++ // malformed key, skip it
			continue
		}
		key := tok.Text
		b.pos++
		if tok, ok := b.peek(); ok && tok.Kind == Colon {
			b.pos++
		}
		if v, ok := b.value(); ok {
			if m := obj.Find(key); m != nil {
				m.Value = v
			} else {
				obj = append(obj, ast.Field(key, v))
			}
		}
		if tok, ok := b.peek(); ok && tok.Kind == Comma {
			b.pos++
		}
	}
	return obj, true
}
