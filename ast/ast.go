// Copyright (C) 2025 Ovid. All Rights Reserved.

// Package ast defines the tree of values recovered from JSON-ish text.
//
// A Value is one of Null, Bool, Number, String, Array, or Object. Values are
// plain Go types and are not modified after construction. Each Value can
// re-encode itself as strict JSON via its JSON method.
package ast

import (
	"strconv"
	"strings"

	"github.com/Ovid/fauxson/internal/escape"
	"go4.org/mem"
)

// A Value is a JSON value recovered from source text.
type Value interface {
	// JSON encodes the value as strict JSON text.
	JSON() string
}

// Null represents the JSON null constant.
var Null Value = nullValue{}

type nullValue struct{}

func (nullValue) JSON() string { return "null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// A Number is a numeric value. All numbers are IEEE 754 doubles.
type Number float64

// JSON encodes n without an exponent, the only numeric shape the tolerant
// tokenizer accepts back.
func (n Number) JSON() string { return strconv.FormatFloat(float64(n), 'f', -1, 64) }

// A String is a string value. The content is unescaped text.
type String string

func (s String) JSON() string {
	return `"` + string(escape.Quote(mem.S(string(s)))) + `"`
}

// An Array is a sequence of values.
type Array []Value

func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
func Field(key string, value Value) *Member { return &Member{Key: key, Value: value} }

// An Object is a collection of key-value members. Member order records
// insertion order but carries no meaning.
type Object []*Member

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(String(m.Key).JSON())
		sb.WriteByte(':')
		sb.WriteString(m.Value.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}
