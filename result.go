// Copyright (C) 2025 Ovid. All Rights Reserved.

package fauxson

import (
	"slices"

	"github.com/Ovid/fauxson/ast"
)

// An ErrorKind classifies one way an input deviates from strict JSON.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	NoStructure      ErrorKind = iota // nothing JSON-shaped found
	ExtraText                         // non-JSON content around or after the structure
	InvalidFormat                     // characters indicative of non-JSON syntax
	InvalidStructure                  // tokens present but no value could be built
	UnclosedString                    // a string literal never terminated
	Incomplete                        // a closer was never reached
)

var errorStr = [...]string{
	NoStructure:      "no structure",
	ExtraText:        "extra text",
	InvalidFormat:    "invalid format",
	InvalidStructure: "invalid structure",
	UnclosedString:   "unclosed string",
	Incomplete:       "incomplete",
}

func (e ErrorKind) String() string {
	if int(e) >= len(errorStr) {
		return "unknown"
	}
	return errorStr[e]
}

// A Result reports the outcome of one parse. A fresh Result is produced by
// every parse call; nothing modifies a Result after it is returned. A Result
// must not be shared across concurrent callers without synchronization, but
// concurrent parse calls are independent.
type Result struct {
	data    ast.Value
	success bool
	valid   bool
	reason  string
	codes   []ErrorKind
}

// Data returns the recovered value, or nil if none was recovered.
// Data is non-nil exactly when Success reports true.
func (r *Result) Data() ast.Value { return r.data }

// Success reports whether any value was recovered from the input.
func (r *Result) Success() bool { return r.success }

// Valid reports whether the input was strict JSON. Valid implies Success.
func (r *Result) Valid() bool { return r.valid }

// Reason returns the most recent human-readable diagnostic, or "" if the
// input parsed cleanly. Earlier diagnostics displaced from Reason remain
// visible in ErrorCodes.
func (r *Result) Reason() string { return r.reason }

// ErrorCodes returns the ordered trace of deviations noticed during the
// parse. The trace may contain duplicates; it is a log, not a set.
func (r *Result) ErrorCodes() []ErrorKind { return r.codes }

// Has reports whether kind appears anywhere in the error trace.
func (r *Result) Has(kind ErrorKind) bool { return slices.Contains(r.codes, kind) }

// HasNoStructure reports whether nothing JSON-shaped was found.
func (r *Result) HasNoStructure() bool { return r.Has(NoStructure) }

// HasExtraText reports whether non-JSON content surrounded or followed the
// recognized structure.
func (r *Result) HasExtraText() bool { return r.Has(ExtraText) }

// HasInvalidFormat reports whether the input contained characters indicative
// of non-JSON syntax.
func (r *Result) HasInvalidFormat() bool { return r.Has(InvalidFormat) }

// HasInvalidStructure reports whether tokens were present but no value could
// be built from them.
func (r *Result) HasInvalidStructure() bool { return r.Has(InvalidStructure) }

// HasUnclosedString reports whether a string literal was never terminated.
func (r *Result) HasUnclosedString() bool { return r.Has(UnclosedString) }

// HasIncomplete reports whether an array, object, or the top-level value was
// truncated before its closer.
func (r *Result) HasIncomplete() bool { return r.Has(Incomplete) }

// fail marks r as a terminal failure with the given kind and message.
func (r *Result) fail(kind ErrorKind, reason string) *Result {
	r.success = false
	r.valid = false
	r.reason = reason
	r.codes = append(r.codes, kind)
	return r
}

// flag downgrades r to invalid with the given kind and message, leaving any
// recovered data in place.
func (r *Result) flag(kind ErrorKind, reason string) {
	r.valid = false
	r.reason = reason
	r.codes = append(r.codes, kind)
}
