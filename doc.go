// Copyright (C) 2025 Ovid. All Rights Reserved.

// Package fauxson recovers structured data from text that is supposed to be
// JSON but frequently is not: truncated model output, JSON wrapped in prose,
// stray quoting styles. It is a fallback for use after a strict parser has
// failed, and it favors maximal data recovery over strict rejection.
//
// # Parsing
//
// Parse extracts the first JSON structure from its input and reports what it
// found, how much of it was usable, and why the input deviates from strict
// JSON:
//
//	r := fauxson.Parse(`The answer is {"a": [1, 2`)
//	r.Success() // true:  a value was recovered
//	r.Valid()   // false: the input was not strict JSON
//	r.Data()    // ast.Object{...} with a = [1, 2]
//	r.Reason()  // "Found extra text outside JSON structure"
//
// Parse never returns an error. Every outcome is a Result whose Success,
// Valid, Reason, and error-code accessors are fully populated. Success
// reports whether any value was recovered; Valid reports whether the input
// was strict JSON apart from the tolerated trailing comma.
//
// # JSON Lines
//
// ParseJSONL treats each non-blank line of the input as an independent
// document and folds the per-line outcomes into one aggregate Result whose
// data is an array of the recovered line values:
//
//	r := fauxson.ParseJSONL("{\"a\":1}\n{\"b\":2}\n")
//	r.Data() // ast.Array{...} with one element per line
//
// The Parser type carries the same choice as a construction-time option:
//
//	p := fauxson.Parser{JSONL: true}
//	r := p.Parse(input)
//
// # Error taxonomy
//
// Each Result carries an ordered trace of ErrorKind codes describing every
// deviation noticed during the parse. The trace is append-only: a later,
// higher-priority diagnostic overwrites the Reason text but does not retract
// codes already recorded. Membership is tested with the Has* predicates:
//
//	if r.HasUnclosedString() {
//	   log.Printf("generation broke at %s", r.Reason())
//	}
//
// # Limits
//
// Tokenization stops after a fixed cap of 10,000 tokens. The cap is a
// resource-exhaustion guard against pathological inputs, not a correctness
// feature: a structure larger than the cap is truncated and reported as
// incomplete. Nesting depth is bounded only by the same cap.
package fauxson
