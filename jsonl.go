// Copyright (C) 2025 Ovid. All Rights Reserved.

package fauxson

import (
	"strings"

	"github.com/Ovid/fauxson/ast"
)

// parseLines runs the single-document pipeline once per non-blank line and
// folds the per-line outcomes into one aggregate Result. Blank lines are
// skipped outright: not counted, not reasoned about. Lines share no state;
// each parse starts from a clean slate.
func parseLines(text string) *Result {
	agg := new(Result)

	var (
		values   ast.Array
		reasons  []string
		allValid = true
	)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r := parseDocument(line)
		if r.success {
			values = append(values, r.data)
			allValid = allValid && r.valid
		} else {
			allValid = false
		}
		if r.reason != "" {
			reasons = append(reasons, r.reason)
		}
		agg.codes = append(agg.codes, r.codes...)
	}

	agg.reason = strings.Join(reasons, "\n")
	if len(values) > 0 {
		agg.success = true
		agg.data = values
	}
	agg.valid = allValid && agg.success
	return agg
}
