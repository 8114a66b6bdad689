// Copyright (C) 2025 Ovid. All Rights Reserved.

package fauxson_test

import (
	"testing"

	"github.com/Ovid/fauxson"
	"github.com/google/go-cmp/cmp"
)

func TestUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{"Strict", `{"a": 1}`,
			map[string]any{"a": 1.0}},

		// Comments and trailing commas are standardized away.
		{"Commented", `{"a": 1, /* note */ "b": [2,],}`,
			map[string]any{"a": 1.0, "b": []any{2.0}}},

		// Prose around the structure falls through to tolerant extraction.
		{"Prose", `Result: {"a": 1} as requested`,
			map[string]any{"a": 1.0}},

		// A truncated container is recovered by the tolerant pipeline.
		{"Truncated", `{"a": [1, 2`,
			map[string]any{"a": []any{1.0, 2.0}}},

		// Single quotes defeat the tolerant pipeline and reach the repair
		// pass.
		{"SingleQuoted", `{'a': 1}`,
			map[string]any{"a": 1.0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got any
			if err := fauxson.Unmarshal([]byte(tc.input), &got); err != nil {
				t.Fatalf("Unmarshal(%#q): %v", tc.input, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Unmarshal(%#q): (-want, +got)\n%s", tc.input, diff)
			}
		})
	}
}

func TestUnmarshal_struct(t *testing.T) {
	type reply struct {
		Name string   `json:"name"`
		Tags []string `json:"tags"`
	}
	var got reply
	input := `Sure! Here is the JSON: {"name": "Dennis", "tags": ["old", "woman"`
	if err := fauxson.Unmarshal([]byte(input), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := reply{Name: "Dennis", Tags: []string{"old", "woman"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Unmarshal: (-want, +got)\n%s", diff)
	}
}
