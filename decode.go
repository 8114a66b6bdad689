// Copyright (C) 2025 Ovid. All Rights Reserved.

package fauxson

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
	"github.com/tailscale/hujson"
)

// Unmarshal decodes data into v, tolerating malformed input. It tries, in
// order: strict decoding with encoding/json; standardizing comments and
// trailing commas away with hujson and decoding the result; the tolerant
// Parse pipeline, re-encoded through the recovered tree; and finally a
// jsonrepair pass. The first strategy that produces a decodable document
// wins. Unmarshal reports an error only when every strategy fails.
//
// The strict non-goals of Parse do not apply here: Unmarshal is a
// convenience for callers who want a best-effort decode of model output
// into Go values, not a classification of how the input was malformed. Use
// Parse when the verdict matters.
func Unmarshal(data []byte, v any) error {
	strictErr := json.Unmarshal(data, v)
	if strictErr == nil {
		return nil
	}

	if std, err := hujson.Standardize(data); err == nil {
		if json.Unmarshal(std, v) == nil {
			return nil
		}
	}

	if r := Parse(string(data)); r.Success() {
		if json.Unmarshal([]byte(r.Data().JSON()), v) == nil {
			return nil
		}
	}

	repaired, repairErr := jsonrepair.JSONRepair(string(data))
	if repairErr != nil {
		return fmt.Errorf("unmarshal: %w (repair also failed: %v)", strictErr, repairErr)
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return fmt.Errorf("unmarshal repaired input: %w", err)
	}
	return nil
}
