package extract

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ErrUnparsable is returned when no JSON value can be recovered from the
// input, even after fence stripping, brace-substring retry, and repair.
var ErrUnparsable = errors.New("extract: no parsable JSON value in model output")

// Extract recovers a JSON value from raw model output.
//
// The recovery ladder:
//  1. Trim whitespace and strip a surrounding markdown code fence,
//     optionally tagged "json".
//  2. Strict parse of the cleaned string. Any JSON type may come back.
//  3. On failure, take the substring from the first '{' to the last '}'
//     (by index, not brace matching) and strict-parse that.
//  4. If the substring still does not parse, run it through jsonrepair and
//     parse once more.
//
// Input containing no brace-delimited region never reaches the repair stage,
// so free prose and empty strings fail fast with [ErrUnparsable].
func Extract(raw string) (any, error) {
	cleaned := StripFences(raw)

	var value any
	if err := json.Unmarshal([]byte(cleaned), &value); err == nil {
		return value, nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || start >= end {
		return nil, ErrUnparsable
	}

	candidate := cleaned[start : end+1]
	if err := json.Unmarshal([]byte(candidate), &value); err == nil {
		return value, nil
	}

	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		return nil, ErrUnparsable
	}
	if err := json.Unmarshal([]byte(repaired), &value); err != nil {
		return nil, ErrUnparsable
	}
	return value, nil
}

// StripFences removes a wrapping markdown code fence from s. The opening
// fence may carry a "json" language tag; a missing closing fence is
// tolerated since truncated model output often loses it.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}
