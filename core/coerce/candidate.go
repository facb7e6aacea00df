package coerce

import (
	"encoding/json"
	"math"
	"strconv"
)

// Candidate values arrive as the closed union encoding/json produces:
// map[string]any | []any | string | float64 | bool | nil. The helpers below
// are the only places that union is taken apart.

// Truthy reports whether a candidate value counts as present. Empty
// strings, zero numbers, false, nil, and empty containers are all absent;
// this mirrors how the upstream producer distinguishes "no value" from a
// value, so a select candidate of "" or 0 is dropped rather than coerced.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	case map[string]any:
		return len(v) > 0
	case []any:
		return len(v) > 0
	default:
		return true
	}
}

// Stringify renders a candidate value the way the records API expects to
// see it inside a name or content slot. JSON numbers that are whole render
// without a decimal point; containers render as compact JSON; nil renders
// as the empty string.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}

// optionName resolves a select-like candidate: objects contribute their
// "name" member, anything else is treated as the name itself. The second
// return is false when the resolved name is absent (empty, nil, zero).
func optionName(value any) (string, bool) {
	if object, ok := value.(map[string]any); ok {
		value = object["name"]
	}
	if !Truthy(value) {
		return "", false
	}
	return Stringify(value), true
}

// dateStart resolves a date candidate: objects contribute their "start"
// member, anything else is the start value itself.
func dateStart(value any) (string, bool) {
	if object, ok := value.(map[string]any); ok {
		value = object["start"]
	}
	if !Truthy(value) {
		return "", false
	}
	return Stringify(value), true
}

// numeric parses a candidate into a float, accepting JSON numbers, numeric
// strings, and booleans (1/0). The second return is false when the value is
// nil or does not parse.
func numeric(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// plainText flattens a rich-text-like candidate into its concatenated
// plain_text members. Elements that are not objects or carry no plain_text
// member contribute nothing. Non-list candidates fall back to Stringify.
func plainText(value any) string {
	list, ok := value.([]any)
	if !ok {
		return Stringify(value)
	}
	var out string
	for _, element := range list {
		segment, ok := element.(map[string]any)
		if !ok {
			continue
		}
		text, ok := segment["plain_text"]
		if !ok {
			continue
		}
		out += Stringify(text)
	}
	return out
}
