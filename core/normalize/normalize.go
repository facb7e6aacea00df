package normalize

// Normalize coerces a parsed JSON value of arbitrary type into a field
// mapping. It never fails; inputs with no usable structure come back as an
// empty (non-nil) map.
//
// Rules, in order:
//   - a mapping is returned as-is (nil maps become empty ones);
//   - a non-empty string is wrapped as {"message": value};
//   - a non-empty array contributes its first element when that element is
//     a mapping, and nothing otherwise;
//   - everything else (empty string, empty array, nil, numbers, booleans)
//     yields an empty map.
func Normalize(value any) map[string]any {
	switch v := value.(type) {
	case map[string]any:
		if v == nil {
			return map[string]any{}
		}
		return v
	case string:
		if v == "" {
			return map[string]any{}
		}
		return map[string]any{"message": v}
	case []any:
		if len(v) == 0 {
			return map[string]any{}
		}
		if first, ok := v[0].(map[string]any); ok && first != nil {
			return first
		}
		return map[string]any{}
	default:
		return map[string]any{}
	}
}
