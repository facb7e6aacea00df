package coerce

import (
	"github.com/fieldforge/fieldforge/record"
)

// Coerce converts a candidate field mapping into typed, API-ready
// properties according to schema. Candidates whose name the schema does not
// declare are dropped without error, as are candidates whose value cannot
// satisfy the declared kind. See the package documentation for the
// invariants the result upholds.
//
// The schema and candidates are read-only to this call; Coerce holds no
// state and is safe for concurrent use.
func Coerce(candidates map[string]any, schema record.Schema) record.Properties {
	properties := record.Properties{}

	for name, value := range candidates {
		field, ok := schema.Field(name)
		if !ok {
			continue
		}
		if property, ok := coerceField(field.Kind, value); ok {
			properties[name] = property
		}
	}

	return properties
}

// coerceField dispatches on the declared kind. The switch is exhaustive
// over every kind record declares; adding a kind without a case here is a
// compile-visible omission during review, and unknown kinds coming from a
// malformed descriptor fall out as absent.
func coerceField(kind record.Kind, value any) (record.Property, bool) {
	switch kind {
	case record.KindSelect:
		name, ok := optionName(value)
		if !ok {
			return record.Property{}, false
		}
		return record.SelectProperty(name), true

	case record.KindMultiSelect:
		list, ok := value.([]any)
		if !ok {
			list = []any{value}
		}
		names := make([]string, 0, len(list))
		for _, item := range list {
			if name, ok := optionName(item); ok {
				names = append(names, name)
			}
		}
		// An empty option list is still a valid multi_select value.
		return record.MultiSelectProperty(names...), true

	case record.KindStatus:
		name, ok := optionName(value)
		if !ok {
			return record.Property{}, false
		}
		return record.StatusProperty(name), true

	case record.KindDate:
		start, ok := dateStart(value)
		if !ok {
			return record.Property{}, false
		}
		return record.DateProperty(start), true

	case record.KindCheckbox:
		// Boolean coercion always succeeds; a checkbox is never omitted.
		return record.CheckboxProperty(Truthy(value)), true

	case record.KindNumber:
		if value == nil {
			return record.Property{}, false
		}
		parsed, ok := numeric(value)
		if !ok {
			return record.Property{}, false
		}
		return record.NumberProperty(parsed), true

	case record.KindTitle:
		return record.TitleProperty(plainText(value)), true

	case record.KindRichText:
		return record.RichTextProperty(plainText(value)), true

	case record.KindPeople, record.KindFiles:
		// These kinds need external identifiers a model cannot derive from
		// free text; they are unsupported and always omitted.
		return record.Property{}, false

	default:
		return record.Property{}, false
	}
}
