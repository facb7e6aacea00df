package record

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies the declared type of a schema field; compatible with string.
type Kind string

const (
	KindTitle       Kind = "title"
	KindRichText    Kind = "rich_text"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multi_select"
	KindStatus      Kind = "status"
	KindDate        Kind = "date"
	KindCheckbox    Kind = "checkbox"
	KindNumber      Kind = "number"
	KindPeople      Kind = "people"
	KindFiles       Kind = "files"
)

// Valid reports whether k is one of the declared field kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindTitle, KindRichText, KindSelect, KindMultiSelect, KindStatus,
		KindDate, KindCheckbox, KindNumber, KindPeople, KindFiles:
		return true
	}
	return false
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Field describes one named, typed field of a target record.
type Field struct {
	// Name is the field's unique name within its schema.
	Name string `json:"name"`

	// Kind is the declared type of the field.
	Kind Kind `json:"kind"`

	// Options lists the permitted option names for select and multi_select
	// fields, in declaration order. Empty for every other kind. The coercion
	// engine deliberately does not enforce this list; it exists for prompt
	// construction so the model knows the established vocabulary.
	Options []string `json:"options,omitempty"`
}

// Schema is an ordered, immutable set of field descriptors keyed by name.
// The zero value is an empty schema and is safe to use.
type Schema struct {
	fields []Field
	index  map[string]int
}

// NewSchema builds a schema from fields, preserving their order. When two
// fields share a name the later one wins, matching map-like semantics of
// the JSON schema documents this usually comes from.
func NewSchema(fields ...Field) Schema {
	s := Schema{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if i, ok := s.index[f.Name]; ok {
			s.fields[i] = f
			continue
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s
}

// Len returns the number of fields in the schema.
func (s Schema) Len() int {
	return len(s.fields)
}

// Field returns the descriptor for name and whether it exists.
func (s Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Has reports whether the schema declares a field called name.
func (s Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Fields returns the field descriptors in schema order. The returned slice
// is a copy; mutating it does not affect the schema.
func (s Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Names returns the field names in schema order.
func (s Schema) Names() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}
	return out
}

// FirstOfKind returns the first field declared with kind k, in schema order.
func (s Schema) FirstOfKind(k Kind) (Field, bool) {
	for _, f := range s.fields {
		if f.Kind == k {
			return f, true
		}
	}
	return Field{}, false
}

// ParseSchemaJSON decodes a database "properties" document of the form
//
//	{"Status": {"type": "select", "select": {"options": [{"name": "Done"}]}}, ...}
//
// into a Schema, preserving the field order of the JSON object. Descriptors
// without a "type" tag are skipped; an unknown type string is kept as-is so
// the coercer's closed dispatch can ignore it later.
func ParseSchemaJSON(data []byte) (Schema, error) {
	dec := json.NewDecoder(strings.NewReader(string(data)))

	tok, err := dec.Token()
	if err != nil {
		return Schema{}, fmt.Errorf("record: invalid schema document: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return Schema{}, fmt.Errorf("record: schema document must be a JSON object, got %v", tok)
	}

	var fields []Field
	for dec.More() {
		nameTok, err := dec.Token()
		if err != nil {
			return Schema{}, fmt.Errorf("record: invalid schema document: %w", err)
		}
		name, _ := nameTok.(string)

		var descriptor map[string]any
		if err := dec.Decode(&descriptor); err != nil {
			return Schema{}, fmt.Errorf("record: invalid descriptor for field %q: %w", name, err)
		}

		typeTag, ok := descriptor["type"].(string)
		if !ok {
			continue
		}
		fields = append(fields, Field{
			Name:    name,
			Kind:    Kind(typeTag),
			Options: descriptorOptions(descriptor, typeTag),
		})
	}

	return NewSchema(fields...), nil
}

// descriptorOptions extracts the option names nested under
// descriptor[typeTag]["options"] for select-like descriptors.
func descriptorOptions(descriptor map[string]any, typeTag string) []string {
	if typeTag != string(KindSelect) && typeTag != string(KindMultiSelect) && typeTag != string(KindStatus) {
		return nil
	}
	config, ok := descriptor[typeTag].(map[string]any)
	if !ok {
		return nil
	}
	rawOptions, ok := config["options"].([]any)
	if !ok {
		return nil
	}
	var names []string
	for _, rawOption := range rawOptions {
		option, ok := rawOption.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := option["name"].(string); ok && name != "" {
			names = append(names, name)
		}
	}
	return names
}
