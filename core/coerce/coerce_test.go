package coerce

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/fieldforge/fieldforge/record"
)

func testSchema() record.Schema {
	return record.NewSchema(
		record.Field{Name: "Name", Kind: record.KindTitle},
		record.Field{Name: "Notes", Kind: record.KindRichText},
		record.Field{Name: "Status", Kind: record.KindSelect, Options: []string{"Todo", "Done"}},
		record.Field{Name: "Tags", Kind: record.KindMultiSelect, Options: []string{"home", "work"}},
		record.Field{Name: "Stage", Kind: record.KindStatus},
		record.Field{Name: "Due", Kind: record.KindDate},
		record.Field{Name: "Done", Kind: record.KindCheckbox},
		record.Field{Name: "Points", Kind: record.KindNumber},
		record.Field{Name: "Owner", Kind: record.KindPeople},
		record.Field{Name: "Attachment", Kind: record.KindFiles},
	)
}

func TestCoerceKinds(t *testing.T) {
	schema := testSchema()

	tests := []struct {
		name       string
		candidates map[string]any
		want       record.Properties
	}{
		{
			name:       "select from string",
			candidates: map[string]any{"Status": "Done"},
			want:       record.Properties{"Status": record.SelectProperty("Done")},
		},
		{
			name:       "select from object with name",
			candidates: map[string]any{"Status": map[string]any{"name": "Todo"}},
			want:       record.Properties{"Status": record.SelectProperty("Todo")},
		},
		{
			name:       "select with empty name omitted",
			candidates: map[string]any{"Status": map[string]any{"name": ""}},
			want:       record.Properties{},
		},
		{
			name:       "select novel option kept",
			candidates: map[string]any{"Status": "Blocked"},
			want:       record.Properties{"Status": record.SelectProperty("Blocked")},
		},
		{
			name:       "multi select from list",
			candidates: map[string]any{"Tags": []any{"home", map[string]any{"name": "work"}}},
			want:       record.Properties{"Tags": record.MultiSelectProperty("home", "work")},
		},
		{
			name:       "multi select wraps scalar",
			candidates: map[string]any{"Tags": "home"},
			want:       record.Properties{"Tags": record.MultiSelectProperty("home")},
		},
		{
			name:       "multi select keeps empty list",
			candidates: map[string]any{"Tags": []any{"", nil}},
			want:       record.Properties{"Tags": record.MultiSelectProperty()},
		},
		{
			name:       "status from string",
			candidates: map[string]any{"Stage": "In progress"},
			want:       record.Properties{"Stage": record.StatusProperty("In progress")},
		},
		{
			name:       "date from string",
			candidates: map[string]any{"Due": "2025-03-01"},
			want:       record.Properties{"Due": record.DateProperty("2025-03-01")},
		},
		{
			name:       "date from object with start",
			candidates: map[string]any{"Due": map[string]any{"start": "2025-03-01"}},
			want:       record.Properties{"Due": record.DateProperty("2025-03-01")},
		},
		{
			name:       "date without start omitted",
			candidates: map[string]any{"Due": map[string]any{"end": "2025-03-01"}},
			want:       record.Properties{},
		},
		{
			name:       "checkbox true",
			candidates: map[string]any{"Done": true},
			want:       record.Properties{"Done": record.CheckboxProperty(true)},
		},
		{
			name:       "checkbox never omitted",
			candidates: map[string]any{"Done": nil},
			want:       record.Properties{"Done": record.CheckboxProperty(false)},
		},
		{
			name:       "checkbox from truthy string",
			candidates: map[string]any{"Done": "yes"},
			want:       record.Properties{"Done": record.CheckboxProperty(true)},
		},
		{
			name:       "number from json number",
			candidates: map[string]any{"Points": float64(3.5)},
			want:       record.Properties{"Points": record.NumberProperty(3.5)},
		},
		{
			name:       "number from numeric string",
			candidates: map[string]any{"Points": "42"},
			want:       record.Properties{"Points": record.NumberProperty(42)},
		},
		{
			name:       "number from garbage omitted",
			candidates: map[string]any{"Points": "abc"},
			want:       record.Properties{},
		},
		{
			name:       "number from nil omitted",
			candidates: map[string]any{"Points": nil},
			want:       record.Properties{},
		},
		{
			name:       "title from string",
			candidates: map[string]any{"Name": "Buy milk"},
			want:       record.Properties{"Name": record.TitleProperty("Buy milk")},
		},
		{
			name: "title from rich text list",
			candidates: map[string]any{"Name": []any{
				map[string]any{"plain_text": "Buy "},
				map[string]any{"plain_text": "milk"},
				map[string]any{"href": "ignored"},
			}},
			want: record.Properties{"Name": record.TitleProperty("Buy milk")},
		},
		{
			name:       "title always emitted even when empty",
			candidates: map[string]any{"Name": ""},
			want:       record.Properties{"Name": record.TitleProperty("")},
		},
		{
			name:       "rich text from string",
			candidates: map[string]any{"Notes": "details here"},
			want:       record.Properties{"Notes": record.RichTextProperty("details here")},
		},
		{
			name:       "people always omitted",
			candidates: map[string]any{"Owner": "someone@example.com"},
			want:       record.Properties{},
		},
		{
			name:       "files always omitted",
			candidates: map[string]any{"Attachment": "https://example.com/a.pdf"},
			want:       record.Properties{},
		},
		{
			name:       "unknown field dropped",
			candidates: map[string]any{"Nope": "value"},
			want:       record.Properties{},
		},
		{
			name: "mixed record",
			candidates: map[string]any{
				"Name":   "Buy milk",
				"Status": "Done",
				"Points": "2",
				"Nope":   "dropped",
			},
			want: record.Properties{
				"Name":   record.TitleProperty("Buy milk"),
				"Status": record.SelectProperty("Done"),
				"Points": record.NumberProperty(2),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Coerce(tt.candidates, schema)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Coerce() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestCoerceOutputKeysExistInSchema(t *testing.T) {
	schema := testSchema()
	candidates := map[string]any{
		"Name": "x", "Status": "s", "Bogus": 1, "Other": true, "Points": "7",
	}
	got := Coerce(candidates, schema)
	for name := range got {
		if !schema.Has(name) {
			t.Errorf("output key %q is not declared by the schema", name)
		}
	}
}

func TestCoerceWireShape(t *testing.T) {
	schema := testSchema()
	got := Coerce(map[string]any{
		"Name":   "Buy milk",
		"Status": "Done",
		"Tags":   []any{},
		"Done":   false,
	}, schema)

	encoded, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var wire map[string]map[string]any
	if err := json.Unmarshal(encoded, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if wire["Name"]["title"] == nil {
		t.Error(`title field missing "title" member on the wire`)
	}
	if wire["Status"]["select"].(map[string]any)["name"] != "Done" {
		t.Error("select field lost its option name on the wire")
	}
	if list, ok := wire["Tags"]["multi_select"].([]any); !ok || len(list) != 0 {
		t.Errorf(`empty multi_select must survive as [], got %v`, wire["Tags"]["multi_select"])
	}
	if checked, ok := wire["Done"]["checkbox"].(bool); !ok || checked {
		t.Errorf("false checkbox must survive on the wire, got %v", wire["Done"]["checkbox"])
	}
}

// Re-running the coercer over its own output must not crash; the reapplied
// values have API shapes, not candidate shapes, so fields may simply drop
// out. This documents that double coercion is not a round-trip.
func TestCoerceIdempotenceDoesNotPanic(t *testing.T) {
	schema := testSchema()
	first := Coerce(map[string]any{
		"Name":   "Buy milk",
		"Status": "Done",
		"Due":    "2025-03-01",
		"Done":   true,
		"Points": float64(2),
	}, schema)

	// Marshal and re-parse to get candidate-typed values back.
	encoded, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var reparsed map[string]any
	if err := json.Unmarshal(encoded, &reparsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	second := Coerce(reparsed, schema)

	// The date value survives because the wrapped shape carries "start";
	// the select-shaped value carries no top-level "name", so it drops.
	if _, ok := second["Status"]; ok {
		if second["Status"].Select == nil {
			t.Error("reapplied Status present but empty")
		}
	}
	if _, ok := second["Done"]; !ok {
		t.Error("checkbox must survive reapplication (never omitted)")
	}
}
