package analyzer

import (
	"github.com/fieldforge/fieldforge/record"
)

// FallbackProperties synthesizes the degraded result for a failed
// single-shot analysis: the first title-kind field of schema populated with
// text verbatim. When the schema declares no title field the result is
// empty, never nil.
func FallbackProperties(schema record.Schema, text string) record.Properties {
	properties := record.Properties{}
	if field, ok := schema.FirstOfKind(record.KindTitle); ok {
		properties[field.Name] = record.TitleProperty(text)
	}
	return properties
}
