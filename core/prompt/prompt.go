package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fieldforge/fieldforge/record"
)

// Builder constructs the default prompt texts. It is stateless; the zero
// value is ready to use.
type Builder struct{}

// AnalysisPrompt builds the full single-shot analysis prompt from the
// system instructions, a summary of the target schema, few-shot examples
// simplified from recent records, and the user input.
func (Builder) AnalysisPrompt(text string, schema record.Schema, examples []map[string]any, systemPrompt string) string {
	var b strings.Builder

	b.WriteString(systemPrompt)
	b.WriteString("\n\nTarget Database Schema:\n")
	b.WriteString(SchemaSummary(schema))
	b.WriteString("\n\nRecent Examples:\n")
	for _, example := range examples {
		b.WriteString("- ")
		b.WriteString(simplifyExample(example))
		b.WriteString("\n")
	}
	b.WriteString("\nUser Input:\n")
	b.WriteString(text)
	b.WriteString("\n\nOutput JSON format strictly. NO markdown code blocks.\n")

	return b.String()
}

// ChatSystemMessage builds the system message for the conversational flow:
// the caller's instructions, the schema summary, and the strict JSON output
// contract (message, optional stamp emoji, optional refined_text, optional
// properties) the response pipeline expects.
func (Builder) ChatSystemMessage(schema record.Schema, systemPrompt string) string {
	var b strings.Builder

	b.WriteString(systemPrompt)
	b.WriteString("\n\nTarget Schema:\n")
	b.WriteString(SchemaSummary(schema))
	b.WriteString(`

Restraints:
- You are a helpful AI assistant.
- Your output must be valid JSON ONLY.
- Structure:
{
  "message": "Response to the user",
  "stamp": "😊",
  "refined_text": "Refined version of the input, if applicable (or null)",
  "properties": { "Property Name": "Value" }
}
- If the user is just chatting, "properties" should be null.
- If the user wants to save/add data, fill "properties" according to the Schema.
- Use "stamp" to express emotion with a single emoji (e.g. 😊 happy, 🤔 thinking, 😮 surprised, 👍 approval) only when natural - not required for every response.`)

	return b.String()
}

// SchemaSummary flattens a schema into a compact JSON-object text keeping
// the schema's field order, e.g.:
//
//	{
//	  "Name": "title",
//	  "Status": "select options: [Todo Done]"
//	}
func SchemaSummary(schema record.Schema) string {
	var b strings.Builder
	b.WriteString("{\n")
	fields := schema.Fields()
	for i, field := range fields {
		description := string(field.Kind)
		if (field.Kind == record.KindSelect || field.Kind == record.KindMultiSelect) && len(field.Options) > 0 {
			description = fmt.Sprintf("%s options: %v", field.Kind, field.Options)
		}
		fmt.Fprintf(&b, "  %q: %q", field.Name, description)
		if i < len(fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// simplifyExample reduces a raw record document (a page object with a
// "properties" member in API shape) to one compact JSON line of plain
// values, suitable for few-shot prompting.
func simplifyExample(example map[string]any) string {
	properties, _ := example["properties"].(map[string]any)
	simple := make(map[string]any, len(properties))

	for name, rawValue := range properties {
		value, ok := rawValue.(map[string]any)
		if !ok {
			continue
		}
		typeTag, _ := value["type"].(string)
		simple[name] = simplifyProperty(value, typeTag)
	}

	encoded, err := json.Marshal(simple)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}

// simplifyProperty extracts the plain value out of one API-shaped property.
func simplifyProperty(value map[string]any, typeTag string) any {
	switch record.Kind(typeTag) {
	case record.KindTitle:
		return joinPlainText(value["title"])
	case record.KindRichText:
		return joinPlainText(value["rich_text"])
	case record.KindSelect:
		if sel, ok := value["select"].(map[string]any); ok {
			return sel["name"]
		}
		return nil
	case record.KindMultiSelect:
		options, _ := value["multi_select"].([]any)
		names := make([]any, 0, len(options))
		for _, rawOption := range options {
			if option, ok := rawOption.(map[string]any); ok {
				names = append(names, option["name"])
			}
		}
		return names
	case record.KindDate:
		if date, ok := value["date"].(map[string]any); ok {
			return date["start"]
		}
		return nil
	case record.KindCheckbox:
		return value["checkbox"]
	default:
		return "N/A"
	}
}

// joinPlainText concatenates the plain_text members of a rich-text list.
func joinPlainText(value any) string {
	list, _ := value.([]any)
	var b strings.Builder
	for _, element := range list {
		if segment, ok := element.(map[string]any); ok {
			if text, ok := segment["plain_text"].(string); ok {
				b.WriteString(text)
			}
		}
	}
	return b.String()
}
