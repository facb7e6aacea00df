package prompt

import (
	"strings"
	"testing"

	"github.com/fieldforge/fieldforge/record"
)

func promptSchema() record.Schema {
	return record.NewSchema(
		record.Field{Name: "Name", Kind: record.KindTitle},
		record.Field{Name: "Status", Kind: record.KindSelect, Options: []string{"Todo", "Done"}},
		record.Field{Name: "Due", Kind: record.KindDate},
	)
}

func TestSchemaSummary(t *testing.T) {
	summary := SchemaSummary(promptSchema())

	for _, want := range []string{`"Name": "title"`, `"Status": "select options: [Todo Done]"`, `"Due": "date"`} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}

	// Field order must follow schema order.
	if strings.Index(summary, `"Name"`) > strings.Index(summary, `"Status"`) {
		t.Errorf("summary does not preserve schema order:\n%s", summary)
	}
}

func TestAnalysisPrompt(t *testing.T) {
	examples := []map[string]any{
		{
			"properties": map[string]any{
				"Name": map[string]any{
					"type":  "title",
					"title": []any{map[string]any{"plain_text": "Buy milk"}},
				},
				"Status": map[string]any{
					"type":   "select",
					"select": map[string]any{"name": "Done"},
				},
			},
		},
	}

	got := Builder{}.AnalysisPrompt("pick up eggs", promptSchema(), examples, "You capture tasks.")

	for _, want := range []string{
		"You capture tasks.",
		"Target Database Schema:",
		"Recent Examples:",
		`"Name":"Buy milk"`,
		`"Status":"Done"`,
		"User Input:\npick up eggs",
		"NO markdown code blocks",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestAnalysisPromptNoExamples(t *testing.T) {
	got := Builder{}.AnalysisPrompt("note", promptSchema(), nil, "sys")
	if !strings.Contains(got, "Recent Examples:") {
		t.Errorf("prompt should keep the examples section header even when empty:\n%s", got)
	}
}

func TestChatSystemMessage(t *testing.T) {
	got := Builder{}.ChatSystemMessage(promptSchema(), "You are a capture assistant.")

	for _, want := range []string{
		"You are a capture assistant.",
		"Target Schema:",
		`"message": "Response to the user"`,
		`"refined_text"`,
		`"properties"`,
		`"stamp"`,
		"valid JSON ONLY",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("chat system message missing %q", want)
		}
	}
}
