package extract

import (
	"errors"
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    any
		wantErr bool
	}{
		{
			name: "plain JSON object",
			raw:  `{"Title":"Buy milk"}`,
			want: map[string]any{"Title": "Buy milk"},
		},
		{
			name: "json-tagged fence",
			raw:  "```json\n{\"Title\":\"Buy milk\"}\n```",
			want: map[string]any{"Title": "Buy milk"},
		},
		{
			name: "untagged fence",
			raw:  "```\n{\"done\":true}\n```",
			want: map[string]any{"done": true},
		},
		{
			name: "fence without closing marker",
			raw:  "```json\n{\"done\":true}",
			want: map[string]any{"done": true},
		},
		{
			name: "prose around the object",
			raw:  `Sure! {"Status":"Done"} Hope that helps.`,
			want: map[string]any{"Status": "Done"},
		},
		{
			name: "bare string value",
			raw:  `"just a message"`,
			want: "just a message",
		},
		{
			name: "array value",
			raw:  `[{"message":"hi"}]`,
			want: []any{map[string]any{"message": "hi"}},
		},
		{
			name: "number value",
			raw:  `42`,
			want: float64(42),
		},
		{
			name: "null value",
			raw:  `null`,
			want: nil,
		},
		{
			name: "repairable object with single quotes",
			raw:  `Result: {'Status': 'Done'}`,
			want: map[string]any{"Status": "Done"},
		},
		{
			name: "repairable object with trailing comma",
			raw:  `{"Status":"Done",}`,
			want: map[string]any{"Status": "Done"},
		},
		{
			name:    "empty string",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			raw:     "   \n\t ",
			wantErr: true,
		},
		{
			name:    "prose without braces",
			raw:     "I could not produce any structured output, sorry.",
			wantErr: true,
		},
		{
			name:    "braces in wrong order",
			raw:     "} nothing useful {",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Extract(%q) = %v, want error", tt.raw, got)
				}
				if !errors.Is(err, ErrUnparsable) {
					t.Fatalf("Extract(%q) error = %v, want ErrUnparsable", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Extract(%q) returned error: %v", tt.raw, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no fence", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json tag", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "plain fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", in: "  ```json\n{}\n```  ", want: "{}"},
		{name: "only opening fence", in: "```json\n{}", want: "{}"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
