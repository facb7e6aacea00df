package record

// Option is a named choice of a select, multi_select, or status field.
type Option struct {
	Name string `json:"name"`
}

// Date carries the start date of a date field, as the model produced it
// (typically YYYY-MM-DD; plausibility is not validated here).
type Date struct {
	Start string `json:"start"`
}

// Text is the content leaf of a rich-text segment.
type Text struct {
	Content string `json:"content"`
}

// RichText is a single rich-text segment as the records API expects it.
type RichText struct {
	Text Text `json:"text"`
}

// Property is a typed, API-ready field value. Exactly one of its members is
// set, chosen by the declared Kind of the field it was coerced for.
//
// MultiSelect is a pointer to a slice so that an empty option list still
// marshals as "multi_select": [] rather than disappearing; Checkbox and
// Number are pointers for the same reason (false and 0 are real values).
type Property struct {
	Select      *Option    `json:"select,omitempty"`
	MultiSelect *[]Option  `json:"multi_select,omitempty"`
	Status      *Option    `json:"status,omitempty"`
	Date        *Date      `json:"date,omitempty"`
	Checkbox    *bool      `json:"checkbox,omitempty"`
	Number      *float64   `json:"number,omitempty"`
	Title       []RichText `json:"title,omitempty"`
	RichText    []RichText `json:"rich_text,omitempty"`
}

// Properties maps field names to their coerced values. Every key of a
// Properties value produced by this library exists in the Schema that
// produced it.
type Properties map[string]Property

// SelectProperty returns a select value naming option name.
func SelectProperty(name string) Property {
	return Property{Select: &Option{Name: name}}
}

// MultiSelectProperty returns a multi_select value with the given option
// names. An empty call still yields an explicit empty option list.
func MultiSelectProperty(names ...string) Property {
	options := make([]Option, 0, len(names))
	for _, name := range names {
		options = append(options, Option{Name: name})
	}
	return Property{MultiSelect: &options}
}

// StatusProperty returns a status value naming option name.
func StatusProperty(name string) Property {
	return Property{Status: &Option{Name: name}}
}

// DateProperty returns a date value starting at start.
func DateProperty(start string) Property {
	return Property{Date: &Date{Start: start}}
}

// CheckboxProperty returns a checkbox value.
func CheckboxProperty(checked bool) Property {
	return Property{Checkbox: &checked}
}

// NumberProperty returns a number value.
func NumberProperty(value float64) Property {
	return Property{Number: &value}
}

// TitleProperty returns a title value with a single text segment holding
// content. An empty content still produces one segment.
func TitleProperty(content string) Property {
	return Property{Title: []RichText{{Text: Text{Content: content}}}}
}

// RichTextProperty returns a rich_text value with a single text segment
// holding content.
func RichTextProperty(content string) Property {
	return Property{RichText: []RichText{{Text: Text{Content: content}}}}
}
