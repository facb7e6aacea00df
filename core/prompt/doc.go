// Package prompt builds the texts sent to the model: the single-shot
// analysis prompt (system instructions, a simplified schema summary,
// few-shot examples from recent records, and the user input) and the
// conversational system message that pins the model to the JSON output
// contract the recovery pipeline expects.
//
// The schema summary intentionally flattens the schema into short
// per-field descriptions such as "select options: [Todo Done]", which
// models follow far more reliably than a raw schema document.
package prompt
