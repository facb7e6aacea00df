// Package ingest cleans captured input before it reaches the model.
// Web-clipped notes often arrive as HTML fragments; feeding raw markup to
// the model wastes tokens and skews extraction, so [HTMLToMarkdown]
// converts such input to markdown while passing plain text through
// untouched.
package ingest
