// Package record defines the data model shared by every stage of the
// capture pipeline: the externally supplied [Schema] describing the typed
// fields a target record may carry, and the API-shaped [Property] values the
// coercion engine produces for it.
//
// A Schema is an ordered collection of named [Field] descriptors. Order is
// preserved because callers rely on it (the fallback path populates the
// first title-kind field, and prompt builders list fields in schema order).
// Schemas are read-only once constructed; one Schema value may be shared by
// any number of concurrent coercion calls.
//
// Property values mirror the wire shape a strict typed records API expects,
// e.g. a select field is {"select":{"name":"Done"}} and a title field is
// {"title":[{"text":{"content":"Buy milk"}}]}. Use the constructors
// ([SelectProperty], [TitleProperty], ...) rather than building the structs
// by hand.
package record
