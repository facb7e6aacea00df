// Package normalize reconciles the several structural forms a parsed model
// response may take into one canonical field mapping. Models asked for a
// JSON object sometimes return a bare string, a single-element array, or
// nothing usable at all; [Normalize] collapses all of those variants into a
// map so downstream stages only ever deal with one shape.
package normalize
