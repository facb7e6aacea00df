// Package utils holds small internal helpers shared across the library:
// log-safe string truncation and JSON rendering, and the generic HTTP POST
// helper the provider implementations dispatch requests through.
package utils
