// Package cost provides the pricing arithmetic provider implementations
// use to turn token usage into the USD cost estimate attached to every
// executor response.
package cost
