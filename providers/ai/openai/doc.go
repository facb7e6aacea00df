// Package openai implements the ai.Provider executor contract against the
// OpenAI chat completions API and any compatible endpoint (set
// OPENAI_API_BASE_URL or use WithBaseURL for proxies and gateways).
//
// The provider attaches a USD cost estimate to every response using the
// pricing table in this package; unknown models get a zero estimate rather
// than an error.
package openai
