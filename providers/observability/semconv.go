package observability

// Semantic conventions: standard attribute names used across the library so
// telemetry from different components lines up.

// --- Analysis pipeline attributes ---

const (
	// AttrRequestID is the per-invocation identifier attached to every span
	// of one analysis call.
	AttrRequestID = "analysis.request.id"

	// AttrSchemaFields is the number of fields in the target schema.
	AttrSchemaFields = "analysis.schema.fields"

	// AttrHistoryLength is the number of prior turns in a chat invocation.
	AttrHistoryLength = "analysis.history.length"

	// AttrHasImage records whether the current turn carries image data.
	AttrHasImage = "analysis.has_image"

	// AttrPropertiesCoerced is the number of fields that survived coercion.
	AttrPropertiesCoerced = "analysis.properties.coerced"

	// AttrFallback records that the title-only fallback was synthesized.
	AttrFallback = "analysis.fallback"
)

// --- Model executor attributes ---

const (
	// AttrLLMModel is the model identifier (e.g. "gpt-4o-mini").
	AttrLLMModel = "llm.model"

	// AttrLLMEndpoint is the API endpoint URL.
	AttrLLMEndpoint = "llm.endpoint"

	// AttrLLMFinishReason is the reason generation finished.
	AttrLLMFinishReason = "llm.finish_reason"

	// AttrLLMTokensPrompt is the number of prompt tokens.
	AttrLLMTokensPrompt = "llm.tokens.prompt" // #nosec G101 -- token counts, not credentials

	// AttrLLMTokensCompletion is the number of completion tokens.
	AttrLLMTokensCompletion = "llm.tokens.completion" // #nosec G101 -- token counts, not credentials

	// AttrLLMCost is the executor's cost estimate in USD.
	AttrLLMCost = "llm.cost_usd"
)

// --- HTTP attributes ---

const (
	AttrHTTPMethod          = "http.method"
	AttrHTTPURL             = "http.url"
	AttrHTTPStatusCode      = "http.status_code"
	AttrHTTPRequestBodySize = "http.request.body.size"
	AttrHTTPDuration        = "http.duration"
)

// --- Status attributes ---

const (
	AttrStatus            = "status"
	AttrStatusDescription = "status.description"
	AttrError             = "error"
)
