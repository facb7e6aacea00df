package openai

import (
	"strings"

	"github.com/fieldforge/fieldforge/core/cost"
	"github.com/fieldforge/fieldforge/providers/ai"
)

// Model name constants for the models the analysis flows default to.
const (
	ModelGPT4oMini = "gpt-4o-mini"
	ModelGPT4o     = "gpt-4o"
	ModelGPT41     = "gpt-4.1"
	ModelGPT41Mini = "gpt-4.1-mini"
)

// ModelPricing contains pricing for the supported models, in USD per
// million tokens. Unlisted models price at zero; a missing estimate is
// better than a wrong one.
var ModelPricing = map[string]cost.ModelCost{
	ModelGPT4oMini: {
		InputCostPerMillion:       0.15,
		OutputCostPerMillion:      0.60,
		CachedInputCostPerMillion: 0.075,
	},
	ModelGPT4o: {
		InputCostPerMillion:       2.50,
		OutputCostPerMillion:      10.00,
		CachedInputCostPerMillion: 1.25,
	},
	ModelGPT41: {
		InputCostPerMillion:       2.00,
		OutputCostPerMillion:      8.00,
		CachedInputCostPerMillion: 0.50,
	},
	ModelGPT41Mini: {
		InputCostPerMillion:       0.40,
		OutputCostPerMillion:      1.60,
		CachedInputCostPerMillion: 0.10,
	},
}

// CalculateCost estimates the USD cost of usage on model. Providers often
// answer with a dated variant of the requested model name (for example
// "gpt-4o-mini-2024-07-18"), so an exact-match miss falls back to the
// longest known prefix.
func CalculateCost(model string, usage ai.Usage) float64 {
	pricing, ok := ModelPricing[model]
	if !ok {
		pricing, ok = pricingByPrefix(model)
	}
	if !ok {
		return 0
	}
	return pricing.CalculateTotalCost(usage.PromptTokens, usage.CompletionTokens, usage.CachedTokens)
}

func pricingByPrefix(model string) (cost.ModelCost, bool) {
	var (
		best    cost.ModelCost
		bestLen int
		found   bool
	)
	for name, pricing := range ModelPricing {
		if strings.HasPrefix(model, name) && len(name) > bestLen {
			best = pricing
			bestLen = len(name)
			found = true
		}
	}
	return best, found
}
