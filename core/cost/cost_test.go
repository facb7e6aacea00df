package cost

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestCalculateTotalCost(t *testing.T) {
	mc := ModelCost{
		InputCostPerMillion:       0.15,
		OutputCostPerMillion:      0.60,
		CachedInputCostPerMillion: 0.075,
	}

	tests := []struct {
		name                           string
		input, output, cached          int
		want                           float64
	}{
		{name: "zero usage", want: 0},
		{name: "input only", input: 1_000_000, want: 0.15},
		{name: "output only", output: 500_000, want: 0.30},
		{name: "input plus output", input: 1_000_000, output: 1_000_000, want: 0.75},
		{name: "cached billed at discount", input: 0, output: 0, cached: 1_000_000, want: 0.075},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mc.CalculateTotalCost(tt.input, tt.output, tt.cached)
			if !almostEqual(got, tt.want) {
				t.Errorf("CalculateTotalCost(%d, %d, %d) = %v, want %v", tt.input, tt.output, tt.cached, got, tt.want)
			}
		})
	}
}

func TestCachedIgnoredWithoutRate(t *testing.T) {
	mc := ModelCost{InputCostPerMillion: 1, OutputCostPerMillion: 1}
	if got := mc.CalculateTotalCost(0, 0, 1_000_000); got != 0 {
		t.Errorf("cached tokens without a cached rate must not be billed, got %v", got)
	}
}
