package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipeQuantity(t *testing.T) {
	tests := []struct {
		name           string
		numberOfOrders float64
		want           float64
		ok             bool
	}{
		{"four orders per unit", 4, 0.250, true},
		{"three orders per unit rounds to 3 places", 3, 0.333, true},
		{"fractional orders", 0.5, 2.000, true},
		{"single order", 1, 1.000, true},
		{"zero is no calculation", 0, 0, false},
		{"negative is no calculation", -2, 0, false},
		{"NaN is no calculation", math.NaN(), 0, false},
		{"Inf is no calculation", math.Inf(1), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RecipeQuantity(tt.numberOfOrders)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
