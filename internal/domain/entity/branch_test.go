package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultBranchConfiguration(t *testing.T) {
	cfg := DefaultBranchConfiguration()

	assert.Equal(t, 0.0, cfg.DiscountPercentage)
	assert.Equal(t, 0.0, cfg.ServiceChargePercentage)
	assert.Equal(t, 0.0, cfg.TaxPercentage)
	assert.True(t, cfg.DiscountOnTotal)
	assert.True(t, cfg.Validate())
}

func TestBranchConfigurationValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  BranchConfiguration
		want bool
	}{
		{"all zero", BranchConfiguration{}, true},
		{"typical percentages", BranchConfiguration{DiscountPercentage: 10, ServiceChargePercentage: 5, TaxPercentage: 16}, true},
		{"boundary hundred", BranchConfiguration{TaxPercentage: 100}, true},
		{"negative discount", BranchConfiguration{DiscountPercentage: -1}, false},
		{"tax over hundred", BranchConfiguration{TaxPercentage: 100.5}, false},
		{"NaN service charge", BranchConfiguration{ServiceChargePercentage: math.NaN()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Validate())
		})
	}
}
