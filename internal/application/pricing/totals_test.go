package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals_DiscountOnTotal(t *testing.T) {
	policy := BranchPolicy{
		DiscountPercentage:      10,
		TaxPercentage:           5,
		ServiceChargePercentage: 2,
		DiscountOnTotal:         true,
	}

	totals := ComputeTotals(100, policy, 0)

	assert.InDelta(t, 10, totals.DiscountAmount, 1e-9)
	assert.InDelta(t, 4.5, totals.TaxAmount, 1e-9)
	assert.InDelta(t, 1.8, totals.ServiceCharges, 1e-9)
	assert.InDelta(t, 96.3, totals.TotalAmount, 1e-9)
}

func TestComputeTotals_DiscountOnTax(t *testing.T) {
	policy := BranchPolicy{
		DiscountPercentage:      10,
		TaxPercentage:           5,
		ServiceChargePercentage: 2,
		DiscountOnTotal:         false,
	}

	totals := ComputeTotals(100, policy, 0)

	// Tax and service charge on the full subtotal; the discount is a
	// percentage of the computed tax.
	assert.InDelta(t, 5, totals.TaxAmount, 1e-9)
	assert.InDelta(t, 2, totals.ServiceCharges, 1e-9)
	assert.InDelta(t, 0.5, totals.DiscountAmount, 1e-9)
	assert.InDelta(t, 106.5, totals.TotalAmount, 1e-9)
}

func TestComputeTotals_Idempotent(t *testing.T) {
	policy := BranchPolicy{
		DiscountPercentage:      7.5,
		TaxPercentage:           16,
		ServiceChargePercentage: 5,
		DiscountOnTotal:         true,
	}

	first := ComputeTotals(1234.56, policy, 50)
	second := ComputeTotals(1234.56, policy, 50)

	assert.Equal(t, first, second)
}

func TestComputeTotals_ZeroSubtotal(t *testing.T) {
	policy := BranchPolicy{
		DiscountPercentage:      10,
		TaxPercentage:           5,
		ServiceChargePercentage: 2,
		DiscountOnTotal:         true,
	}

	totals := ComputeTotals(0, policy, 0)

	assert.Zero(t, totals.SubTotal)
	assert.Zero(t, totals.DiscountAmount)
	assert.Zero(t, totals.TaxAmount)
	assert.Zero(t, totals.ServiceCharges)
	assert.Zero(t, totals.TotalAmount)
	assert.False(t, math.IsNaN(totals.TotalAmount))
}

func TestComputeTotals_TipGuards(t *testing.T) {
	policy := BranchPolicy{DiscountOnTotal: true}

	negative := ComputeTotals(50, policy, -20)
	assert.Zero(t, negative.TipAmount)
	assert.InDelta(t, 50, negative.TotalAmount, 1e-9)

	nan := ComputeTotals(50, policy, math.NaN())
	assert.Zero(t, nan.TipAmount)
	assert.InDelta(t, 50, nan.TotalAmount, 1e-9)
	assert.GreaterOrEqual(t, nan.TotalAmount, 0.0)
}

func TestComputeTotals_TipIncluded(t *testing.T) {
	policy := BranchPolicy{
		TaxPercentage:   5,
		DiscountOnTotal: true,
	}

	totals := ComputeTotals(100, policy, 10)

	assert.InDelta(t, 10, totals.TipAmount, 1e-9)
	assert.InDelta(t, 115, totals.TotalAmount, 1e-9)
}

func TestComputeTotals_PercentageClamping(t *testing.T) {
	policy := BranchPolicy{
		DiscountPercentage: 150, // clamped to 100
		DiscountOnTotal:    true,
	}

	totals := ComputeTotals(80, policy, 0)

	assert.InDelta(t, 80, totals.DiscountAmount, 1e-9)
	assert.Zero(t, totals.TotalAmount)
}

func TestRounded(t *testing.T) {
	totals := OrderTotals{
		SubTotal:       33.333333,
		DiscountAmount: 3.3333333,
		TaxAmount:      1.4999999,
		ServiceCharges: 0.005,
		TipAmount:      2,
		TotalAmount:    33.504999,
	}.Rounded()

	assert.Equal(t, 33.33, totals.SubTotal)
	assert.Equal(t, 3.33, totals.DiscountAmount)
	assert.Equal(t, 1.5, totals.TaxAmount)
	assert.Equal(t, 0.01, totals.ServiceCharges)
	assert.Equal(t, 33.5, totals.TotalAmount)
}
