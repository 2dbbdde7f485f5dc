package pricing

import "math"

// BranchPolicy is the per-branch configuration that controls how order
// totals are composed. It is loaded as a whole from the branch record;
// a missing configuration is rejected before pricing, not defaulted here.
type BranchPolicy struct {
	DiscountPercentage      float64
	TaxPercentage           float64
	ServiceChargePercentage float64
	DiscountOnTotal         bool
}

// OrderTotals is the derived breakdown of an order. It is recomputed in
// full from the lines and policy on every change and never stored as-is;
// the server-side order record snapshots the rounded values.
type OrderTotals struct {
	SubTotal       float64 `json:"sub_total"`
	DiscountAmount float64 `json:"discount_amount"`
	TaxAmount      float64 `json:"tax_amount"`
	ServiceCharges float64 `json:"service_charges"`
	TipAmount      float64 `json:"tip_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

// ComputeTotals composes order totals from a subtotal, the branch policy
// and a tip. Two composition modes exist:
//
// Discount on total (the default): the discount is taken off the subtotal
// and tax and service charge are computed on the discounted base.
//
// Discount on tax: tax and service charge are computed on the full
// subtotal, and the discount is a percentage of the computed tax. The
// asymmetry between the modes is intentional per branch configuration;
// do not unify them.
//
// All arithmetic is float64. Rounding is applied for display only, via
// Rounded.
func ComputeTotals(subTotal float64, policy BranchPolicy, tip float64) OrderTotals {
	if math.IsNaN(subTotal) || subTotal < 0 {
		subTotal = 0
	}
	if math.IsNaN(tip) || tip < 0 {
		tip = 0
	}

	discountPct := clampPercent(policy.DiscountPercentage)
	taxPct := clampPercent(policy.TaxPercentage)
	servicePct := clampPercent(policy.ServiceChargePercentage)

	t := OrderTotals{SubTotal: subTotal, TipAmount: tip}

	if policy.DiscountOnTotal {
		t.DiscountAmount = subTotal * discountPct / 100
		taxable := subTotal - t.DiscountAmount
		t.TaxAmount = taxable * taxPct / 100
		t.ServiceCharges = taxable * servicePct / 100
		t.TotalAmount = taxable + t.TaxAmount + t.ServiceCharges + tip
		return t
	}

	t.TaxAmount = subTotal * taxPct / 100
	t.ServiceCharges = subTotal * servicePct / 100
	t.DiscountAmount = t.TaxAmount * discountPct / 100
	t.TotalAmount = subTotal + t.TaxAmount + t.ServiceCharges + tip - t.DiscountAmount
	return t
}

// Rounded returns a copy with every field rounded to 2 decimal places.
func (t OrderTotals) Rounded() OrderTotals {
	return OrderTotals{
		SubTotal:       Round2(t.SubTotal),
		DiscountAmount: Round2(t.DiscountAmount),
		TaxAmount:      Round2(t.TaxAmount),
		ServiceCharges: Round2(t.ServiceCharges),
		TipAmount:      Round2(t.TipAmount),
		TotalAmount:    Round2(t.TotalAmount),
	}
}

// Round2 rounds a money amount to 2 decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
