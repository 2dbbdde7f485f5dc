package pricing

import "math"

// RecipeQuantity derives the per-order consumption of an inventory item
// from "how many orders does one unit of it serve". The result is rounded
// to 3 decimal places to match recipe quantity precision.
//
// A non-positive or NaN input returns ok=false and the caller keeps the
// prior quantity unchanged.
func RecipeQuantity(numberOfOrders float64) (quantity float64, ok bool) {
	if math.IsNaN(numberOfOrders) || math.IsInf(numberOfOrders, 0) || numberOfOrders <= 0 {
		return 0, false
	}
	return math.Round(1/numberOfOrders*1000) / 1000, true
}
