package service

import (
	"testing"

	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestFormatReceipt(t *testing.T) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			BranchName: "PlateMate Downtown",
			Address:    "12 Harbor St",
			Phone:      "+254700000000",
		},
		OrderNumber: "ORD-AB12CD34",
		OrderType:   "DineIn",
		Date:        "2026-03-15 12:30",
		Customer:    "Jane",
		Currency:    "KES",
		Items: []entity.ReceiptItem{
			{Name: "Margherita (Large)", Quantity: 2, UnitPrice: 8.50, Total: 17.00, Extras: []string{"+ Extra Cheese x1"}},
			{Name: "Garlic Bread", Quantity: 1, UnitPrice: 3.00, Total: 3.00},
		},
		SubTotal:       20.00,
		Discount:       2.00,
		Tax:            2.88,
		ServiceCharges: 0.90,
		Tip:            1.00,
		Total:          22.78,
	}

	data := FormatReceipt(receipt)
	out := string(data)

	assert.Contains(t, out, "PlateMate Downtown")
	assert.Contains(t, out, "ORD-AB12CD34")
	assert.Contains(t, out, "Margherita (Large)")
	assert.Contains(t, out, "+ Extra Cheese x1")
	assert.Contains(t, out, "@ 8.50 each")
	assert.Contains(t, out, "20.00")
	assert.Contains(t, out, "-2.00")
	assert.Contains(t, out, "22.78")
}

func TestFormatReceiptOmitsZeroAdjustments(t *testing.T) {
	receipt := &entity.Receipt{
		Header:      entity.ReceiptHeader{BranchName: "PlateMate"},
		OrderNumber: "ORD-00000000",
		Date:        "2026-03-15 12:30",
		Items: []entity.ReceiptItem{
			{Name: "Water", Quantity: 1, UnitPrice: 1.00, Total: 1.00},
		},
		SubTotal: 1.00,
		Total:    1.00,
	}

	out := string(FormatReceipt(receipt))

	assert.NotContains(t, out, "Discount:")
	assert.NotContains(t, out, "Tip:")
	assert.Contains(t, out, "TOTAL:")
}
