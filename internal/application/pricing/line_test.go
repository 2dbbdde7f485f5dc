package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitPrice_VariantWithAddons(t *testing.T) {
	variantID := uuid.New()
	modifierID := uuid.New()
	groupID := uuid.New()
	optionID := uuid.New()

	line := Line{
		Selection: MenuItemSelection{
			Variants:        []Variant{{ID: variantID, Price: 10.00}},
			ChosenVariantID: &variantID,
			Modifiers:       []Modifier{{ID: modifierID, Price: 2.00}},
			Customizations: []CustomizationGroup{
				{ID: groupID, Options: []Option{{ID: optionID, Price: 1.50}}},
			},
		},
		Quantity:       1,
		Modifiers:      []ModifierChoice{{ModifierID: modifierID, Quantity: 2}},
		Customizations: []CustomizationChoice{{CustomizationID: groupID, OptionID: optionID}},
	}

	price, err := UnitPrice(line)
	require.NoError(t, err)
	assert.InDelta(t, 15.50, price, 1e-9)
}

func TestUnitPrice_FallsBackToFirstVariant(t *testing.T) {
	line := Line{
		Selection: MenuItemSelection{
			Variants: []Variant{{ID: uuid.New(), Price: 7.25}, {ID: uuid.New(), Price: 9.75}},
		},
		Quantity: 1,
	}

	price, err := UnitPrice(line)
	require.NoError(t, err)
	assert.InDelta(t, 7.25, price, 1e-9)
}

func TestUnitPrice_NoVariants(t *testing.T) {
	line := Line{Selection: MenuItemSelection{}, Quantity: 1}

	_, err := UnitPrice(line)
	assert.ErrorIs(t, err, ErrNoVariant)
}

func TestUnitPrice_UnknownAddonIDsContributeZero(t *testing.T) {
	variantID := uuid.New()
	line := Line{
		Selection: MenuItemSelection{
			Variants:        []Variant{{ID: variantID, Price: 10.00}},
			ChosenVariantID: &variantID,
		},
		Quantity:       1,
		Modifiers:      []ModifierChoice{{ModifierID: uuid.New(), Quantity: 3}},
		Customizations: []CustomizationChoice{{CustomizationID: uuid.New(), OptionID: uuid.New()}},
	}

	price, err := UnitPrice(line)
	require.NoError(t, err)
	assert.InDelta(t, 10.00, price, 1e-9)
}

func TestUnitPrice_DiscountApplied(t *testing.T) {
	variantID := uuid.New()
	modifierID := uuid.New()
	line := Line{
		Selection: MenuItemSelection{
			Variants:        []Variant{{ID: variantID, Price: 16.00}},
			ChosenVariantID: &variantID,
			Modifiers:       []Modifier{{ID: modifierID, Price: 4.00}},
		},
		Quantity:  1,
		Modifiers: []ModifierChoice{{ModifierID: modifierID, Quantity: 1}},
		Discount:  &Discount{Value: 25},
	}

	price, err := UnitPrice(line)
	require.NoError(t, err)
	assert.InDelta(t, 15.00, price, 1e-9)
}

func TestUnitPrice_Deal(t *testing.T) {
	line := Line{Selection: DealSelection{Price: 24.99}, Quantity: 2}

	price, err := UnitPrice(line)
	require.NoError(t, err)
	assert.InDelta(t, 24.99, price, 1e-9)

	total, err := LineTotal(line)
	require.NoError(t, err)
	assert.InDelta(t, 49.98, total, 1e-9)
}

func TestSubtotal(t *testing.T) {
	variantID := uuid.New()
	lines := []Line{
		{
			Selection: MenuItemSelection{
				Variants:        []Variant{{ID: variantID, Price: 12.50}},
				ChosenVariantID: &variantID,
			},
			Quantity: 2,
		},
		{Selection: DealSelection{Price: 20.00}, Quantity: 1},
	}

	subTotal, err := Subtotal(lines)
	require.NoError(t, err)
	assert.InDelta(t, 45.00, subTotal, 1e-9)
}

func TestSubtotal_PropagatesSelectionError(t *testing.T) {
	lines := []Line{{Selection: MenuItemSelection{}, Quantity: 1}}

	_, err := Subtotal(lines)
	assert.ErrorIs(t, err, ErrNoVariant)
}
