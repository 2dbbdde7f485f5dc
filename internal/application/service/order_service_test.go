package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVariantID(t *testing.T) {
	small := entity.Variant{ID: uuid.New(), Name: "Small", Price: 5}
	large := entity.Variant{ID: uuid.New(), Name: "Large", Price: 8}
	variants := []entity.Variant{small, large}

	t.Run("chosen variant is kept", func(t *testing.T) {
		got := resolveVariantID(variants, &large.ID)
		require.NotNil(t, got)
		assert.Equal(t, large.ID, *got)
	})

	t.Run("nil choice falls back to first variant", func(t *testing.T) {
		got := resolveVariantID(variants, nil)
		require.NotNil(t, got)
		assert.Equal(t, small.ID, *got)
	})

	t.Run("unknown choice falls back to first variant", func(t *testing.T) {
		unknown := uuid.New()
		got := resolveVariantID(variants, &unknown)
		require.NotNil(t, got)
		assert.Equal(t, small.ID, *got)
	})

	t.Run("no variants yields nil", func(t *testing.T) {
		assert.Nil(t, resolveVariantID(nil, &small.ID))
	})
}

func TestSnapshotModifiers(t *testing.T) {
	cheese := entity.Modifier{ID: uuid.New(), Name: "Extra Cheese", Price: 1.5}
	bacon := entity.Modifier{ID: uuid.New(), Name: "Bacon", Price: 2}
	catalog := []entity.Modifier{cheese, bacon}

	inputs := []OrderModifierInput{
		{ModifierID: bacon.ID, Quantity: 2},
		{ModifierID: uuid.New(), Quantity: 1}, // not in catalog, dropped
	}

	got := snapshotModifiers(catalog, inputs)
	require.Len(t, got, 1)
	assert.Equal(t, bacon.ID, got[0].ModifierID)
	assert.Equal(t, "Bacon", got[0].Name)
	assert.Equal(t, 2, got[0].Quantity)
	assert.Equal(t, 2.0, got[0].Price)

	assert.Nil(t, snapshotModifiers(catalog, nil))
}

func TestSnapshotCustomizations(t *testing.T) {
	mild := entity.CustomizationOption{ID: uuid.New(), Name: "Mild", Price: 0}
	hot := entity.CustomizationOption{ID: uuid.New(), Name: "Hot", Price: 0.5}
	spice := entity.Customization{
		ID:      uuid.New(),
		Name:    "Spice Level",
		Options: []entity.CustomizationOption{mild, hot},
	}

	got := snapshotCustomizations([]entity.Customization{spice}, []OrderCustomizationInput{
		{CustomizationID: spice.ID, OptionID: hot.ID},
	})
	require.Len(t, got, 1)
	assert.Equal(t, spice.ID, got[0].CustomizationID)
	assert.Equal(t, hot.ID, got[0].OptionID)
	assert.Equal(t, "Spice Level", got[0].Name)
	assert.Equal(t, "Hot", got[0].Option)
	assert.Equal(t, 0.5, got[0].Price)

	// Unknown option is dropped
	got = snapshotCustomizations([]entity.Customization{spice}, []OrderCustomizationInput{
		{CustomizationID: spice.ID, OptionID: uuid.New()},
	})
	assert.Empty(t, got)
}

func TestItemDiscount(t *testing.T) {
	now := time.Now()

	t.Run("nil discount", func(t *testing.T) {
		assert.Nil(t, itemDiscount(nil, now))
	})

	t.Run("inactive discount", func(t *testing.T) {
		d := &entity.Discount{Value: 10, Scope: enum.DiscountScopeLine, IsActive: false}
		assert.Nil(t, itemDiscount(d, now))
	})

	t.Run("total scope is ignored per line", func(t *testing.T) {
		d := &entity.Discount{Value: 10, Scope: enum.DiscountScopeTotal, IsActive: true}
		assert.Nil(t, itemDiscount(d, now))
	})

	t.Run("current line discount applies", func(t *testing.T) {
		d := &entity.Discount{Value: 10, Scope: enum.DiscountScopeLine, IsActive: true}
		got := itemDiscount(d, now)
		require.NotNil(t, got)
		assert.Equal(t, 10.0, got.Value)
	})

	t.Run("expired discount", func(t *testing.T) {
		past := now.Add(-time.Hour)
		d := &entity.Discount{Value: 10, Scope: enum.DiscountScopeLine, IsActive: true, EndsAt: &past}
		assert.Nil(t, itemDiscount(d, now))
	})
}
