package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRecipeItemValidateAssociation(t *testing.T) {
	menuItemID := uuid.New()
	variantID := uuid.New()
	subMenuItemID := uuid.New()

	tests := []struct {
		name    string
		item    RecipeItem
		wantErr bool
	}{
		{
			"menu item with variant",
			RecipeItem{MenuItemID: &menuItemID, VariantID: &variantID},
			false,
		},
		{
			"sub menu item only",
			RecipeItem{SubMenuItemID: &subMenuItemID},
			false,
		},
		{
			"no association",
			RecipeItem{},
			true,
		},
		{
			"both associations",
			RecipeItem{MenuItemID: &menuItemID, VariantID: &variantID, SubMenuItemID: &subMenuItemID},
			true,
		},
		{
			"menu item without variant",
			RecipeItem{MenuItemID: &menuItemID},
			true,
		},
		{
			"variant without menu item",
			RecipeItem{VariantID: &variantID},
			true,
		},
		{
			"partial menu item plus sub menu item",
			RecipeItem{MenuItemID: &menuItemID, SubMenuItemID: &subMenuItemID},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.ValidateAssociation()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrRecipeAssociation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
