package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrRecipeAssociation is returned when a recipe item is not tied to
// exactly one of (menu item + variant) or sub-menu item
var ErrRecipeAssociation = errors.New("recipe item must reference exactly one of menu item variant or sub-menu item")

// RecipeItem is one line of the inventory consumption formula for
// producing one unit of a menu item variant or sub-menu item. Quantities
// carry 3-decimal precision.
type RecipeItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	MenuItemID      *uuid.UUID     `gorm:"type:uuid;index" json:"menu_item_id,omitempty"`
	VariantID       *uuid.UUID     `gorm:"type:uuid;index" json:"variant_id,omitempty"`
	SubMenuItemID   *uuid.UUID     `gorm:"type:uuid;index" json:"sub_menu_item_id,omitempty"`
	InventoryItemID uuid.UUID      `gorm:"type:uuid;not null;index" json:"inventory_item_id"`
	Quantity        float64        `gorm:"type:decimal(10,3);not null" json:"quantity"`
	Unit            string         `gorm:"size:50;not null" json:"unit"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	MenuItem      *MenuItem     `gorm:"foreignKey:MenuItemID" json:"-"`
	Variant       *Variant      `gorm:"foreignKey:VariantID" json:"-"`
	SubMenuItem   *SubMenuItem  `gorm:"foreignKey:SubMenuItemID" json:"-"`
	InventoryItem InventoryItem `gorm:"foreignKey:InventoryItemID" json:"inventory_item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new recipe item
func (r *RecipeItem) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeSave enforces the mutually exclusive association invariant
func (r *RecipeItem) BeforeSave(tx *gorm.DB) error {
	return r.ValidateAssociation()
}

// ValidateAssociation checks that the recipe item references exactly one
// of (menu item + variant) or a sub-menu item
func (r *RecipeItem) ValidateAssociation() error {
	hasMenuItem := r.MenuItemID != nil && r.VariantID != nil
	hasSubMenuItem := r.SubMenuItemID != nil

	if hasMenuItem == hasSubMenuItem {
		return ErrRecipeAssociation
	}
	if !hasMenuItem && (r.MenuItemID != nil || r.VariantID != nil) {
		return ErrRecipeAssociation
	}
	return nil
}

// TableName returns the table name for the RecipeItem model
func (RecipeItem) TableName() string {
	return "recipe_items"
}
