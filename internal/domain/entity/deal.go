package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deal represents a bundled, fixed-price offering composed of multiple
// menu items and/or sub-menu items
type Deal struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BranchID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"branch_id"`
	DiscountID  *uuid.UUID     `gorm:"type:uuid;index" json:"discount_id,omitempty"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Slug        string         `gorm:"size:255;unique;not null" json:"slug"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Image       *string        `gorm:"size:255" json:"image,omitempty"`
	Price       float64        `gorm:"type:decimal(15,2);not null" json:"price"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	StartsAt    *time.Time     `json:"starts_at,omitempty"`
	EndsAt      *time.Time     `json:"ends_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Branch   Branch     `gorm:"foreignKey:BranchID" json:"-"`
	Discount *Discount  `gorm:"foreignKey:DiscountID" json:"discount,omitempty"`
	Items    []DealItem `gorm:"foreignKey:DealID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new deal
func (d *Deal) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Deal model
func (Deal) TableName() string {
	return "deals"
}

// IsCurrent reports whether the deal is active at the given time,
// honoring its optional start/end window
func (d *Deal) IsCurrent(at time.Time) bool {
	if !d.IsActive {
		return false
	}
	if d.StartsAt != nil && at.Before(*d.StartsAt) {
		return false
	}
	if d.EndsAt != nil && at.After(*d.EndsAt) {
		return false
	}
	return true
}

// DealItem is one component of a deal: a menu item (with a specific
// variant) or a sub-menu item
type DealItem struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	DealID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"deal_id"`
	MenuItemID    *uuid.UUID     `gorm:"type:uuid;index" json:"menu_item_id,omitempty"`
	VariantID     *uuid.UUID     `gorm:"type:uuid;index" json:"variant_id,omitempty"`
	SubMenuItemID *uuid.UUID     `gorm:"type:uuid;index" json:"sub_menu_item_id,omitempty"`
	Quantity      int            `gorm:"not null;default:1" json:"quantity"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Deal        Deal         `gorm:"foreignKey:DealID" json:"-"`
	MenuItem    *MenuItem    `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
	Variant     *Variant     `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
	SubMenuItem *SubMenuItem `gorm:"foreignKey:SubMenuItemID" json:"sub_menu_item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new deal item
func (di *DealItem) BeforeCreate(tx *gorm.DB) error {
	if di.ID == uuid.Nil {
		di.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DealItem model
func (DealItem) TableName() string {
	return "deal_items"
}
