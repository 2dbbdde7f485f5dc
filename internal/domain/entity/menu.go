package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuCategory groups menu items within a branch's menu
type MenuCategory struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BranchID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"branch_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Branch Branch     `gorm:"foreignKey:BranchID" json:"-"`
	Items  []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *MenuCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuCategory model
func (MenuCategory) TableName() string {
	return "menu_categories"
}

// MenuItem represents an orderable dish on a branch menu. Its price lives
// on its variants; an item without variants cannot be ordered.
type MenuItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BranchID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"branch_id"`
	CategoryID  *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	DiscountID  *uuid.UUID     `gorm:"type:uuid;index" json:"discount_id,omitempty"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Slug        string         `gorm:"size:255;unique;not null" json:"slug"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Image       *string        `gorm:"size:255" json:"image,omitempty"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Branch         Branch          `gorm:"foreignKey:BranchID" json:"-"`
	Category       *MenuCategory   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Discount       *Discount       `gorm:"foreignKey:DiscountID" json:"discount,omitempty"`
	Variants       []Variant       `gorm:"foreignKey:MenuItemID" json:"variants,omitempty"`
	Modifiers      []Modifier      `gorm:"foreignKey:MenuItemID" json:"modifiers,omitempty"`
	Customizations []Customization `gorm:"foreignKey:MenuItemID" json:"customizations,omitempty"`
}

// BeforeCreate generates a UUID before creating a new menu item
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// Variant is a priced size/type option of a menu item (e.g. Small/Large)
type Variant struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	MenuItemID uuid.UUID      `gorm:"type:uuid;not null;index" json:"menu_item_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Price      float64        `gorm:"type:decimal(15,2);not null" json:"price"`
	SortOrder  int            `gorm:"default:0" json:"sort_order"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	MenuItem MenuItem `gorm:"foreignKey:MenuItemID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new variant
func (v *Variant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Variant model
func (Variant) TableName() string {
	return "variants"
}

// Modifier is an optional paid add-on to a menu item (e.g. extra cheese),
// selectable with a quantity
type Modifier struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	MenuItemID uuid.UUID      `gorm:"type:uuid;not null;index" json:"menu_item_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Price      float64        `gorm:"type:decimal(15,2);default:0" json:"price"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	MenuItem MenuItem `gorm:"foreignKey:MenuItemID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new modifier
func (m *Modifier) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Modifier model
func (Modifier) TableName() string {
	return "modifiers"
}

// Customization is a named group of mutually exclusive options for a menu
// item (e.g. spice level); at most one option is chosen per group
type Customization struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	MenuItemID uuid.UUID      `gorm:"type:uuid;not null;index" json:"menu_item_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	IsRequired bool           `gorm:"default:false" json:"is_required"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	MenuItem MenuItem              `gorm:"foreignKey:MenuItemID" json:"-"`
	Options  []CustomizationOption `gorm:"foreignKey:CustomizationID" json:"options,omitempty"`
}

// BeforeCreate generates a UUID before creating a new customization
func (c *Customization) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customization model
func (Customization) TableName() string {
	return "customizations"
}

// CustomizationOption is a single choice in a customization group; it may
// carry a price delta
type CustomizationOption struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CustomizationID uuid.UUID      `gorm:"type:uuid;not null;index" json:"customization_id"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Price           float64        `gorm:"type:decimal(15,2);default:0" json:"price"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customization Customization `gorm:"foreignKey:CustomizationID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new option
func (o *CustomizationOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CustomizationOption model
func (CustomizationOption) TableName() string {
	return "customization_options"
}

// SubMenuItem is a standalone add-on item (e.g. a side or drink) priced
// flat, not tied to a parent menu item's variants
type SubMenuItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BranchID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"branch_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	Price     float64        `gorm:"type:decimal(15,2);not null" json:"price"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Branch Branch `gorm:"foreignKey:BranchID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new sub-menu item
func (s *SubMenuItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SubMenuItem model
func (SubMenuItem) TableName() string {
	return "sub_menu_items"
}
