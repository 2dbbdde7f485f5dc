package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Branch represents a single restaurant location with its own menu,
// currency, inventory and pricing policy.
type Branch struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	TenantID      uuid.UUID           `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name          string              `gorm:"size:255;not null" json:"name"`
	Slug          string              `gorm:"size:255;unique;not null" json:"slug"`
	Currency      string              `gorm:"size:10;not null;default:'USD'" json:"currency"`
	Address       *string             `gorm:"type:text" json:"address,omitempty"`
	Phone         *string             `gorm:"size:50" json:"phone,omitempty"`
	Email         *string             `gorm:"size:255" json:"email,omitempty"`
	IsActive      bool                `gorm:"default:true" json:"is_active"`
	Configuration BranchConfiguration `gorm:"type:jsonb;serializer:json" json:"configuration"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	DeletedAt     gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Tenant       Tenant        `gorm:"foreignKey:TenantID" json:"-"`
	MenuItems    []MenuItem    `gorm:"foreignKey:BranchID" json:"-"`
	Orders       []Order       `gorm:"foreignKey:BranchID" json:"-"`
	Reservations []Reservation `gorm:"foreignKey:BranchID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new branch
func (b *Branch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Branch model
func (Branch) TableName() string {
	return "branches"
}

// BranchConfiguration is the pricing policy of a branch. It is loaded and
// validated as a whole; order pricing never falls back to per-field
// defaults at computation time.
type BranchConfiguration struct {
	DiscountPercentage      float64 `json:"discount_percentage"`
	ServiceChargePercentage float64 `json:"service_charge_percentage"`
	TaxPercentage           float64 `json:"tax_percentage"`
	DiscountOnTotal         bool    `json:"is_discount_on_total"`
}

// DefaultBranchConfiguration returns the policy applied to new branches.
// DiscountOnTotal defaults to true, matching the default composition mode.
func DefaultBranchConfiguration() BranchConfiguration {
	return BranchConfiguration{
		DiscountPercentage:      0,
		ServiceChargePercentage: 0,
		TaxPercentage:           0,
		DiscountOnTotal:         true,
	}
}

// Validate rejects configurations that cannot produce sane totals.
func (c BranchConfiguration) Validate() bool {
	percentOK := func(p float64) bool { return p == p && p >= 0 && p <= 100 }
	return percentOK(c.DiscountPercentage) &&
		percentOK(c.ServiceChargePercentage) &&
		percentOK(c.TaxPercentage)
}
