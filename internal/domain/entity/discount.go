package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Discount represents a percentage discount campaign. Its scope decides
// whether it reduces a whole order or individual lines; the value is a
// percentage in [0,100], enforced server-side.
type Discount struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BranchID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"branch_id"`
	Name      string             `gorm:"size:255;not null" json:"name"`
	Value     float64            `gorm:"type:decimal(5,2);not null" json:"value"`
	Scope     enum.DiscountScope `gorm:"default:0" json:"scope"`
	IsActive  bool               `gorm:"default:true" json:"is_active"`
	StartsAt  *time.Time         `json:"starts_at,omitempty"`
	EndsAt    *time.Time         `json:"ends_at,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	DeletedAt gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Branch    Branch     `gorm:"foreignKey:BranchID" json:"-"`
	MenuItems []MenuItem `gorm:"foreignKey:DiscountID" json:"-"`
	Deals     []Deal     `gorm:"foreignKey:DiscountID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new discount
func (d *Discount) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Discount model
func (Discount) TableName() string {
	return "discounts"
}

// IsCurrent reports whether the discount applies at the given time
func (d *Discount) IsCurrent(at time.Time) bool {
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
