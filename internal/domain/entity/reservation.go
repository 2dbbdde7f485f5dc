package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Reservation represents a table reservation at a branch
type Reservation struct {
	ID            uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	TenantID      uuid.UUID              `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BranchID      uuid.UUID              `gorm:"type:uuid;not null;index" json:"branch_id"`
	CustomerName  string                 `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone string                 `gorm:"size:50;not null" json:"customer_phone"`
	CustomerEmail *string                `gorm:"size:255" json:"customer_email,omitempty"`
	PartySize     int                    `gorm:"not null" json:"party_size"`
	TableNo       *string                `gorm:"size:50" json:"table_no,omitempty"`
	ReservedAt    time.Time              `gorm:"not null;index" json:"reserved_at"`
	Status        enum.ReservationStatus `gorm:"default:0" json:"status"`
	Notes         *string                `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
	DeletedAt     gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	Branch Branch `gorm:"foreignKey:BranchID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new reservation
func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Reservation model
func (Reservation) TableName() string {
	return "reservations"
}
