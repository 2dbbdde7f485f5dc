package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/enum"
	"gorm.io/gorm"
)

// PurchaseOrder represents a stock purchase raised against a supplier.
// Approving a pending purchase order increments branch inventory.
type PurchaseOrder struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	TenantID    uuid.UUID           `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BranchID    uuid.UUID           `gorm:"type:uuid;not null;index" json:"branch_id"`
	UserID      uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	SupplierID  *uuid.UUID          `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Date        time.Time           `gorm:"type:date;not null" json:"date"`
	PurchaseNo  string              `gorm:"size:100;unique;not null" json:"purchase_no"`
	Status      enum.PurchaseStatus `gorm:"default:0" json:"status"`
	TotalAmount float64             `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	DeletedAt   gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Branch   Branch                `gorm:"foreignKey:BranchID" json:"-"`
	User     User                  `gorm:"foreignKey:UserID" json:"-"`
	Supplier *Supplier             `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Details  []PurchaseOrderDetail `gorm:"foreignKey:PurchaseOrderID" json:"details,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase order
func (p *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrder model
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderDetail represents a line item in a purchase order
type PurchaseOrderDetail struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseOrderID uuid.UUID      `gorm:"type:uuid;not null;index" json:"purchase_order_id"`
	InventoryItemID uuid.UUID      `gorm:"type:uuid;not null;index" json:"inventory_item_id"`
	Quantity        float64        `gorm:"type:decimal(12,3);not null" json:"quantity"`
	UnitCost        float64        `gorm:"type:decimal(15,2);not null" json:"unit_cost"`
	Total           float64        `gorm:"type:decimal(15,2);not null" json:"total"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	PurchaseOrder PurchaseOrder `gorm:"foreignKey:PurchaseOrderID" json:"-"`
	InventoryItem InventoryItem `gorm:"foreignKey:InventoryItemID" json:"inventory_item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase order detail
func (pd *PurchaseOrderDetail) BeforeCreate(tx *gorm.DB) error {
	if pd.ID == uuid.Nil {
		pd.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrderDetail model
func (PurchaseOrderDetail) TableName() string {
	return "purchase_order_details"
}
