package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a placed order. The monetary breakdown is computed by
// the pricing package from the branch configuration at creation time and
// snapshotted here, rounded to 2 decimal places.
type Order struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TenantID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BranchID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"branch_id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	OrderNumber    string          `gorm:"size:100;unique;not null" json:"order_number"`
	OrderType      enum.OrderType  `gorm:"not null" json:"order_type"`
	OrderStatus    enum.OrderStatus `gorm:"default:0" json:"order_status"`
	OrderDate      time.Time       `gorm:"not null" json:"order_date"`
	CustomerName   *string         `gorm:"size:255" json:"customer_name,omitempty"`
	CustomerPhone  *string         `gorm:"size:50" json:"customer_phone,omitempty"`
	Currency       string          `gorm:"size:10;not null" json:"currency"`
	SubTotal       float64         `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	DiscountAmount float64         `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	TaxAmount      float64         `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	ServiceCharges float64         `gorm:"type:decimal(15,2);default:0" json:"service_charges"`
	TipAmount      float64         `gorm:"type:decimal(15,2);default:0" json:"tip_amount"`
	TotalAmount    float64         `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	Delivery       *DeliveryDetail `gorm:"type:jsonb;serializer:json" json:"delivery,omitempty"`
	Pickup         *PickupDetail   `gorm:"type:jsonb;serializer:json" json:"pickup,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Branch Branch      `gorm:"foreignKey:BranchID" json:"-"`
	User   User        `gorm:"foreignKey:UserID" json:"-"`
	Lines  []OrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// DeliveryDetail is the delivery block of a delivery order
type DeliveryDetail struct {
	Address      string `json:"address"`
	Instructions string `json:"instructions,omitempty"`
	RiderName    string `json:"rider_name,omitempty"`
	RiderPhone   string `json:"rider_phone,omitempty"`
}

// PickupDetail is the pickup block of a take-away order
type PickupDetail struct {
	PickupTime *time.Time `json:"pickup_time,omitempty"`
	Vehicle    string     `json:"vehicle,omitempty"`
}

// OrderLine represents one priced line of an order. The selected add-ons
// are stored as ordered lists so receipts reproduce selection order.
type OrderLine struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	OrderID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"order_id"`
	MenuItemID     *uuid.UUID          `gorm:"type:uuid;index" json:"menu_item_id,omitempty"`
	DealID         *uuid.UUID          `gorm:"type:uuid;index" json:"deal_id,omitempty"`
	VariantID      *uuid.UUID          `gorm:"type:uuid;index" json:"variant_id,omitempty"`
	Name           string              `gorm:"size:255;not null" json:"name"`
	Quantity       int                 `gorm:"not null" json:"quantity"`
	UnitPrice      float64             `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Total          float64             `gorm:"type:decimal(15,2);not null" json:"total"`
	Modifiers      []LineModifier      `gorm:"type:jsonb;serializer:json" json:"modifiers,omitempty"`
	Customizations []LineCustomization `gorm:"type:jsonb;serializer:json" json:"customizations,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	DeletedAt      gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Order    Order     `gorm:"foreignKey:OrderID" json:"-"`
	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
	Deal     *Deal     `gorm:"foreignKey:DealID" json:"deal,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order line
func (ol *OrderLine) BeforeCreate(tx *gorm.DB) error {
	if ol.ID == uuid.Nil {
		ol.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderLine model
func (OrderLine) TableName() string {
	return "order_lines"
}

// LineModifier is a selected modifier snapshot on an order line
type LineModifier struct {
	ModifierID uuid.UUID `json:"modifier_id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`
}

// LineCustomization is a selected customization option snapshot on an
// order line
type LineCustomization struct {
	CustomizationID uuid.UUID `json:"customization_id"`
	OptionID        uuid.UUID `json:"option_id"`
	Name            string    `json:"name"`
	Option          string    `json:"option"`
	Price           float64   `json:"price"`
}
