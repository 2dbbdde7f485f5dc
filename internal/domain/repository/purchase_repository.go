package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/internal/domain/enum"
	"github.com/platemate/platemate-api/pkg/pagination"
)

// PurchaseFilterParams contains filtering parameters for purchase order queries
type PurchaseFilterParams struct {
	Pagination *pagination.PaginationParams
	BranchID   *uuid.UUID
	SupplierID *uuid.UUID
	Search     string
	Status     *enum.PurchaseStatus
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// PurchaseOrderRepository defines the interface for purchase order data operations
type PurchaseOrderRepository interface {
	Create(ctx context.Context, purchase *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error)
	GetByPurchaseNo(ctx context.Context, purchaseNo string) (*entity.PurchaseOrder, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error)
	Update(ctx context.Context, purchase *entity.PurchaseOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PurchaseFilterParams) ([]entity.PurchaseOrder, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.PurchaseStatus) error
}

// PurchaseOrderDetailRepository defines the interface for purchase order
// detail data operations
type PurchaseOrderDetailRepository interface {
	CreateBatch(ctx context.Context, details []entity.PurchaseOrderDetail) error
	GetByPurchaseOrderID(ctx context.Context, purchaseOrderID uuid.UUID) ([]entity.PurchaseOrderDetail, error)
	DeleteByPurchaseOrderID(ctx context.Context, purchaseOrderID uuid.UUID) error
}
