package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/pkg/pagination"
)

// InventoryFilterParams contains filtering parameters for inventory queries
type InventoryFilterParams struct {
	Pagination *pagination.PaginationParams
	BranchID   *uuid.UUID
	Search     string
	LowStock   bool
	SortBy     string
	SortOrder  string
}

// InventoryRepository defines the interface for inventory item data operations
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)
	GetBySlug(ctx context.Context, slug string) (*entity.InventoryItem, error)
	GetByCode(ctx context.Context, code string) (*entity.InventoryItem, error)
	// GetByIDs retrieves multiple inventory items in a single query
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *InventoryFilterParams) ([]entity.InventoryItem, int64, error)
	GetLowStock(ctx context.Context, branchID uuid.UUID, params *pagination.PaginationParams) ([]entity.InventoryItem, int64, error)
	// AtomicDecrementBatch atomically decrements stock for multiple items in a
	// single transaction. Items with insufficient stock cause a full rollback
	// and are returned.
	AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]float64) ([]uuid.UUID, error)
	// AtomicIncrementBatch atomically increments stock for multiple items
	// (purchase approval, order cancellation).
	AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]float64) error
}

// SupplierRepository defines the interface for supplier data operations
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error)
}
