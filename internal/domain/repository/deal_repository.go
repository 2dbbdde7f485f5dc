package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/pkg/pagination"
)

// DealRepository defines the interface for deal data operations
type DealRepository interface {
	Create(ctx context.Context, deal *entity.Deal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Deal, error)
	// GetByIDs retrieves multiple deals with items and discounts preloaded
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Deal, error)
	Update(ctx context.Context, deal *entity.Deal) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, branchID uuid.UUID, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.Deal, int64, error)
	ReplaceItems(ctx context.Context, dealID uuid.UUID, items []entity.DealItem) error
}

// DiscountRepository defines the interface for discount data operations
type DiscountRepository interface {
	Create(ctx context.Context, discount *entity.Discount) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error)
	Update(ctx context.Context, discount *entity.Discount) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, branchID uuid.UUID, params *pagination.PaginationParams, activeOnly bool) ([]entity.Discount, int64, error)
}
