package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/pkg/pagination"
)

// RecipeRepository defines the interface for recipe item data operations
type RecipeRepository interface {
	Create(ctx context.Context, item *entity.RecipeItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.RecipeItem, error)
	Update(ctx context.Context, item *entity.RecipeItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.RecipeItem, int64, error)
	GetByVariant(ctx context.Context, menuItemID, variantID uuid.UUID) ([]entity.RecipeItem, error)
	GetBySubMenuItem(ctx context.Context, subMenuItemID uuid.UUID) ([]entity.RecipeItem, error)
	// ReplaceForVariant swaps the full recipe of a menu item variant in one
	// transaction.
	ReplaceForVariant(ctx context.Context, menuItemID, variantID uuid.UUID, items []entity.RecipeItem) error
	// ReplaceForSubMenuItem swaps the full recipe of a sub-menu item in one
	// transaction.
	ReplaceForSubMenuItem(ctx context.Context, subMenuItemID uuid.UUID, items []entity.RecipeItem) error
}
