package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/pkg/pagination"
)

// MenuItemFilterParams contains filtering parameters for menu item queries
type MenuItemFilterParams struct {
	Pagination *pagination.PaginationParams
	BranchID   *uuid.UUID
	CategoryID *uuid.UUID
	Search     string
	ActiveOnly bool
	SortBy     string
	SortOrder  string
}

// MenuCategoryRepository defines the interface for menu category data operations
type MenuCategoryRepository interface {
	Create(ctx context.Context, category *entity.MenuCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuCategory, error)
	Update(ctx context.Context, category *entity.MenuCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, branchID uuid.UUID) ([]entity.MenuCategory, error)
}

// MenuItemRepository defines the interface for menu item data operations
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	GetBySlug(ctx context.Context, slug string) (*entity.MenuItem, error)
	// GetByIDs retrieves multiple menu items with variants, modifiers,
	// customizations and discounts preloaded, in a single query
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *MenuItemFilterParams) ([]entity.MenuItem, int64, error)
}

// VariantRepository defines the interface for variant data operations
type VariantRepository interface {
	Create(ctx context.Context, variant *entity.Variant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Variant, error)
	Update(ctx context.Context, variant *entity.Variant) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByMenuItem(ctx context.Context, menuItemID uuid.UUID) ([]entity.Variant, error)
	CountByMenuItem(ctx context.Context, menuItemID uuid.UUID) (int64, error)
}

// ModifierRepository defines the interface for modifier data operations
type ModifierRepository interface {
	Create(ctx context.Context, modifier *entity.Modifier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Modifier, error)
	Update(ctx context.Context, modifier *entity.Modifier) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByMenuItem(ctx context.Context, menuItemID uuid.UUID) ([]entity.Modifier, error)
}

// CustomizationRepository defines the interface for customization group data operations
type CustomizationRepository interface {
	Create(ctx context.Context, customization *entity.Customization) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customization, error)
	Update(ctx context.Context, customization *entity.Customization) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByMenuItem(ctx context.Context, menuItemID uuid.UUID) ([]entity.Customization, error)
	AddOption(ctx context.Context, option *entity.CustomizationOption) error
	RemoveOption(ctx context.Context, optionID uuid.UUID) error
}

// SubMenuItemRepository defines the interface for sub-menu item data operations
type SubMenuItemRepository interface {
	Create(ctx context.Context, item *entity.SubMenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SubMenuItem, error)
	GetBySlug(ctx context.Context, slug string) (*entity.SubMenuItem, error)
	Update(ctx context.Context, item *entity.SubMenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, branchID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.SubMenuItem, int64, error)
}
