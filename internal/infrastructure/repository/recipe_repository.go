package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/entity"
	domainRepo "github.com/platemate/platemate-api/internal/domain/repository"
	"github.com/platemate/platemate-api/pkg/pagination"
	"gorm.io/gorm"
)

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) domainRepo.RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, item *entity.RecipeItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *recipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.RecipeItem, error) {
	var item entity.RecipeItem
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("InventoryItem").
		First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *recipeRepository) Update(ctx context.Context, item *entity.RecipeItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.RecipeItem{}, "id = ?", id).Error
}

func (r *recipeRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.RecipeItem, int64, error) {
	var items []entity.RecipeItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.RecipeItem{}).Scopes(TenantScope(ctx))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("InventoryItem").
		Order("created_at DESC").
		Find(&items).Error

	return items, total, err
}

func (r *recipeRepository) GetByVariant(ctx context.Context, menuItemID, variantID uuid.UUID) ([]entity.RecipeItem, error) {
	var items []entity.RecipeItem
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("InventoryItem").
		Where("menu_item_id = ? AND variant_id = ?", menuItemID, variantID).
		Find(&items).Error
	return items, err
}

func (r *recipeRepository) GetBySubMenuItem(ctx context.Context, subMenuItemID uuid.UUID) ([]entity.RecipeItem, error) {
	var items []entity.RecipeItem
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("InventoryItem").
		Where("sub_menu_item_id = ?", subMenuItemID).
		Find(&items).Error
	return items, err
}

// ReplaceForVariant swaps the full recipe of a menu item variant in one
// transaction
func (r *recipeRepository) ReplaceForVariant(ctx context.Context, menuItemID, variantID uuid.UUID, items []entity.RecipeItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Delete(&entity.RecipeItem{}, "menu_item_id = ? AND variant_id = ?", menuItemID, variantID).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].MenuItemID = &menuItemID
			items[i].VariantID = &variantID
			items[i].SubMenuItemID = nil
		}
		return tx.Create(&items).Error
	})
}

// ReplaceForSubMenuItem swaps the full recipe of a sub-menu item in one
// transaction
func (r *recipeRepository) ReplaceForSubMenuItem(ctx context.Context, subMenuItemID uuid.UUID, items []entity.RecipeItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Delete(&entity.RecipeItem{}, "sub_menu_item_id = ?", subMenuItemID).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].SubMenuItemID = &subMenuItemID
			items[i].MenuItemID = nil
			items[i].VariantID = nil
		}
		return tx.Create(&items).Error
	})
}
