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

type menuCategoryRepository struct {
	db *gorm.DB
}

// NewMenuCategoryRepository creates a new menu category repository
func NewMenuCategoryRepository(db *gorm.DB) domainRepo.MenuCategoryRepository {
	return &menuCategoryRepository{db: db}
}

func (r *menuCategoryRepository) Create(ctx context.Context, category *entity.MenuCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *menuCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuCategory, error) {
	var category entity.MenuCategory
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *menuCategoryRepository) Update(ctx context.Context, category *entity.MenuCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *menuCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.MenuCategory{}, "id = ?", id).Error
}

func (r *menuCategoryRepository) List(ctx context.Context, branchID uuid.UUID) ([]entity.MenuCategory, error) {
	var categories []entity.MenuCategory
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Where("branch_id = ?", branchID).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	return categories, err
}

type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates a new menu item repository
func NewMenuItemRepository(db *gorm.DB) domainRepo.MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Category").
		Preload("Variants").
		Preload("Modifiers").
		Preload("Customizations.Options").
		Preload("Discount").
		First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *menuItemRepository) GetBySlug(ctx context.Context, slug string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Category").
		Preload("Variants").
		Preload("Modifiers").
		Preload("Customizations.Options").
		Preload("Discount").
		First(&item, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

// GetByIDs retrieves multiple menu items by their IDs in a single query,
// with everything pricing needs preloaded
func (r *menuItemRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error) {
	if len(ids) == 0 {
		return []entity.MenuItem{}, nil
	}
	var items []entity.MenuItem
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Variants").
		Preload("Modifiers").
		Preload("Customizations.Options").
		Preload("Discount").
		Where("id IN ?", ids).
		Find(&items).Error
	return items, err
}

func (r *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.MenuItem{}, "id = ?", id).Error
}

func (r *menuItemRepository) List(ctx context.Context, params *domainRepo.MenuItemFilterParams) ([]entity.MenuItem, int64, error) {
	var items []entity.MenuItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.MenuItem{}).Scopes(TenantScope(ctx))

	if params.BranchID != nil {
		query = query.Where("branch_id = ?", *params.BranchID)
	}

	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	if params.ActiveOnly {
		query = query.Where("is_active = true")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder != "" && (params.SortOrder == "ASC" || params.SortOrder == "asc") {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Category").
		Preload("Variants").
		Order(sortBy + " " + sortOrder).
		Find(&items).Error

	return items, total, err
}

type variantRepository struct {
	db *gorm.DB
}

// NewVariantRepository creates a new variant repository
func NewVariantRepository(db *gorm.DB) domainRepo.VariantRepository {
	return &variantRepository{db: db}
}

func (r *variantRepository) Create(ctx context.Context, variant *entity.Variant) error {
	return r.db.WithContext(ctx).Create(variant).Error
}

func (r *variantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Variant, error) {
	var variant entity.Variant
	err := r.db.WithContext(ctx).First(&variant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &variant, err
}

func (r *variantRepository) Update(ctx context.Context, variant *entity.Variant) error {
	return r.db.WithContext(ctx).Save(variant).Error
}

func (r *variantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Variant{}, "id = ?", id).Error
}

func (r *variantRepository) ListByMenuItem(ctx context.Context, menuItemID uuid.UUID) ([]entity.Variant, error) {
	var variants []entity.Variant
	err := r.db.WithContext(ctx).
		Where("menu_item_id = ?", menuItemID).
		Order("created_at ASC").
		Find(&variants).Error
	return variants, err
}

func (r *variantRepository) CountByMenuItem(ctx context.Context, menuItemID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Variant{}).
		Where("menu_item_id = ?", menuItemID).
		Count(&count).Error
	return count, err
}

type modifierRepository struct {
	db *gorm.DB
}

// NewModifierRepository creates a new modifier repository
func NewModifierRepository(db *gorm.DB) domainRepo.ModifierRepository {
	return &modifierRepository{db: db}
}

func (r *modifierRepository) Create(ctx context.Context, modifier *entity.Modifier) error {
	return r.db.WithContext(ctx).Create(modifier).Error
}

func (r *modifierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Modifier, error) {
	var modifier entity.Modifier
	err := r.db.WithContext(ctx).First(&modifier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &modifier, err
}

func (r *modifierRepository) Update(ctx context.Context, modifier *entity.Modifier) error {
	return r.db.WithContext(ctx).Save(modifier).Error
}

func (r *modifierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Modifier{}, "id = ?", id).Error
}

func (r *modifierRepository) ListByMenuItem(ctx context.Context, menuItemID uuid.UUID) ([]entity.Modifier, error) {
	var modifiers []entity.Modifier
	err := r.db.WithContext(ctx).
		Where("menu_item_id = ?", menuItemID).
		Order("name ASC").
		Find(&modifiers).Error
	return modifiers, err
}

type customizationRepository struct {
	db *gorm.DB
}

// NewCustomizationRepository creates a new customization repository
func NewCustomizationRepository(db *gorm.DB) domainRepo.CustomizationRepository {
	return &customizationRepository{db: db}
}

func (r *customizationRepository) Create(ctx context.Context, customization *entity.Customization) error {
	return r.db.WithContext(ctx).Create(customization).Error
}

func (r *customizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customization, error) {
	var customization entity.Customization
	err := r.db.WithContext(ctx).
		Preload("Options").
		First(&customization, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customization, err
}

func (r *customizationRepository) Update(ctx context.Context, customization *entity.Customization) error {
	return r.db.WithContext(ctx).Save(customization).Error
}

func (r *customizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.CustomizationOption{}, "customization_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Customization{}, "id = ?", id).Error
	})
}

func (r *customizationRepository) ListByMenuItem(ctx context.Context, menuItemID uuid.UUID) ([]entity.Customization, error) {
	var customizations []entity.Customization
	err := r.db.WithContext(ctx).
		Preload("Options").
		Where("menu_item_id = ?", menuItemID).
		Order("name ASC").
		Find(&customizations).Error
	return customizations, err
}

func (r *customizationRepository) AddOption(ctx context.Context, option *entity.CustomizationOption) error {
	return r.db.WithContext(ctx).Create(option).Error
}

func (r *customizationRepository) RemoveOption(ctx context.Context, optionID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CustomizationOption{}, "id = ?", optionID).Error
}

type subMenuItemRepository struct {
	db *gorm.DB
}

// NewSubMenuItemRepository creates a new sub-menu item repository
func NewSubMenuItemRepository(db *gorm.DB) domainRepo.SubMenuItemRepository {
	return &subMenuItemRepository{db: db}
}

func (r *subMenuItemRepository) Create(ctx context.Context, item *entity.SubMenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *subMenuItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SubMenuItem, error) {
	var item entity.SubMenuItem
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *subMenuItemRepository) GetBySlug(ctx context.Context, slug string) (*entity.SubMenuItem, error) {
	var item entity.SubMenuItem
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&item, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *subMenuItemRepository) Update(ctx context.Context, item *entity.SubMenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *subMenuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.SubMenuItem{}, "id = ?", id).Error
}

func (r *subMenuItemRepository) List(ctx context.Context, branchID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.SubMenuItem, int64, error) {
	var items []entity.SubMenuItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SubMenuItem{}).
		Scopes(TenantScope(ctx)).
		Where("branch_id = ?", branchID)

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&items).Error

	return items, total, err
}
