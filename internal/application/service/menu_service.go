package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/internal/domain/repository"
	infraRepo "github.com/platemate/platemate-api/internal/infrastructure/repository"
	"github.com/platemate/platemate-api/pkg/apperror"
	"github.com/platemate/platemate-api/pkg/pagination"
	"github.com/platemate/platemate-api/pkg/utils"
)

// MenuService handles the menu hierarchy: categories, items, variants,
// modifiers, customizations and sub-menu items
type MenuService struct {
	categoryRepo      repository.MenuCategoryRepository
	menuItemRepo      repository.MenuItemRepository
	variantRepo       repository.VariantRepository
	modifierRepo      repository.ModifierRepository
	customizationRepo repository.CustomizationRepository
	subMenuItemRepo   repository.SubMenuItemRepository
	branchRepo        repository.BranchRepository
}

// NewMenuService creates a new menu service
func NewMenuService(
	categoryRepo repository.MenuCategoryRepository,
	menuItemRepo repository.MenuItemRepository,
	variantRepo repository.VariantRepository,
	modifierRepo repository.ModifierRepository,
	customizationRepo repository.CustomizationRepository,
	subMenuItemRepo repository.SubMenuItemRepository,
	branchRepo repository.BranchRepository,
) *MenuService {
	return &MenuService{
		categoryRepo:      categoryRepo,
		menuItemRepo:      menuItemRepo,
		variantRepo:       variantRepo,
		modifierRepo:      modifierRepo,
		customizationRepo: customizationRepo,
		subMenuItemRepo:   subMenuItemRepo,
		branchRepo:        branchRepo,
	}
}

// CreateCategory creates a menu category within a branch
func (s *MenuService) CreateCategory(ctx context.Context, branchID uuid.UUID, name string, sortOrder int) (*entity.MenuCategory, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	branch, err := s.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	category := &entity.MenuCategory{
		TenantID:  tenantID,
		BranchID:  branchID,
		Name:      name,
		Slug:      utils.Slugify(name),
		SortOrder: sortOrder,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory updates a menu category
func (s *MenuService) UpdateCategory(ctx context.Context, id uuid.UUID, name *string, sortOrder *int) (*entity.MenuCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	if name != nil {
		category.Name = *name
		category.Slug = utils.Slugify(*name)
	}
	if sortOrder != nil {
		category.SortOrder = *sortOrder
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory deletes a menu category; items keep existing with no category
func (s *MenuService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}

// ListCategories lists categories of a branch ordered for display
func (s *MenuService) ListCategories(ctx context.Context, branchID uuid.UUID) ([]entity.MenuCategory, error) {
	return s.categoryRepo.List(ctx, branchID)
}

// CreateMenuItemInput represents the create menu item input. Variants are
// required: an item without variants cannot be ordered.
type CreateMenuItemInput struct {
	BranchID    uuid.UUID
	CategoryID  *uuid.UUID
	Name        string
	Description *string
	Image       *string
	Variants    []VariantInput
}

// VariantInput is a priced size/type option of a menu item
type VariantInput struct {
	Name      string
	Price     float64
	SortOrder int
}

// CreateMenuItem creates a menu item with its initial variants
func (s *MenuService) CreateMenuItem(ctx context.Context, input *CreateMenuItemInput) (*entity.MenuItem, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if len(input.Variants) == 0 {
		return nil, apperror.NewBadRequestError("Menu item requires at least one variant")
	}
	for _, v := range input.Variants {
		if v.Price < 0 {
			return nil, apperror.NewBadRequestError("Variant price cannot be negative")
		}
	}

	branch, err := s.branchRepo.GetByID(ctx, input.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	item := &entity.MenuItem{
		TenantID:    tenantID,
		BranchID:    input.BranchID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Slug:        utils.Slugify(input.Name),
		Description: input.Description,
		Image:       input.Image,
		IsActive:    true,
	}
	for _, v := range input.Variants {
		item.Variants = append(item.Variants, entity.Variant{
			Name:      v.Name,
			Price:     v.Price,
			SortOrder: v.SortOrder,
		})
	}

	if err := s.menuItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return s.menuItemRepo.GetByID(ctx, item.ID)
}

// GetMenuItem retrieves a menu item with its full add-on catalog
func (s *MenuService) GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// UpdateMenuItemInput represents the update menu item input
type UpdateMenuItemInput struct {
	CategoryID  *uuid.UUID
	DiscountID  *uuid.UUID
	Name        *string
	Description *string
	Image       *string
	IsActive    *bool
}

// UpdateMenuItem updates a menu item
func (s *MenuService) UpdateMenuItem(ctx context.Context, id uuid.UUID, input *UpdateMenuItemInput) (*entity.MenuItem, error) {
	item, err := s.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	if input.CategoryID != nil {
		item.CategoryID = input.CategoryID
	}
	if input.DiscountID != nil {
		item.DiscountID = input.DiscountID
	}
	if input.Name != nil {
		item.Name = *input.Name
		item.Slug = utils.Slugify(*input.Name)
	}
	if input.Description != nil {
		item.Description = input.Description
	}
	if input.Image != nil {
		item.Image = input.Image
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.menuItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteMenuItem soft-deletes a menu item
func (s *MenuService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuItemRepo.Delete(ctx, id)
}

// ListMenuItems lists menu items with filtering
func (s *MenuService) ListMenuItems(ctx context.Context, params *repository.MenuItemFilterParams) (*pagination.PaginatedResult[entity.MenuItem], error) {
	items, total, err := s.menuItemRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// AddVariant adds a variant to a menu item
func (s *MenuService) AddVariant(ctx context.Context, menuItemID uuid.UUID, input VariantInput) (*entity.Variant, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Variant price cannot be negative")
	}

	item, err := s.menuItemRepo.GetByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	variant := &entity.Variant{
		MenuItemID: menuItemID,
		Name:       input.Name,
		Price:      input.Price,
		SortOrder:  input.SortOrder,
	}
	if err := s.variantRepo.Create(ctx, variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// UpdateVariant updates a variant's name or price
func (s *MenuService) UpdateVariant(ctx context.Context, id uuid.UUID, name *string, price *float64) (*entity.Variant, error) {
	variant, err := s.variantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, apperror.NewNotFoundError("Variant")
	}

	if name != nil {
		variant.Name = *name
	}
	if price != nil {
		if *price < 0 {
			return nil, apperror.NewBadRequestError("Variant price cannot be negative")
		}
		variant.Price = *price
	}

	if err := s.variantRepo.Update(ctx, variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// DeleteVariant removes a variant. The last variant of an item cannot be
// removed: an item without variants cannot be priced.
func (s *MenuService) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	variant, err := s.variantRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if variant == nil {
		return apperror.NewNotFoundError("Variant")
	}

	count, err := s.variantRepo.CountByMenuItem(ctx, variant.MenuItemID)
	if err != nil {
		return err
	}
	if count <= 1 {
		return apperror.NewAppError(422, "Cannot remove the last variant of a menu item")
	}

	return s.variantRepo.Delete(ctx, id)
}

// AddModifier adds a paid add-on to a menu item
func (s *MenuService) AddModifier(ctx context.Context, menuItemID uuid.UUID, name string, price float64) (*entity.Modifier, error) {
	if price < 0 {
		return nil, apperror.NewBadRequestError("Modifier price cannot be negative")
	}

	item, err := s.menuItemRepo.GetByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	modifier := &entity.Modifier{
		MenuItemID: menuItemID,
		Name:       name,
		Price:      price,
	}
	if err := s.modifierRepo.Create(ctx, modifier); err != nil {
		return nil, err
	}
	return modifier, nil
}

// DeleteModifier removes a modifier from a menu item
func (s *MenuService) DeleteModifier(ctx context.Context, id uuid.UUID) error {
	modifier, err := s.modifierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if modifier == nil {
		return apperror.NewNotFoundError("Modifier")
	}
	return s.modifierRepo.Delete(ctx, id)
}

// CustomizationOptionInput is one choice within a customization group
type CustomizationOptionInput struct {
	Name  string
	Price float64
}

// AddCustomization adds an option group to a menu item
func (s *MenuService) AddCustomization(ctx context.Context, menuItemID uuid.UUID, name string, isRequired bool, options []CustomizationOptionInput) (*entity.Customization, error) {
	if len(options) == 0 {
		return nil, apperror.NewBadRequestError("Customization requires at least one option")
	}

	item, err := s.menuItemRepo.GetByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	customization := &entity.Customization{
		MenuItemID: menuItemID,
		Name:       name,
		IsRequired: isRequired,
	}
	for _, o := range options {
		customization.Options = append(customization.Options, entity.CustomizationOption{
			Name:  o.Name,
			Price: o.Price,
		})
	}

	if err := s.customizationRepo.Create(ctx, customization); err != nil {
		return nil, err
	}
	return customization, nil
}

// DeleteCustomization removes an option group and its options
func (s *MenuService) DeleteCustomization(ctx context.Context, id uuid.UUID) error {
	customization, err := s.customizationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customization == nil {
		return apperror.NewNotFoundError("Customization")
	}
	return s.customizationRepo.Delete(ctx, id)
}

// AddCustomizationOption adds an option to an existing group
func (s *MenuService) AddCustomizationOption(ctx context.Context, customizationID uuid.UUID, input CustomizationOptionInput) (*entity.CustomizationOption, error) {
	customization, err := s.customizationRepo.GetByID(ctx, customizationID)
	if err != nil {
		return nil, err
	}
	if customization == nil {
		return nil, apperror.NewNotFoundError("Customization")
	}

	option := &entity.CustomizationOption{
		CustomizationID: customizationID,
		Name:            input.Name,
		Price:           input.Price,
	}
	if err := s.customizationRepo.AddOption(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

// RemoveCustomizationOption removes an option from a group
func (s *MenuService) RemoveCustomizationOption(ctx context.Context, optionID uuid.UUID) error {
	return s.customizationRepo.RemoveOption(ctx, optionID)
}

// CreateSubMenuItem creates a flat-priced standalone item
func (s *MenuService) CreateSubMenuItem(ctx context.Context, branchID uuid.UUID, name string, price float64) (*entity.SubMenuItem, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	branch, err := s.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	item := &entity.SubMenuItem{
		TenantID: tenantID,
		BranchID: branchID,
		Name:     name,
		Slug:     utils.Slugify(name),
		Price:    price,
		IsActive: true,
	}
	if err := s.subMenuItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateSubMenuItem updates a sub-menu item
func (s *MenuService) UpdateSubMenuItem(ctx context.Context, id uuid.UUID, name *string, price *float64, isActive *bool) (*entity.SubMenuItem, error) {
	item, err := s.subMenuItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Sub-menu item")
	}

	if name != nil {
		item.Name = *name
		item.Slug = utils.Slugify(*name)
	}
	if price != nil {
		if *price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		item.Price = *price
	}
	if isActive != nil {
		item.IsActive = *isActive
	}

	if err := s.subMenuItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteSubMenuItem soft-deletes a sub-menu item
func (s *MenuService) DeleteSubMenuItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.subMenuItemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Sub-menu item")
	}
	return s.subMenuItemRepo.Delete(ctx, id)
}

// ListSubMenuItems lists sub-menu items of a branch
func (s *MenuService) ListSubMenuItems(ctx context.Context, branchID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.SubMenuItem], error) {
	items, total, err := s.subMenuItemRepo.List(ctx, branchID, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}
