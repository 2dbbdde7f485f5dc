package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/application/pricing"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/internal/domain/repository"
	infraRepo "github.com/platemate/platemate-api/internal/infrastructure/repository"
	"github.com/platemate/platemate-api/pkg/apperror"
	"github.com/platemate/platemate-api/pkg/pagination"
)

// RecipeService handles inventory consumption formulas for menu item
// variants and sub-menu items
type RecipeService struct {
	recipeRepo      repository.RecipeRepository
	menuItemRepo    repository.MenuItemRepository
	subMenuItemRepo repository.SubMenuItemRepository
	inventoryRepo   repository.InventoryRepository
}

// NewRecipeService creates a new recipe service
func NewRecipeService(
	recipeRepo repository.RecipeRepository,
	menuItemRepo repository.MenuItemRepository,
	subMenuItemRepo repository.SubMenuItemRepository,
	inventoryRepo repository.InventoryRepository,
) *RecipeService {
	return &RecipeService{
		recipeRepo:      recipeRepo,
		menuItemRepo:    menuItemRepo,
		subMenuItemRepo: subMenuItemRepo,
		inventoryRepo:   inventoryRepo,
	}
}

// RecipeLineInput is one ingredient of a recipe
type RecipeLineInput struct {
	InventoryItemID uuid.UUID
	Quantity        float64
	Unit            string
}

// SetVariantRecipe replaces the recipe of a menu item variant
func (s *RecipeService) SetVariantRecipe(ctx context.Context, menuItemID, variantID uuid.UUID, lines []RecipeLineInput) ([]entity.RecipeItem, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	item, err := s.menuItemRepo.GetByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	found := false
	for _, v := range item.Variants {
		if v.ID == variantID {
			found = true
			break
		}
	}
	if !found {
		return nil, apperror.NewNotFoundError("Variant")
	}

	items, err := s.buildLines(ctx, tenantID, lines)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].MenuItemID = &menuItemID
		items[i].VariantID = &variantID
	}

	if err := s.recipeRepo.ReplaceForVariant(ctx, menuItemID, variantID, items); err != nil {
		return nil, err
	}
	return s.recipeRepo.GetByVariant(ctx, menuItemID, variantID)
}

// SetSubMenuItemRecipe replaces the recipe of a sub-menu item
func (s *RecipeService) SetSubMenuItemRecipe(ctx context.Context, subMenuItemID uuid.UUID, lines []RecipeLineInput) ([]entity.RecipeItem, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	sub, err := s.subMenuItemRepo.GetByID(ctx, subMenuItemID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.NewNotFoundError("Sub-menu item")
	}

	items, err := s.buildLines(ctx, tenantID, lines)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].SubMenuItemID = &subMenuItemID
	}

	if err := s.recipeRepo.ReplaceForSubMenuItem(ctx, subMenuItemID, items); err != nil {
		return nil, err
	}
	return s.recipeRepo.GetBySubMenuItem(ctx, subMenuItemID)
}

func (s *RecipeService) buildLines(ctx context.Context, tenantID uuid.UUID, lines []RecipeLineInput) ([]entity.RecipeItem, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	itemIDs := make([]uuid.UUID, len(lines))
	for i, l := range lines {
		itemIDs[i] = l.InventoryItemID
	}
	inventory, err := s.inventoryRepo.GetByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	known := make(map[uuid.UUID]bool, len(inventory))
	for _, it := range inventory {
		known[it.ID] = true
	}

	items := make([]entity.RecipeItem, 0, len(lines))
	for _, l := range lines {
		if !known[l.InventoryItemID] {
			return nil, apperror.NewNotFoundError("Inventory item")
		}
		if l.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Recipe quantity must be positive")
		}
		items = append(items, entity.RecipeItem{
			TenantID:        tenantID,
			InventoryItemID: l.InventoryItemID,
			Quantity:        l.Quantity,
			Unit:            l.Unit,
		})
	}
	return items, nil
}

// GetVariantRecipe returns the recipe of a menu item variant
func (s *RecipeService) GetVariantRecipe(ctx context.Context, menuItemID, variantID uuid.UUID) ([]entity.RecipeItem, error) {
	return s.recipeRepo.GetByVariant(ctx, menuItemID, variantID)
}

// GetSubMenuItemRecipe returns the recipe of a sub-menu item
func (s *RecipeService) GetSubMenuItemRecipe(ctx context.Context, subMenuItemID uuid.UUID) ([]entity.RecipeItem, error) {
	return s.recipeRepo.GetBySubMenuItem(ctx, subMenuItemID)
}

// DeleteRecipeItem removes one ingredient line
func (s *RecipeService) DeleteRecipeItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Recipe item")
	}
	return s.recipeRepo.Delete(ctx, id)
}

// ListRecipes lists recipe items with pagination
func (s *RecipeService) ListRecipes(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.RecipeItem], error) {
	items, total, err := s.recipeRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// PerOrderQuantity computes the per-unit prep quantity for a batch that
// yields numberOfOrders servings
func (s *RecipeService) PerOrderQuantity(numberOfOrders float64) (float64, error) {
	quantity, ok := pricing.RecipeQuantity(numberOfOrders)
	if !ok {
		return 0, apperror.NewBadRequestError("Number of orders must be a positive number")
	}
	return quantity, nil
}
