package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/internal/domain/enum"
	"github.com/platemate/platemate-api/internal/domain/repository"
	infraRepo "github.com/platemate/platemate-api/internal/infrastructure/repository"
	"github.com/platemate/platemate-api/pkg/apperror"
	"github.com/platemate/platemate-api/pkg/pagination"
	"github.com/platemate/platemate-api/pkg/utils"
)

// DealService handles fixed-price bundle management
type DealService struct {
	dealRepo        repository.DealRepository
	menuItemRepo    repository.MenuItemRepository
	subMenuItemRepo repository.SubMenuItemRepository
	branchRepo      repository.BranchRepository
}

// NewDealService creates a new deal service
func NewDealService(
	dealRepo repository.DealRepository,
	menuItemRepo repository.MenuItemRepository,
	subMenuItemRepo repository.SubMenuItemRepository,
	branchRepo repository.BranchRepository,
) *DealService {
	return &DealService{
		dealRepo:        dealRepo,
		menuItemRepo:    menuItemRepo,
		subMenuItemRepo: subMenuItemRepo,
		branchRepo:      branchRepo,
	}
}

// DealItemInput is one component of a deal: a menu item with a specific
// variant, or a sub-menu item
type DealItemInput struct {
	MenuItemID    *uuid.UUID
	VariantID     *uuid.UUID
	SubMenuItemID *uuid.UUID
	Quantity      int
}

// CreateDealInput represents the create deal input
type CreateDealInput struct {
	BranchID    uuid.UUID
	DiscountID  *uuid.UUID
	Name        string
	Description *string
	Price       float64
	StartsAt    *time.Time
	EndsAt      *time.Time
	Items       []DealItemInput
}

// CreateDeal creates a deal with its component items
func (s *DealService) CreateDeal(ctx context.Context, input *CreateDealInput) (*entity.Deal, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Deal price cannot be negative")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Deal requires at least one item")
	}

	branch, err := s.branchRepo.GetByID(ctx, input.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	items, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	deal := &entity.Deal{
		TenantID:    tenantID,
		BranchID:    input.BranchID,
		DiscountID:  input.DiscountID,
		Name:        input.Name,
		Slug:        utils.Slugify(input.Name),
		Description: input.Description,
		Price:       input.Price,
		IsActive:    true,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Items:       items,
	}

	if err := s.dealRepo.Create(ctx, deal); err != nil {
		return nil, err
	}
	return s.dealRepo.GetByID(ctx, deal.ID)
}

// buildItems validates each deal component references exactly one of
// (menu item + variant) or a sub-menu item, and that the targets exist
func (s *DealService) buildItems(ctx context.Context, inputs []DealItemInput) ([]entity.DealItem, error) {
	items := make([]entity.DealItem, 0, len(inputs))
	for _, in := range inputs {
		qty := in.Quantity
		if qty <= 0 {
			qty = 1
		}

		hasMenuItem := in.MenuItemID != nil && in.VariantID != nil
		hasSubMenuItem := in.SubMenuItemID != nil
		if hasMenuItem == hasSubMenuItem {
			return nil, apperror.NewBadRequestError("Deal item must reference a menu item variant or a sub-menu item")
		}

		if hasMenuItem {
			item, err := s.menuItemRepo.GetByID(ctx, *in.MenuItemID)
			if err != nil {
				return nil, err
			}
			if item == nil {
				return nil, apperror.NewNotFoundError("Menu item")
			}
			found := false
			for _, v := range item.Variants {
				if v.ID == *in.VariantID {
					found = true
					break
				}
			}
			if !found {
				return nil, apperror.NewNotFoundError("Variant")
			}
		} else {
			sub, err := s.subMenuItemRepo.GetByID(ctx, *in.SubMenuItemID)
			if err != nil {
				return nil, err
			}
			if sub == nil {
				return nil, apperror.NewNotFoundError("Sub-menu item")
			}
		}

		items = append(items, entity.DealItem{
			MenuItemID:    in.MenuItemID,
			VariantID:     in.VariantID,
			SubMenuItemID: in.SubMenuItemID,
			Quantity:      qty,
		})
	}
	return items, nil
}

// GetDeal retrieves a deal with its items
func (s *DealService) GetDeal(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, apperror.NewNotFoundError("Deal")
	}
	return deal, nil
}

// UpdateDealInput represents the update deal input
type UpdateDealInput struct {
	DiscountID  *uuid.UUID
	Name        *string
	Description *string
	Price       *float64
	IsActive    *bool
	StartsAt    *time.Time
	EndsAt      *time.Time
	Items       []DealItemInput
}

// UpdateDeal updates a deal; a non-nil Items slice replaces the full list
func (s *DealService) UpdateDeal(ctx context.Context, id uuid.UUID, input *UpdateDealInput) (*entity.Deal, error) {
	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, apperror.NewNotFoundError("Deal")
	}

	if input.DiscountID != nil {
		deal.DiscountID = input.DiscountID
	}
	if input.Name != nil {
		deal.Name = *input.Name
		deal.Slug = utils.Slugify(*input.Name)
	}
	if input.Description != nil {
		deal.Description = input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Deal price cannot be negative")
		}
		deal.Price = *input.Price
	}
	if input.IsActive != nil {
		deal.IsActive = *input.IsActive
	}
	if input.StartsAt != nil {
		deal.StartsAt = input.StartsAt
	}
	if input.EndsAt != nil {
		deal.EndsAt = input.EndsAt
	}

	deal.Items = nil
	if err := s.dealRepo.Update(ctx, deal); err != nil {
		return nil, err
	}

	if input.Items != nil {
		items, err := s.buildItems(ctx, input.Items)
		if err != nil {
			return nil, err
		}
		if err := s.dealRepo.ReplaceItems(ctx, id, items); err != nil {
			return nil, err
		}
	}

	return s.dealRepo.GetByID(ctx, id)
}

// DeleteDeal removes a deal and its items
func (s *DealService) DeleteDeal(ctx context.Context, id uuid.UUID) error {
	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if deal == nil {
		return apperror.NewNotFoundError("Deal")
	}
	return s.dealRepo.Delete(ctx, id)
}

// ListDeals lists deals of a branch
func (s *DealService) ListDeals(ctx context.Context, branchID uuid.UUID, params *pagination.PaginationParams, search string, activeOnly bool) (*pagination.PaginatedResult[entity.Deal], error) {
	deals, total, err := s.dealRepo.List(ctx, branchID, params, search, activeOnly)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(deals, pag), nil
}

// DiscountService handles percentage discount campaigns
type DiscountService struct {
	discountRepo repository.DiscountRepository
	branchRepo   repository.BranchRepository
}

// NewDiscountService creates a new discount service
func NewDiscountService(discountRepo repository.DiscountRepository, branchRepo repository.BranchRepository) *DiscountService {
	return &DiscountService{discountRepo: discountRepo, branchRepo: branchRepo}
}

// CreateDiscountInput represents the create discount input
type CreateDiscountInput struct {
	BranchID uuid.UUID
	Name     string
	Value    float64
	Scope    enum.DiscountScope
	StartsAt *time.Time
	EndsAt   *time.Time
}

// CreateDiscount creates a percentage discount campaign
func (s *DiscountService) CreateDiscount(ctx context.Context, input *CreateDiscountInput) (*entity.Discount, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if input.Value < 0 || input.Value > 100 {
		return nil, apperror.NewBadRequestError("Discount value must be between 0 and 100")
	}

	branch, err := s.branchRepo.GetByID(ctx, input.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	discount := &entity.Discount{
		TenantID: tenantID,
		BranchID: input.BranchID,
		Name:     input.Name,
		Value:    input.Value,
		Scope:    input.Scope,
		IsActive: true,
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
	}

	if err := s.discountRepo.Create(ctx, discount); err != nil {
		return nil, err
	}
	return discount, nil
}

// GetDiscount retrieves a discount by ID
func (s *DiscountService) GetDiscount(ctx context.Context, id uuid.UUID) (*entity.Discount, error) {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, apperror.NewNotFoundError("Discount")
	}
	return discount, nil
}

// UpdateDiscountInput represents the update discount input
type UpdateDiscountInput struct {
	Name     *string
	Value    *float64
	IsActive *bool
	StartsAt *time.Time
	EndsAt   *time.Time
}

// UpdateDiscount updates a discount campaign
func (s *DiscountService) UpdateDiscount(ctx context.Context, id uuid.UUID, input *UpdateDiscountInput) (*entity.Discount, error) {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, apperror.NewNotFoundError("Discount")
	}

	if input.Name != nil {
		discount.Name = *input.Name
	}
	if input.Value != nil {
		if *input.Value < 0 || *input.Value > 100 {
			return nil, apperror.NewBadRequestError("Discount value must be between 0 and 100")
		}
		discount.Value = *input.Value
	}
	if input.IsActive != nil {
		discount.IsActive = *input.IsActive
	}
	if input.StartsAt != nil {
		discount.StartsAt = input.StartsAt
	}
	if input.EndsAt != nil {
		discount.EndsAt = input.EndsAt
	}

	if err := s.discountRepo.Update(ctx, discount); err != nil {
		return nil, err
	}
	return discount, nil
}

// DeleteDiscount removes a discount campaign
func (s *DiscountService) DeleteDiscount(ctx context.Context, id uuid.UUID) error {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if discount == nil {
		return apperror.NewNotFoundError("Discount")
	}
	return s.discountRepo.Delete(ctx, id)
}

// ListDiscounts lists discounts of a branch
func (s *DiscountService) ListDiscounts(ctx context.Context, branchID uuid.UUID, params *pagination.PaginationParams, activeOnly bool) (*pagination.PaginatedResult[entity.Discount], error) {
	discounts, total, err := s.discountRepo.List(ctx, branchID, params, activeOnly)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(discounts, pag), nil
}
