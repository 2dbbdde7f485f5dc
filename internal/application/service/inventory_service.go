package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/internal/domain/repository"
	infraRepo "github.com/platemate/platemate-api/internal/infrastructure/repository"
	"github.com/platemate/platemate-api/pkg/apperror"
	"github.com/platemate/platemate-api/pkg/email"
	"github.com/platemate/platemate-api/pkg/pagination"
	"github.com/platemate/platemate-api/pkg/utils"
)

// InventoryService handles inventory item and supplier management
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
	supplierRepo  repository.SupplierRepository
	branchRepo    repository.BranchRepository
	emailService  *email.EmailService
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	supplierRepo repository.SupplierRepository,
	branchRepo repository.BranchRepository,
	emailService *email.EmailService,
) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		supplierRepo:  supplierRepo,
		branchRepo:    branchRepo,
		emailService:  emailService,
	}
}

// CreateInventoryItemInput represents the create inventory item input
type CreateInventoryItemInput struct {
	BranchID      uuid.UUID
	Name          string
	Unit          string
	Quantity      float64
	QuantityAlert float64
	UnitCost      float64
	Notes         *string
}

// CreateInventoryItem creates an inventory item
func (s *InventoryService) CreateInventoryItem(ctx context.Context, input *CreateInventoryItemInput) (*entity.InventoryItem, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if input.Quantity < 0 || input.QuantityAlert < 0 {
		return nil, apperror.NewBadRequestError("Quantities cannot be negative")
	}

	branch, err := s.branchRepo.GetByID(ctx, input.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	item := &entity.InventoryItem{
		TenantID:      tenantID,
		BranchID:      input.BranchID,
		Name:          input.Name,
		Slug:          utils.Slugify(input.Name),
		Code:          utils.GenerateItemCode(),
		Unit:          input.Unit,
		Quantity:      input.Quantity,
		QuantityAlert: input.QuantityAlert,
		UnitCost:      input.UnitCost,
		Notes:         input.Notes,
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetInventoryItem retrieves an inventory item by ID
func (s *InventoryService) GetInventoryItem(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}
	return item, nil
}

// UpdateInventoryItemInput represents the update inventory item input
type UpdateInventoryItemInput struct {
	Name          *string
	Unit          *string
	Quantity      *float64
	QuantityAlert *float64
	UnitCost      *float64
	Notes         *string
}

// UpdateInventoryItem updates an inventory item
func (s *InventoryService) UpdateInventoryItem(ctx context.Context, id uuid.UUID, input *UpdateInventoryItemInput) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}

	if input.Name != nil {
		item.Name = *input.Name
		item.Slug = utils.Slugify(*input.Name)
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, apperror.NewBadRequestError("Quantity cannot be negative")
		}
		item.Quantity = *input.Quantity
	}
	if input.QuantityAlert != nil {
		if *input.QuantityAlert < 0 {
			return nil, apperror.NewBadRequestError("Alert threshold cannot be negative")
		}
		item.QuantityAlert = *input.QuantityAlert
	}
	if input.UnitCost != nil {
		item.UnitCost = *input.UnitCost
	}
	if input.Notes != nil {
		item.Notes = input.Notes
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteInventoryItem soft-deletes an inventory item
func (s *InventoryService) DeleteInventoryItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Inventory item")
	}
	return s.inventoryRepo.Delete(ctx, id)
}

// ListInventory lists inventory items with filtering
func (s *InventoryService) ListInventory(ctx context.Context, params *repository.InventoryFilterParams) (*pagination.PaginatedResult[entity.InventoryItem], error) {
	items, total, err := s.inventoryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// GetLowStock lists items at or below their alert threshold for a branch
func (s *InventoryService) GetLowStock(ctx context.Context, branchID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.InventoryItem], error) {
	items, total, err := s.inventoryRepo.GetLowStock(ctx, branchID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// NotifyLowStock emails the branch contact a list of items at or below
// their alert threshold. A branch without an email address is skipped.
func (s *InventoryService) NotifyLowStock(ctx context.Context, branchID uuid.UUID) error {
	branch, err := s.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return err
	}
	if branch == nil {
		return apperror.NewNotFoundError("Branch")
	}
	if branch.Email == nil || *branch.Email == "" {
		return apperror.NewBadRequestError("Branch has no email address")
	}

	params := &pagination.PaginationParams{Page: 1, PerPage: 100}
	items, _, err := s.inventoryRepo.GetLowStock(ctx, branchID, params)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	alert := make([]email.LowStockItem, len(items))
	for i, it := range items {
		alert[i] = email.LowStockItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Alert:    it.QuantityAlert,
			Unit:     it.Unit,
		}
	}

	if err := s.emailService.SendLowStockAlert(*branch.Email, branch.Name, alert); err != nil {
		log.Printf("Low stock alert email failed (branch %s): %v", branchID, err)
		return err
	}
	return nil
}

// CreateSupplier creates a supplier
func (s *InventoryService) CreateSupplier(ctx context.Context, name string, emailAddr, phone, address *string) (*entity.Supplier, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	supplier := &entity.Supplier{
		TenantID: tenantID,
		Name:     name,
		Email:    emailAddr,
		Phone:    phone,
		Address:  address,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *InventoryService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// UpdateSupplier updates a supplier
func (s *InventoryService) UpdateSupplier(ctx context.Context, id uuid.UUID, name *string, emailAddr, phone, address *string) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if name != nil {
		supplier.Name = *name
	}
	if emailAddr != nil {
		supplier.Email = emailAddr
	}
	if phone != nil {
		supplier.Phone = phone
	}
	if address != nil {
		supplier.Address = address
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier soft-deletes a supplier
func (s *InventoryService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}
	return s.supplierRepo.Delete(ctx, id)
}

// ListSuppliers lists suppliers with pagination
func (s *InventoryService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Supplier], error) {
	suppliers, total, err := s.supplierRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(suppliers, pag), nil
}
