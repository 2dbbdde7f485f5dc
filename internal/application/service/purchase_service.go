package service

import (
	"context"
	"fmt"
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

// PurchaseService handles purchase order management. Approving a pending
// purchase order increments branch inventory.
type PurchaseService struct {
	purchaseRepo  repository.PurchaseOrderRepository
	detailRepo    repository.PurchaseOrderDetailRepository
	inventoryRepo repository.InventoryRepository
	supplierRepo  repository.SupplierRepository
	branchRepo    repository.BranchRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo repository.PurchaseOrderRepository,
	detailRepo repository.PurchaseOrderDetailRepository,
	inventoryRepo repository.InventoryRepository,
	supplierRepo repository.SupplierRepository,
	branchRepo repository.BranchRepository,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo:  purchaseRepo,
		detailRepo:    detailRepo,
		inventoryRepo: inventoryRepo,
		supplierRepo:  supplierRepo,
		branchRepo:    branchRepo,
	}
}

// PurchaseItemInput is one line of a purchase order
type PurchaseItemInput struct {
	InventoryItemID uuid.UUID
	Quantity        float64
	UnitCost        float64
}

// CreatePurchaseInput represents the create purchase order input
type CreatePurchaseInput struct {
	UserID     uuid.UUID
	BranchID   uuid.UUID
	SupplierID *uuid.UUID
	Date       time.Time
	Items      []PurchaseItemInput
}

// CreatePurchase creates a pending purchase order with its details
func (s *PurchaseService) CreatePurchase(ctx context.Context, input *CreatePurchaseInput) (*entity.PurchaseOrder, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Purchase order must have at least one item")
	}

	branch, err := s.branchRepo.GetByID(ctx, input.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	// Batch fetch all inventory items in one query
	itemIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		itemIDs[i] = item.InventoryItemID
	}
	items, err := s.inventoryRepo.GetByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	itemMap := make(map[uuid.UUID]*entity.InventoryItem, len(items))
	for i := range items {
		itemMap[items[i].ID] = &items[i]
	}

	var totalAmount float64
	details := make([]entity.PurchaseOrderDetail, 0, len(input.Items))
	for _, in := range input.Items {
		if _, exists := itemMap[in.InventoryItemID]; !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Inventory item %s", in.InventoryItemID))
		}
		if in.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Purchase quantity must be positive")
		}
		if in.UnitCost < 0 {
			return nil, apperror.NewBadRequestError("Unit cost cannot be negative")
		}

		lineTotal := in.Quantity * in.UnitCost
		totalAmount += lineTotal
		details = append(details, entity.PurchaseOrderDetail{
			InventoryItemID: in.InventoryItemID,
			Quantity:        in.Quantity,
			UnitCost:        in.UnitCost,
			Total:           lineTotal,
		})
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	purchase := &entity.PurchaseOrder{
		TenantID:    tenantID,
		BranchID:    input.BranchID,
		UserID:      input.UserID,
		SupplierID:  input.SupplierID,
		Date:        date,
		PurchaseNo:  utils.GeneratePurchaseNo(),
		Status:      enum.PurchaseStatusPending,
		TotalAmount: totalAmount,
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	for i := range details {
		details[i].PurchaseOrderID = purchase.ID
	}
	if err := s.detailRepo.CreateBatch(ctx, details); err != nil {
		return nil, err
	}

	return s.purchaseRepo.GetWithDetails(ctx, purchase.ID)
}

// GetPurchase retrieves a purchase order with its details
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	purchase, err := s.purchaseRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	return purchase, nil
}

// ListPurchases lists purchase orders with filtering
func (s *PurchaseService) ListPurchases(ctx context.Context, params *repository.PurchaseFilterParams) (*pagination.PaginatedResult[entity.PurchaseOrder], error) {
	purchases, total, err := s.purchaseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(purchases, pag), nil
}

// ApprovePurchase approves a pending purchase order and increments stock
// for each of its lines
func (s *PurchaseService) ApprovePurchase(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	purchase, err := s.purchaseRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}

	if purchase.Status != enum.PurchaseStatusPending {
		return nil, apperror.NewAppError(400, "Only pending purchase orders can be approved")
	}

	increments := make(map[uuid.UUID]float64, len(purchase.Details))
	for _, d := range purchase.Details {
		increments[d.InventoryItemID] += d.Quantity
	}

	if err := s.inventoryRepo.AtomicIncrementBatch(ctx, increments); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.UpdateStatus(ctx, id, enum.PurchaseStatusApproved); err != nil {
		return nil, err
	}

	purchase.Status = enum.PurchaseStatusApproved
	return purchase, nil
}

// CancelPurchase cancels a pending purchase order. Approved orders have
// already moved stock and cannot be cancelled.
func (s *PurchaseService) CancelPurchase(ctx context.Context, id uuid.UUID) error {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if purchase == nil {
		return apperror.NewNotFoundError("Purchase order")
	}

	if purchase.Status != enum.PurchaseStatusPending {
		return apperror.NewAppError(400, "Only pending purchase orders can be cancelled")
	}

	return s.purchaseRepo.UpdateStatus(ctx, id, enum.PurchaseStatusCancel)
}

// DeletePurchase removes a purchase order and its details. Approved
// orders are kept for the audit trail.
func (s *PurchaseService) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if purchase == nil {
		return apperror.NewNotFoundError("Purchase order")
	}

	if purchase.Status == enum.PurchaseStatusApproved {
		return apperror.NewAppError(400, "Approved purchase orders cannot be deleted")
	}

	return s.purchaseRepo.Delete(ctx, id)
}
