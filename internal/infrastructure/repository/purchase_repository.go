package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/internal/domain/enum"
	domainRepo "github.com/platemate/platemate-api/internal/domain/repository"
	"gorm.io/gorm"
)

type purchaseOrderRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderRepository creates a new purchase order repository
func NewPurchaseOrderRepository(db *gorm.DB) domainRepo.PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

func (r *purchaseOrderRepository) Create(ctx context.Context, purchase *entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	var purchase entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Supplier").
		First(&purchase, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &purchase, err
}

func (r *purchaseOrderRepository) GetByPurchaseNo(ctx context.Context, purchaseNo string) (*entity.PurchaseOrder, error) {
	var purchase entity.PurchaseOrder
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&purchase, "purchase_no = ?", purchaseNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &purchase, err
}

func (r *purchaseOrderRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	var purchase entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Supplier").
		Preload("Details.InventoryItem").
		First(&purchase, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &purchase, err
}

func (r *purchaseOrderRepository) Update(ctx context.Context, purchase *entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Save(purchase).Error
}

func (r *purchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.PurchaseOrderDetail{}, "purchase_order_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.PurchaseOrder{}, "id = ?", id).Error
	})
}

func (r *purchaseOrderRepository) List(ctx context.Context, params *domainRepo.PurchaseFilterParams) ([]entity.PurchaseOrder, int64, error) {
	var purchases []entity.PurchaseOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PurchaseOrder{}).Scopes(TenantScope(ctx))

	if params.BranchID != nil {
		query = query.Where("branch_id = ?", *params.BranchID)
	}

	if params.SupplierID != nil {
		query = query.Where("supplier_id = ?", *params.SupplierID)
	}

	if params.Search != "" {
		query = query.Where("purchase_no ILIKE ?", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
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
		Preload("Supplier").
		Order(sortBy + " " + sortOrder).
		Find(&purchases).Error

	return purchases, total, err
}

func (r *purchaseOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.PurchaseStatus) error {
	return r.db.WithContext(ctx).Model(&entity.PurchaseOrder{}).
		Where("id = ?", id).
		Update("status", status).Error
}

type purchaseOrderDetailRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderDetailRepository creates a new purchase order detail repository
func NewPurchaseOrderDetailRepository(db *gorm.DB) domainRepo.PurchaseOrderDetailRepository {
	return &purchaseOrderDetailRepository{db: db}
}

func (r *purchaseOrderDetailRepository) CreateBatch(ctx context.Context, details []entity.PurchaseOrderDetail) error {
	if len(details) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&details).Error
}

func (r *purchaseOrderDetailRepository) GetByPurchaseOrderID(ctx context.Context, purchaseOrderID uuid.UUID) ([]entity.PurchaseOrderDetail, error) {
	var details []entity.PurchaseOrderDetail
	err := r.db.WithContext(ctx).
		Preload("InventoryItem").
		Where("purchase_order_id = ?", purchaseOrderID).
		Find(&details).Error
	return details, err
}

func (r *purchaseOrderDetailRepository) DeleteByPurchaseOrderID(ctx context.Context, purchaseOrderID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PurchaseOrderDetail{}, "purchase_order_id = ?", purchaseOrderID).Error
}
