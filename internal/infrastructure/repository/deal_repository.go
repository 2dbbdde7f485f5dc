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

type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository creates a new deal repository
func NewDealRepository(db *gorm.DB) domainRepo.DealRepository {
	return &dealRepository{db: db}
}

func (r *dealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	return r.db.WithContext(ctx).Create(deal).Error
}

func (r *dealRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	var deal entity.Deal
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Items.MenuItem").
		Preload("Items.Variant").
		Preload("Items.SubMenuItem").
		Preload("Discount").
		First(&deal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &deal, err
}

func (r *dealRepository) GetBySlug(ctx context.Context, slug string) (*entity.Deal, error) {
	var deal entity.Deal
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Items").
		Preload("Discount").
		First(&deal, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &deal, err
}

// GetByIDs retrieves multiple deals by their IDs in a single query, with
// items and discounts preloaded
func (r *dealRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Deal, error) {
	if len(ids) == 0 {
		return []entity.Deal{}, nil
	}
	var deals []entity.Deal
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Items").
		Preload("Discount").
		Where("id IN ?", ids).
		Find(&deals).Error
	return deals, err
}

func (r *dealRepository) Update(ctx context.Context, deal *entity.Deal) error {
	return r.db.WithContext(ctx).Save(deal).Error
}

func (r *dealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.DealItem{}, "deal_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Deal{}, "id = ?", id).Error
	})
}

func (r *dealRepository) List(ctx context.Context, branchID uuid.UUID, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.Deal, int64, error) {
	var deals []entity.Deal
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Deal{}).
		Scopes(TenantScope(ctx)).
		Where("branch_id = ?", branchID)

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if activeOnly {
		query = query.Where("is_active = true")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Items").
		Preload("Discount").
		Order("created_at DESC").
		Find(&deals).Error

	return deals, total, err
}

// ReplaceItems swaps the full item list of a deal in one transaction
func (r *dealRepository) ReplaceItems(ctx context.Context, dealID uuid.UUID, items []entity.DealItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&entity.DealItem{}, "deal_id = ?", dealID).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].DealID = dealID
		}
		return tx.Create(&items).Error
	})
}

type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository creates a new discount repository
func NewDiscountRepository(db *gorm.DB) domainRepo.DiscountRepository {
	return &discountRepository{db: db}
}

func (r *discountRepository) Create(ctx context.Context, discount *entity.Discount) error {
	return r.db.WithContext(ctx).Create(discount).Error
}

func (r *discountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error) {
	var discount entity.Discount
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&discount, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &discount, err
}

func (r *discountRepository) Update(ctx context.Context, discount *entity.Discount) error {
	return r.db.WithContext(ctx).Save(discount).Error
}

func (r *discountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Discount{}, "id = ?", id).Error
}

func (r *discountRepository) List(ctx context.Context, branchID uuid.UUID, params *pagination.PaginationParams, activeOnly bool) ([]entity.Discount, int64, error) {
	var discounts []entity.Discount
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Discount{}).
		Scopes(TenantScope(ctx)).
		Where("branch_id = ?", branchID)

	if activeOnly {
		query = query.Where("is_active = true")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&discounts).Error

	return discounts, total, err
}
