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

type branchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *gorm.DB) domainRepo.BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Create(ctx context.Context, branch *entity.Branch) error {
	return r.db.WithContext(ctx).Create(branch).Error
}

func (r *branchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	var branch entity.Branch
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&branch, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &branch, err
}

func (r *branchRepository) GetBySlug(ctx context.Context, slug string) (*entity.Branch, error) {
	var branch entity.Branch
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&branch, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &branch, err
}

func (r *branchRepository) Update(ctx context.Context, branch *entity.Branch) error {
	return r.db.WithContext(ctx).Save(branch).Error
}

func (r *branchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Branch{}, "id = ?", id).Error
}

func (r *branchRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Branch, int64, error) {
	var branches []entity.Branch
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Branch{}).Scopes(TenantScope(ctx))

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&branches).Error

	return branches, total, err
}

func (r *branchRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Branch{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

func (r *branchRepository) UpdateConfiguration(ctx context.Context, id uuid.UUID, cfg entity.BranchConfiguration) error {
	return r.db.WithContext(ctx).Model(&entity.Branch{}).
		Scopes(TenantScope(ctx)).
		Where("id = ?", id).
		Update("configuration", cfg).Error
}
