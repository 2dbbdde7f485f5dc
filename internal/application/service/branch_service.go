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

// BranchService handles branch management
type BranchService struct {
	branchRepo repository.BranchRepository
}

// NewBranchService creates a new branch service
func NewBranchService(branchRepo repository.BranchRepository) *BranchService {
	return &BranchService{branchRepo: branchRepo}
}

// CreateBranchInput represents the create branch input
type CreateBranchInput struct {
	Name     string
	Currency string
	Address  *string
	Phone    *string
	Email    *string
}

// CreateBranch creates a new branch with the default pricing configuration
func (s *BranchService) CreateBranch(ctx context.Context, input *CreateBranchInput) (*entity.Branch, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	slug := utils.Slugify(input.Name)
	exists, err := s.branchRepo.SlugExists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflictError("A branch with this name already exists")
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	branch := &entity.Branch{
		TenantID:      tenantID,
		Name:          input.Name,
		Slug:          slug,
		Currency:      currency,
		Address:       input.Address,
		Phone:         input.Phone,
		Email:         input.Email,
		IsActive:      true,
		Configuration: entity.DefaultBranchConfiguration(),
	}

	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}

	return branch, nil
}

// GetBranch retrieves a branch by ID
func (s *BranchService) GetBranch(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}
	return branch, nil
}

// UpdateBranchInput represents the update branch input
type UpdateBranchInput struct {
	Name     *string
	Currency *string
	Address  *string
	Phone    *string
	Email    *string
	IsActive *bool
}

// UpdateBranch updates a branch
func (s *BranchService) UpdateBranch(ctx context.Context, id uuid.UUID, input *UpdateBranchInput) (*entity.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	if input.Name != nil {
		branch.Name = *input.Name
		branch.Slug = utils.Slugify(*input.Name)
	}
	if input.Currency != nil {
		branch.Currency = *input.Currency
	}
	if input.Address != nil {
		branch.Address = input.Address
	}
	if input.Phone != nil {
		branch.Phone = input.Phone
	}
	if input.Email != nil {
		branch.Email = input.Email
	}
	if input.IsActive != nil {
		branch.IsActive = *input.IsActive
	}

	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}

	return branch, nil
}

// UpdateConfiguration replaces a branch's pricing configuration.
// Invalid percentages or NaN are rejected before they can reach pricing.
func (s *BranchService) UpdateConfiguration(ctx context.Context, id uuid.UUID, cfg entity.BranchConfiguration) (*entity.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	if !cfg.Validate() {
		return nil, apperror.NewAppError(422, "Percentages must be between 0 and 100")
	}

	if err := s.branchRepo.UpdateConfiguration(ctx, id, cfg); err != nil {
		return nil, err
	}

	branch.Configuration = cfg
	return branch, nil
}

// DeleteBranch soft-deletes a branch
func (s *BranchService) DeleteBranch(ctx context.Context, id uuid.UUID) error {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if branch == nil {
		return apperror.NewNotFoundError("Branch")
	}
	return s.branchRepo.Delete(ctx, id)
}

// ListBranches lists branches with pagination
func (s *BranchService) ListBranches(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Branch], error) {
	branches, total, err := s.branchRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(branches, pag), nil
}
