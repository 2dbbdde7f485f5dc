package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/internal/domain/enum"
	domainRepo "github.com/platemate/platemate-api/internal/domain/repository"
	"github.com/platemate/platemate-api/pkg/pagination"
	"gorm.io/gorm"
)

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *gorm.DB) domainRepo.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&reservation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &reservation, err
}

func (r *reservationRepository) Update(ctx context.Context, reservation *entity.Reservation) error {
	return r.db.WithContext(ctx).Save(reservation).Error
}

func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Reservation{}, "id = ?", id).Error
}

func (r *reservationRepository) List(ctx context.Context, params *domainRepo.ReservationFilterParams) ([]entity.Reservation, int64, error) {
	var reservations []entity.Reservation
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Reservation{}).Scopes(TenantScope(ctx))

	if params.BranchID != nil {
		query = query.Where("branch_id = ?", *params.BranchID)
	}

	if params.Search != "" {
		query = query.Where("customer_name ILIKE ? OR customer_phone ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.StartDate != nil {
		query = query.Where("reserved_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("reserved_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "reserved_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder != "" && (params.SortOrder == "ASC" || params.SortOrder == "asc") {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&reservations).Error

	return reservations, total, err
}

func (r *reservationRepository) GetUpcoming(ctx context.Context, branchID uuid.UUID, from time.Time, params *pagination.PaginationParams) ([]entity.Reservation, int64, error) {
	var reservations []entity.Reservation
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Reservation{}).
		Scopes(TenantScope(ctx)).
		Where("branch_id = ? AND reserved_at >= ?", branchID, from).
		Where("status IN ?", []enum.ReservationStatus{
			enum.ReservationStatusPending,
			enum.ReservationStatusConfirmed,
		})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("reserved_at ASC").
		Find(&reservations).Error

	return reservations, total, err
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ReservationStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Reservation{}).
		Where("id = ?", id).
		Update("status", status).Error
}
