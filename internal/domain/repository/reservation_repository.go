package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/internal/domain/enum"
	"github.com/platemate/platemate-api/pkg/pagination"
)

// ReservationFilterParams contains filtering parameters for reservation queries
type ReservationFilterParams struct {
	Pagination *pagination.PaginationParams
	BranchID   *uuid.UUID
	Search     string
	Status     *enum.ReservationStatus
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// ReservationRepository defines the interface for reservation data operations
type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	Update(ctx context.Context, reservation *entity.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ReservationFilterParams) ([]entity.Reservation, int64, error)
	GetUpcoming(ctx context.Context, branchID uuid.UUID, from time.Time, params *pagination.PaginationParams) ([]entity.Reservation, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ReservationStatus) error
}
