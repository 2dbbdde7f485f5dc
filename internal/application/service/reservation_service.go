package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/internal/domain/enum"
	"github.com/platemate/platemate-api/internal/domain/repository"
	infraRepo "github.com/platemate/platemate-api/internal/infrastructure/repository"
	"github.com/platemate/platemate-api/pkg/apperror"
	"github.com/platemate/platemate-api/pkg/email"
	"github.com/platemate/platemate-api/pkg/pagination"
)

// ReservationService handles table reservations
type ReservationService struct {
	reservationRepo repository.ReservationRepository
	branchRepo      repository.BranchRepository
	emailService    *email.EmailService
}

// NewReservationService creates a new reservation service
func NewReservationService(
	reservationRepo repository.ReservationRepository,
	branchRepo repository.BranchRepository,
	emailService *email.EmailService,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		branchRepo:      branchRepo,
		emailService:    emailService,
	}
}

// CreateReservationInput represents the create reservation input
type CreateReservationInput struct {
	BranchID      uuid.UUID
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	PartySize     int
	TableNo       *string
	ReservedAt    time.Time
	Notes         *string
}

// CreateReservation creates a pending reservation
func (s *ReservationService) CreateReservation(ctx context.Context, input *CreateReservationInput) (*entity.Reservation, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if input.PartySize <= 0 {
		return nil, apperror.NewBadRequestError("Party size must be positive")
	}
	if input.ReservedAt.Before(time.Now()) {
		return nil, apperror.NewBadRequestError("Reservation time must be in the future")
	}

	branch, err := s.branchRepo.GetByID(ctx, input.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	reservation := &entity.Reservation{
		TenantID:      tenantID,
		BranchID:      input.BranchID,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
		PartySize:     input.PartySize,
		TableNo:       input.TableNo,
		ReservedAt:    input.ReservedAt,
		Status:        enum.ReservationStatusPending,
		Notes:         input.Notes,
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// GetReservation retrieves a reservation by ID
func (s *ReservationService) GetReservation(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, apperror.NewNotFoundError("Reservation")
	}
	return reservation, nil
}

// UpdateReservationInput represents the update reservation input
type UpdateReservationInput struct {
	PartySize  *int
	TableNo    *string
	ReservedAt *time.Time
	Notes      *string
}

// UpdateReservation updates a reservation's details
func (s *ReservationService) UpdateReservation(ctx context.Context, id uuid.UUID, input *UpdateReservationInput) (*entity.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, apperror.NewNotFoundError("Reservation")
	}

	if reservation.Status == enum.ReservationStatusCancel || reservation.Status == enum.ReservationStatusComplete {
		return nil, apperror.NewAppError(400, "Closed reservations cannot be changed")
	}

	if input.PartySize != nil {
		if *input.PartySize <= 0 {
			return nil, apperror.NewBadRequestError("Party size must be positive")
		}
		reservation.PartySize = *input.PartySize
	}
	if input.TableNo != nil {
		reservation.TableNo = input.TableNo
	}
	if input.ReservedAt != nil {
		reservation.ReservedAt = *input.ReservedAt
	}
	if input.Notes != nil {
		reservation.Notes = input.Notes
	}

	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// UpdateStatus moves a reservation along its status flow. Confirming a
// reservation emails the customer when an address is on file.
func (s *ReservationService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ReservationStatus) (*entity.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, apperror.NewNotFoundError("Reservation")
	}

	if !validReservationTransition(reservation.Status, status) {
		return nil, apperror.NewAppError(400, "Invalid reservation status transition")
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	reservation.Status = status

	if status == enum.ReservationStatusConfirmed && reservation.CustomerEmail != nil && *reservation.CustomerEmail != "" {
		s.sendConfirmation(ctx, reservation)
	}

	return reservation, nil
}

// sendConfirmation emails the customer. Failures are logged, not surfaced:
// the reservation is confirmed either way.
func (s *ReservationService) sendConfirmation(ctx context.Context, reservation *entity.Reservation) {
	branch, err := s.branchRepo.GetByID(ctx, reservation.BranchID)
	if err != nil || branch == nil {
		log.Printf("Reservation confirmation email skipped (reservation %s): branch lookup failed", reservation.ID)
		return
	}

	data := email.ReservationEmail{
		CustomerName: reservation.CustomerName,
		BranchName:   branch.Name,
		ReservedAt:   reservation.ReservedAt.Format("Mon, 2 Jan 2006 at 15:04"),
		PartySize:    reservation.PartySize,
	}
	if reservation.TableNo != nil {
		data.TableNo = *reservation.TableNo
	}

	if err := s.emailService.SendReservationConfirmation(*reservation.CustomerEmail, data); err != nil {
		log.Printf("Reservation confirmation email failed (reservation %s): %v", reservation.ID, err)
	}
}

// validReservationTransition enforces the reservation status flow
func validReservationTransition(from, to enum.ReservationStatus) bool {
	switch from {
	case enum.ReservationStatusPending:
		return to == enum.ReservationStatusConfirmed || to == enum.ReservationStatusCancel
	case enum.ReservationStatusConfirmed:
		return to == enum.ReservationStatusSeated || to == enum.ReservationStatusCancel || to == enum.ReservationStatusNoShow
	case enum.ReservationStatusSeated:
		return to == enum.ReservationStatusComplete
	default:
		return false
	}
}

// DeleteReservation removes a reservation
func (s *ReservationService) DeleteReservation(ctx context.Context, id uuid.UUID) error {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if reservation == nil {
		return apperror.NewNotFoundError("Reservation")
	}
	return s.reservationRepo.Delete(ctx, id)
}

// ListReservations lists reservations with filtering
func (s *ReservationService) ListReservations(ctx context.Context, params *repository.ReservationFilterParams) (*pagination.PaginatedResult[entity.Reservation], error) {
	reservations, total, err := s.reservationRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(reservations, pag), nil
}

// GetUpcoming lists pending and confirmed reservations from now onwards
func (s *ReservationService) GetUpcoming(ctx context.Context, branchID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Reservation], error) {
	reservations, total, err := s.reservationRepo.GetUpcoming(ctx, branchID, time.Now(), params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(reservations, pag), nil
}
