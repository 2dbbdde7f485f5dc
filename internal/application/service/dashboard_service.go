package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/repository"
	"github.com/platemate/platemate-api/pkg/apperror"
	"github.com/platemate/platemate-api/pkg/pagination"
)

// DashboardService aggregates branch statistics for the admin console
type DashboardService struct {
	orderRepo       repository.OrderRepository
	inventoryRepo   repository.InventoryRepository
	reservationRepo repository.ReservationRepository
	branchRepo      repository.BranchRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	orderRepo repository.OrderRepository,
	inventoryRepo repository.InventoryRepository,
	reservationRepo repository.ReservationRepository,
	branchRepo repository.BranchRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo:       orderRepo,
		inventoryRepo:   inventoryRepo,
		reservationRepo: reservationRepo,
		branchRepo:      branchRepo,
	}
}

// BranchStats is the dashboard summary of one branch
type BranchStats struct {
	BranchID             uuid.UUID `json:"branch_id"`
	OrdersToday          int64     `json:"orders_today"`
	RevenueToday         float64   `json:"revenue_today"`
	OrdersThisWeek       int64     `json:"orders_this_week"`
	RevenueThisWeek      float64   `json:"revenue_this_week"`
	LowStockItems        int64     `json:"low_stock_items"`
	UpcomingReservations int64     `json:"upcoming_reservations"`
}

// GetBranchStats builds the dashboard summary for a branch
func (s *DashboardService) GetBranchStats(ctx context.Context, branchID uuid.UUID) (*BranchStats, error) {
	branch, err := s.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -int(now.Weekday()))

	stats := &BranchStats{BranchID: branchID}

	if stats.OrdersToday, err = s.orderRepo.CountByBranchSince(ctx, branchID, startOfDay); err != nil {
		return nil, err
	}
	if stats.RevenueToday, err = s.orderRepo.SumByBranchSince(ctx, branchID, startOfDay); err != nil {
		return nil, err
	}
	if stats.OrdersThisWeek, err = s.orderRepo.CountByBranchSince(ctx, branchID, startOfWeek); err != nil {
		return nil, err
	}
	if stats.RevenueThisWeek, err = s.orderRepo.SumByBranchSince(ctx, branchID, startOfWeek); err != nil {
		return nil, err
	}

	lowStockParams := &pagination.PaginationParams{Page: 1, PerPage: 1}
	if _, stats.LowStockItems, err = s.inventoryRepo.GetLowStock(ctx, branchID, lowStockParams); err != nil {
		return nil, err
	}

	upcomingParams := &pagination.PaginationParams{Page: 1, PerPage: 1}
	if _, stats.UpcomingReservations, err = s.reservationRepo.GetUpcoming(ctx, branchID, now, upcomingParams); err != nil {
		return nil, err
	}

	return stats, nil
}
