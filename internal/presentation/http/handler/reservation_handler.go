package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/application/service"
	"github.com/platemate/platemate-api/internal/domain/enum"
	"github.com/platemate/platemate-api/internal/domain/repository"
	"github.com/platemate/platemate-api/internal/presentation/http/dto/response"
	"github.com/platemate/platemate-api/pkg/pagination"
)

// ReservationHandler handles reservation HTTP requests
type ReservationHandler struct {
	reservationService *service.ReservationService
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationService *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// Create handles creating a new reservation
func (h *ReservationHandler) Create(c *gin.Context) {
	var req struct {
		BranchID      string    `json:"branch_id" binding:"required,uuid"`
		CustomerName  string    `json:"customer_name" binding:"required"`
		CustomerPhone string    `json:"customer_phone" binding:"required"`
		CustomerEmail *string   `json:"customer_email" binding:"omitempty,email"`
		PartySize     int       `json:"party_size" binding:"required,gt=0"`
		TableNo       *string   `json:"table_no"`
		ReservedAt    time.Time `json:"reserved_at" binding:"required"`
		Notes         *string   `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		response.BadRequest(c, "Invalid branch ID format")
		return
	}

	reservation, err := h.reservationService.CreateReservation(c.Request.Context(), &service.CreateReservationInput{
		BranchID:      branchID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		PartySize:     req.PartySize,
		TableNo:       req.TableNo,
		ReservedAt:    req.ReservedAt,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Reservation created successfully", reservation)
}

// Get handles getting a single reservation
func (h *ReservationHandler) Get(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation ID format")
		return
	}

	reservation, err := h.reservationService.GetReservation(c.Request.Context(), reservationID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reservation retrieved successfully", reservation)
}

// List handles listing reservations
func (h *ReservationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ReservationFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if branchIDStr := c.Query("branch_id"); branchIDStr != "" {
		if id, err := uuid.Parse(branchIDStr); err == nil {
			params.BranchID = &id
		}
	}

	if statusStr := c.Query("status"); statusStr != "" {
		if statusInt, err := strconv.Atoi(statusStr); err == nil {
			status := enum.ReservationStatus(statusInt)
			params.Status = &status
		}
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if d, err := time.Parse("2006-01-02", startDateStr); err == nil {
			params.StartDate = &d
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if d, err := time.Parse("2006-01-02", endDateStr); err == nil {
			params.EndDate = &d
		}
	}

	result, err := h.reservationService.ListReservations(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Reservations retrieved successfully", result)
}

// GetUpcoming handles listing a branch's pending and confirmed reservations
func (h *ReservationHandler) GetUpcoming(c *gin.Context) {
	branchID, err := uuid.Parse(c.Query("branch_id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID format")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.reservationService.GetUpcoming(c.Request.Context(), branchID,
		&pagination.PaginationParams{Page: page, PerPage: perPage})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Upcoming reservations retrieved successfully", result)
}

// Update handles updating a reservation's details
func (h *ReservationHandler) Update(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation ID format")
		return
	}

	var req struct {
		PartySize  *int       `json:"party_size" binding:"omitempty,gt=0"`
		TableNo    *string    `json:"table_no"`
		ReservedAt *time.Time `json:"reserved_at"`
		Notes      *string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	reservation, err := h.reservationService.UpdateReservation(c.Request.Context(), reservationID, &service.UpdateReservationInput{
		PartySize:  req.PartySize,
		TableNo:    req.TableNo,
		ReservedAt: req.ReservedAt,
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reservation updated successfully", reservation)
}

// UpdateStatus handles moving a reservation through its lifecycle
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation ID format")
		return
	}

	var req struct {
		Status int `json:"status" binding:"gte=0,lte=5"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	reservation, err := h.reservationService.UpdateStatus(c.Request.Context(), reservationID, enum.ReservationStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reservation status updated successfully", reservation)
}

// Delete handles deleting a reservation
func (h *ReservationHandler) Delete(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation ID format")
		return
	}

	if err := h.reservationService.DeleteReservation(c.Request.Context(), reservationID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reservation deleted successfully", nil)
}
