package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/application/service"
	"github.com/platemate/platemate-api/internal/domain/enum"
	"github.com/platemate/platemate-api/internal/presentation/http/dto/response"
	"github.com/platemate/platemate-api/pkg/pagination"
)

// DiscountHandler handles discount campaign HTTP requests
type DiscountHandler struct {
	discountService *service.DiscountService
}

// NewDiscountHandler creates a new discount handler
func NewDiscountHandler(discountService *service.DiscountService) *DiscountHandler {
	return &DiscountHandler{discountService: discountService}
}

// Create handles creating a percentage discount campaign
func (h *DiscountHandler) Create(c *gin.Context) {
	var req struct {
		BranchID string     `json:"branch_id" binding:"required,uuid"`
		Name     string     `json:"name" binding:"required"`
		Value    float64    `json:"value" binding:"required,gt=0,lte=100"`
		Scope    int        `json:"scope" binding:"gte=0,lte=1"`
		StartsAt *time.Time `json:"starts_at"`
		EndsAt   *time.Time `json:"ends_at"`
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

	discount, err := h.discountService.CreateDiscount(c.Request.Context(), &service.CreateDiscountInput{
		BranchID: branchID,
		Name:     req.Name,
		Value:    req.Value,
		Scope:    enum.DiscountScope(req.Scope),
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Discount created successfully", discount)
}

// Get handles getting a single discount
func (h *DiscountHandler) Get(c *gin.Context) {
	discountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid discount ID format")
		return
	}

	discount, err := h.discountService.GetDiscount(c.Request.Context(), discountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount retrieved successfully", discount)
}

// List handles listing a branch's discounts
func (h *DiscountHandler) List(c *gin.Context) {
	branchID, err := uuid.Parse(c.Query("branch_id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID format")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.discountService.ListDiscounts(c.Request.Context(), branchID,
		&pagination.PaginationParams{Page: page, PerPage: perPage}, c.Query("active") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Discounts retrieved successfully", result)
}

// Update handles updating a discount campaign
func (h *DiscountHandler) Update(c *gin.Context) {
	discountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid discount ID format")
		return
	}

	var req struct {
		Name     *string    `json:"name"`
		Value    *float64   `json:"value" binding:"omitempty,gt=0,lte=100"`
		IsActive *bool      `json:"is_active"`
		StartsAt *time.Time `json:"starts_at"`
		EndsAt   *time.Time `json:"ends_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	discount, err := h.discountService.UpdateDiscount(c.Request.Context(), discountID, &service.UpdateDiscountInput{
		Name:     req.Name,
		Value:    req.Value,
		IsActive: req.IsActive,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount updated successfully", discount)
}

// Delete handles deleting a discount
func (h *DiscountHandler) Delete(c *gin.Context) {
	discountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid discount ID format")
		return
	}

	if err := h.discountService.DeleteDiscount(c.Request.Context(), discountID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount deleted successfully", nil)
}
