package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/application/service"
	"github.com/platemate/platemate-api/internal/presentation/http/dto/response"
	"github.com/platemate/platemate-api/pkg/pagination"
)

// DealHandler handles deal-related HTTP requests
type DealHandler struct {
	dealService *service.DealService
}

// NewDealHandler creates a new deal handler
func NewDealHandler(dealService *service.DealService) *DealHandler {
	return &DealHandler{dealService: dealService}
}

type dealItemRequest struct {
	MenuItemID    *string `json:"menu_item_id" binding:"omitempty,uuid"`
	VariantID     *string `json:"variant_id" binding:"omitempty,uuid"`
	SubMenuItemID *string `json:"sub_menu_item_id" binding:"omitempty,uuid"`
	Quantity      int     `json:"quantity" binding:"required,gt=0"`
}

func parseDealItems(items []dealItemRequest) ([]service.DealItemInput, error) {
	inputs := make([]service.DealItemInput, 0, len(items))
	for _, item := range items {
		input := service.DealItemInput{Quantity: item.Quantity}
		if item.MenuItemID != nil {
			id, err := uuid.Parse(*item.MenuItemID)
			if err != nil {
				return nil, err
			}
			input.MenuItemID = &id
		}
		if item.VariantID != nil {
			id, err := uuid.Parse(*item.VariantID)
			if err != nil {
				return nil, err
			}
			input.VariantID = &id
		}
		if item.SubMenuItemID != nil {
			id, err := uuid.Parse(*item.SubMenuItemID)
			if err != nil {
				return nil, err
			}
			input.SubMenuItemID = &id
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

// Create handles creating a new deal
func (h *DealHandler) Create(c *gin.Context) {
	var req struct {
		BranchID    string            `json:"branch_id" binding:"required,uuid"`
		DiscountID  *string           `json:"discount_id" binding:"omitempty,uuid"`
		Name        string            `json:"name" binding:"required"`
		Description *string           `json:"description"`
		Price       float64           `json:"price" binding:"gte=0"`
		StartsAt    *time.Time        `json:"starts_at"`
		EndsAt      *time.Time        `json:"ends_at"`
		Items       []dealItemRequest `json:"items" binding:"required,min=1,dive"`
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

	items, err := parseDealItems(req.Items)
	if err != nil {
		response.BadRequest(c, "Invalid deal item ID format")
		return
	}

	input := &service.CreateDealInput{
		BranchID:    branchID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Items:       items,
	}

	if req.DiscountID != nil {
		discountID, err := uuid.Parse(*req.DiscountID)
		if err != nil {
			response.BadRequest(c, "Invalid discount ID format")
			return
		}
		input.DiscountID = &discountID
	}

	deal, err := h.dealService.CreateDeal(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Deal created successfully", deal)
}

// Get handles getting a single deal with its items
func (h *DealHandler) Get(c *gin.Context) {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid deal ID format")
		return
	}

	deal, err := h.dealService.GetDeal(c.Request.Context(), dealID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Deal retrieved successfully", deal)
}

// List handles listing a branch's deals
func (h *DealHandler) List(c *gin.Context) {
	branchID, err := uuid.Parse(c.Query("branch_id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID format")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.dealService.ListDeals(c.Request.Context(), branchID,
		&pagination.PaginationParams{Page: page, PerPage: perPage},
		c.Query("search"), c.Query("active") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Deals retrieved successfully", result)
}

// Update handles updating a deal; a non-empty items list replaces it in full
func (h *DealHandler) Update(c *gin.Context) {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid deal ID format")
		return
	}

	var req struct {
		DiscountID  *string           `json:"discount_id" binding:"omitempty,uuid"`
		Name        *string           `json:"name"`
		Description *string           `json:"description"`
		Price       *float64          `json:"price" binding:"omitempty,gte=0"`
		IsActive    *bool             `json:"is_active"`
		StartsAt    *time.Time        `json:"starts_at"`
		EndsAt      *time.Time        `json:"ends_at"`
		Items       []dealItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	input := &service.UpdateDealInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsActive:    req.IsActive,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}

	if req.DiscountID != nil {
		discountID, err := uuid.Parse(*req.DiscountID)
		if err != nil {
			response.BadRequest(c, "Invalid discount ID format")
			return
		}
		input.DiscountID = &discountID
	}

	if req.Items != nil {
		items, err := parseDealItems(req.Items)
		if err != nil {
			response.BadRequest(c, "Invalid deal item ID format")
			return
		}
		input.Items = items
	}

	deal, err := h.dealService.UpdateDeal(c.Request.Context(), dealID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Deal updated successfully", deal)
}

// Delete handles deleting a deal
func (h *DealHandler) Delete(c *gin.Context) {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid deal ID format")
		return
	}

	if err := h.dealService.DeleteDeal(c.Request.Context(), dealID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Deal deleted successfully", nil)
}
