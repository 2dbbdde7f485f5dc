package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/application/service"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/internal/domain/enum"
	"github.com/platemate/platemate-api/internal/domain/repository"
	"github.com/platemate/platemate-api/internal/presentation/http/dto/response"
	"github.com/platemate/platemate-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles listing orders (supports both page-based and cursor-based pagination)
func (h *OrderHandler) List(c *gin.Context) {
	// Check if cursor-based pagination is requested
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	applyOrderFilters(c, &params.BranchID, &params.Status, &params.Type, &params.StartDate, &params.EndDate)

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// listWithCursor handles listing orders with cursor-based pagination
func (h *OrderHandler) listWithCursor(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

	params := &repository.OrderCursorFilterParams{
		Cursor: &pagination.CursorParams{
			Cursor:    c.Query("cursor"),
			Direction: pagination.CursorDirection(c.DefaultQuery("direction", "next")),
			Limit:     limit,
		},
		Search: c.Query("search"),
	}

	applyOrderFilters(c, &params.BranchID, &params.Status, &params.Type, &params.StartDate, &params.EndDate)

	result, err := h.orderService.ListOrdersWithCursor(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Orders retrieved successfully", result)
}

// applyOrderFilters reads the shared order query filters.
func applyOrderFilters(c *gin.Context, branchID **uuid.UUID, status **enum.OrderStatus, orderType **enum.OrderType, startDate, endDate **time.Time) {
	if branchIDStr := c.Query("branch_id"); branchIDStr != "" {
		if id, err := uuid.Parse(branchIDStr); err == nil {
			*branchID = &id
		}
	}

	if statusStr := c.Query("status"); statusStr != "" {
		if statusInt, err := strconv.Atoi(statusStr); err == nil {
			s := enum.OrderStatus(statusInt)
			*status = &s
		}
	}

	if typeStr := c.Query("order_type"); typeStr != "" {
		if typeInt, err := strconv.Atoi(typeStr); err == nil {
			t := enum.OrderType(typeInt)
			*orderType = &t
		}
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if d, err := time.Parse("2006-01-02", startDateStr); err == nil {
			*startDate = &d
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if d, err := time.Parse("2006-01-02", endDateStr); err == nil {
			*endDate = &d
		}
	}
}

// Create handles creating a new order
func (h *OrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		BranchID      string                 `json:"branch_id" binding:"required,uuid"`
		OrderType     int                    `json:"order_type" binding:"required"`
		CustomerName  *string                `json:"customer_name"`
		CustomerPhone *string                `json:"customer_phone"`
		Tip           float64                `json:"tip" binding:"gte=0"`
		Delivery      *entity.DeliveryDetail `json:"delivery"`
		Pickup        *entity.PickupDetail   `json:"pickup"`
		Lines         []struct {
			MenuItemID     *string `json:"menu_item_id"`
			DealID         *string `json:"deal_id"`
			VariantID      *string `json:"variant_id"`
			Quantity       int     `json:"quantity" binding:"required,gt=0"`
			Modifiers      []struct {
				ModifierID string `json:"modifier_id" binding:"required,uuid"`
				Quantity   int    `json:"quantity" binding:"required,gt=0"`
			} `json:"modifiers"`
			Customizations []struct {
				CustomizationID string `json:"customization_id" binding:"required,uuid"`
				OptionID        string `json:"option_id" binding:"required,uuid"`
			} `json:"customizations"`
		} `json:"lines" binding:"required,min=1,dive"`
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

	input := &service.CreateOrderInput{
		UserID:        *userID,
		BranchID:      branchID,
		OrderType:     enum.OrderType(req.OrderType),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Tip:           req.Tip,
		Delivery:      req.Delivery,
		Pickup:        req.Pickup,
	}

	for _, l := range req.Lines {
		line := service.OrderLineInput{Quantity: l.Quantity}
		if l.MenuItemID != nil {
			id, err := uuid.Parse(*l.MenuItemID)
			if err != nil {
				response.BadRequest(c, "Invalid menu item ID format")
				return
			}
			line.MenuItemID = &id
		}
		if l.DealID != nil {
			id, err := uuid.Parse(*l.DealID)
			if err != nil {
				response.BadRequest(c, "Invalid deal ID format")
				return
			}
			line.DealID = &id
		}
		if l.VariantID != nil {
			id, err := uuid.Parse(*l.VariantID)
			if err != nil {
				response.BadRequest(c, "Invalid variant ID format")
				return
			}
			line.VariantID = &id
		}
		for _, m := range l.Modifiers {
			modifierID, err := uuid.Parse(m.ModifierID)
			if err != nil {
				response.BadRequest(c, "Invalid modifier ID format")
				return
			}
			line.Modifiers = append(line.Modifiers, service.OrderModifierInput{
				ModifierID: modifierID,
				Quantity:   m.Quantity,
			})
		}
		for _, cu := range l.Customizations {
			customizationID, err := uuid.Parse(cu.CustomizationID)
			if err != nil {
				response.BadRequest(c, "Invalid customization ID format")
				return
			}
			optionID, err := uuid.Parse(cu.OptionID)
			if err != nil {
				response.BadRequest(c, "Invalid option ID format")
				return
			}
			line.Customizations = append(line.Customizations, service.OrderCustomizationInput{
				CustomizationID: customizationID,
				OptionID:        optionID,
			})
		}
		input.Lines = append(input.Lines, line)
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles getting a single order with its lines
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// UpdateStatus handles moving an order through the kitchen workflow
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID format")
		return
	}

	var req struct {
		Status int `json:"status" binding:"gte=0,lte=4"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.orderService.UpdateOrderStatus(c.Request.Context(), orderID, enum.OrderStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", nil)
}

// Cancel handles cancelling an order and restoring consumed inventory
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID format")
		return
	}

	if err := h.orderService.CancelOrder(c.Request.Context(), orderID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order cancelled successfully", nil)
}
