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

// PurchaseHandler handles purchase order HTTP requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Create handles creating a pending purchase order
func (h *PurchaseHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		BranchID   string  `json:"branch_id" binding:"required,uuid"`
		SupplierID *string `json:"supplier_id" binding:"omitempty,uuid"`
		Date       string  `json:"date" binding:"required"`
		Items      []struct {
			InventoryItemID string  `json:"inventory_item_id" binding:"required,uuid"`
			Quantity        float64 `json:"quantity" binding:"required,gt=0"`
			UnitCost        float64 `json:"unit_cost" binding:"gte=0"`
		} `json:"items" binding:"required,min=1,dive"`
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

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	input := &service.CreatePurchaseInput{
		UserID:   *userID,
		BranchID: branchID,
		Date:     date,
	}

	if req.SupplierID != nil {
		supplierID, err := uuid.Parse(*req.SupplierID)
		if err != nil {
			response.BadRequest(c, "Invalid supplier ID format")
			return
		}
		input.SupplierID = &supplierID
	}

	for _, item := range req.Items {
		inventoryItemID, err := uuid.Parse(item.InventoryItemID)
		if err != nil {
			response.BadRequest(c, "Invalid inventory item ID format")
			return
		}
		input.Items = append(input.Items, service.PurchaseItemInput{
			InventoryItemID: inventoryItemID,
			Quantity:        item.Quantity,
			UnitCost:        item.UnitCost,
		})
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase order created successfully", purchase)
}

// Get handles getting a single purchase order with its details
func (h *PurchaseHandler) Get(c *gin.Context) {
	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	purchase, err := h.purchaseService.GetPurchase(c.Request.Context(), purchaseID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order retrieved successfully", purchase)
}

// List handles listing purchase orders
func (h *PurchaseHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.PurchaseFilterParams{
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

	if supplierIDStr := c.Query("supplier_id"); supplierIDStr != "" {
		if id, err := uuid.Parse(supplierIDStr); err == nil {
			params.SupplierID = &id
		}
	}

	if statusStr := c.Query("status"); statusStr != "" {
		if statusInt, err := strconv.Atoi(statusStr); err == nil {
			status := enum.PurchaseStatus(statusInt)
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

	result, err := h.purchaseService.ListPurchases(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchase orders retrieved successfully", result)
}

// Approve handles approving a pending purchase order and receiving its stock
func (h *PurchaseHandler) Approve(c *gin.Context) {
	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	purchase, err := h.purchaseService.ApprovePurchase(c.Request.Context(), purchaseID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order approved successfully", purchase)
}

// Cancel handles cancelling a pending purchase order
func (h *PurchaseHandler) Cancel(c *gin.Context) {
	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	if err := h.purchaseService.CancelPurchase(c.Request.Context(), purchaseID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order cancelled successfully", nil)
}

// Delete handles deleting a purchase order (approved orders cannot be deleted)
func (h *PurchaseHandler) Delete(c *gin.Context) {
	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), purchaseID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order deleted successfully", nil)
}
