package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/application/service"
	"github.com/platemate/platemate-api/internal/domain/repository"
	"github.com/platemate/platemate-api/internal/presentation/http/dto/response"
	"github.com/platemate/platemate-api/pkg/pagination"
)

// InventoryHandler handles inventory and supplier HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Create handles creating an inventory item
func (h *InventoryHandler) Create(c *gin.Context) {
	var req struct {
		BranchID      string  `json:"branch_id" binding:"required,uuid"`
		Name          string  `json:"name" binding:"required"`
		Unit          string  `json:"unit" binding:"required"`
		Quantity      float64 `json:"quantity" binding:"gte=0"`
		QuantityAlert float64 `json:"quantity_alert" binding:"gte=0"`
		UnitCost      float64 `json:"unit_cost" binding:"gte=0"`
		Notes         *string `json:"notes"`
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

	item, err := h.inventoryService.CreateInventoryItem(c.Request.Context(), &service.CreateInventoryItemInput{
		BranchID:      branchID,
		Name:          req.Name,
		Unit:          req.Unit,
		Quantity:      req.Quantity,
		QuantityAlert: req.QuantityAlert,
		UnitCost:      req.UnitCost,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Inventory item created successfully", item)
}

// Get handles getting a single inventory item
func (h *InventoryHandler) Get(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid inventory item ID format")
		return
	}

	item, err := h.inventoryService.GetInventoryItem(c.Request.Context(), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item retrieved successfully", item)
}

// List handles listing inventory items
func (h *InventoryHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.InventoryFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
		LowStock:   c.Query("low_stock") == "true",
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if branchIDStr := c.Query("branch_id"); branchIDStr != "" {
		if id, err := uuid.Parse(branchIDStr); err == nil {
			params.BranchID = &id
		}
	}

	result, err := h.inventoryService.ListInventory(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Inventory items retrieved successfully", result)
}

// Update handles updating an inventory item
func (h *InventoryHandler) Update(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid inventory item ID format")
		return
	}

	var req struct {
		Name          *string  `json:"name"`
		Unit          *string  `json:"unit"`
		Quantity      *float64 `json:"quantity" binding:"omitempty,gte=0"`
		QuantityAlert *float64 `json:"quantity_alert" binding:"omitempty,gte=0"`
		UnitCost      *float64 `json:"unit_cost" binding:"omitempty,gte=0"`
		Notes         *string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	item, err := h.inventoryService.UpdateInventoryItem(c.Request.Context(), itemID, &service.UpdateInventoryItemInput{
		Name:          req.Name,
		Unit:          req.Unit,
		Quantity:      req.Quantity,
		QuantityAlert: req.QuantityAlert,
		UnitCost:      req.UnitCost,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item updated successfully", item)
}

// Delete handles deleting an inventory item
func (h *InventoryHandler) Delete(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid inventory item ID format")
		return
	}

	if err := h.inventoryService.DeleteInventoryItem(c.Request.Context(), itemID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item deleted successfully", nil)
}

// GetLowStock handles listing items at or below their alert threshold
func (h *InventoryHandler) GetLowStock(c *gin.Context) {
	branchID, err := uuid.Parse(c.Query("branch_id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID format")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.inventoryService.GetLowStock(c.Request.Context(), branchID,
		&pagination.PaginationParams{Page: page, PerPage: perPage})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Low stock items retrieved successfully", result)
}

// NotifyLowStock handles emailing the branch a low stock summary
func (h *InventoryHandler) NotifyLowStock(c *gin.Context) {
	var req struct {
		BranchID string `json:"branch_id" binding:"required,uuid"`
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

	if err := h.inventoryService.NotifyLowStock(c.Request.Context(), branchID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock alert sent successfully", nil)
}

// CreateSupplier handles creating a supplier
func (h *InventoryHandler) CreateSupplier(c *gin.Context) {
	var req struct {
		Name    string  `json:"name" binding:"required"`
		Email   *string `json:"email" binding:"omitempty,email"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	supplier, err := h.inventoryService.CreateSupplier(c.Request.Context(), req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Supplier created successfully", supplier)
}

// GetSupplier handles getting a single supplier
func (h *InventoryHandler) GetSupplier(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID format")
		return
	}

	supplier, err := h.inventoryService.GetSupplier(c.Request.Context(), supplierID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier retrieved successfully", supplier)
}

// ListSuppliers handles listing suppliers
func (h *InventoryHandler) ListSuppliers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.inventoryService.ListSuppliers(c.Request.Context(),
		&pagination.PaginationParams{Page: page, PerPage: perPage}, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Suppliers retrieved successfully", result)
}

// UpdateSupplier handles updating a supplier
func (h *InventoryHandler) UpdateSupplier(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID format")
		return
	}

	var req struct {
		Name    *string `json:"name"`
		Email   *string `json:"email" binding:"omitempty,email"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	supplier, err := h.inventoryService.UpdateSupplier(c.Request.Context(), supplierID, req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier updated successfully", supplier)
}

// DeleteSupplier handles deleting a supplier
func (h *InventoryHandler) DeleteSupplier(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID format")
		return
	}

	if err := h.inventoryService.DeleteSupplier(c.Request.Context(), supplierID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier deleted successfully", nil)
}
