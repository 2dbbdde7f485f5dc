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

// MenuHandler handles menu catalog HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// CreateCategory handles creating a menu category
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req struct {
		BranchID  string `json:"branch_id" binding:"required,uuid"`
		Name      string `json:"name" binding:"required"`
		SortOrder int    `json:"sort_order"`
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

	category, err := h.menuService.CreateCategory(c.Request.Context(), branchID, req.Name, req.SortOrder)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// UpdateCategory handles renaming or reordering a category
func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID format")
		return
	}

	var req struct {
		Name      *string `json:"name"`
		SortOrder *int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	category, err := h.menuService.UpdateCategory(c.Request.Context(), categoryID, req.Name, req.SortOrder)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category updated successfully", category)
}

// DeleteCategory handles deleting a category
func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID format")
		return
	}

	if err := h.menuService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category deleted successfully", nil)
}

// ListCategories handles listing a branch's categories in sort order
func (h *MenuHandler) ListCategories(c *gin.Context) {
	branchID, err := uuid.Parse(c.Query("branch_id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID format")
		return
	}

	categories, err := h.menuService.ListCategories(c.Request.Context(), branchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", categories)
}

// CreateItem handles creating a menu item with its initial variants
func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req struct {
		BranchID    string  `json:"branch_id" binding:"required,uuid"`
		CategoryID  *string `json:"category_id" binding:"omitempty,uuid"`
		Name        string  `json:"name" binding:"required"`
		Description *string `json:"description"`
		Image       *string `json:"image"`
		Variants    []struct {
			Name      string  `json:"name" binding:"required"`
			Price     float64 `json:"price" binding:"gte=0"`
			SortOrder int     `json:"sort_order"`
		} `json:"variants" binding:"required,min=1,dive"`
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

	input := &service.CreateMenuItemInput{
		BranchID:    branchID,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			response.BadRequest(c, "Invalid category ID format")
			return
		}
		input.CategoryID = &categoryID
	}

	for _, v := range req.Variants {
		input.Variants = append(input.Variants, service.VariantInput{
			Name:      v.Name,
			Price:     v.Price,
			SortOrder: v.SortOrder,
		})
	}

	item, err := h.menuService.CreateMenuItem(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created successfully", item)
}

// GetItem handles getting a menu item with variants, modifiers and customizations
func (h *MenuHandler) GetItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID format")
		return
	}

	item, err := h.menuService.GetMenuItem(c.Request.Context(), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item retrieved successfully", item)
}

// ListItems handles listing menu items
func (h *MenuHandler) ListItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.MenuItemFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
		ActiveOnly: c.Query("active") == "true",
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if branchIDStr := c.Query("branch_id"); branchIDStr != "" {
		if id, err := uuid.Parse(branchIDStr); err == nil {
			params.BranchID = &id
		}
	}

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		if id, err := uuid.Parse(categoryIDStr); err == nil {
			params.CategoryID = &id
		}
	}

	result, err := h.menuService.ListMenuItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Menu items retrieved successfully", result)
}

// UpdateItem handles updating a menu item
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID format")
		return
	}

	var req struct {
		CategoryID  *string `json:"category_id" binding:"omitempty,uuid"`
		DiscountID  *string `json:"discount_id" binding:"omitempty,uuid"`
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Image       *string `json:"image"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	input := &service.UpdateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		IsActive:    req.IsActive,
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			response.BadRequest(c, "Invalid category ID format")
			return
		}
		input.CategoryID = &categoryID
	}

	if req.DiscountID != nil {
		discountID, err := uuid.Parse(*req.DiscountID)
		if err != nil {
			response.BadRequest(c, "Invalid discount ID format")
			return
		}
		input.DiscountID = &discountID
	}

	item, err := h.menuService.UpdateMenuItem(c.Request.Context(), itemID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated successfully", item)
}

// DeleteItem handles deleting a menu item
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID format")
		return
	}

	if err := h.menuService.DeleteMenuItem(c.Request.Context(), itemID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item deleted successfully", nil)
}

// AddVariant handles adding a variant to a menu item
func (h *MenuHandler) AddVariant(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID format")
		return
	}

	var req struct {
		Name      string  `json:"name" binding:"required"`
		Price     float64 `json:"price" binding:"gte=0"`
		SortOrder int     `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	variant, err := h.menuService.AddVariant(c.Request.Context(), itemID, service.VariantInput{
		Name:      req.Name,
		Price:     req.Price,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Variant added successfully", variant)
}

// UpdateVariant handles updating a variant
func (h *MenuHandler) UpdateVariant(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid variant ID format")
		return
	}

	var req struct {
		Name  *string  `json:"name"`
		Price *float64 `json:"price" binding:"omitempty,gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	variant, err := h.menuService.UpdateVariant(c.Request.Context(), variantID, req.Name, req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Variant updated successfully", variant)
}

// DeleteVariant handles removing a variant (the last variant cannot be removed)
func (h *MenuHandler) DeleteVariant(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid variant ID format")
		return
	}

	if err := h.menuService.DeleteVariant(c.Request.Context(), variantID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Variant deleted successfully", nil)
}

// AddModifier handles adding a modifier to a menu item
func (h *MenuHandler) AddModifier(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID format")
		return
	}

	var req struct {
		Name  string  `json:"name" binding:"required"`
		Price float64 `json:"price" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	modifier, err := h.menuService.AddModifier(c.Request.Context(), itemID, req.Name, req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Modifier added successfully", modifier)
}

// DeleteModifier handles removing a modifier
func (h *MenuHandler) DeleteModifier(c *gin.Context) {
	modifierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid modifier ID format")
		return
	}

	if err := h.menuService.DeleteModifier(c.Request.Context(), modifierID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Modifier deleted successfully", nil)
}

// AddCustomization handles adding an option group to a menu item
func (h *MenuHandler) AddCustomization(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID format")
		return
	}

	var req struct {
		Name       string `json:"name" binding:"required"`
		IsRequired bool   `json:"is_required"`
		Options    []struct {
			Name  string  `json:"name" binding:"required"`
			Price float64 `json:"price" binding:"gte=0"`
		} `json:"options" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	options := make([]service.CustomizationOptionInput, 0, len(req.Options))
	for _, o := range req.Options {
		options = append(options, service.CustomizationOptionInput{Name: o.Name, Price: o.Price})
	}

	customization, err := h.menuService.AddCustomization(c.Request.Context(), itemID, req.Name, req.IsRequired, options)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customization added successfully", customization)
}

// DeleteCustomization handles removing an option group
func (h *MenuHandler) DeleteCustomization(c *gin.Context) {
	customizationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customization ID format")
		return
	}

	if err := h.menuService.DeleteCustomization(c.Request.Context(), customizationID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customization deleted successfully", nil)
}

// AddCustomizationOption handles adding an option to an existing group
func (h *MenuHandler) AddCustomizationOption(c *gin.Context) {
	customizationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customization ID format")
		return
	}

	var req struct {
		Name  string  `json:"name" binding:"required"`
		Price float64 `json:"price" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	option, err := h.menuService.AddCustomizationOption(c.Request.Context(), customizationID, service.CustomizationOptionInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customization option added successfully", option)
}

// RemoveCustomizationOption handles removing an option from a group
func (h *MenuHandler) RemoveCustomizationOption(c *gin.Context) {
	optionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid option ID format")
		return
	}

	if err := h.menuService.RemoveCustomizationOption(c.Request.Context(), optionID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customization option removed successfully", nil)
}

// CreateSubMenuItem handles creating a standalone side item
func (h *MenuHandler) CreateSubMenuItem(c *gin.Context) {
	var req struct {
		BranchID string  `json:"branch_id" binding:"required,uuid"`
		Name     string  `json:"name" binding:"required"`
		Price    float64 `json:"price" binding:"gte=0"`
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

	item, err := h.menuService.CreateSubMenuItem(c.Request.Context(), branchID, req.Name, req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sub menu item created successfully", item)
}

// UpdateSubMenuItem handles updating a side item
func (h *MenuHandler) UpdateSubMenuItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sub menu item ID format")
		return
	}

	var req struct {
		Name     *string  `json:"name"`
		Price    *float64 `json:"price" binding:"omitempty,gte=0"`
		IsActive *bool    `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	item, err := h.menuService.UpdateSubMenuItem(c.Request.Context(), itemID, req.Name, req.Price, req.IsActive)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sub menu item updated successfully", item)
}

// DeleteSubMenuItem handles deleting a side item
func (h *MenuHandler) DeleteSubMenuItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sub menu item ID format")
		return
	}

	if err := h.menuService.DeleteSubMenuItem(c.Request.Context(), itemID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sub menu item deleted successfully", nil)
}

// ListSubMenuItems handles listing a branch's side items
func (h *MenuHandler) ListSubMenuItems(c *gin.Context) {
	branchID, err := uuid.Parse(c.Query("branch_id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID format")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.menuService.ListSubMenuItems(c.Request.Context(), branchID,
		&pagination.PaginationParams{Page: page, PerPage: perPage}, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sub menu items retrieved successfully", result)
}
