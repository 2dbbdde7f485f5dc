package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/application/service"
	"github.com/platemate/platemate-api/internal/presentation/http/dto/response"
	"github.com/platemate/platemate-api/pkg/pagination"
)

// RecipeHandler handles recipe HTTP requests
type RecipeHandler struct {
	recipeService *service.RecipeService
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

type recipeLineRequest struct {
	InventoryItemID string  `json:"inventory_item_id" binding:"required,uuid"`
	Quantity        float64 `json:"quantity" binding:"required,gt=0"`
	Unit            string  `json:"unit" binding:"required"`
}

func parseRecipeLines(lines []recipeLineRequest) ([]service.RecipeLineInput, error) {
	inputs := make([]service.RecipeLineInput, 0, len(lines))
	for _, line := range lines {
		inventoryItemID, err := uuid.Parse(line.InventoryItemID)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, service.RecipeLineInput{
			InventoryItemID: inventoryItemID,
			Quantity:        line.Quantity,
			Unit:            line.Unit,
		})
	}
	return inputs, nil
}

// SetVariantRecipe handles replacing the recipe of a menu item variant
func (h *RecipeHandler) SetVariantRecipe(c *gin.Context) {
	menuItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID format")
		return
	}

	variantID, err := uuid.Parse(c.Param("variantId"))
	if err != nil {
		response.BadRequest(c, "Invalid variant ID format")
		return
	}

	var req struct {
		Lines []recipeLineRequest `json:"lines" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	lines, err := parseRecipeLines(req.Lines)
	if err != nil {
		response.BadRequest(c, "Invalid inventory item ID format")
		return
	}

	recipe, err := h.recipeService.SetVariantRecipe(c.Request.Context(), menuItemID, variantID, lines)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recipe updated successfully", recipe)
}

// GetVariantRecipe handles getting the recipe of a menu item variant
func (h *RecipeHandler) GetVariantRecipe(c *gin.Context) {
	menuItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID format")
		return
	}

	variantID, err := uuid.Parse(c.Param("variantId"))
	if err != nil {
		response.BadRequest(c, "Invalid variant ID format")
		return
	}

	recipe, err := h.recipeService.GetVariantRecipe(c.Request.Context(), menuItemID, variantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recipe retrieved successfully", recipe)
}

// SetSubMenuItemRecipe handles replacing the recipe of a side item
func (h *RecipeHandler) SetSubMenuItemRecipe(c *gin.Context) {
	subMenuItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sub menu item ID format")
		return
	}

	var req struct {
		Lines []recipeLineRequest `json:"lines" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	lines, err := parseRecipeLines(req.Lines)
	if err != nil {
		response.BadRequest(c, "Invalid inventory item ID format")
		return
	}

	recipe, err := h.recipeService.SetSubMenuItemRecipe(c.Request.Context(), subMenuItemID, lines)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recipe updated successfully", recipe)
}

// GetSubMenuItemRecipe handles getting the recipe of a side item
func (h *RecipeHandler) GetSubMenuItemRecipe(c *gin.Context) {
	subMenuItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sub menu item ID format")
		return
	}

	recipe, err := h.recipeService.GetSubMenuItemRecipe(c.Request.Context(), subMenuItemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recipe retrieved successfully", recipe)
}

// List handles listing all recipe lines
func (h *RecipeHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.recipeService.ListRecipes(c.Request.Context(),
		&pagination.PaginationParams{Page: page, PerPage: perPage})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Recipes retrieved successfully", result)
}

// DeleteLine handles removing a single recipe line
func (h *RecipeHandler) DeleteLine(c *gin.Context) {
	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid recipe line ID format")
		return
	}

	if err := h.recipeService.DeleteRecipeItem(c.Request.Context(), lineID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recipe line deleted successfully", nil)
}

// PerOrderQuantity handles computing the ingredient share for a batch
func (h *RecipeHandler) PerOrderQuantity(c *gin.Context) {
	numberOfOrders, err := strconv.ParseFloat(c.Query("number_of_orders"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid number_of_orders")
		return
	}

	quantity, err := h.recipeService.PerOrderQuantity(numberOfOrders)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Per order quantity computed successfully", gin.H{
		"number_of_orders": numberOfOrders,
		"quantity":         quantity,
	})
}
