package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/application/service"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/internal/presentation/http/dto/response"
	"github.com/platemate/platemate-api/pkg/pagination"
)

// BranchHandler handles branch-related HTTP requests
type BranchHandler struct {
	branchService *service.BranchService
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(branchService *service.BranchService) *BranchHandler {
	return &BranchHandler{branchService: branchService}
}

// Create handles creating a new branch
func (h *BranchHandler) Create(c *gin.Context) {
	var req struct {
		Name     string  `json:"name" binding:"required"`
		Currency string  `json:"currency" binding:"required,len=3"`
		Address  *string `json:"address"`
		Phone    *string `json:"phone"`
		Email    *string `json:"email" binding:"omitempty,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	branch, err := h.branchService.CreateBranch(c.Request.Context(), &service.CreateBranchInput{
		Name:     req.Name,
		Currency: req.Currency,
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Branch created successfully", branch)
}

// Get handles getting a single branch
func (h *BranchHandler) Get(c *gin.Context) {
	branchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID format")
		return
	}

	branch, err := h.branchService.GetBranch(c.Request.Context(), branchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Branch retrieved successfully", branch)
}

// List handles listing branches
func (h *BranchHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{Page: page, PerPage: perPage}

	result, err := h.branchService.ListBranches(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Branches retrieved successfully", result)
}

// Update handles updating a branch
func (h *BranchHandler) Update(c *gin.Context) {
	branchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID format")
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Currency *string `json:"currency" binding:"omitempty,len=3"`
		Address  *string `json:"address"`
		Phone    *string `json:"phone"`
		Email    *string `json:"email" binding:"omitempty,email"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	branch, err := h.branchService.UpdateBranch(c.Request.Context(), branchID, &service.UpdateBranchInput{
		Name:     req.Name,
		Currency: req.Currency,
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Branch updated successfully", branch)
}

// UpdateConfiguration handles replacing a branch's pricing configuration
func (h *BranchHandler) UpdateConfiguration(c *gin.Context) {
	branchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID format")
		return
	}

	var cfg entity.BranchConfiguration
	if err := c.ShouldBindJSON(&cfg); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	branch, err := h.branchService.UpdateConfiguration(c.Request.Context(), branchID, cfg)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Branch configuration updated successfully", branch)
}

// Delete handles deleting a branch
func (h *BranchHandler) Delete(c *gin.Context) {
	branchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID format")
		return
	}

	if err := h.branchService.DeleteBranch(c.Request.Context(), branchID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Branch deleted successfully", nil)
}
