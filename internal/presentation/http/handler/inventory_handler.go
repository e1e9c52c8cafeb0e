package handler

import (
	"strconv"
	"time"

	"github.com/chc-hub/api/internal/application/service"
	"github.com/chc-hub/api/internal/domain/repository"
	"github.com/chc-hub/api/internal/presentation/http/dto/request"
	"github.com/chc-hub/api/internal/presentation/http/dto/response"
	"github.com/chc-hub/api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InventoryHandler handles inventory usage HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func toInventoryUsageInput(userID uuid.UUID, req *request.SaveInventoryUsageRequest) *service.InventoryUsageInput {
	return &service.InventoryUsageInput{
		UserID:       userID,
		LocationID:   parseUUIDPtr(req.LocationID),
		ItemName:     req.ItemName,
		QuantityUsed: req.QuantityUsed,
		Unit:         req.Unit,
		UsedOn:       req.UsedOn,
		Notes:        req.Notes,
	}
}

// Create handles recording inventory usage
// @Summary Record Inventory Usage
// @Description Record product usage for a treatment day
// @Tags inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SaveInventoryUsageRequest true "Usage data"
// @Success 201 {object} response.APIResponse
// @Router /inventory-usage [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SaveInventoryUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	usage, err := h.inventoryService.RecordUsage(c.Request.Context(), toInventoryUsageInput(*userID, &req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Inventory usage recorded successfully", gin.H{"usage": usage})
}

// List handles listing inventory usage entries
// @Summary List Inventory Usage
// @Description Get a paginated list of usage entries with filters
// @Tags inventory
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param search query string false "Search by item name"
// @Param location_id query string false "Location filter"
// @Param from query string false "Used on or after (RFC 3339 date)"
// @Param to query string false "Used on or before (RFC 3339 date)"
// @Success 200 {object} response.APIResponse
// @Router /inventory-usage [get]
func (h *InventoryHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.InventoryFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
	}
	if locStr := c.Query("location_id"); locStr != "" {
		locationID, err := uuid.Parse(locStr)
		if err != nil {
			response.BadRequest(c, "Invalid location filter")
			return
		}
		params.LocationID = &locationID
	}
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			response.BadRequest(c, "Invalid from date")
			return
		}
		params.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			response.BadRequest(c, "Invalid to date")
			return
		}
		params.To = &to
	}

	entries, total, err := h.inventoryService.ListUsage(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory usage retrieved successfully", gin.H{
		"items":      entries,
		"pagination": pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	})
}

// Get handles getting a single usage entry
// @Summary Get Inventory Usage
// @Description Get a usage entry by ID
// @Tags inventory
// @Security BearerAuth
// @Produce json
// @Param id path string true "Usage ID"
// @Success 200 {object} response.APIResponse
// @Router /inventory-usage/{id} [get]
func (h *InventoryHandler) Get(c *gin.Context) {
	usageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid usage ID")
		return
	}

	usage, err := h.inventoryService.GetUsage(c.Request.Context(), usageID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory usage retrieved successfully", gin.H{"usage": usage})
}

// Update handles updating a usage entry
// @Summary Update Inventory Usage
// @Description Update a usage entry
// @Tags inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Usage ID"
// @Param request body request.SaveInventoryUsageRequest true "Usage data"
// @Success 200 {object} response.APIResponse
// @Router /inventory-usage/{id} [put]
func (h *InventoryHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	usageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid usage ID")
		return
	}

	var req request.SaveInventoryUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	usage, err := h.inventoryService.UpdateUsage(c.Request.Context(), usageID, toInventoryUsageInput(*userID, &req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory usage updated successfully", gin.H{"usage": usage})
}

// Delete handles deleting a usage entry
// @Summary Delete Inventory Usage
// @Description Delete a usage entry
// @Tags inventory
// @Security BearerAuth
// @Param id path string true "Usage ID"
// @Success 200 {object} response.APIResponse
// @Router /inventory-usage/{id} [delete]
func (h *InventoryHandler) Delete(c *gin.Context) {
	usageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid usage ID")
		return
	}

	if err := h.inventoryService.DeleteUsage(c.Request.Context(), usageID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory usage deleted successfully", nil)
}
