package handler

import (
	"strconv"

	"github.com/chc-hub/api/internal/application/service"
	"github.com/chc-hub/api/internal/domain/repository"
	"github.com/chc-hub/api/internal/presentation/http/dto/request"
	"github.com/chc-hub/api/internal/presentation/http/dto/response"
	"github.com/chc-hub/api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PricingItemHandler handles pricing catalog HTTP requests
type PricingItemHandler struct {
	pricingItemService *service.PricingItemService
}

// NewPricingItemHandler creates a new pricing item handler
func NewPricingItemHandler(pricingItemService *service.PricingItemService) *PricingItemHandler {
	return &PricingItemHandler{pricingItemService: pricingItemService}
}

func toPricingItemInput(req *request.SavePricingItemRequest) *service.PricingItemInput {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	tiers := make([]service.TierInput, 0, len(req.Tiers))
	for _, tier := range req.Tiers {
		tiers = append(tiers, service.TierInput{
			Name:     tier.Name,
			Price:    tier.Price,
			Sessions: tier.Sessions,
		})
	}

	return &service.PricingItemInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Taxable:     req.Taxable,
		ImageURL:    req.ImageURL,
		Active:      active,
		Tiers:       tiers,
	}
}

// Create handles creating a catalog item
// @Summary Create Pricing Item
// @Description Create a catalog item with its pricing tiers
// @Tags pricing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SavePricingItemRequest true "Pricing item data"
// @Success 201 {object} response.APIResponse
// @Router /pricing-items [post]
func (h *PricingItemHandler) Create(c *gin.Context) {
	var req request.SavePricingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.pricingItemService.CreatePricingItem(c.Request.Context(), toPricingItemInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Pricing item created successfully", gin.H{"pricing_item": item})
}

// List handles listing the catalog
// @Summary List Pricing Items
// @Description Get a paginated list of catalog items
// @Tags pricing
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param search query string false "Search query"
// @Param category query string false "Category filter"
// @Param active query bool false "Active items only"
// @Success 200 {object} response.APIResponse
// @Router /pricing-items [get]
func (h *PricingItemHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))

	params := &repository.PricingItemFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
		ActiveOnly: activeOnly,
	}
	if category := c.Query("category"); category != "" {
		params.Category = &category
	}

	output, err := h.pricingItemService.ListPricingItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pricing items retrieved successfully", gin.H{
		"items":      output.Items,
		"pagination": pagination.NewPagination(output.Page, output.PerPage, output.Total),
	})
}

// ListCategories handles listing distinct catalog categories
// @Summary List Categories
// @Description Get the distinct categories in use across the catalog
// @Tags pricing
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /pricing-items/categories [get]
func (h *PricingItemHandler) ListCategories(c *gin.Context) {
	categories, err := h.pricingItemService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", gin.H{"categories": categories})
}

// Get handles getting a single catalog item
// @Summary Get Pricing Item
// @Description Get a catalog item with its tiers
// @Tags pricing
// @Security BearerAuth
// @Produce json
// @Param id path string true "Pricing item ID"
// @Success 200 {object} response.APIResponse
// @Router /pricing-items/{id} [get]
func (h *PricingItemHandler) Get(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid pricing item ID")
		return
	}

	item, err := h.pricingItemService.GetPricingItem(c.Request.Context(), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pricing item retrieved successfully", gin.H{"pricing_item": item})
}

// Update handles updating a catalog item
// @Summary Update Pricing Item
// @Description Update a catalog item and replace its tiers
// @Tags pricing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Pricing item ID"
// @Param request body request.SavePricingItemRequest true "Pricing item data"
// @Success 200 {object} response.APIResponse
// @Router /pricing-items/{id} [put]
func (h *PricingItemHandler) Update(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid pricing item ID")
		return
	}

	var req request.SavePricingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.pricingItemService.UpdatePricingItem(c.Request.Context(), itemID, toPricingItemInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pricing item updated successfully", gin.H{"pricing_item": item})
}

// Delete handles deleting a catalog item
// @Summary Delete Pricing Item
// @Description Delete a catalog item and its tiers
// @Tags pricing
// @Security BearerAuth
// @Param id path string true "Pricing item ID"
// @Success 200 {object} response.APIResponse
// @Router /pricing-items/{id} [delete]
func (h *PricingItemHandler) Delete(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid pricing item ID")
		return
	}

	if err := h.pricingItemService.DeletePricingItem(c.Request.Context(), itemID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pricing item deleted successfully", nil)
}
