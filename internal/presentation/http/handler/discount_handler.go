package handler

import (
	"strconv"

	"github.com/chc-hub/api/internal/application/service"
	"github.com/chc-hub/api/internal/domain/enum"
	"github.com/chc-hub/api/internal/presentation/http/dto/request"
	"github.com/chc-hub/api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DiscountHandler handles discount HTTP requests
type DiscountHandler struct {
	discountService *service.DiscountService
}

// NewDiscountHandler creates a new discount handler
func NewDiscountHandler(discountService *service.DiscountService) *DiscountHandler {
	return &DiscountHandler{discountService: discountService}
}

func parseDiscountType(s string) enum.DiscountType {
	switch s {
	case "fixed_amount":
		return enum.DiscountTypeFixedAmount
	case "bogo":
		return enum.DiscountTypeBOGO
	}
	return enum.DiscountTypePercentage
}

func toDiscountInput(req *request.SaveDiscountRequest) *service.DiscountInput {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return &service.DiscountInput{
		Name:          req.Name,
		Description:   req.Description,
		DiscountType:  parseDiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		Active:        active,
		ValidUntil:    req.ValidUntil,
	}
}

// Create handles creating a discount
// @Summary Create Discount
// @Description Create a new discount
// @Tags discounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SaveDiscountRequest true "Discount data"
// @Success 201 {object} response.APIResponse
// @Router /discounts [post]
func (h *DiscountHandler) Create(c *gin.Context) {
	var req request.SaveDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	discount, err := h.discountService.CreateDiscount(c.Request.Context(), toDiscountInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Discount created successfully", gin.H{"discount": discount})
}

// List handles listing discounts
// @Summary List Discounts
// @Description Get all discounts, optionally active and unexpired only
// @Tags discounts
// @Security BearerAuth
// @Produce json
// @Param active query bool false "Active discounts only"
// @Success 200 {object} response.APIResponse
// @Router /discounts [get]
func (h *DiscountHandler) List(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))

	discounts, err := h.discountService.ListDiscounts(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discounts retrieved successfully", gin.H{"discounts": discounts})
}

// Get handles getting a single discount
// @Summary Get Discount
// @Description Get a discount by ID
// @Tags discounts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Discount ID"
// @Success 200 {object} response.APIResponse
// @Router /discounts/{id} [get]
func (h *DiscountHandler) Get(c *gin.Context) {
	discountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid discount ID")
		return
	}

	discount, err := h.discountService.GetDiscount(c.Request.Context(), discountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount retrieved successfully", gin.H{"discount": discount})
}

// Update handles updating a discount
// @Summary Update Discount
// @Description Update a discount
// @Tags discounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Discount ID"
// @Param request body request.SaveDiscountRequest true "Discount data"
// @Success 200 {object} response.APIResponse
// @Router /discounts/{id} [put]
func (h *DiscountHandler) Update(c *gin.Context) {
	discountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid discount ID")
		return
	}

	var req request.SaveDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	discount, err := h.discountService.UpdateDiscount(c.Request.Context(), discountID, toDiscountInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount updated successfully", gin.H{"discount": discount})
}

// Delete handles deleting a discount
// @Summary Delete Discount
// @Description Delete a discount; existing quote snapshots are unaffected
// @Tags discounts
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 200 {object} response.APIResponse
// @Router /discounts/{id} [delete]
func (h *DiscountHandler) Delete(c *gin.Context) {
	discountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid discount ID")
		return
	}

	if err := h.discountService.DeleteDiscount(c.Request.Context(), discountID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount deleted successfully", nil)
}
