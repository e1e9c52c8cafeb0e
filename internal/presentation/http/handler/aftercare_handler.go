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

// AftercareHandler handles aftercare instruction HTTP requests
type AftercareHandler struct {
	aftercareService *service.AftercareService
}

// NewAftercareHandler creates a new aftercare handler
func NewAftercareHandler(aftercareService *service.AftercareService) *AftercareHandler {
	return &AftercareHandler{aftercareService: aftercareService}
}

// parseContentFilters builds content list filters from query parameters
func parseContentFilters(c *gin.Context) *repository.ContentFilterParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	publishedOnly, _ := strconv.ParseBool(c.DefaultQuery("published", "false"))

	params := &repository.ContentFilterParams{
		Pagination:    &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:        c.Query("search"),
		PublishedOnly: publishedOnly,
	}
	if category := c.Query("category"); category != "" {
		params.Category = &category
	}
	return params
}

// Create handles creating an aftercare instruction
// @Summary Create Aftercare Instruction
// @Description Create a new aftercare instruction
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SaveAftercareRequest true "Aftercare data"
// @Success 201 {object} response.APIResponse
// @Router /aftercare [post]
func (h *AftercareHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SaveAftercareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	instruction, err := h.aftercareService.CreateInstruction(c.Request.Context(), &service.AftercareInput{
		UserID:      *userID,
		Title:       req.Title,
		Category:    req.Category,
		Body:        req.Body,
		Attachments: req.Attachments,
		Published:   req.Published,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Aftercare instruction created successfully", gin.H{"instruction": instruction})
}

// List handles listing aftercare instructions
// @Summary List Aftercare Instructions
// @Description Get a paginated list of aftercare instructions
// @Tags content
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param search query string false "Search query"
// @Param category query string false "Category filter"
// @Param published query bool false "Published only"
// @Success 200 {object} response.APIResponse
// @Router /aftercare [get]
func (h *AftercareHandler) List(c *gin.Context) {
	params := parseContentFilters(c)

	instructions, total, err := h.aftercareService.ListInstructions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Aftercare instructions retrieved successfully", gin.H{
		"items":      instructions,
		"pagination": pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	})
}

// Get handles getting a single aftercare instruction
// @Summary Get Aftercare Instruction
// @Description Get an aftercare instruction by ID
// @Tags content
// @Security BearerAuth
// @Produce json
// @Param id path string true "Instruction ID"
// @Success 200 {object} response.APIResponse
// @Router /aftercare/{id} [get]
func (h *AftercareHandler) Get(c *gin.Context) {
	instructionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid instruction ID")
		return
	}

	instruction, err := h.aftercareService.GetInstruction(c.Request.Context(), instructionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Aftercare instruction retrieved successfully", gin.H{"instruction": instruction})
}

// Update handles updating an aftercare instruction
// @Summary Update Aftercare Instruction
// @Description Update an aftercare instruction
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Instruction ID"
// @Param request body request.SaveAftercareRequest true "Aftercare data"
// @Success 200 {object} response.APIResponse
// @Router /aftercare/{id} [put]
func (h *AftercareHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	instructionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid instruction ID")
		return
	}

	var req request.SaveAftercareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	instruction, err := h.aftercareService.UpdateInstruction(c.Request.Context(), instructionID, &service.AftercareInput{
		UserID:      *userID,
		Title:       req.Title,
		Category:    req.Category,
		Body:        req.Body,
		Attachments: req.Attachments,
		Published:   req.Published,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Aftercare instruction updated successfully", gin.H{"instruction": instruction})
}

// Delete handles deleting an aftercare instruction
// @Summary Delete Aftercare Instruction
// @Description Delete an aftercare instruction
// @Tags content
// @Security BearerAuth
// @Param id path string true "Instruction ID"
// @Success 200 {object} response.APIResponse
// @Router /aftercare/{id} [delete]
func (h *AftercareHandler) Delete(c *gin.Context) {
	instructionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid instruction ID")
		return
	}

	if err := h.aftercareService.DeleteInstruction(c.Request.Context(), instructionID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Aftercare instruction deleted successfully", nil)
}
