package handler

import (
	"strconv"

	"github.com/chc-hub/api/internal/application/service"
	"github.com/chc-hub/api/internal/domain/enum"
	"github.com/chc-hub/api/internal/domain/repository"
	"github.com/chc-hub/api/internal/presentation/http/dto/request"
	"github.com/chc-hub/api/internal/presentation/http/dto/response"
	"github.com/chc-hub/api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QuoteHandler handles quote HTTP requests
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// parseUUIDPtr converts an optional UUID string from a request body
func parseUUIDPtr(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

func parseQuoteStatus(s string) (enum.QuoteStatus, bool) {
	switch s {
	case "draft":
		return enum.QuoteStatusDraft, true
	case "sent":
		return enum.QuoteStatusSent, true
	case "accepted":
		return enum.QuoteStatusAccepted, true
	case "expired":
		return enum.QuoteStatusExpired, true
	}
	return 0, false
}

func toLineItemInputs(items []request.QuoteLineItemRequest) []service.LineItemInput {
	inputs := make([]service.LineItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, service.LineItemInput{
			Name:      item.Name,
			TierName:  item.TierName,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Taxable:   item.Taxable,
			Sessions:  item.Sessions,
		})
	}
	return inputs
}

// Create handles creating a quote
// @Summary Create Quote
// @Description Create a new quote; totals are computed server-side
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SaveQuoteRequest true "Quote data"
// @Success 201 {object} response.APIResponse
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SaveQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	showTotals := true
	if req.ShowTotals != nil {
		showTotals = *req.ShowTotals
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), &service.CreateQuoteInput{
		UserID:       *userID,
		PatientName:  req.PatientName,
		PatientEmail: req.PatientEmail,
		LocationID:   parseUUIDPtr(req.LocationID),
		DiscountID:   parseUUIDPtr(req.DiscountID),
		ShowTotals:   showTotals,
		Notes:        req.Notes,
		ValidUntil:   req.ValidUntil,
		LineItems:    toLineItemInputs(req.LineItems),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quote created successfully", gin.H{"quote": quote})
}

// List handles listing quotes with filters
// @Summary List Quotes
// @Description Get a paginated list of the user's quotes
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param search query string false "Search query"
// @Param status query string false "Status filter"
// @Param location_id query string false "Location filter"
// @Success 200 {object} response.APIResponse
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.QuoteFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status, ok := parseQuoteStatus(statusStr)
		if !ok {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		params.Status = &status
	}
	if locStr := c.Query("location_id"); locStr != "" {
		locationID, err := uuid.Parse(locStr)
		if err != nil {
			response.BadRequest(c, "Invalid location filter")
			return
		}
		params.LocationID = &locationID
	}

	output, err := h.quoteService.ListQuotes(c.Request.Context(), &service.ListQuotesInput{
		UserID: *userID,
		Params: params,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotes retrieved successfully", gin.H{
		"items":      output.Quotes,
		"pagination": pagination.NewPagination(output.Page, output.PerPage, output.Total),
	})
}

// Get handles getting a single quote
// @Summary Get Quote
// @Description Get a quote with its line items
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	quote, err := h.quoteService.GetQuote(c.Request.Context(), *userID, quoteID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote retrieved successfully", gin.H{"quote": quote})
}

// GetByReference handles the patient-facing quote view
// @Summary Get Quote by Reference
// @Description Get a quote by its public reference
// @Tags quotes
// @Produce json
// @Param reference path string true "Quote reference"
// @Success 200 {object} response.APIResponse
// @Router /public/quotes/{reference} [get]
func (h *QuoteHandler) GetByReference(c *gin.Context) {
	quote, err := h.quoteService.GetQuoteByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote retrieved successfully", gin.H{"quote": quote})
}

// Update handles updating a quote
// @Summary Update Quote
// @Description Replace a quote's content; totals are recomputed server-side
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body request.SaveQuoteRequest true "Quote data"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id} [put]
func (h *QuoteHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req request.SaveQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	showTotals := true
	if req.ShowTotals != nil {
		showTotals = *req.ShowTotals
	}

	quote, err := h.quoteService.UpdateQuote(c.Request.Context(), &service.UpdateQuoteInput{
		QuoteID:      quoteID,
		UserID:       *userID,
		PatientName:  req.PatientName,
		PatientEmail: req.PatientEmail,
		LocationID:   parseUUIDPtr(req.LocationID),
		DiscountID:   parseUUIDPtr(req.DiscountID),
		ShowTotals:   showTotals,
		Notes:        req.Notes,
		ValidUntil:   req.ValidUntil,
		LineItems:    toLineItemInputs(req.LineItems),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote updated successfully", gin.H{"quote": quote})
}

// Delete handles deleting a quote
// @Summary Delete Quote
// @Description Soft delete a quote and its line items
// @Tags quotes
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	if err := h.quoteService.DeleteQuote(c.Request.Context(), *userID, quoteID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote deleted successfully", nil)
}

// UpdateStatus handles quote status changes
// @Summary Update Quote Status
// @Description Set the quote's lifecycle status
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body request.UpdateQuoteStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id}/status [put]
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req request.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, ok := parseQuoteStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Invalid quote status")
		return
	}

	quote, err := h.quoteService.UpdateQuoteStatus(c.Request.Context(), *userID, quoteID, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote status updated successfully", gin.H{"quote": quote})
}

// Duplicate handles copying a quote into a new draft
// @Summary Duplicate Quote
// @Description Create a repriced draft copy of an existing quote
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 201 {object} response.APIResponse
// @Router /quotes/{id}/duplicate [post]
func (h *QuoteHandler) Duplicate(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	quote, err := h.quoteService.DuplicateQuote(c.Request.Context(), *userID, quoteID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quote duplicated successfully", gin.H{"quote": quote})
}

// Send handles emailing a quote to the patient
// @Summary Send Quote
// @Description Email the quote to the patient and mark it sent
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id}/send [post]
func (h *QuoteHandler) Send(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	quote, err := h.quoteService.SendQuote(c.Request.Context(), *userID, quoteID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote sent successfully", gin.H{"quote": quote})
}
