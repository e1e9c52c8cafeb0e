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

// ReferralHandler handles referral HTTP requests
type ReferralHandler struct {
	referralService *service.ReferralService
}

// NewReferralHandler creates a new referral handler
func NewReferralHandler(referralService *service.ReferralService) *ReferralHandler {
	return &ReferralHandler{referralService: referralService}
}

func parseReferralStatus(s string) (enum.ReferralStatus, bool) {
	switch s {
	case "pending":
		return enum.ReferralStatusPending, true
	case "contacted":
		return enum.ReferralStatusContacted, true
	case "converted":
		return enum.ReferralStatusConverted, true
	case "declined":
		return enum.ReferralStatusDeclined, true
	}
	return 0, false
}

func toReferralInput(userID uuid.UUID, req *request.SaveReferralRequest) *service.ReferralInput {
	return &service.ReferralInput{
		UserID:      userID,
		PatientName: req.PatientName,
		Email:       req.Email,
		Phone:       req.Phone,
		Source:      req.Source,
		Notes:       req.Notes,
	}
}

// Create handles recording a referral
// @Summary Create Referral
// @Description Record a new inbound patient referral
// @Tags referrals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SaveReferralRequest true "Referral data"
// @Success 201 {object} response.APIResponse
// @Router /referrals [post]
func (h *ReferralHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SaveReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	referral, err := h.referralService.CreateReferral(c.Request.Context(), toReferralInput(*userID, &req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Referral created successfully", gin.H{"referral": referral})
}

// List handles listing referrals
// @Summary List Referrals
// @Description Get a paginated list of referrals with filters
// @Tags referrals
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param search query string false "Search query"
// @Param status query string false "Status filter"
// @Param source query string false "Source filter"
// @Success 200 {object} response.APIResponse
// @Router /referrals [get]
func (h *ReferralHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ReferralFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status, ok := parseReferralStatus(statusStr)
		if !ok {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		params.Status = &status
	}
	if source := c.Query("source"); source != "" {
		params.Source = &source
	}

	referrals, total, err := h.referralService.ListReferrals(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Referrals retrieved successfully", gin.H{
		"items":      referrals,
		"pagination": pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	})
}

// Get handles getting a single referral
// @Summary Get Referral
// @Description Get a referral by ID
// @Tags referrals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Referral ID"
// @Success 200 {object} response.APIResponse
// @Router /referrals/{id} [get]
func (h *ReferralHandler) Get(c *gin.Context) {
	referralID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid referral ID")
		return
	}

	referral, err := h.referralService.GetReferral(c.Request.Context(), referralID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Referral retrieved successfully", gin.H{"referral": referral})
}

// Update handles updating a referral
// @Summary Update Referral
// @Description Update a referral's contact details
// @Tags referrals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Referral ID"
// @Param request body request.SaveReferralRequest true "Referral data"
// @Success 200 {object} response.APIResponse
// @Router /referrals/{id} [put]
func (h *ReferralHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	referralID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid referral ID")
		return
	}

	var req request.SaveReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	referral, err := h.referralService.UpdateReferral(c.Request.Context(), referralID, toReferralInput(*userID, &req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Referral updated successfully", gin.H{"referral": referral})
}

// UpdateStatus handles referral status changes
// @Summary Update Referral Status
// @Description Move a referral through its pipeline
// @Tags referrals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Referral ID"
// @Param request body request.UpdateReferralStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /referrals/{id}/status [put]
func (h *ReferralHandler) UpdateStatus(c *gin.Context) {
	referralID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid referral ID")
		return
	}

	var req request.UpdateReferralStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, ok := parseReferralStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Invalid referral status")
		return
	}

	referral, err := h.referralService.UpdateReferralStatus(c.Request.Context(), referralID, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Referral status updated successfully", gin.H{"referral": referral})
}

// Delete handles deleting a referral
// @Summary Delete Referral
// @Description Delete a referral
// @Tags referrals
// @Security BearerAuth
// @Param id path string true "Referral ID"
// @Success 200 {object} response.APIResponse
// @Router /referrals/{id} [delete]
func (h *ReferralHandler) Delete(c *gin.Context) {
	referralID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid referral ID")
		return
	}

	if err := h.referralService.DeleteReferral(c.Request.Context(), referralID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Referral deleted successfully", nil)
}
