package handler

import (
	"github.com/chc-hub/api/internal/application/service"
	"github.com/chc-hub/api/internal/presentation/http/dto/request"
	"github.com/chc-hub/api/internal/presentation/http/dto/response"
	"github.com/chc-hub/api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ConsentFormHandler handles consent form HTTP requests
type ConsentFormHandler struct {
	consentFormService *service.ConsentFormService
}

// NewConsentFormHandler creates a new consent form handler
func NewConsentFormHandler(consentFormService *service.ConsentFormService) *ConsentFormHandler {
	return &ConsentFormHandler{consentFormService: consentFormService}
}

func toConsentFormInput(userID uuid.UUID, req *request.SaveConsentFormRequest) *service.ConsentFormInput {
	requiresSignature := true
	if req.RequiresSignature != nil {
		requiresSignature = *req.RequiresSignature
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return &service.ConsentFormInput{
		UserID:            userID,
		Title:             req.Title,
		Body:              req.Body,
		RequiresSignature: requiresSignature,
		Active:            active,
	}
}

// Create handles creating a consent form
// @Summary Create Consent Form
// @Description Create a new consent form at version 1
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SaveConsentFormRequest true "Consent form data"
// @Success 201 {object} response.APIResponse
// @Router /consent-forms [post]
func (h *ConsentFormHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SaveConsentFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	form, err := h.consentFormService.CreateForm(c.Request.Context(), toConsentFormInput(*userID, &req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Consent form created successfully", gin.H{"consent_form": form})
}

// List handles listing consent forms
// @Summary List Consent Forms
// @Description Get a paginated list of consent forms
// @Tags content
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param search query string false "Search query"
// @Param published query bool false "Active only"
// @Success 200 {object} response.APIResponse
// @Router /consent-forms [get]
func (h *ConsentFormHandler) List(c *gin.Context) {
	params := parseContentFilters(c)

	forms, total, err := h.consentFormService.ListForms(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Consent forms retrieved successfully", gin.H{
		"items":      forms,
		"pagination": pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	})
}

// Get handles getting a single consent form
// @Summary Get Consent Form
// @Description Get a consent form by ID
// @Tags content
// @Security BearerAuth
// @Produce json
// @Param id path string true "Consent form ID"
// @Success 200 {object} response.APIResponse
// @Router /consent-forms/{id} [get]
func (h *ConsentFormHandler) Get(c *gin.Context) {
	formID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid consent form ID")
		return
	}

	form, err := h.consentFormService.GetForm(c.Request.Context(), formID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Consent form retrieved successfully", gin.H{"consent_form": form})
}

// Update handles updating a consent form
// @Summary Update Consent Form
// @Description Update a consent form; body changes bump the version
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Consent form ID"
// @Param request body request.SaveConsentFormRequest true "Consent form data"
// @Success 200 {object} response.APIResponse
// @Router /consent-forms/{id} [put]
func (h *ConsentFormHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	formID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid consent form ID")
		return
	}

	var req request.SaveConsentFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	form, err := h.consentFormService.UpdateForm(c.Request.Context(), formID, toConsentFormInput(*userID, &req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Consent form updated successfully", gin.H{"consent_form": form})
}

// Delete handles deleting a consent form
// @Summary Delete Consent Form
// @Description Delete a consent form
// @Tags content
// @Security BearerAuth
// @Param id path string true "Consent form ID"
// @Success 200 {object} response.APIResponse
// @Router /consent-forms/{id} [delete]
func (h *ConsentFormHandler) Delete(c *gin.Context) {
	formID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid consent form ID")
		return
	}

	if err := h.consentFormService.DeleteForm(c.Request.Context(), formID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Consent form deleted successfully", nil)
}
