package handler

import (
	"strconv"

	"github.com/chc-hub/api/internal/application/service"
	"github.com/chc-hub/api/internal/presentation/http/dto/request"
	"github.com/chc-hub/api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LocationHandler handles clinic location HTTP requests
type LocationHandler struct {
	locationService *service.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService *service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

func toLocationInput(req *request.SaveLocationRequest) *service.LocationInput {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return &service.LocationInput{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Zip:     req.Zip,
		Phone:   req.Phone,
		TaxRate: req.TaxRate,
		Active:  active,
	}
}

// Create handles creating a clinic location
// @Summary Create Location
// @Description Create a new clinic location with its tax rate
// @Tags locations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SaveLocationRequest true "Location data"
// @Success 201 {object} response.APIResponse
// @Router /locations [post]
func (h *LocationHandler) Create(c *gin.Context) {
	var req request.SaveLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	location, err := h.locationService.CreateLocation(c.Request.Context(), toLocationInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Location created successfully", gin.H{"location": location})
}

// List handles listing clinic locations
// @Summary List Locations
// @Description Get all clinic locations, optionally active only
// @Tags locations
// @Security BearerAuth
// @Produce json
// @Param active query bool false "Active locations only"
// @Success 200 {object} response.APIResponse
// @Router /locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))

	locations, err := h.locationService.ListLocations(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Locations retrieved successfully", gin.H{"locations": locations})
}

// Get handles getting a single clinic location
// @Summary Get Location
// @Description Get a clinic location by ID
// @Tags locations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} response.APIResponse
// @Router /locations/{id} [get]
func (h *LocationHandler) Get(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}

	location, err := h.locationService.GetLocation(c.Request.Context(), locationID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Location retrieved successfully", gin.H{"location": location})
}

// Update handles updating a clinic location
// @Summary Update Location
// @Description Update a clinic location; the new tax rate applies to future pricing only
// @Tags locations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param request body request.SaveLocationRequest true "Location data"
// @Success 200 {object} response.APIResponse
// @Router /locations/{id} [put]
func (h *LocationHandler) Update(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}

	var req request.SaveLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	location, err := h.locationService.UpdateLocation(c.Request.Context(), locationID, toLocationInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Location updated successfully", gin.H{"location": location})
}

// Delete handles deleting a clinic location
// @Summary Delete Location
// @Description Delete a clinic location
// @Tags locations
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} response.APIResponse
// @Router /locations/{id} [delete]
func (h *LocationHandler) Delete(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}

	if err := h.locationService.DeleteLocation(c.Request.Context(), locationID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Location deleted successfully", nil)
}
