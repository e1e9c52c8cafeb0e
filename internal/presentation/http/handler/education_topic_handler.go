package handler

import (
	"github.com/chc-hub/api/internal/application/service"
	"github.com/chc-hub/api/internal/presentation/http/dto/request"
	"github.com/chc-hub/api/internal/presentation/http/dto/response"
	"github.com/chc-hub/api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EducationTopicHandler handles education topic HTTP requests
type EducationTopicHandler struct {
	educationTopicService *service.EducationTopicService
}

// NewEducationTopicHandler creates a new education topic handler
func NewEducationTopicHandler(educationTopicService *service.EducationTopicService) *EducationTopicHandler {
	return &EducationTopicHandler{educationTopicService: educationTopicService}
}

func toEducationTopicInput(userID uuid.UUID, req *request.SaveEducationTopicRequest) *service.EducationTopicInput {
	return &service.EducationTopicInput{
		UserID:    userID,
		Title:     req.Title,
		Category:  req.Category,
		Summary:   req.Summary,
		Body:      req.Body,
		ImageURL:  req.ImageURL,
		Tags:      req.Tags,
		Published: req.Published,
	}
}

// Create handles creating an education topic
// @Summary Create Education Topic
// @Description Create a new patient education topic
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SaveEducationTopicRequest true "Education topic data"
// @Success 201 {object} response.APIResponse
// @Router /education-topics [post]
func (h *EducationTopicHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SaveEducationTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	topic, err := h.educationTopicService.CreateTopic(c.Request.Context(), toEducationTopicInput(*userID, &req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Education topic created successfully", gin.H{"topic": topic})
}

// List handles listing education topics
// @Summary List Education Topics
// @Description Get a paginated list of education topics
// @Tags content
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param search query string false "Search query"
// @Param category query string false "Category filter"
// @Param published query bool false "Published only"
// @Success 200 {object} response.APIResponse
// @Router /education-topics [get]
func (h *EducationTopicHandler) List(c *gin.Context) {
	params := parseContentFilters(c)

	topics, total, err := h.educationTopicService.ListTopics(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Education topics retrieved successfully", gin.H{
		"items":      topics,
		"pagination": pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	})
}

// Get handles getting a single education topic
// @Summary Get Education Topic
// @Description Get an education topic by ID
// @Tags content
// @Security BearerAuth
// @Produce json
// @Param id path string true "Topic ID"
// @Success 200 {object} response.APIResponse
// @Router /education-topics/{id} [get]
func (h *EducationTopicHandler) Get(c *gin.Context) {
	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid topic ID")
		return
	}

	topic, err := h.educationTopicService.GetTopic(c.Request.Context(), topicID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Education topic retrieved successfully", gin.H{"topic": topic})
}

// Update handles updating an education topic
// @Summary Update Education Topic
// @Description Update a patient education topic
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Topic ID"
// @Param request body request.SaveEducationTopicRequest true "Education topic data"
// @Success 200 {object} response.APIResponse
// @Router /education-topics/{id} [put]
func (h *EducationTopicHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid topic ID")
		return
	}

	var req request.SaveEducationTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	topic, err := h.educationTopicService.UpdateTopic(c.Request.Context(), topicID, toEducationTopicInput(*userID, &req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Education topic updated successfully", gin.H{"topic": topic})
}

// Delete handles deleting an education topic
// @Summary Delete Education Topic
// @Description Delete an education topic
// @Tags content
// @Security BearerAuth
// @Param id path string true "Topic ID"
// @Success 200 {object} response.APIResponse
// @Router /education-topics/{id} [delete]
func (h *EducationTopicHandler) Delete(c *gin.Context) {
	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid topic ID")
		return
	}

	if err := h.educationTopicService.DeleteTopic(c.Request.Context(), topicID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Education topic deleted successfully", nil)
}
