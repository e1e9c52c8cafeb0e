package handler

import (
	"github.com/chc-hub/api/internal/application/service"
	"github.com/chc-hub/api/internal/presentation/http/dto/request"
	"github.com/chc-hub/api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ContentDraftHandler handles AI content drafting HTTP requests
type ContentDraftHandler struct {
	contentDraftService *service.ContentDraftService
}

// NewContentDraftHandler creates a new content draft handler
func NewContentDraftHandler(contentDraftService *service.ContentDraftService) *ContentDraftHandler {
	return &ContentDraftHandler{contentDraftService: contentDraftService}
}

// Draft handles generating a content draft
// @Summary Draft Content
// @Description Generate an HTML draft for aftercare, education or consent content
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.DraftContentRequest true "Draft request"
// @Success 200 {object} response.APIResponse
// @Router /content/draft [post]
func (h *ContentDraftHandler) Draft(c *gin.Context) {
	var req request.DraftContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.contentDraftService.Draft(c.Request.Context(), &service.DraftInput{
		Kind:      req.Kind,
		Treatment: req.Treatment,
		Notes:     req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Draft generated successfully", gin.H{"draft": draft})
}
