package handler

import (
	"io"
	"strconv"

	"github.com/chc-hub/api/internal/application/service"
	"github.com/chc-hub/api/internal/presentation/http/dto/response"
	"github.com/chc-hub/api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles document upload HTTP requests
type DocumentHandler struct {
	documentService *service.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Upload handles uploading a document
// @Summary Upload Document
// @Description Upload an image or PDF to object storage
// @Tags documents
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} response.APIResponse
// @Router /documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "A file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Unable to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, "Unable to read uploaded file")
		return
	}

	document, err := h.documentService.Upload(c.Request.Context(), &service.UploadInput{
		UserID:      *userID,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Document uploaded successfully", gin.H{"document": document})
}

// List handles listing the user's documents
// @Summary List Documents
// @Description Get a paginated list of the user's uploads
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Success 200 {object} response.APIResponse
// @Router /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}

	documents, total, err := h.documentService.ListDocuments(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Documents retrieved successfully", gin.H{
		"items":      documents,
		"pagination": pagination.NewPagination(params.Page, params.PerPage, total),
	})
}

// Download handles generating a download link for a document
// @Summary Download Document
// @Description Get a time-limited download URL for a document
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.APIResponse
// @Router /documents/{id}/download [get]
func (h *DocumentHandler) Download(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	url, err := h.documentService.GetDownloadURL(c.Request.Context(), *userID, documentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Download URL generated successfully", gin.H{"url": url})
}

// Delete handles deleting a document
// @Summary Delete Document
// @Description Delete a document and its stored object
// @Tags documents
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {object} response.APIResponse
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), *userID, documentID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document deleted successfully", nil)
}
