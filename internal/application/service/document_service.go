package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/internal/domain/repository"
	"github.com/chc-hub/api/internal/infrastructure/storage"
	"github.com/chc-hub/api/pkg/apperror"
	"github.com/chc-hub/api/pkg/pagination"
	"github.com/google/uuid"
)

var allowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// DocumentService handles uploaded files: images for content, PDF handouts
type DocumentService struct {
	documentRepo  repository.DocumentRepository
	objectStorage storage.ObjectStorage
	maxSizeBytes  int64
}

// NewDocumentService creates a new document service
func NewDocumentService(
	documentRepo repository.DocumentRepository,
	objectStorage storage.ObjectStorage,
	maxSizeBytes int64,
) *DocumentService {
	return &DocumentService{
		documentRepo:  documentRepo,
		objectStorage: objectStorage,
		maxSizeBytes:  maxSizeBytes,
	}
}

// UploadInput represents the upload input
type UploadInput struct {
	UserID      uuid.UUID
	FileName    string
	ContentType string
	Data        []byte
}

// Upload stores the file in object storage and records its metadata
func (s *DocumentService) Upload(ctx context.Context, input *UploadInput) (*entity.Document, error) {
	if len(input.Data) == 0 {
		return nil, apperror.NewBadRequestError("File is empty")
	}
	if s.maxSizeBytes > 0 && int64(len(input.Data)) > s.maxSizeBytes {
		return nil, apperror.NewBadRequestError("File exceeds the maximum upload size")
	}
	if !allowedUploadTypes[input.ContentType] {
		return nil, apperror.NewBadRequestError("Unsupported file type")
	}

	// Object keys are random so uploads can never collide or be guessed
	ext := strings.ToLower(filepath.Ext(input.FileName))
	key := "uploads/" + uuid.New().String() + ext

	url, err := s.objectStorage.Upload(ctx, key, input.Data, input.ContentType)
	if err != nil {
		return nil, err
	}

	document := &entity.Document{
		UserID:      input.UserID,
		FileName:    input.FileName,
		ContentType: input.ContentType,
		SizeBytes:   int64(len(input.Data)),
		StorageKey:  key,
		URL:         url,
	}

	if err := s.documentRepo.Create(ctx, document); err != nil {
		return nil, err
	}
	return document, nil
}

// ListDocuments returns the user's uploads with pagination
func (s *DocumentService) ListDocuments(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Document, int64, error) {
	return s.documentRepo.List(ctx, userID, params)
}

// DeleteDocument removes the stored object and its metadata
func (s *DocumentService) DeleteDocument(ctx context.Context, userID, documentID uuid.UUID) error {
	document, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if document == nil || document.UserID != userID {
		return apperror.NewNotFoundError("Document")
	}

	// Losing track of the object is worse than losing the row, so the
	// object goes first
	if document.StorageKey != "" {
		if err := s.objectStorage.Delete(ctx, document.StorageKey); err != nil {
			return err
		}
	}

	return s.documentRepo.Delete(ctx, documentID)
}

// GetDownloadURL returns a time-limited download link for the user's document
func (s *DocumentService) GetDownloadURL(ctx context.Context, userID, documentID uuid.UUID) (string, error) {
	document, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return "", err
	}
	if document == nil || document.UserID != userID {
		return "", apperror.NewNotFoundError("Document")
	}

	return s.objectStorage.PresignDownload(ctx, document.StorageKey, 15*time.Minute)
}
