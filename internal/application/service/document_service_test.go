package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/pkg/apperror"
	"github.com/chc-hub/api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocumentRepo struct {
	documents map[uuid.UUID]*entity.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{documents: make(map[uuid.UUID]*entity.Document)}
}

func (r *fakeDocumentRepo) Create(_ context.Context, document *entity.Document) error {
	if document.ID == uuid.Nil {
		document.ID = uuid.New()
	}
	copied := *document
	r.documents[document.ID] = &copied
	return nil
}

func (r *fakeDocumentRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	document, ok := r.documents[id]
	if !ok {
		return nil, nil
	}
	copied := *document
	return &copied, nil
}

func (r *fakeDocumentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.documents, id)
	return nil
}

func (r *fakeDocumentRepo) List(_ context.Context, userID uuid.UUID, _ *pagination.PaginationParams) ([]entity.Document, int64, error) {
	var result []entity.Document
	for _, document := range r.documents {
		if document.UserID == userID {
			result = append(result, *document)
		}
	}
	return result, int64(len(result)), nil
}

type fakeObjectStorage struct {
	uploaded map[string][]byte
	deleted  []string
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{uploaded: make(map[string][]byte)}
}

func (s *fakeObjectStorage) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	s.uploaded[key] = data
	return "https://cdn.test/" + key, nil
}

func (s *fakeObjectStorage) Delete(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	delete(s.uploaded, key)
	return nil
}

func (s *fakeObjectStorage) PresignDownload(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://cdn.test/signed/" + key, nil
}

func TestUploadStoresObjectKey(t *testing.T) {
	repo := newFakeDocumentRepo()
	objects := newFakeObjectStorage()
	svc := NewDocumentService(repo, objects, 1<<20)

	document, err := svc.Upload(context.Background(), &UploadInput{
		UserID:      uuid.New(),
		FileName:    "aftercare.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, document.StorageKey)
	assert.Contains(t, document.URL, document.StorageKey)
	assert.Contains(t, objects.uploaded, document.StorageKey)

	stored, err := repo.GetByID(context.Background(), document.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StorageKey, stored.StorageKey)
}

func TestUploadValidation(t *testing.T) {
	svc := NewDocumentService(newFakeDocumentRepo(), newFakeObjectStorage(), 10)

	tests := []struct {
		name  string
		input *UploadInput
	}{
		{"empty file", &UploadInput{FileName: "a.pdf", ContentType: "application/pdf"}},
		{"oversize file", &UploadInput{FileName: "a.pdf", ContentType: "application/pdf", Data: make([]byte, 11)}},
		{"unsupported type", &UploadInput{FileName: "a.exe", ContentType: "application/octet-stream", Data: []byte("MZ")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
		})
	}
}

func TestDeleteDocumentRemovesObjectByKey(t *testing.T) {
	repo := newFakeDocumentRepo()
	objects := newFakeObjectStorage()
	svc := NewDocumentService(repo, objects, 1<<20)
	ownerID := uuid.New()

	document, err := svc.Upload(context.Background(), &UploadInput{
		UserID:      ownerID,
		FileName:    "before.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDocument(context.Background(), ownerID, document.ID))

	assert.Equal(t, []string{document.StorageKey}, objects.deleted)
	stored, err := repo.GetByID(context.Background(), document.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestDeleteDocumentScopedToOwner(t *testing.T) {
	repo := newFakeDocumentRepo()
	objects := newFakeObjectStorage()
	svc := NewDocumentService(repo, objects, 1<<20)

	document, err := svc.Upload(context.Background(), &UploadInput{
		UserID:      uuid.New(),
		FileName:    "before.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	})
	require.NoError(t, err)

	err = svc.DeleteDocument(context.Background(), uuid.New(), document.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
	assert.Empty(t, objects.deleted)
}

func TestGetDownloadURLSignsStoredKey(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := NewDocumentService(repo, newFakeObjectStorage(), 1<<20)
	ownerID := uuid.New()

	document, err := svc.Upload(context.Background(), &UploadInput{
		UserID:      ownerID,
		FileName:    "consent.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4"),
	})
	require.NoError(t, err)

	url, err := svc.GetDownloadURL(context.Background(), ownerID, document.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/signed/"+document.StorageKey, url)

	_, err = svc.GetDownloadURL(context.Background(), uuid.New(), document.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}
