package service

import (
	"context"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/internal/domain/repository"
	"github.com/chc-hub/api/pkg/apperror"
	"github.com/chc-hub/api/pkg/utils"
	"github.com/google/uuid"
)

// EducationTopicService handles patient education articles
type EducationTopicService struct {
	topicRepo repository.EducationTopicRepository
}

// NewEducationTopicService creates a new education topic service
func NewEducationTopicService(topicRepo repository.EducationTopicRepository) *EducationTopicService {
	return &EducationTopicService{topicRepo: topicRepo}
}

// EducationTopicInput represents the create/update topic input
type EducationTopicInput struct {
	UserID    uuid.UUID
	Title     string
	Category  *string
	Summary   *string
	Body      string
	ImageURL  *string
	Tags      []string
	Published bool
}

// CreateTopic creates a new education topic
func (s *EducationTopicService) CreateTopic(ctx context.Context, input *EducationTopicInput) (*entity.EducationTopic, error) {
	if input.Title == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "title", Message: "Title is required"},
		})
	}

	slug := utils.Slugify(input.Title)
	existing, err := s.topicRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A topic with this title already exists")
	}

	topic := &entity.EducationTopic{
		UserID:    input.UserID,
		Title:     input.Title,
		Slug:      slug,
		Category:  input.Category,
		Summary:   input.Summary,
		Body:      input.Body,
		ImageURL:  input.ImageURL,
		Tags:      input.Tags,
		Published: input.Published,
	}

	if err := s.topicRepo.Create(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

// GetTopic returns an education topic by ID
func (s *EducationTopicService) GetTopic(ctx context.Context, id uuid.UUID) (*entity.EducationTopic, error) {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, apperror.NewNotFoundError("Education topic")
	}
	return topic, nil
}

// ListTopics returns education topics with filtering and pagination
func (s *EducationTopicService) ListTopics(ctx context.Context, params *repository.ContentFilterParams) ([]entity.EducationTopic, int64, error) {
	return s.topicRepo.List(ctx, params)
}

// UpdateTopic updates an education topic
func (s *EducationTopicService) UpdateTopic(ctx context.Context, id uuid.UUID, input *EducationTopicInput) (*entity.EducationTopic, error) {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, apperror.NewNotFoundError("Education topic")
	}

	if input.Title == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "title", Message: "Title is required"},
		})
	}

	if input.Title != topic.Title {
		slug := utils.Slugify(input.Title)
		existing, err := s.topicRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != topic.ID {
			return nil, apperror.NewConflictError("A topic with this title already exists")
		}
		topic.Slug = slug
	}

	topic.Title = input.Title
	topic.Category = input.Category
	topic.Summary = input.Summary
	topic.Body = input.Body
	topic.ImageURL = input.ImageURL
	topic.Tags = input.Tags
	topic.Published = input.Published

	if err := s.topicRepo.Update(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

// DeleteTopic soft deletes an education topic
func (s *EducationTopicService) DeleteTopic(ctx context.Context, id uuid.UUID) error {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if topic == nil {
		return apperror.NewNotFoundError("Education topic")
	}
	return s.topicRepo.Delete(ctx, id)
}
