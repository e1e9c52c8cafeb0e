package repository

import (
	"context"
	"errors"

	"github.com/chc-hub/api/internal/domain/entity"
	domainRepo "github.com/chc-hub/api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// applyContentFilters applies the shared content library filters. The titles
// and bodies are searched together since editors rarely remember which one
// holds the phrase they need.
func applyContentFilters(query *gorm.DB, params *domainRepo.ContentFilterParams, hasCategory bool) *gorm.DB {
	if params.Search != "" {
		query = query.Where("title ILIKE ? OR body ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if hasCategory && params.Category != nil && *params.Category != "" {
		query = query.Where("category = ?", *params.Category)
	}
	return query
}

type aftercareRepository struct {
	db *gorm.DB
}

// NewAftercareRepository creates a new aftercare instruction repository
func NewAftercareRepository(db *gorm.DB) domainRepo.AftercareRepository {
	return &aftercareRepository{db: db}
}

func (r *aftercareRepository) Create(ctx context.Context, instruction *entity.AftercareInstruction) error {
	return r.db.WithContext(ctx).Create(instruction).Error
}

func (r *aftercareRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AftercareInstruction, error) {
	var instruction entity.AftercareInstruction
	err := r.db.WithContext(ctx).First(&instruction, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &instruction, err
}

func (r *aftercareRepository) GetBySlug(ctx context.Context, slug string) (*entity.AftercareInstruction, error) {
	var instruction entity.AftercareInstruction
	err := r.db.WithContext(ctx).First(&instruction, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &instruction, err
}

func (r *aftercareRepository) Update(ctx context.Context, instruction *entity.AftercareInstruction) error {
	return r.db.WithContext(ctx).Save(instruction).Error
}

func (r *aftercareRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.AftercareInstruction{}, "id = ?", id).Error
}

func (r *aftercareRepository) List(ctx context.Context, params *domainRepo.ContentFilterParams) ([]entity.AftercareInstruction, int64, error) {
	var instructions []entity.AftercareInstruction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.AftercareInstruction{})
	query = applyContentFilters(query, params, true)
	if params.PublishedOnly {
		query = query.Where("published = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("title ASC").
		Find(&instructions).Error

	return instructions, total, err
}

type consentFormRepository struct {
	db *gorm.DB
}

// NewConsentFormRepository creates a new consent form repository
func NewConsentFormRepository(db *gorm.DB) domainRepo.ConsentFormRepository {
	return &consentFormRepository{db: db}
}

func (r *consentFormRepository) Create(ctx context.Context, form *entity.ConsentForm) error {
	return r.db.WithContext(ctx).Create(form).Error
}

func (r *consentFormRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ConsentForm, error) {
	var form entity.ConsentForm
	err := r.db.WithContext(ctx).First(&form, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &form, err
}

func (r *consentFormRepository) GetBySlug(ctx context.Context, slug string) (*entity.ConsentForm, error) {
	var form entity.ConsentForm
	err := r.db.WithContext(ctx).First(&form, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &form, err
}

func (r *consentFormRepository) Update(ctx context.Context, form *entity.ConsentForm) error {
	return r.db.WithContext(ctx).Save(form).Error
}

func (r *consentFormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ConsentForm{}, "id = ?", id).Error
}

func (r *consentFormRepository) List(ctx context.Context, params *domainRepo.ContentFilterParams) ([]entity.ConsentForm, int64, error) {
	var forms []entity.ConsentForm
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ConsentForm{})
	query = applyContentFilters(query, params, false)
	if params.PublishedOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("title ASC, version DESC").
		Find(&forms).Error

	return forms, total, err
}

type educationTopicRepository struct {
	db *gorm.DB
}

// NewEducationTopicRepository creates a new education topic repository
func NewEducationTopicRepository(db *gorm.DB) domainRepo.EducationTopicRepository {
	return &educationTopicRepository{db: db}
}

func (r *educationTopicRepository) Create(ctx context.Context, topic *entity.EducationTopic) error {
	return r.db.WithContext(ctx).Create(topic).Error
}

func (r *educationTopicRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.EducationTopic, error) {
	var topic entity.EducationTopic
	err := r.db.WithContext(ctx).First(&topic, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &topic, err
}

func (r *educationTopicRepository) GetBySlug(ctx context.Context, slug string) (*entity.EducationTopic, error) {
	var topic entity.EducationTopic
	err := r.db.WithContext(ctx).First(&topic, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &topic, err
}

func (r *educationTopicRepository) Update(ctx context.Context, topic *entity.EducationTopic) error {
	return r.db.WithContext(ctx).Save(topic).Error
}

func (r *educationTopicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.EducationTopic{}, "id = ?", id).Error
}

func (r *educationTopicRepository) List(ctx context.Context, params *domainRepo.ContentFilterParams) ([]entity.EducationTopic, int64, error) {
	var topics []entity.EducationTopic
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.EducationTopic{})
	query = applyContentFilters(query, params, true)
	if params.PublishedOnly {
		query = query.Where("published = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("title ASC").
		Find(&topics).Error

	return topics, total, err
}
