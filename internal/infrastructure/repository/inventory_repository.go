package repository

import (
	"context"
	"errors"
	"time"

	"github.com/chc-hub/api/internal/domain/entity"
	domainRepo "github.com/chc-hub/api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory usage repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, usage *entity.InventoryUsage) error {
	return r.db.WithContext(ctx).Create(usage).Error
}

func (r *inventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryUsage, error) {
	var usage entity.InventoryUsage
	err := r.db.WithContext(ctx).
		Preload("Location").
		First(&usage, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &usage, err
}

func (r *inventoryRepository) Update(ctx context.Context, usage *entity.InventoryUsage) error {
	return r.db.WithContext(ctx).Save(usage).Error
}

func (r *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.InventoryUsage{}, "id = ?", id).Error
}

func (r *inventoryRepository) List(ctx context.Context, params *domainRepo.InventoryFilterParams) ([]entity.InventoryUsage, int64, error) {
	var records []entity.InventoryUsage
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InventoryUsage{})

	if params.Search != "" {
		query = query.Where("item_name ILIKE ?", "%"+params.Search+"%")
	}
	if params.LocationID != nil {
		query = query.Where("location_id = ?", *params.LocationID)
	}
	if params.From != nil {
		query = query.Where("used_on >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("used_on <= ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Location").
		Order("used_on DESC, created_at DESC").
		Find(&records).Error

	return records, total, err
}

func (r *inventoryRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.InventoryUsage{}).
		Where("used_on >= ?", since).
		Count(&count).Error
	return count, err
}
