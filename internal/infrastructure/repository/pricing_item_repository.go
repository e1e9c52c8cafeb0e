package repository

import (
	"context"
	"errors"

	"github.com/chc-hub/api/internal/domain/entity"
	domainRepo "github.com/chc-hub/api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pricingItemRepository struct {
	db *gorm.DB
}

// NewPricingItemRepository creates a new pricing catalog repository
func NewPricingItemRepository(db *gorm.DB) domainRepo.PricingItemRepository {
	return &pricingItemRepository{db: db}
}

func (r *pricingItemRepository) Create(ctx context.Context, item *entity.PricingItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pricingItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PricingItem, error) {
	var item entity.PricingItem
	err := r.db.WithContext(ctx).
		Preload("Tiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, price ASC")
		}).
		First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *pricingItemRepository) GetBySlug(ctx context.Context, slug string) (*entity.PricingItem, error) {
	var item entity.PricingItem
	err := r.db.WithContext(ctx).
		Preload("Tiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, price ASC")
		}).
		First(&item, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *pricingItemRepository) Update(ctx context.Context, item *entity.PricingItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *pricingItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pricing_item_id = ?", id).Delete(&entity.PricingTier{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.PricingItem{}, "id = ?", id).Error
	})
}

func (r *pricingItemRepository) List(ctx context.Context, params *domainRepo.PricingItemFilterParams) ([]entity.PricingItem, int64, error) {
	var items []entity.PricingItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PricingItem{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR description ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.Category != nil && *params.Category != "" {
		query = query.Where("category = ?", *params.Category)
	}
	if params.ActiveOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Tiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, price ASC")
		}).
		Order("category ASC, name ASC").
		Find(&items).Error

	return items, total, err
}

func (r *pricingItemRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&entity.PricingItem{}).
		Distinct("category").
		Where("category IS NOT NULL").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *pricingItemRepository) ReplaceTiers(ctx context.Context, itemID uuid.UUID, tiers []entity.PricingTier) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pricing_item_id = ?", itemID).Delete(&entity.PricingTier{}).Error; err != nil {
			return err
		}
		if len(tiers) == 0 {
			return nil
		}
		for i := range tiers {
			tiers[i].PricingItemID = itemID
		}
		return tx.Create(&tiers).Error
	})
}
