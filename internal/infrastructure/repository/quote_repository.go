package repository

import (
	"context"
	"errors"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/internal/domain/enum"
	domainRepo "github.com/chc-hub/api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *gorm.DB) domainRepo.QuoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) Create(ctx context.Context, quote *entity.Quote) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *quoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	var quote entity.Quote
	err := r.db.WithContext(ctx).First(&quote, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quote, err
}

func (r *quoteRepository) GetByReference(ctx context.Context, reference string) (*entity.Quote, error) {
	var quote entity.Quote
	err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Location").
		Preload("Discount").
		First(&quote, "reference = ?", reference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quote, err
}

func (r *quoteRepository) GetWithLineItems(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	var quote entity.Quote
	err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Location").
		Preload("Discount").
		First(&quote, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quote, err
}

func (r *quoteRepository) Update(ctx context.Context, quote *entity.Quote) error {
	return r.db.WithContext(ctx).Save(quote).Error
}

func (r *quoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", id).Delete(&entity.QuoteLineItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Quote{}, "id = ?", id).Error
	})
}

func (r *quoteRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.QuoteFilterParams) ([]entity.Quote, int64, error) {
	var quotes []entity.Quote
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Quote{}).Where("user_id = ?", userID)

	if params.Search != "" {
		query = query.Where("patient_name ILIKE ? OR patient_email ILIKE ? OR reference ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.LocationID != nil {
		query = query.Where("location_id = ?", *params.LocationID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := params.SortBy
	switch sortBy {
	case "patient_name", "total", "status", "valid_until", "created_at":
	default:
		sortBy = "created_at"
	}
	sortOrder := "DESC"
	if params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Location").
		Preload("Discount").
		Order(sortBy + " " + sortOrder).
		Find(&quotes).Error

	return quotes, total, err
}

func (r *quoteRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuoteStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.Quote{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// GetNextReferenceNumber returns the next sequence number for quote
// references. Soft-deleted quotes still count so references are never reused.
func (r *quoteRepository) GetNextReferenceNumber(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Unscoped().
		Model(&entity.Quote{}).
		Count(&count).Error
	return int(count) + 1, err
}

func (r *quoteRepository) CountByStatus(ctx context.Context, status enum.QuoteStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Quote{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *quoteRepository) SumTotalByStatus(ctx context.Context, status enum.QuoteStatus) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&entity.Quote{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(total), 0)").
		Scan(&sum).Error
	return sum, err
}

type quoteLineItemRepository struct {
	db *gorm.DB
}

// NewQuoteLineItemRepository creates a new quote line item repository
func NewQuoteLineItemRepository(db *gorm.DB) domainRepo.QuoteLineItemRepository {
	return &quoteLineItemRepository{db: db}
}

func (r *quoteLineItemRepository) CreateBatch(ctx context.Context, items []entity.QuoteLineItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *quoteLineItemRepository) GetByQuoteID(ctx context.Context, quoteID uuid.UUID) ([]entity.QuoteLineItem, error) {
	var items []entity.QuoteLineItem
	err := r.db.WithContext(ctx).
		Where("quote_id = ?", quoteID).
		Order("sort_order ASC").
		Find(&items).Error
	return items, err
}

func (r *quoteLineItemRepository) DeleteByQuoteID(ctx context.Context, quoteID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("quote_id = ?", quoteID).
		Delete(&entity.QuoteLineItem{}).Error
}
