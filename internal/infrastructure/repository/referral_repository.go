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

type referralRepository struct {
	db *gorm.DB
}

// NewReferralRepository creates a new referral repository
func NewReferralRepository(db *gorm.DB) domainRepo.ReferralRepository {
	return &referralRepository{db: db}
}

func (r *referralRepository) Create(ctx context.Context, referral *entity.Referral) error {
	return r.db.WithContext(ctx).Create(referral).Error
}

func (r *referralRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Referral, error) {
	var referral entity.Referral
	err := r.db.WithContext(ctx).First(&referral, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &referral, err
}

func (r *referralRepository) Update(ctx context.Context, referral *entity.Referral) error {
	return r.db.WithContext(ctx).Save(referral).Error
}

func (r *referralRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Referral{}, "id = ?", id).Error
}

func (r *referralRepository) List(ctx context.Context, params *domainRepo.ReferralFilterParams) ([]entity.Referral, int64, error) {
	var referrals []entity.Referral
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Referral{})

	if params.Search != "" {
		query = query.Where("patient_name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Source != nil && *params.Source != "" {
		query = query.Where("source = ?", *params.Source)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&referrals).Error

	return referrals, total, err
}

func (r *referralRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ReferralStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.Referral{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *referralRepository) CountByStatus(ctx context.Context, status enum.ReferralStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Referral{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
