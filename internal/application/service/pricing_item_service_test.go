package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/internal/domain/repository"
	"github.com/chc-hub/api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePricingItemRepo struct {
	items map[uuid.UUID]*entity.PricingItem
}

func newFakePricingItemRepo() *fakePricingItemRepo {
	return &fakePricingItemRepo{items: make(map[uuid.UUID]*entity.PricingItem)}
}

func (r *fakePricingItemRepo) Create(_ context.Context, item *entity.PricingItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakePricingItemRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.PricingItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (r *fakePricingItemRepo) GetBySlug(_ context.Context, slug string) (*entity.PricingItem, error) {
	for _, item := range r.items {
		if item.Slug == slug {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakePricingItemRepo) Update(_ context.Context, item *entity.PricingItem) error {
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakePricingItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakePricingItemRepo) List(_ context.Context, _ *repository.PricingItemFilterParams) ([]entity.PricingItem, int64, error) {
	var result []entity.PricingItem
	for _, item := range r.items {
		result = append(result, *item)
	}
	return result, int64(len(result)), nil
}

func (r *fakePricingItemRepo) ListCategories(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var categories []string
	for _, item := range r.items {
		if item.Category != nil && !seen[*item.Category] {
			seen[*item.Category] = true
			categories = append(categories, *item.Category)
		}
	}
	return categories, nil
}

func (r *fakePricingItemRepo) ReplaceTiers(_ context.Context, itemID uuid.UUID, tiers []entity.PricingTier) error {
	if item, ok := r.items[itemID]; ok {
		item.Tiers = tiers
	}
	return nil
}

func TestCreatePricingItemSlugsName(t *testing.T) {
	svc := NewPricingItemService(newFakePricingItemRepo())

	item, err := svc.CreatePricingItem(context.Background(), &PricingItemInput{
		Name:    "Laser Hair Removal",
		Taxable: true,
		Active:  true,
		Tiers: []TierInput{
			{Name: "Single Session", Price: decimal.NewFromInt(150), Sessions: 1},
			{Name: "Package of 6", Price: decimal.NewFromInt(750), Sessions: 6},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "laser-hair-removal", item.Slug)
	require.Len(t, item.Tiers, 2)
	assert.Equal(t, 0, item.Tiers[0].SortOrder)
	assert.Equal(t, 1, item.Tiers[1].SortOrder)
}

func TestCreatePricingItemRejectsDuplicateName(t *testing.T) {
	svc := NewPricingItemService(newFakePricingItemRepo())

	_, err := svc.CreatePricingItem(context.Background(), &PricingItemInput{Name: "Chemical Peel", Active: true})
	require.NoError(t, err)

	_, err = svc.CreatePricingItem(context.Background(), &PricingItemInput{Name: "Chemical Peel", Active: true})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestCreatePricingItemValidation(t *testing.T) {
	svc := NewPricingItemService(newFakePricingItemRepo())

	_, err := svc.CreatePricingItem(context.Background(), &PricingItemInput{
		Name: "Microneedling",
		Tiers: []TierInput{
			{Name: "Session", Price: decimal.NewFromInt(-10)},
		},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestCreatePricingItemClampsSessions(t *testing.T) {
	svc := NewPricingItemService(newFakePricingItemRepo())

	item, err := svc.CreatePricingItem(context.Background(), &PricingItemInput{
		Name:   "Dermaplaning",
		Active: true,
		Tiers: []TierInput{
			{Name: "Session", Price: decimal.NewFromInt(90), Sessions: 0},
		},
	})
	require.NoError(t, err)
	require.Len(t, item.Tiers, 1)
	assert.Equal(t, 1, item.Tiers[0].Sessions)
}

func TestUpdatePricingItemRenameChecksSlug(t *testing.T) {
	repo := newFakePricingItemRepo()
	svc := NewPricingItemService(repo)

	first, err := svc.CreatePricingItem(context.Background(), &PricingItemInput{Name: "Botox", Active: true})
	require.NoError(t, err)
	_, err = svc.CreatePricingItem(context.Background(), &PricingItemInput{Name: "Fillers", Active: true})
	require.NoError(t, err)

	// Renaming onto an existing item's name conflicts
	_, err = svc.UpdatePricingItem(context.Background(), first.ID, &PricingItemInput{Name: "Fillers", Active: true})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)

	// Renaming to a fresh name re-slugs
	updated, err := svc.UpdatePricingItem(context.Background(), first.ID, &PricingItemInput{Name: "Botox Touch Up", Active: true})
	require.NoError(t, err)
	assert.Equal(t, "botox-touch-up", updated.Slug)
}

func TestUpdatePricingItemReplacesTiers(t *testing.T) {
	svc := NewPricingItemService(newFakePricingItemRepo())

	item, err := svc.CreatePricingItem(context.Background(), &PricingItemInput{
		Name:   "HydraFacial",
		Active: true,
		Tiers: []TierInput{
			{Name: "Single", Price: decimal.NewFromInt(200), Sessions: 1},
			{Name: "Package", Price: decimal.NewFromInt(540), Sessions: 3},
		},
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePricingItem(context.Background(), item.ID, &PricingItemInput{
		Name:   "HydraFacial",
		Active: true,
		Tiers: []TierInput{
			{Name: "Deluxe", Price: decimal.NewFromInt(250), Sessions: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.Tiers, 1)
	assert.Equal(t, "Deluxe", updated.Tiers[0].Name)
}

func TestGetPricingItemNotFound(t *testing.T) {
	svc := NewPricingItemService(newFakePricingItemRepo())

	_, err := svc.GetPricingItem(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}
