package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/internal/domain/enum"
	"github.com/chc-hub/api/internal/domain/repository"
	"github.com/chc-hub/api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuoteRepo struct {
	quotes    map[uuid.UUID]*entity.Quote
	lineItems map[uuid.UUID][]entity.QuoteLineItem
	nextRef   int
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{
		quotes:    make(map[uuid.UUID]*entity.Quote),
		lineItems: make(map[uuid.UUID][]entity.QuoteLineItem),
		nextRef:   1,
	}
}

func (r *fakeQuoteRepo) Create(_ context.Context, quote *entity.Quote) error {
	if quote.ID == uuid.Nil {
		quote.ID = uuid.New()
	}
	copied := *quote
	r.quotes[quote.ID] = &copied
	return nil
}

func (r *fakeQuoteRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Quote, error) {
	quote, ok := r.quotes[id]
	if !ok {
		return nil, nil
	}
	copied := *quote
	return &copied, nil
}

func (r *fakeQuoteRepo) GetByReference(_ context.Context, reference string) (*entity.Quote, error) {
	for _, quote := range r.quotes {
		if quote.Reference == reference {
			copied := *quote
			copied.LineItems = r.lineItems[quote.ID]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeQuoteRepo) GetWithLineItems(_ context.Context, id uuid.UUID) (*entity.Quote, error) {
	quote, ok := r.quotes[id]
	if !ok {
		return nil, nil
	}
	copied := *quote
	copied.LineItems = r.lineItems[id]
	return &copied, nil
}

func (r *fakeQuoteRepo) Update(_ context.Context, quote *entity.Quote) error {
	copied := *quote
	r.quotes[quote.ID] = &copied
	return nil
}

func (r *fakeQuoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.quotes, id)
	delete(r.lineItems, id)
	return nil
}

func (r *fakeQuoteRepo) List(_ context.Context, userID uuid.UUID, _ *repository.QuoteFilterParams) ([]entity.Quote, int64, error) {
	var result []entity.Quote
	for _, quote := range r.quotes {
		if quote.UserID == userID {
			result = append(result, *quote)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeQuoteRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.QuoteStatus) error {
	if quote, ok := r.quotes[id]; ok {
		quote.Status = status
	}
	return nil
}

func (r *fakeQuoteRepo) GetNextReferenceNumber(_ context.Context) (int, error) {
	n := r.nextRef
	r.nextRef++
	return n, nil
}

func (r *fakeQuoteRepo) CountByStatus(_ context.Context, status enum.QuoteStatus) (int64, error) {
	var count int64
	for _, quote := range r.quotes {
		if quote.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeQuoteRepo) SumTotalByStatus(_ context.Context, status enum.QuoteStatus) (float64, error) {
	sum := decimal.Zero
	for _, quote := range r.quotes {
		if quote.Status == status {
			sum = sum.Add(quote.Total)
		}
	}
	f, _ := sum.Float64()
	return f, nil
}

type fakeLineItemRepo struct {
	quotes *fakeQuoteRepo
}

func (r *fakeLineItemRepo) CreateBatch(_ context.Context, items []entity.QuoteLineItem) error {
	if len(items) == 0 {
		return nil
	}
	quoteID := items[0].QuoteID
	r.quotes.lineItems[quoteID] = append(r.quotes.lineItems[quoteID], items...)
	return nil
}

func (r *fakeLineItemRepo) GetByQuoteID(_ context.Context, quoteID uuid.UUID) ([]entity.QuoteLineItem, error) {
	return r.quotes.lineItems[quoteID], nil
}

func (r *fakeLineItemRepo) DeleteByQuoteID(_ context.Context, quoteID uuid.UUID) error {
	delete(r.quotes.lineItems, quoteID)
	return nil
}

type fakeDiscountRepo struct {
	discounts map[uuid.UUID]*entity.Discount
}

func (r *fakeDiscountRepo) Create(_ context.Context, discount *entity.Discount) error {
	if discount.ID == uuid.Nil {
		discount.ID = uuid.New()
	}
	r.discounts[discount.ID] = discount
	return nil
}

func (r *fakeDiscountRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Discount, error) {
	return r.discounts[id], nil
}

func (r *fakeDiscountRepo) Update(_ context.Context, discount *entity.Discount) error {
	r.discounts[discount.ID] = discount
	return nil
}

func (r *fakeDiscountRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.discounts, id)
	return nil
}

func (r *fakeDiscountRepo) List(_ context.Context, _ bool) ([]entity.Discount, error) {
	var result []entity.Discount
	for _, discount := range r.discounts {
		result = append(result, *discount)
	}
	return result, nil
}

type fakeLocationRepo struct {
	locations map[uuid.UUID]*entity.ClinicLocation
}

func (r *fakeLocationRepo) Create(_ context.Context, location *entity.ClinicLocation) error {
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	r.locations[location.ID] = location
	return nil
}

func (r *fakeLocationRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ClinicLocation, error) {
	return r.locations[id], nil
}

func (r *fakeLocationRepo) Update(_ context.Context, location *entity.ClinicLocation) error {
	r.locations[location.ID] = location
	return nil
}

func (r *fakeLocationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.locations, id)
	return nil
}

func (r *fakeLocationRepo) List(_ context.Context, _ bool) ([]entity.ClinicLocation, error) {
	var result []entity.ClinicLocation
	for _, location := range r.locations {
		result = append(result, *location)
	}
	return result, nil
}

type quoteServiceFixture struct {
	service   *QuoteService
	quotes    *fakeQuoteRepo
	discounts *fakeDiscountRepo
	locations *fakeLocationRepo
}

func newQuoteServiceFixture() *quoteServiceFixture {
	quotes := newFakeQuoteRepo()
	discounts := &fakeDiscountRepo{discounts: make(map[uuid.UUID]*entity.Discount)}
	locations := &fakeLocationRepo{locations: make(map[uuid.UUID]*entity.ClinicLocation)}

	return &quoteServiceFixture{
		service:   NewQuoteService(quotes, &fakeLineItemRepo{quotes: quotes}, discounts, locations, nil),
		quotes:    quotes,
		discounts: discounts,
		locations: locations,
	}
}

func (f *quoteServiceFixture) addLocation(taxRate string) uuid.UUID {
	rate, _ := decimal.NewFromString(taxRate)
	location := &entity.ClinicLocation{ID: uuid.New(), Name: "Main Clinic", TaxRate: rate, Active: true}
	f.locations.locations[location.ID] = location
	return location.ID
}

func (f *quoteServiceFixture) addDiscount(discountType enum.DiscountType, value string, active bool, validUntil *time.Time) uuid.UUID {
	v, _ := decimal.NewFromString(value)
	discount := &entity.Discount{
		ID:            uuid.New(),
		Name:          "Promo",
		DiscountType:  discountType,
		DiscountValue: v,
		Active:        active,
		ValidUntil:    validUntil,
	}
	f.discounts.discounts[discount.ID] = discount
	return discount.ID
}

func dec(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCreateQuotePricesSnapshot(t *testing.T) {
	f := newQuoteServiceFixture()
	locationID := f.addLocation("8.5")
	discountID := f.addDiscount(enum.DiscountTypePercentage, "10", true, nil)
	userID := uuid.New()

	quote, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:      userID,
		PatientName: "Jamie Rivera",
		LocationID:  &locationID,
		DiscountID:  &discountID,
		ShowTotals:  true,
		LineItems: []LineItemInput{
			{Name: "Laser Session", UnitPrice: dec("200"), Quantity: 2, Taxable: true},
			{Name: "Consultation", UnitPrice: dec("100"), Quantity: 1, Taxable: false},
		},
	})
	require.NoError(t, err)

	// subtotal 500, discount 50, taxable ratio 400/500, tax 450*0.8*8.5% = 30.60
	assert.True(t, quote.Subtotal.Equal(dec("500")), "subtotal %s", quote.Subtotal)
	assert.True(t, quote.DiscountAmount.Equal(dec("50")), "discount %s", quote.DiscountAmount)
	assert.True(t, quote.TaxAmount.Equal(dec("30.60")), "tax %s", quote.TaxAmount)
	assert.True(t, quote.Total.Equal(dec("480.60")), "total %s", quote.Total)
	assert.Equal(t, "QT-000001", quote.Reference)
	assert.Equal(t, enum.QuoteStatusDraft, quote.Status)
	assert.Len(t, quote.LineItems, 2)
}

func TestCreateQuoteClampsLineItems(t *testing.T) {
	f := newQuoteServiceFixture()
	userID := uuid.New()

	quote, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:      userID,
		PatientName: "Jamie Rivera",
		ShowTotals:  true,
		LineItems: []LineItemInput{
			{Name: "Peel", UnitPrice: dec("-50"), Quantity: 0, Taxable: false},
		},
	})
	require.NoError(t, err)

	require.Len(t, quote.LineItems, 1)
	assert.True(t, quote.LineItems[0].UnitPrice.Equal(decimal.Zero))
	assert.Equal(t, 1, quote.LineItems[0].Quantity)
	assert.True(t, quote.Total.Equal(decimal.Zero))
}

func TestCreateQuoteRequiresPatientName(t *testing.T) {
	f := newQuoteServiceFixture()

	_, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID: uuid.New(),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestCreateQuoteTaxableItemsNeedLocation(t *testing.T) {
	f := newQuoteServiceFixture()

	_, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:      uuid.New(),
		PatientName: "Jamie Rivera",
		LineItems: []LineItemInput{
			{Name: "Laser Session", UnitPrice: dec("200"), Quantity: 1, Taxable: true},
		},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestCreateQuoteNonTaxableWithoutLocation(t *testing.T) {
	f := newQuoteServiceFixture()

	quote, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:      uuid.New(),
		PatientName: "Jamie Rivera",
		LineItems: []LineItemInput{
			{Name: "Consultation", UnitPrice: dec("100"), Quantity: 1, Taxable: false},
		},
	})
	require.NoError(t, err)
	assert.True(t, quote.TaxAmount.Equal(decimal.Zero))
	assert.True(t, quote.Total.Equal(dec("100")))
}

func TestCreateQuoteRejectsInactiveDiscount(t *testing.T) {
	f := newQuoteServiceFixture()
	discountID := f.addDiscount(enum.DiscountTypePercentage, "10", false, nil)

	_, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:      uuid.New(),
		PatientName: "Jamie Rivera",
		DiscountID:  &discountID,
		LineItems: []LineItemInput{
			{Name: "Consultation", UnitPrice: dec("100"), Quantity: 1, Taxable: false},
		},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestCreateQuoteRejectsExpiredDiscount(t *testing.T) {
	f := newQuoteServiceFixture()
	expired := time.Now().Add(-24 * time.Hour)
	discountID := f.addDiscount(enum.DiscountTypeFixedAmount, "25", true, &expired)

	_, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:      uuid.New(),
		PatientName: "Jamie Rivera",
		DiscountID:  &discountID,
		LineItems: []LineItemInput{
			{Name: "Consultation", UnitPrice: dec("100"), Quantity: 1, Taxable: false},
		},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestCreateQuoteUnknownDiscount(t *testing.T) {
	f := newQuoteServiceFixture()
	missing := uuid.New()

	_, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:      uuid.New(),
		PatientName: "Jamie Rivera",
		DiscountID:  &missing,
		LineItems: []LineItemInput{
			{Name: "Consultation", UnitPrice: dec("100"), Quantity: 1, Taxable: false},
		},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestCreateQuoteFixedDiscountClampedToSubtotal(t *testing.T) {
	f := newQuoteServiceFixture()
	discountID := f.addDiscount(enum.DiscountTypeFixedAmount, "500", true, nil)

	quote, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:      uuid.New(),
		PatientName: "Jamie Rivera",
		DiscountID:  &discountID,
		LineItems: []LineItemInput{
			{Name: "Consultation", UnitPrice: dec("100"), Quantity: 1, Taxable: false},
		},
	})
	require.NoError(t, err)
	assert.True(t, quote.DiscountAmount.Equal(dec("100")), "discount %s", quote.DiscountAmount)
	assert.True(t, quote.Total.Equal(decimal.Zero))
}

func TestQuoteReferencesIncrement(t *testing.T) {
	f := newQuoteServiceFixture()
	userID := uuid.New()

	first, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID: userID, PatientName: "First Patient",
	})
	require.NoError(t, err)
	second, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID: userID, PatientName: "Second Patient",
	})
	require.NoError(t, err)

	assert.Equal(t, "QT-000001", first.Reference)
	assert.Equal(t, "QT-000002", second.Reference)
}

func TestGetQuoteScopedToOwner(t *testing.T) {
	f := newQuoteServiceFixture()
	owner := uuid.New()

	quote, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID: owner, PatientName: "Jamie Rivera",
	})
	require.NoError(t, err)

	_, err = f.service.GetQuote(context.Background(), uuid.New(), quote.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	found, err := f.service.GetQuote(context.Background(), owner, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, quote.ID, found.ID)
}

func TestGetQuoteByReferenceIsPublic(t *testing.T) {
	f := newQuoteServiceFixture()

	quote, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID: uuid.New(), PatientName: "Jamie Rivera",
	})
	require.NoError(t, err)

	found, err := f.service.GetQuoteByReference(context.Background(), quote.Reference)
	require.NoError(t, err)
	assert.Equal(t, quote.ID, found.ID)

	_, err = f.service.GetQuoteByReference(context.Background(), "QT-999999")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestUpdateQuoteReplacesLineItemsAndReprices(t *testing.T) {
	f := newQuoteServiceFixture()
	locationID := f.addLocation("10")
	userID := uuid.New()

	quote, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:      userID,
		PatientName: "Jamie Rivera",
		LocationID:  &locationID,
		LineItems: []LineItemInput{
			{Name: "Laser Session", UnitPrice: dec("200"), Quantity: 1, Taxable: true},
			{Name: "Consultation", UnitPrice: dec("100"), Quantity: 1, Taxable: false},
		},
	})
	require.NoError(t, err)
	require.True(t, quote.Total.Equal(dec("320")), "total %s", quote.Total)

	updated, err := f.service.UpdateQuote(context.Background(), &UpdateQuoteInput{
		QuoteID:     quote.ID,
		UserID:      userID,
		PatientName: "Jamie Rivera",
		LocationID:  &locationID,
		LineItems: []LineItemInput{
			{Name: "Filler", UnitPrice: dec("300"), Quantity: 1, Taxable: true},
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.LineItems, 1)
	assert.Equal(t, "Filler", updated.LineItems[0].Name)
	assert.True(t, updated.Subtotal.Equal(dec("300")))
	assert.True(t, updated.TaxAmount.Equal(dec("30.00")), "tax %s", updated.TaxAmount)
	assert.True(t, updated.Total.Equal(dec("330.00")), "total %s", updated.Total)
	assert.Equal(t, quote.Reference, updated.Reference)
}

func TestUpdateQuoteScopedToOwner(t *testing.T) {
	f := newQuoteServiceFixture()
	owner := uuid.New()

	quote, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID: owner, PatientName: "Jamie Rivera",
	})
	require.NoError(t, err)

	_, err = f.service.UpdateQuote(context.Background(), &UpdateQuoteInput{
		QuoteID:     quote.ID,
		UserID:      uuid.New(),
		PatientName: "Someone Else",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestUpdateQuoteStatus(t *testing.T) {
	f := newQuoteServiceFixture()
	userID := uuid.New()

	quote, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID: userID, PatientName: "Jamie Rivera",
	})
	require.NoError(t, err)

	updated, err := f.service.UpdateQuoteStatus(context.Background(), userID, quote.ID, enum.QuoteStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, enum.QuoteStatusAccepted, updated.Status)

	// Any status can move to any other
	updated, err = f.service.UpdateQuoteStatus(context.Background(), userID, quote.ID, enum.QuoteStatusDraft)
	require.NoError(t, err)
	assert.Equal(t, enum.QuoteStatusDraft, updated.Status)

	_, err = f.service.UpdateQuoteStatus(context.Background(), userID, quote.ID, enum.QuoteStatus(42))
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestDuplicateQuoteGetsNewReferenceAndCurrentPricing(t *testing.T) {
	f := newQuoteServiceFixture()
	locationID := f.addLocation("5")
	discountID := f.addDiscount(enum.DiscountTypePercentage, "20", true, nil)
	userID := uuid.New()

	original, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:      userID,
		PatientName: "Jamie Rivera",
		LocationID:  &locationID,
		DiscountID:  &discountID,
		LineItems: []LineItemInput{
			{Name: "Laser Session", UnitPrice: dec("100"), Quantity: 1, Taxable: true},
		},
	})
	require.NoError(t, err)

	// Discount terms change between save and duplication
	f.discounts.discounts[discountID].DiscountValue = dec("50")

	duplicate, err := f.service.DuplicateQuote(context.Background(), userID, original.ID)
	require.NoError(t, err)

	assert.NotEqual(t, original.Reference, duplicate.Reference)
	assert.Equal(t, enum.QuoteStatusDraft, duplicate.Status)
	assert.True(t, duplicate.DiscountAmount.Equal(dec("50")), "discount %s", duplicate.DiscountAmount)
	// Original snapshot is untouched
	stored, err := f.service.GetQuote(context.Background(), userID, original.ID)
	require.NoError(t, err)
	assert.True(t, stored.DiscountAmount.Equal(dec("20")), "discount %s", stored.DiscountAmount)
}

func TestDeleteQuoteScopedToOwner(t *testing.T) {
	f := newQuoteServiceFixture()
	owner := uuid.New()

	quote, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID: owner, PatientName: "Jamie Rivera",
	})
	require.NoError(t, err)

	err = f.service.DeleteQuote(context.Background(), uuid.New(), quote.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	require.NoError(t, f.service.DeleteQuote(context.Background(), owner, quote.ID))

	_, err = f.service.GetQuote(context.Background(), owner, quote.ID)
	require.Error(t, err)
}

func TestSendQuoteRequiresPatientEmail(t *testing.T) {
	f := newQuoteServiceFixture()
	userID := uuid.New()

	quote, err := f.service.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID: userID, PatientName: "Jamie Rivera",
	})
	require.NoError(t, err)

	_, err = f.service.SendQuote(context.Background(), userID, quote.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}
