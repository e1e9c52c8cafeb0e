package service

import (
	"context"
	"net/http"
	"time"

	"github.com/chc-hub/api/internal/domain/entity"
	"github.com/chc-hub/api/internal/domain/enum"
	"github.com/chc-hub/api/internal/domain/repository"
	"github.com/chc-hub/api/pkg/apperror"
	"github.com/chc-hub/api/pkg/email"
	"github.com/chc-hub/api/pkg/pricing"
	"github.com/chc-hub/api/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteService handles quote lifecycle and pricing. All monetary fields on a
// quote are written exclusively through the pricing engine; handlers never
// accept client-computed totals.
type QuoteService struct {
	quoteRepo    repository.QuoteRepository
	lineItemRepo repository.QuoteLineItemRepository
	discountRepo repository.DiscountRepository
	locationRepo repository.LocationRepository
	emailService *email.EmailService
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	lineItemRepo repository.QuoteLineItemRepository,
	discountRepo repository.DiscountRepository,
	locationRepo repository.LocationRepository,
	emailService *email.EmailService,
) *QuoteService {
	return &QuoteService{
		quoteRepo:    quoteRepo,
		lineItemRepo: lineItemRepo,
		discountRepo: discountRepo,
		locationRepo: locationRepo,
		emailService: emailService,
	}
}

// LineItemInput represents one line of a quote as entered by staff
type LineItemInput struct {
	Name      string
	TierName  string
	UnitPrice decimal.Decimal
	Quantity  int
	Taxable   bool
	Sessions  int
}

// CreateQuoteInput represents the create quote input
type CreateQuoteInput struct {
	UserID       uuid.UUID
	PatientName  string
	PatientEmail *string
	LocationID   *uuid.UUID
	DiscountID   *uuid.UUID
	ShowTotals   bool
	Notes        *string
	ValidUntil   *time.Time
	LineItems    []LineItemInput
}

// UpdateQuoteInput represents the update quote input. Updates replace the
// full line item set; last write wins.
type UpdateQuoteInput struct {
	QuoteID      uuid.UUID
	UserID       uuid.UUID
	PatientName  string
	PatientEmail *string
	LocationID   *uuid.UUID
	DiscountID   *uuid.UUID
	ShowTotals   bool
	Notes        *string
	ValidUntil   *time.Time
	LineItems    []LineItemInput
}

// toEngineItems normalizes staff input into engine line items. Quantities
// below one and negative prices are clamped rather than rejected.
func toEngineItems(inputs []LineItemInput) []pricing.LineItem {
	items := make([]pricing.LineItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, pricing.LineItem{
			Name:      in.Name,
			TierName:  in.TierName,
			UnitPrice: pricing.ClampUnitPrice(in.UnitPrice),
			Quantity:  pricing.ClampQuantity(in.Quantity),
			Taxable:   in.Taxable,
			Sessions:  in.Sessions,
		})
	}
	return items
}

// price resolves the discount and location, enforces the save-boundary
// rules, and returns the computed breakdown. This is the only place the
// pricing engine is invoked on a persistence path.
func (s *QuoteService) price(
	ctx context.Context,
	locationID *uuid.UUID,
	discountID *uuid.UUID,
	items []pricing.LineItem,
) (pricing.Breakdown, error) {
	var engineDiscount *pricing.Discount
	if discountID != nil {
		discount, err := s.discountRepo.GetByID(ctx, *discountID)
		if err != nil {
			return pricing.Breakdown{}, err
		}
		if discount == nil {
			return pricing.Breakdown{}, apperror.NewNotFoundError("Discount")
		}
		if !discount.Active || discount.IsExpired() {
			return pricing.Breakdown{}, apperror.NewAppError(
				http.StatusUnprocessableEntity, "Discount is no longer available")
		}
		engineDiscount = &pricing.Discount{
			Type:  pricing.DiscountType(discount.DiscountType.String()),
			Value: discount.DiscountValue,
		}
	}

	taxRate := decimal.Zero
	if locationID != nil {
		location, err := s.locationRepo.GetByID(ctx, *locationID)
		if err != nil {
			return pricing.Breakdown{}, err
		}
		if location == nil {
			return pricing.Breakdown{}, apperror.NewNotFoundError("Location")
		}
		taxRate = location.TaxRate
	} else if pricing.HasTaxableItems(items) {
		// Taxable items need a location to supply the tax rate
		return pricing.Breakdown{}, apperror.NewAppError(
			http.StatusUnprocessableEntity, "A location is required when the quote contains taxable items")
	}

	return pricing.Compute(items, engineDiscount, taxRate), nil
}

func buildLineItems(quoteID uuid.UUID, items []pricing.LineItem) []entity.QuoteLineItem {
	rows := make([]entity.QuoteLineItem, 0, len(items))
	for i, item := range items {
		rows = append(rows, entity.QuoteLineItem{
			QuoteID:   quoteID,
			Name:      item.Name,
			TierName:  item.TierName,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Taxable:   item.Taxable,
			Sessions:  item.Sessions,
			SortOrder: i,
		})
	}
	return rows
}

// CreateQuote creates a new quote with a freshly priced snapshot
func (s *QuoteService) CreateQuote(ctx context.Context, input *CreateQuoteInput) (*entity.Quote, error) {
	if input.PatientName == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "patient_name", Message: "Patient name is required"},
		})
	}

	items := toEngineItems(input.LineItems)
	breakdown, err := s.price(ctx, input.LocationID, input.DiscountID, items)
	if err != nil {
		return nil, err
	}

	refNumber, err := s.quoteRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}

	quote := &entity.Quote{
		UserID:         input.UserID,
		LocationID:     input.LocationID,
		DiscountID:     input.DiscountID,
		Reference:      utils.FormatQuoteReference(refNumber),
		PatientName:    input.PatientName,
		PatientEmail:   input.PatientEmail,
		Status:         enum.QuoteStatusDraft,
		ShowTotals:     input.ShowTotals,
		Notes:          input.Notes,
		ValidUntil:     input.ValidUntil,
		Subtotal:       breakdown.Subtotal,
		DiscountAmount: breakdown.DiscountAmount,
		TaxAmount:      breakdown.TaxAmount,
		Total:          breakdown.Total,
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}

	if err := s.lineItemRepo.CreateBatch(ctx, buildLineItems(quote.ID, items)); err != nil {
		return nil, err
	}

	return s.quoteRepo.GetWithLineItems(ctx, quote.ID)
}

// GetQuote returns a quote with its line items, scoped to the owner
func (s *QuoteService) GetQuote(ctx context.Context, userID, quoteID uuid.UUID) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetWithLineItems(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil || quote.UserID != userID {
		return nil, apperror.NewNotFoundError("Quote")
	}
	return quote, nil
}

// GetQuoteByReference returns a quote by its public reference. Used by the
// patient-facing view, so it is not scoped to a user.
func (s *QuoteService) GetQuoteByReference(ctx context.Context, reference string) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	return quote, nil
}

// ListQuotesInput represents the list quotes input
type ListQuotesInput struct {
	UserID uuid.UUID
	Params *repository.QuoteFilterParams
}

// ListQuotesOutput represents the list quotes output
type ListQuotesOutput struct {
	Quotes     []entity.Quote
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
}

// ListQuotes returns the user's quotes with filtering and pagination
func (s *QuoteService) ListQuotes(ctx context.Context, input *ListQuotesInput) (*ListQuotesOutput, error) {
	quotes, total, err := s.quoteRepo.List(ctx, input.UserID, input.Params)
	if err != nil {
		return nil, err
	}

	p := input.Params.Pagination
	totalPages := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))

	return &ListQuotesOutput{
		Quotes:     quotes,
		Total:      total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: totalPages,
	}, nil
}

// UpdateQuote replaces the quote's content and reprices the snapshot
func (s *QuoteService) UpdateQuote(ctx context.Context, input *UpdateQuoteInput) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, input.QuoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil || quote.UserID != input.UserID {
		return nil, apperror.NewNotFoundError("Quote")
	}

	if input.PatientName == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "patient_name", Message: "Patient name is required"},
		})
	}

	items := toEngineItems(input.LineItems)
	breakdown, err := s.price(ctx, input.LocationID, input.DiscountID, items)
	if err != nil {
		return nil, err
	}

	quote.PatientName = input.PatientName
	quote.PatientEmail = input.PatientEmail
	quote.LocationID = input.LocationID
	quote.DiscountID = input.DiscountID
	quote.ShowTotals = input.ShowTotals
	quote.Notes = input.Notes
	quote.ValidUntil = input.ValidUntil
	quote.Subtotal = breakdown.Subtotal
	quote.DiscountAmount = breakdown.DiscountAmount
	quote.TaxAmount = breakdown.TaxAmount
	quote.Total = breakdown.Total

	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}

	// Replace the full line item set
	if err := s.lineItemRepo.DeleteByQuoteID(ctx, quote.ID); err != nil {
		return nil, err
	}
	if err := s.lineItemRepo.CreateBatch(ctx, buildLineItems(quote.ID, items)); err != nil {
		return nil, err
	}

	return s.quoteRepo.GetWithLineItems(ctx, quote.ID)
}

// DeleteQuote soft deletes a quote and its line items
func (s *QuoteService) DeleteQuote(ctx context.Context, userID, quoteID uuid.UUID) error {
	quote, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return err
	}
	if quote == nil || quote.UserID != userID {
		return apperror.NewNotFoundError("Quote")
	}
	return s.quoteRepo.Delete(ctx, quoteID)
}

// UpdateQuoteStatus sets the lifecycle tag. Any status may be set from any
// other; the tags are bookkeeping, not a guarded state machine.
func (s *QuoteService) UpdateQuoteStatus(ctx context.Context, userID, quoteID uuid.UUID, status enum.QuoteStatus) (*entity.Quote, error) {
	if !status.Valid() {
		return nil, apperror.NewBadRequestError("Invalid quote status")
	}

	quote, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil || quote.UserID != userID {
		return nil, apperror.NewNotFoundError("Quote")
	}

	if err := s.quoteRepo.UpdateStatus(ctx, quoteID, status); err != nil {
		return nil, err
	}

	quote.Status = status
	return quote, nil
}

// DuplicateQuote creates a fresh draft from an existing quote. The copy gets
// a new reference and is repriced against current discount and tax settings.
func (s *QuoteService) DuplicateQuote(ctx context.Context, userID, quoteID uuid.UUID) (*entity.Quote, error) {
	source, err := s.quoteRepo.GetWithLineItems(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if source == nil || source.UserID != userID {
		return nil, apperror.NewNotFoundError("Quote")
	}

	lineItems := make([]LineItemInput, 0, len(source.LineItems))
	for _, item := range source.LineItems {
		lineItems = append(lineItems, LineItemInput{
			Name:      item.Name,
			TierName:  item.TierName,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Taxable:   item.Taxable,
			Sessions:  item.Sessions,
		})
	}

	return s.CreateQuote(ctx, &CreateQuoteInput{
		UserID:       userID,
		PatientName:  source.PatientName,
		PatientEmail: source.PatientEmail,
		LocationID:   source.LocationID,
		DiscountID:   source.DiscountID,
		ShowTotals:   source.ShowTotals,
		Notes:        source.Notes,
		LineItems:    lineItems,
	})
}

// SendQuote emails the quote to the patient and marks it sent
func (s *QuoteService) SendQuote(ctx context.Context, userID, quoteID uuid.UUID) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetWithLineItems(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil || quote.UserID != userID {
		return nil, apperror.NewNotFoundError("Quote")
	}
	if quote.PatientEmail == nil || *quote.PatientEmail == "" {
		return nil, apperror.NewBadRequestError("Quote has no patient email")
	}

	validUntil := ""
	if quote.ValidUntil != nil {
		validUntil = quote.ValidUntil.Format("January 2, 2006")
	}

	if err := s.emailService.SendQuoteEmail(*quote.PatientEmail, email.QuoteEmailData{
		PatientName: quote.PatientName,
		Reference:   quote.Reference,
		Total:       "$" + quote.Total.StringFixed(2),
		ValidUntil:  validUntil,
		ShowTotals:  quote.ShowTotals,
	}); err != nil {
		return nil, err
	}

	if err := s.quoteRepo.UpdateStatus(ctx, quote.ID, enum.QuoteStatusSent); err != nil {
		return nil, err
	}

	quote.Status = enum.QuoteStatusSent
	return quote, nil
}
