package service

import (
	"context"
	"time"

	"github.com/chc-hub/api/internal/domain/enum"
	"github.com/chc-hub/api/internal/domain/repository"
)

// DashboardService aggregates the counters shown on the hub landing page
type DashboardService struct {
	quoteRepo     repository.QuoteRepository
	referralRepo  repository.ReferralRepository
	inventoryRepo repository.InventoryRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	quoteRepo repository.QuoteRepository,
	referralRepo repository.ReferralRepository,
	inventoryRepo repository.InventoryRepository,
) *DashboardService {
	return &DashboardService{
		quoteRepo:     quoteRepo,
		referralRepo:  referralRepo,
		inventoryRepo: inventoryRepo,
	}
}

// DashboardStats holds the landing page counters. AcceptedRevenue sums the
// frozen totals of accepted quotes; it is reporting, not accounting.
type DashboardStats struct {
	DraftQuotes        int64   `json:"draft_quotes"`
	SentQuotes         int64   `json:"sent_quotes"`
	AcceptedQuotes     int64   `json:"accepted_quotes"`
	ExpiredQuotes      int64   `json:"expired_quotes"`
	AcceptedRevenue    float64 `json:"accepted_revenue"`
	PendingReferrals   int64   `json:"pending_referrals"`
	ConvertedReferrals int64   `json:"converted_referrals"`
	UsageLast30Days    int64   `json:"usage_last_30_days"`
}

// GetStats computes the dashboard counters
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	quoteCounts := map[enum.QuoteStatus]*int64{
		enum.QuoteStatusDraft:    &stats.DraftQuotes,
		enum.QuoteStatusSent:     &stats.SentQuotes,
		enum.QuoteStatusAccepted: &stats.AcceptedQuotes,
		enum.QuoteStatusExpired:  &stats.ExpiredQuotes,
	}
	for status, target := range quoteCounts {
		count, err := s.quoteRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		*target = count
	}

	revenue, err := s.quoteRepo.SumTotalByStatus(ctx, enum.QuoteStatusAccepted)
	if err != nil {
		return nil, err
	}
	stats.AcceptedRevenue = revenue

	pending, err := s.referralRepo.CountByStatus(ctx, enum.ReferralStatusPending)
	if err != nil {
		return nil, err
	}
	stats.PendingReferrals = pending

	converted, err := s.referralRepo.CountByStatus(ctx, enum.ReferralStatusConverted)
	if err != nil {
		return nil, err
	}
	stats.ConvertedReferrals = converted

	usage, err := s.inventoryRepo.CountSince(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	stats.UsageLast30Days = usage

	return stats, nil
}
