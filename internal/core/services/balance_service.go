package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	portsrepo "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/repositories"
	portssvc "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/services"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/dto"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/utils/rentmath"
)

// balanceService computes tenant balances by replaying ledger history.
// There is no stored balance counter anywhere; every figure is derived
// from ledger entries and rent payments on read.
type balanceService struct {
	BaseService
	tenantRepo  portsrepo.TenantRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryWithTx
	scheduleSvc portssvc.RentScheduleSvcFacade
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(
	tenantRepo portsrepo.TenantRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryWithTx,
	scheduleSvc portssvc.RentScheduleSvcFacade,
) portssvc.BalanceSvcFacade {
	return &balanceService{tenantRepo: tenantRepo, ledgerRepo: ledgerRepo, scheduleSvc: scheduleSvc}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// BalanceAsOf computes the tenant's ledger totals at a point in time.
// Entries on the cutoff date are included only up to cutoffCreatedAt,
// so same-day snapshots are deterministic.
func (s *balanceService) BalanceAsOf(ctx context.Context, tenantID string, cutoffDate, cutoffCreatedAt time.Time) (*domain.BalanceSnapshot, error) {
	if _, err := s.tenantRepo.FindTenantByID(ctx, tenantID); err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.FindEntriesByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger entries: %w", err)
	}
	payments, err := s.ledgerRepo.FindRentPaymentsByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rent payments: %w", err)
	}

	entriesByID := make(map[string]domain.LedgerEntry, len(entries))
	for _, e := range entries {
		entriesByID[e.EntryID] = e
	}

	ledgerTotal := rentmath.LedgerTotalAsOf(entries, cutoffDate, cutoffCreatedAt)
	rentConsumed := rentmath.RentConsumedAsOf(payments, entriesByID, cutoffDate, cutoffCreatedAt)

	return &domain.BalanceSnapshot{
		LedgerTotal:  ledgerTotal,
		RentConsumed: rentConsumed,
		NetCredit:    ledgerTotal.Sub(rentConsumed),
	}, nil
}

// CurrentBalance is BalanceAsOf with the cutoff at now.
func (s *balanceService) CurrentBalance(ctx context.Context, tenantID string) (*domain.BalanceSnapshot, error) {
	now := s.clock()
	return s.BalanceAsOf(ctx, tenantID, now, now)
}

// UnpaidRent returns the total outstanding rent and the unpaid periods
// behind it, through the current month.
func (s *balanceService) UnpaidRent(ctx context.Context, tenantID string) (decimal.Decimal, []domain.PeriodCharge, error) {
	if _, err := s.tenantRepo.FindTenantByID(ctx, tenantID); err != nil {
		return decimal.Zero, nil, err
	}

	charges, err := s.scheduleSvc.TenantCharges(ctx, tenantID, domain.PeriodOf(s.clock()))
	if err != nil {
		return decimal.Zero, nil, err
	}
	payments, err := s.ledgerRepo.FindRentPaymentsByTenantID(ctx, tenantID)
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("failed to load rent payments: %w", err)
	}

	unpaid := rentmath.UnpaidCharges(charges, rentmath.PaidPeriodSet(payments))
	total := decimal.Zero
	for _, c := range unpaid {
		total = total.Add(c.Rent)
	}
	return total, unpaid, nil
}

// LedgerHistory returns a page of the tenant's ledger, newest first.
func (s *balanceService) LedgerHistory(ctx context.Context, tenantID string, limit int, nextToken *string) (*dto.ListLedgerResponse, error) {
	if _, err := s.tenantRepo.FindTenantByID(ctx, tenantID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	entries, token, err := s.ledgerRepo.ListEntriesByTenantID(ctx, tenantID, limit, nextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	// Running totals need the full history, not just this page.
	all, err := s.ledgerRepo.FindEntriesByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger entries: %w", err)
	}
	totals := rentmath.RunningTotals(all)

	responses := dto.ToLedgerEntryResponses(entries)
	for i := range responses {
		responses[i].RunningTotal = totals[responses[i].EntryID]
	}

	return &dto.ListLedgerResponse{
		Entries:   responses,
		NextToken: token,
	}, nil
}
