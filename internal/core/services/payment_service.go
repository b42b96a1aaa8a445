package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/apperrors"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	portsrepo "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/repositories"
	portssvc "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/services"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/dto"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/utils/rentmath"
)

// paymentService is the payment allocator: it turns money received into
// ledger entries and, in strict chronological order, into fully-paid
// rent periods. All mutations for a tenant run inside the repository's
// per-tenant critical section so the credit snapshot a decision is
// based on cannot go stale mid-write.
type paymentService struct {
	BaseService
	tenantRepo  portsrepo.TenantRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryWithTx
	scheduleSvc portssvc.RentScheduleSvcFacade
}

// PaymentServiceOption configures a payment service.
type PaymentServiceOption func(*paymentService)

// WithPaymentClock overrides the clock used to determine the current
// billing period.
func WithPaymentClock(now func() time.Time) PaymentServiceOption {
	return func(s *paymentService) {
		s.now = now
	}
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	tenantRepo portsrepo.TenantRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryWithTx,
	scheduleSvc portssvc.RentScheduleSvcFacade,
	options ...PaymentServiceOption,
) portssvc.PaymentSvcFacade {
	svc := &paymentService{tenantRepo: tenantRepo, ledgerRepo: ledgerRepo, scheduleSvc: scheduleSvc}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment records a payment bundle and optionally applies it
// (plus any existing credit) against unpaid rent periods.
//
// Steps: snapshot existing credit, write one adjustment entry per
// non-zero component plus the payment entry (shared bundle id), then —
// unless auto-apply is off — walk the unpaid periods oldest-first and
// pay each in full until funds no longer cover a whole period. The
// first period that cannot be fully covered stops the loop; funds are
// never applied out of order. Leftover funds simply remain as credit.
func (s *paymentService) RecordPayment(ctx context.Context, req dto.CreateTransactionRequest, creatorID string) (*dto.TransactionOutcome, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	txnDate, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed transaction date", apperrors.ErrValidation)
	}
	if _, err := s.tenantRepo.FindTenantByID(ctx, req.TenantID); err != nil {
		return nil, err
	}

	// Charges can be loaded outside the critical section: allocations
	// and rent schedules are not mutated by concurrent ledger writers.
	charges, err := s.scheduleSvc.TenantCharges(ctx, req.TenantID, domain.PeriodOf(s.clock()))
	if err != nil {
		return nil, err
	}

	now := s.clock()
	bundleID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorID,
	}

	newEntries := make([]domain.LedgerEntry, 0, 4)
	adjustments := []struct {
		amount  decimal.Decimal
		subtype domain.EntrySubtype
	}{
		{req.Discount, domain.SubtypeDiscount},
		{req.MaintenanceDeduction, domain.SubtypeMaintenance},
		{req.OtherAdjustment, domain.SubtypeOther},
	}
	adjustmentTotal := decimal.Zero
	for _, adj := range adjustments {
		if adj.amount.IsZero() {
			continue
		}
		adjustmentTotal = adjustmentTotal.Add(adj.amount)
		newEntries = append(newEntries, domain.LedgerEntry{
			EntryID:         uuid.NewString(),
			TenantID:        req.TenantID,
			EntryType:       domain.EntryAdjustment,
			Subtype:         adj.subtype,
			Amount:          adj.amount,
			BundleID:        bundleID,
			TransactionDate: txnDate,
			Notes:           req.Notes,
			AuditFields:     audit,
		})
	}

	paymentEntry := domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		TenantID:        req.TenantID,
		EntryType:       domain.EntryPayment,
		Amount:          req.Amount,
		BundleID:        bundleID,
		PaymentMethod:   req.Method,
		TransactionDate: txnDate,
		Notes:           req.Notes,
		AuditFields:     audit,
	}
	newEntries = append(newEntries, paymentEntry)

	outcome := &dto.TransactionOutcome{BundleID: bundleID, EntryID: paymentEntry.EntryID}

	err = s.ledgerRepo.WithTenantLock(ctx, req.TenantID, func(repo portsrepo.LedgerRepositoryFacade) error {
		entries, err := repo.FindEntriesByTenantID(ctx, req.TenantID)
		if err != nil {
			return fmt.Errorf("failed to load ledger entries: %w", err)
		}
		payments, err := repo.FindRentPaymentsByTenantID(ctx, req.TenantID)
		if err != nil {
			return fmt.Errorf("failed to load rent payments: %w", err)
		}

		existingCredit := rentmath.NetCredit(entries, payments)

		if !req.AutoApply() {
			outcome.RemainingCredit = existingCredit.Add(req.Amount).Add(adjustmentTotal)
			return repo.SaveBundle(ctx, newEntries, nil)
		}

		funds := existingCredit.Add(req.Amount).Add(adjustmentTotal)
		result := rentmath.AllocateFunds(charges, rentmath.PaidPeriodSet(payments), funds)

		newPayments := make([]domain.RentPayment, len(result.Paid))
		for i, c := range result.Paid {
			newPayments[i] = domain.RentPayment{
				RentPaymentID: uuid.NewString(),
				TenantID:      req.TenantID,
				Period:        c.Period,
				Amount:        c.Rent,
				EntryID:       paymentEntry.EntryID,
				AuditFields:   audit,
			}
			outcome.PeriodsPaid = append(outcome.PeriodsPaid, c.Period)
			outcome.AmountApplied = outcome.AmountApplied.Add(c.Rent)
		}
		outcome.RemainingCredit = result.Remaining

		return repo.SaveBundle(ctx, newEntries, newPayments)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record payment", slog.String("tenant_id", req.TenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("tenant_id", req.TenantID),
		slog.String("amount", req.Amount.String()),
		slog.Int("periods_paid", len(outcome.PeriodsPaid)),
		slog.String("remaining_credit", outcome.RemainingCredit.String()))
	return outcome, nil
}

// ApplyCredit runs the allocation loop funded purely from the tenant's
// existing credit. The request amount must not exceed that credit. A
// zero-amount credit marker entry timestamps the manual application;
// it neither adds nor removes credit.
func (s *paymentService) ApplyCredit(ctx context.Context, req dto.CreateTransactionRequest, creatorID string) (*dto.TransactionOutcome, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: credit amount must be positive", apperrors.ErrValidation)
	}
	txnDate, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed transaction date", apperrors.ErrValidation)
	}
	if _, err := s.tenantRepo.FindTenantByID(ctx, req.TenantID); err != nil {
		return nil, err
	}

	charges, err := s.scheduleSvc.TenantCharges(ctx, req.TenantID, domain.PeriodOf(s.clock()))
	if err != nil {
		return nil, err
	}

	now := s.clock()
	bundleID := uuid.NewString()
	marker := domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		TenantID:        req.TenantID,
		EntryType:       domain.EntryCredit,
		Amount:          decimal.Zero,
		BundleID:        bundleID,
		TransactionDate: txnDate,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	outcome := &dto.TransactionOutcome{BundleID: bundleID, EntryID: marker.EntryID}

	err = s.ledgerRepo.WithTenantLock(ctx, req.TenantID, func(repo portsrepo.LedgerRepositoryFacade) error {
		entries, err := repo.FindEntriesByTenantID(ctx, req.TenantID)
		if err != nil {
			return fmt.Errorf("failed to load ledger entries: %w", err)
		}
		payments, err := repo.FindRentPaymentsByTenantID(ctx, req.TenantID)
		if err != nil {
			return fmt.Errorf("failed to load rent payments: %w", err)
		}

		existingCredit := rentmath.NetCredit(entries, payments)
		if existingCredit.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: tenant has no unapplied credit", apperrors.ErrConflict)
		}
		if existingCredit.LessThan(req.Amount) {
			return fmt.Errorf("%w: requested %s exceeds available credit %s",
				apperrors.ErrConflict, req.Amount.String(), existingCredit.String())
		}

		result := rentmath.AllocateFunds(charges, rentmath.PaidPeriodSet(payments), req.Amount)

		newPayments := make([]domain.RentPayment, len(result.Paid))
		for i, c := range result.Paid {
			newPayments[i] = domain.RentPayment{
				RentPaymentID: uuid.NewString(),
				TenantID:      req.TenantID,
				Period:        c.Period,
				Amount:        c.Rent,
				EntryID:       marker.EntryID,
				AuditFields:   marker.AuditFields,
			}
			outcome.PeriodsPaid = append(outcome.PeriodsPaid, c.Period)
			outcome.AmountApplied = outcome.AmountApplied.Add(c.Rent)
		}
		outcome.RemainingCredit = existingCredit.Sub(outcome.AmountApplied)

		return repo.SaveBundle(ctx, []domain.LedgerEntry{marker}, newPayments)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to apply credit", slog.String("tenant_id", req.TenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Credit applied",
		slog.String("tenant_id", req.TenantID),
		slog.Int("periods_paid", len(outcome.PeriodsPaid)))
	return outcome, nil
}

// RecordAdjustment writes a standalone adjustment entry. No rent is
// allocated; the entry only shifts the credit future allocations see.
func (s *paymentService) RecordAdjustment(ctx context.Context, req dto.CreateTransactionRequest, creatorID string) (*dto.TransactionOutcome, error) {
	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: adjustment amount must be non-zero", apperrors.ErrValidation)
	}
	txnDate, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed transaction date", apperrors.ErrValidation)
	}
	if _, err := s.tenantRepo.FindTenantByID(ctx, req.TenantID); err != nil {
		return nil, err
	}

	subtype := domain.EntrySubtype(req.Subtype)
	if subtype == "" {
		subtype = domain.SubtypeOther
	}

	now := s.clock()
	entry := domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		TenantID:        req.TenantID,
		EntryType:       domain.EntryAdjustment,
		Subtype:         subtype,
		Amount:          req.Amount,
		BundleID:        uuid.NewString(),
		TransactionDate: txnDate,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	outcome := &dto.TransactionOutcome{BundleID: entry.BundleID, EntryID: entry.EntryID}

	err = s.ledgerRepo.WithTenantLock(ctx, req.TenantID, func(repo portsrepo.LedgerRepositoryFacade) error {
		entries, err := repo.FindEntriesByTenantID(ctx, req.TenantID)
		if err != nil {
			return fmt.Errorf("failed to load ledger entries: %w", err)
		}
		payments, err := repo.FindRentPaymentsByTenantID(ctx, req.TenantID)
		if err != nil {
			return fmt.Errorf("failed to load rent payments: %w", err)
		}
		outcome.RemainingCredit = rentmath.NetCredit(entries, payments).Add(req.Amount)
		return repo.SaveBundle(ctx, []domain.LedgerEntry{entry}, nil)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record adjustment", slog.String("tenant_id", req.TenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Adjustment recorded",
		slog.String("tenant_id", req.TenantID),
		slog.String("amount", req.Amount.String()),
		slog.String("subtype", string(subtype)))
	return outcome, nil
}
