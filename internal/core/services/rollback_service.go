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
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/utils/rentmath"
)

// rollbackService reverses payment bundles. A rollback deletes the
// bundle's ledger entries and the rent payments they funded, then writes
// an immutable audit record containing the deleted rows and the operator
// cash balance before and after. Delete and audit commit together.
type rollbackService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryWithTx
}

// RollbackServiceOption configures a rollback service.
type RollbackServiceOption func(*rollbackService)

// WithRollbackClock overrides the clock used to stamp rollback records.
func WithRollbackClock(now func() time.Time) RollbackServiceOption {
	return func(s *rollbackService) {
		s.now = now
	}
}

// NewRollbackService creates a new RollbackService.
func NewRollbackService(ledgerRepo portsrepo.LedgerRepositoryWithTx, options ...RollbackServiceOption) portssvc.RollbackSvcFacade {
	svc := &rollbackService{ledgerRepo: ledgerRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RollbackSvcFacade = (*rollbackService)(nil)

// rollbackScope is everything a rollback of one target entry touches.
type rollbackScope struct {
	target   domain.LedgerEntry
	entries  []domain.LedgerEntry // all entries sharing the target's bundle
	payments []domain.RentPayment // rent payments funded by those entries
}

func (s *rollbackService) loadScope(ctx context.Context, repo portsrepo.LedgerRepositoryFacade, ledgerID string) (*rollbackScope, error) {
	target, err := repo.FindEntryByID(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	entries, err := repo.FindEntriesByBundleID(ctx, target.BundleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bundle entries: %w", err)
	}
	entryIDs := make([]string, len(entries))
	for i, e := range entries {
		entryIDs[i] = e.EntryID
	}
	payments, err := repo.FindRentPaymentsByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load funded rent payments: %w", err)
	}
	return &rollbackScope{target: *target, entries: entries, payments: payments}, nil
}

func (sc *rollbackScope) details() *domain.RollbackDetails {
	d := &domain.RollbackDetails{
		TenantID:        sc.target.TenantID,
		BundleID:        sc.target.BundleID,
		EntryCount:      len(sc.entries),
		RentTotal:       decimal.Zero,
		AdjustmentTotal: decimal.Zero,
		PaymentAmount:   decimal.Zero,
	}
	for _, p := range sc.payments {
		d.PeriodsAffected = append(d.PeriodsAffected, p.Period)
		d.RentTotal = d.RentTotal.Add(p.Amount)
	}
	for _, e := range sc.entries {
		switch e.EntryType {
		case domain.EntryAdjustment:
			d.AdjustmentTotal = d.AdjustmentTotal.Add(e.Amount)
		case domain.EntryPayment:
			d.PaymentAmount = d.PaymentAmount.Add(e.Amount)
		}
	}
	return d
}

// ValidateRollback runs the pre-flight checks for reversing the bundle
// containing the given ledger entry. Errors block execution; a warning
// is raised when later history already spent the bundle's credit, since
// removing it would leave the tenant's remaining ledger over-allocated.
func (s *rollbackService) ValidateRollback(ctx context.Context, ledgerID string) (*domain.RollbackValidation, error) {
	scope, err := s.loadScope(ctx, s.ledgerRepo, ledgerID)
	if err != nil {
		return nil, err
	}

	validation := &domain.RollbackValidation{CanRollback: true, Details: scope.details()}

	switch scope.target.EntryType {
	case domain.EntryPayment:
	case domain.EntryOpeningBalance:
		validation.CanRollback = false
		validation.Errors = append(validation.Errors, "opening balance entries cannot be rolled back")
	default:
		// Credit markers and standalone adjustments are not refundable
		// bundles; reversing them takes a compensating adjustment.
		validation.CanRollback = false
		validation.Errors = append(validation.Errors, fmt.Sprintf("only payment entries can be rolled back; entry is of type %s", scope.target.EntryType))
	}

	if existing, err := s.ledgerRepo.FindRollbackRecordByEntryID(ctx, ledgerID); err != nil {
		if !isNotFound(err) {
			return nil, err
		}
	} else if existing != nil {
		validation.CanRollback = false
		validation.Errors = append(validation.Errors, "entry has already been rolled back")
	}

	warning, err := s.overdrawWarning(ctx, s.ledgerRepo, scope)
	if err != nil {
		return nil, err
	}
	if warning != "" {
		validation.Warnings = append(validation.Warnings, warning)
	}

	return validation, nil
}

// overdrawWarning reports whether deleting the scope would drive the
// tenant's net credit negative, meaning periods paid by later bundles
// leaned on funds that are about to disappear.
func (s *rollbackService) overdrawWarning(ctx context.Context, repo portsrepo.LedgerRepositoryFacade, scope *rollbackScope) (string, error) {
	entries, err := repo.FindEntriesByTenantID(ctx, scope.target.TenantID)
	if err != nil {
		return "", fmt.Errorf("failed to load ledger entries: %w", err)
	}
	payments, err := repo.FindRentPaymentsByTenantID(ctx, scope.target.TenantID)
	if err != nil {
		return "", fmt.Errorf("failed to load rent payments: %w", err)
	}

	deletedEntries := make(map[string]struct{}, len(scope.entries))
	for _, e := range scope.entries {
		deletedEntries[e.EntryID] = struct{}{}
	}
	deletedPayments := make(map[string]struct{}, len(scope.payments))
	for _, p := range scope.payments {
		deletedPayments[p.RentPaymentID] = struct{}{}
	}

	remainingEntries := make([]domain.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if _, gone := deletedEntries[e.EntryID]; !gone {
			remainingEntries = append(remainingEntries, e)
		}
	}
	remainingPayments := make([]domain.RentPayment, 0, len(payments))
	for _, p := range payments {
		if _, gone := deletedPayments[p.RentPaymentID]; !gone {
			remainingPayments = append(remainingPayments, p)
		}
	}

	if deficit := rentmath.NetCredit(remainingEntries, remainingPayments); deficit.IsNegative() {
		return fmt.Sprintf("remaining ledger would be short by %s: rent consumed by later transactions exceeds remaining funds", deficit.Neg().String()), nil
	}
	return "", nil
}

// ExecuteRollback reverses the bundle containing the given ledger entry.
// Inside the tenant's critical section it re-runs validation against
// fresh state, deletes the bundle's entries and funded rent payments,
// and writes the audit record — all in one transaction.
func (s *rollbackService) ExecuteRollback(ctx context.Context, ledgerID, reason, actorID string) (*domain.RollbackResult, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: rollback reason is required", apperrors.ErrValidation)
	}

	// Resolve the tenant outside the lock; everything else re-reads inside.
	target, err := s.ledgerRepo.FindEntryByID(ctx, ledgerID)
	if err != nil {
		return nil, err
	}

	var result *domain.RollbackResult
	err = s.ledgerRepo.WithTenantLock(ctx, target.TenantID, func(repo portsrepo.LedgerRepositoryFacade) error {
		scope, err := s.loadScope(ctx, repo, ledgerID)
		if err != nil {
			return err
		}
		switch scope.target.EntryType {
		case domain.EntryPayment:
		case domain.EntryOpeningBalance:
			return fmt.Errorf("%w: opening balance entries cannot be rolled back", apperrors.ErrConflict)
		default:
			return fmt.Errorf("%w: only payment entries can be rolled back; entry is of type %s", apperrors.ErrConflict, scope.target.EntryType)
		}
		if existing, err := repo.FindRollbackRecordByEntryID(ctx, ledgerID); err != nil {
			if !isNotFound(err) {
				return err
			}
		} else if existing != nil {
			return fmt.Errorf("%w: entry has already been rolled back", apperrors.ErrConflict)
		}

		warning, err := s.overdrawWarning(ctx, repo, scope)
		if err != nil {
			return err
		}
		if warning != "" {
			s.LogWarn(ctx, "Rolling back over-allocated bundle",
				slog.String("entry_id", ledgerID),
				slog.String("detail", warning))
		}

		totalsBefore, err := repo.AggregateCashTotals(ctx)
		if err != nil {
			return fmt.Errorf("failed to snapshot cash balance: %w", err)
		}

		details := scope.details()

		entryIDs := make([]string, len(scope.entries))
		for i, e := range scope.entries {
			entryIDs[i] = e.EntryID
		}
		paymentIDs := make([]string, len(scope.payments))
		for i, p := range scope.payments {
			paymentIDs[i] = p.RentPaymentID
		}

		if err := repo.DeleteRentPayments(ctx, paymentIDs); err != nil {
			return fmt.Errorf("failed to delete rent payments: %w", err)
		}
		if err := repo.DeleteEntries(ctx, entryIDs); err != nil {
			return fmt.Errorf("failed to delete ledger entries: %w", err)
		}

		totalsAfter, err := repo.AggregateCashTotals(ctx)
		if err != nil {
			return fmt.Errorf("failed to snapshot cash balance: %w", err)
		}

		record := domain.RollbackRecord{
			RollbackID:            uuid.NewString(),
			RollbackType:          "payment",
			TenantID:              scope.target.TenantID,
			EntryID:               ledgerID,
			DeletedEntries:        scope.entries,
			DeletedPayments:       scope.payments,
			PeriodsAffected:       details.PeriodsAffected,
			RentRolledBack:        details.RentTotal,
			AdjustmentsRolledBack: details.AdjustmentTotal,
			BalanceBefore:         totalsBefore.Balance(),
			BalanceAfter:          totalsAfter.Balance(),
			Reason:                reason,
			ActorID:               actorID,
			CreatedAt:             s.clock(),
		}
		if err := repo.SaveRollbackRecord(ctx, record); err != nil {
			return fmt.Errorf("failed to save rollback record: %w", err)
		}

		result = &domain.RollbackResult{
			RollbackID:      record.RollbackID,
			PeriodsAffected: record.PeriodsAffected,
			AmountRefunded:  details.PaymentAmount,
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to execute rollback", slog.String("entry_id", ledgerID))
		return nil, err
	}

	s.LogInfo(ctx, "Rollback executed",
		slog.String("rollback_id", result.RollbackID),
		slog.String("tenant_id", target.TenantID),
		slog.String("amount_refunded", result.AmountRefunded.String()),
		slog.Int("periods_affected", len(result.PeriodsAffected)))
	return result, nil
}
