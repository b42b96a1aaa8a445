package ports

import (
	"context"
	"time"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/dto"
	"github.com/shopspring/decimal"
)

// RentScheduleSvcFacade resolves effective rents and enumerates the
// billing periods a tenant owes.
type RentScheduleSvcFacade interface {
	// ResolveRent returns the rent effective for a room in a period,
	// honoring the room's rent update history.
	ResolveRent(ctx context.Context, roomID string, period domain.Period) (decimal.Decimal, error)

	// TenantCharges returns the tenant's owed periods with resolved
	// rents, ascending, from the earliest move-in through the given
	// period.
	TenantCharges(ctx context.Context, tenantID string, through domain.Period) ([]domain.PeriodCharge, error)
}

// BalanceSvcFacade computes tenant balances by replaying ledger history.
type BalanceSvcFacade interface {
	BalanceAsOf(ctx context.Context, tenantID string, cutoffDate, cutoffCreatedAt time.Time) (*domain.BalanceSnapshot, error)
	CurrentBalance(ctx context.Context, tenantID string) (*domain.BalanceSnapshot, error)
	UnpaidRent(ctx context.Context, tenantID string) (decimal.Decimal, []domain.PeriodCharge, error)
	LedgerHistory(ctx context.Context, tenantID string, limit int, nextToken *string) (*dto.ListLedgerResponse, error)
}

// PaymentSvcFacade is the payment allocator: the only write path into a
// tenant's ledger apart from rollbacks.
type PaymentSvcFacade interface {
	RecordPayment(ctx context.Context, req dto.CreateTransactionRequest, creatorID string) (*dto.TransactionOutcome, error)
	ApplyCredit(ctx context.Context, req dto.CreateTransactionRequest, creatorID string) (*dto.TransactionOutcome, error)
	RecordAdjustment(ctx context.Context, req dto.CreateTransactionRequest, creatorID string) (*dto.TransactionOutcome, error)
}

// RollbackSvcFacade reverses payment bundles with a full audit trail.
type RollbackSvcFacade interface {
	ValidateRollback(ctx context.Context, ledgerID string) (*domain.RollbackValidation, error)
	ExecuteRollback(ctx context.Context, ledgerID, reason, actorID string) (*domain.RollbackResult, error)
}
