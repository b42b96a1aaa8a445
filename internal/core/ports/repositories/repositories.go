package ports

import (
	"context"
	"time"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
)

// RoomRepositoryFacade defines persistence operations for rooms and
// their rent schedules.
type RoomRepositoryFacade interface {
	SaveRoom(ctx context.Context, room domain.Room) error
	FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error)
	FindRoomsByIDs(ctx context.Context, roomIDs []string) (map[string]domain.Room, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)

	// SaveRentUpdate returns apperrors.ErrDuplicate when an update with
	// the same (room, effective period) already exists.
	SaveRentUpdate(ctx context.Context, update domain.RentUpdate) error
	FindRentUpdatesByRoomID(ctx context.Context, roomID string) ([]domain.RentUpdate, error)
	FindRentUpdatesByRoomIDs(ctx context.Context, roomIDs []string) (map[string][]domain.RentUpdate, error)
}

// TenantRepositoryFacade defines persistence operations for tenants and
// their room allocations.
type TenantRepositoryFacade interface {
	SaveTenant(ctx context.Context, tenant domain.Tenant) error
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
	ListTenants(ctx context.Context) ([]domain.Tenant, error)

	SaveAllocation(ctx context.Context, allocation domain.TenantRoomAllocation) error
	CloseAllocation(ctx context.Context, allocationID string, moveOut time.Time, updatedBy string, updatedAt time.Time) error
	FindAllocationsByTenantID(ctx context.Context, tenantID string) ([]domain.TenantRoomAllocation, error)
	FindOpenAllocationByRoomID(ctx context.Context, roomID string) (*domain.TenantRoomAllocation, error)
	FindOpenAllocations(ctx context.Context) ([]domain.TenantRoomAllocation, error)
}

// LedgerRepositoryFacade defines persistence operations for ledger
// entries, rent payments and rollback records.
type LedgerRepositoryFacade interface {
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)
	FindEntriesByTenantID(ctx context.Context, tenantID string) ([]domain.LedgerEntry, error)
	FindEntriesByBundleID(ctx context.Context, bundleID string) ([]domain.LedgerEntry, error)
	ListEntriesByTenantID(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)

	// SaveBundle atomically persists the ledger entries of one logical
	// transaction together with the rent payments they fund.
	SaveBundle(ctx context.Context, entries []domain.LedgerEntry, payments []domain.RentPayment) error

	FindRentPaymentsByTenantID(ctx context.Context, tenantID string) ([]domain.RentPayment, error)
	FindRentPaymentsByEntryIDs(ctx context.Context, entryIDs []string) ([]domain.RentPayment, error)
	FindRentPaymentsInRange(ctx context.Context, from, through domain.Period) ([]domain.RentPayment, error)

	DeleteRentPayments(ctx context.Context, paymentIDs []string) error
	DeleteEntries(ctx context.Context, entryIDs []string) error

	SaveRollbackRecord(ctx context.Context, record domain.RollbackRecord) error
	FindRollbackRecordByEntryID(ctx context.Context, entryID string) (*domain.RollbackRecord, error)

	// AggregateCashTotals computes the global collections/expenses/
	// withdrawals/adjustments aggregates the operator balance derives from.
	AggregateCashTotals(ctx context.Context) (domain.CashTotals, error)
}

// LedgerRepositoryWithTx augments the ledger repository with a
// per-tenant critical section. WithTenantLock runs fn against a
// transaction-bound repository after locking the tenant's row, so the
// read-snapshot-then-write sequence of the payment allocator cannot
// interleave with a concurrent writer for the same tenant. The whole
// fn is committed or rolled back as one unit.
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	WithTenantLock(ctx context.Context, tenantID string, fn func(repo LedgerRepositoryFacade) error) error
}

// CashbookRepositoryFacade defines persistence for operator cash events.
type CashbookRepositoryFacade interface {
	SaveCashEvent(ctx context.Context, event domain.CashEvent) error
	ListCashEvents(ctx context.Context, limit int, nextToken *string) ([]domain.CashEvent, *string, error)
	AggregateCashTotals(ctx context.Context) (domain.CashTotals, error)
}

// OperatorRepositoryFacade defines persistence for operator accounts.
type OperatorRepositoryFacade interface {
	SaveOperator(ctx context.Context, operator domain.Operator) error
	FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error)
	FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error)
}

// RepositoryProvider bundles the concrete repositories for injection.
type RepositoryProvider struct {
	RoomRepo     RoomRepositoryFacade
	TenantRepo   TenantRepositoryFacade
	LedgerRepo   LedgerRepositoryWithTx
	CashbookRepo CashbookRepositoryFacade
	OperatorRepo OperatorRepositoryFacade
}
