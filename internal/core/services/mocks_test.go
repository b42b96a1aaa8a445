package services_test

import (
	"context"
	"time"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	portsrepo "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/repositories"
	portssvc "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/services"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock RoomRepository ---

type MockRoomRepository struct {
	mock.Mock
}

var _ portsrepo.RoomRepositoryFacade = (*MockRoomRepository)(nil)

func (m *MockRoomRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) FindRoomsByIDs(ctx context.Context, roomIDs []string) (map[string]domain.Room, error) {
	args := m.Called(ctx, roomIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) SaveRentUpdate(ctx context.Context, update domain.RentUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *MockRoomRepository) FindRentUpdatesByRoomID(ctx context.Context, roomID string) ([]domain.RentUpdate, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentUpdate), args.Error(1)
}

func (m *MockRoomRepository) FindRentUpdatesByRoomIDs(ctx context.Context, roomIDs []string) (map[string][]domain.RentUpdate, error) {
	args := m.Called(ctx, roomIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.RentUpdate), args.Error(1)
}

// --- Mock TenantRepository ---

type MockTenantRepository struct {
	mock.Mock
}

var _ portsrepo.TenantRepositoryFacade = (*MockTenantRepository)(nil)

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) SaveAllocation(ctx context.Context, allocation domain.TenantRoomAllocation) error {
	args := m.Called(ctx, allocation)
	return args.Error(0)
}

func (m *MockTenantRepository) CloseAllocation(ctx context.Context, allocationID string, moveOut time.Time, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, allocationID, moveOut, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockTenantRepository) FindAllocationsByTenantID(ctx context.Context, tenantID string) ([]domain.TenantRoomAllocation, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TenantRoomAllocation), args.Error(1)
}

func (m *MockTenantRepository) FindOpenAllocationByRoomID(ctx context.Context, roomID string) (*domain.TenantRoomAllocation, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantRoomAllocation), args.Error(1)
}

func (m *MockTenantRepository) FindOpenAllocations(ctx context.Context) ([]domain.TenantRoomAllocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TenantRoomAllocation), args.Error(1)
}

// --- Mock LedgerRepository ---

// MockLedgerRepository implements LedgerRepositoryWithTx. WithTenantLock
// runs fn against the mock itself, so expectations set on it cover both
// in-lock and out-of-lock calls.
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryWithTx = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindEntriesByTenantID(ctx context.Context, tenantID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindEntriesByBundleID(ctx context.Context, bundleID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, bundleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntriesByTenantID(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, tenantID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedToken = &tokenVal
	}
	return args.Get(0).([]domain.LedgerEntry), returnedToken, args.Error(2)
}

func (m *MockLedgerRepository) SaveBundle(ctx context.Context, entries []domain.LedgerEntry, payments []domain.RentPayment) error {
	args := m.Called(ctx, entries, payments)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindRentPaymentsByTenantID(ctx context.Context, tenantID string) ([]domain.RentPayment, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentPayment), args.Error(1)
}

func (m *MockLedgerRepository) FindRentPaymentsByEntryIDs(ctx context.Context, entryIDs []string) ([]domain.RentPayment, error) {
	args := m.Called(ctx, entryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentPayment), args.Error(1)
}

func (m *MockLedgerRepository) FindRentPaymentsInRange(ctx context.Context, from, through domain.Period) ([]domain.RentPayment, error) {
	args := m.Called(ctx, from, through)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentPayment), args.Error(1)
}

func (m *MockLedgerRepository) DeleteRentPayments(ctx context.Context, paymentIDs []string) error {
	args := m.Called(ctx, paymentIDs)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteEntries(ctx context.Context, entryIDs []string) error {
	args := m.Called(ctx, entryIDs)
	return args.Error(0)
}

func (m *MockLedgerRepository) SaveRollbackRecord(ctx context.Context, record domain.RollbackRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindRollbackRecordByEntryID(ctx context.Context, entryID string) (*domain.RollbackRecord, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RollbackRecord), args.Error(1)
}

func (m *MockLedgerRepository) AggregateCashTotals(ctx context.Context) (domain.CashTotals, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CashTotals), args.Error(1)
}

func (m *MockLedgerRepository) WithTenantLock(ctx context.Context, tenantID string, fn func(repo portsrepo.LedgerRepositoryFacade) error) error {
	args := m.Called(ctx, tenantID)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}

// --- Mock RentScheduleService ---

type MockRentScheduleService struct {
	mock.Mock
}

var _ portssvc.RentScheduleSvcFacade = (*MockRentScheduleService)(nil)

func (m *MockRentScheduleService) ResolveRent(ctx context.Context, roomID string, period domain.Period) (decimal.Decimal, error) {
	args := m.Called(ctx, roomID, period)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRentScheduleService) TenantCharges(ctx context.Context, tenantID string, through domain.Period) ([]domain.PeriodCharge, error) {
	args := m.Called(ctx, tenantID, through)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PeriodCharge), args.Error(1)
}

// --- Mock RoomService ---

type MockRoomService struct {
	mock.Mock
}

var _ portssvc.RoomSvcFacade = (*MockRoomService)(nil)

func (m *MockRoomService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest, creatorID string) (*domain.Room, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) GetRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) ListRooms(ctx context.Context) ([]dto.RoomResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RoomResponse), args.Error(1)
}

func (m *MockRoomService) UpdateRoomRent(ctx context.Context, roomID string, req dto.UpdateRoomRentRequest, creatorID string) (*domain.RentUpdate, error) {
	args := m.Called(ctx, roomID, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentUpdate), args.Error(1)
}

func (m *MockRoomService) RentHistory(ctx context.Context, roomID string) ([]domain.RentUpdate, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentUpdate), args.Error(1)
}

// --- Mock OperatorRepository ---

type MockOperatorRepository struct {
	mock.Mock
}

var _ portsrepo.OperatorRepositoryFacade = (*MockOperatorRepository)(nil)

func (m *MockOperatorRepository) SaveOperator(ctx context.Context, operator domain.Operator) error {
	args := m.Called(ctx, operator)
	return args.Error(0)
}

func (m *MockOperatorRepository) FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorRepository) FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

// --- Mock CashbookRepository ---

type MockCashbookRepository struct {
	mock.Mock
}

var _ portsrepo.CashbookRepositoryFacade = (*MockCashbookRepository)(nil)

func (m *MockCashbookRepository) SaveCashEvent(ctx context.Context, event domain.CashEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockCashbookRepository) ListCashEvents(ctx context.Context, limit int, nextToken *string) ([]domain.CashEvent, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedToken = &tokenVal
	}
	return args.Get(0).([]domain.CashEvent), returnedToken, args.Error(2)
}

func (m *MockCashbookRepository) AggregateCashTotals(ctx context.Context) (domain.CashTotals, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CashTotals), args.Error(1)
}
