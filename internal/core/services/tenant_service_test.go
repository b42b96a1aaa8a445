package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/apperrors"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	portssvc "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/services"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/services"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockTenantRepo *MockTenantRepository
	mockRoomRepo   *MockRoomRepository
	mockLedgerRepo *MockLedgerRepository
	mockRoomSvc    *MockRoomService
	service        portssvc.TenantSvcFacade

	tenantID   string
	roomID     string
	operatorID string
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.mockTenantRepo = new(MockTenantRepository)
	s.mockRoomRepo = new(MockRoomRepository)
	s.mockLedgerRepo = new(MockLedgerRepository)
	s.mockRoomSvc = new(MockRoomService)

	s.service = services.NewTenantService(
		s.mockTenantRepo,
		s.mockRoomRepo,
		s.mockLedgerRepo,
		s.mockRoomSvc,
	)

	s.tenantID = uuid.NewString()
	s.roomID = uuid.NewString()
	s.operatorID = uuid.NewString()
}

func (s *TenantServiceTestSuite) TestCreateTenant_WithoutOpeningDuesSkipsLedger() {
	ctx := context.Background()

	var saved domain.Tenant
	s.mockTenantRepo.On("SaveTenant", ctx, mock.AnythingOfType("domain.Tenant")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Tenant) }).
		Return(nil).Once()

	tenant, err := s.service.CreateTenant(ctx, dto.CreateTenantRequest{
		Name:  "Asha Verma",
		Phone: "9876543210",
	}, s.operatorID)

	s.Require().NoError(err)
	s.Equal("Asha Verma", tenant.Name)
	s.Equal("9876543210", tenant.Phone)
	s.Equal(tenant.TenantID, saved.TenantID)
	s.Equal(s.operatorID, saved.CreatedBy)

	s.mockTenantRepo.AssertExpectations(s.T())
	s.mockLedgerRepo.AssertNotCalled(s.T(), "WithTenantLock", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestCreateTenant_OpeningDuesRecordedAsNegativeEntry() {
	ctx := context.Background()

	s.mockTenantRepo.On("SaveTenant", ctx, mock.AnythingOfType("domain.Tenant")).Return(nil).Once()

	var savedEntries []domain.LedgerEntry
	s.mockLedgerRepo.On("WithTenantLock", ctx, mock.AnythingOfType("string")).Return(nil).Once()
	s.mockLedgerRepo.On("SaveBundle", ctx, mock.AnythingOfType("[]domain.LedgerEntry"), mock.Anything).
		Run(func(args mock.Arguments) { savedEntries = args.Get(1).([]domain.LedgerEntry) }).
		Return(nil).Once()

	tenant, err := s.service.CreateTenant(ctx, dto.CreateTenantRequest{
		Name:        "Ravi Kumar",
		OpeningDues: decimal.NewFromInt(9000),
	}, s.operatorID)

	s.Require().NoError(err)
	s.Require().Len(savedEntries, 1)
	entry := savedEntries[0]
	s.Equal(tenant.TenantID, entry.TenantID)
	s.Equal(domain.EntryOpeningBalance, entry.EntryType)
	s.Equal(domain.SubtypeOpeningBalance, entry.Subtype)
	s.True(entry.Amount.Equal(decimal.NewFromInt(-9000)), "opening dues should be banked as negative credit, got %s", entry.Amount)
	s.NotEmpty(entry.BundleID)

	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestCreateTenant_RejectsNegativeOpeningDues() {
	ctx := context.Background()

	tenant, err := s.service.CreateTenant(ctx, dto.CreateTenantRequest{
		Name:        "Ravi Kumar",
		OpeningDues: decimal.NewFromInt(-100),
	}, s.operatorID)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.Nil(tenant)
	s.mockTenantRepo.AssertNotCalled(s.T(), "SaveTenant", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestAllocateRoom_Succeeds() {
	ctx := context.Background()

	s.mockTenantRepo.On("FindTenantByID", ctx, s.tenantID).Return(&domain.Tenant{TenantID: s.tenantID}, nil).Once()
	s.mockRoomRepo.On("FindRoomByID", ctx, s.roomID).Return(&domain.Room{RoomID: s.roomID}, nil).Once()
	s.mockTenantRepo.On("FindOpenAllocationByRoomID", ctx, s.roomID).Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.TenantRoomAllocation
	s.mockTenantRepo.On("SaveAllocation", ctx, mock.AnythingOfType("domain.TenantRoomAllocation")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.TenantRoomAllocation) }).
		Return(nil).Once()

	allocation, err := s.service.AllocateRoom(ctx, s.tenantID, dto.AllocateRoomRequest{
		RoomID:     s.roomID,
		MoveInDate: "2024-04-12",
	}, s.operatorID)

	s.Require().NoError(err)
	s.Equal(s.tenantID, allocation.TenantID)
	s.Equal(s.roomID, allocation.RoomID)
	s.Equal(time.Date(2024, time.April, 12, 0, 0, 0, 0, time.UTC), allocation.MoveInDate)
	s.Nil(allocation.MoveOutDate)
	s.Equal(allocation.AllocationID, saved.AllocationID)

	s.mockRoomSvc.AssertNotCalled(s.T(), "UpdateRoomRent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestAllocateRoom_RejectsOccupiedRoom() {
	ctx := context.Background()

	s.mockTenantRepo.On("FindTenantByID", ctx, s.tenantID).Return(&domain.Tenant{TenantID: s.tenantID}, nil).Once()
	s.mockRoomRepo.On("FindRoomByID", ctx, s.roomID).Return(&domain.Room{RoomID: s.roomID}, nil).Once()
	s.mockTenantRepo.On("FindOpenAllocationByRoomID", ctx, s.roomID).
		Return(&domain.TenantRoomAllocation{AllocationID: uuid.NewString(), RoomID: s.roomID, TenantID: uuid.NewString()}, nil).Once()

	allocation, err := s.service.AllocateRoom(ctx, s.tenantID, dto.AllocateRoomRequest{
		RoomID:     s.roomID,
		MoveInDate: "2024-04-12",
	}, s.operatorID)

	s.Require().ErrorIs(err, apperrors.ErrConflict)
	s.Nil(allocation)
	s.mockTenantRepo.AssertNotCalled(s.T(), "SaveAllocation", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestAllocateRoom_WithRentSchedulesUpdate() {
	ctx := context.Background()

	s.mockTenantRepo.On("FindTenantByID", ctx, s.tenantID).Return(&domain.Tenant{TenantID: s.tenantID}, nil).Once()
	s.mockRoomRepo.On("FindRoomByID", ctx, s.roomID).Return(&domain.Room{RoomID: s.roomID}, nil).Once()
	s.mockTenantRepo.On("FindOpenAllocationByRoomID", ctx, s.roomID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockTenantRepo.On("SaveAllocation", ctx, mock.AnythingOfType("domain.TenantRoomAllocation")).Return(nil).Once()

	rent := decimal.NewFromInt(6500)
	effective := "2024-05-01"
	s.mockRoomSvc.On("UpdateRoomRent", ctx, s.roomID, dto.UpdateRoomRentRequest{
		NewRent:       rent,
		EffectiveFrom: effective,
	}, s.operatorID).Return(&domain.RentUpdate{RoomID: s.roomID, NewAmount: rent}, nil).Once()

	allocation, err := s.service.AllocateRoom(ctx, s.tenantID, dto.AllocateRoomRequest{
		RoomID:            s.roomID,
		MoveInDate:        "2024-04-12",
		Rent:              &rent,
		RentEffectiveFrom: &effective,
	}, s.operatorID)

	s.Require().NoError(err)
	s.NotNil(allocation)
	s.mockRoomSvc.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestAllocateRoom_RentDefaultsToMoveInDate() {
	ctx := context.Background()

	s.mockTenantRepo.On("FindTenantByID", ctx, s.tenantID).Return(&domain.Tenant{TenantID: s.tenantID}, nil).Once()
	s.mockRoomRepo.On("FindRoomByID", ctx, s.roomID).Return(&domain.Room{RoomID: s.roomID}, nil).Once()
	s.mockTenantRepo.On("FindOpenAllocationByRoomID", ctx, s.roomID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockTenantRepo.On("SaveAllocation", ctx, mock.AnythingOfType("domain.TenantRoomAllocation")).Return(nil).Once()

	rent := decimal.NewFromInt(6500)
	s.mockRoomSvc.On("UpdateRoomRent", ctx, s.roomID, dto.UpdateRoomRentRequest{
		NewRent:       rent,
		EffectiveFrom: "2024-04-12",
	}, s.operatorID).Return(&domain.RentUpdate{RoomID: s.roomID, NewAmount: rent}, nil).Once()

	_, err := s.service.AllocateRoom(ctx, s.tenantID, dto.AllocateRoomRequest{
		RoomID:     s.roomID,
		MoveInDate: "2024-04-12",
		Rent:       &rent,
	}, s.operatorID)

	s.Require().NoError(err)
	s.mockRoomSvc.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestAllocateRoom_AllocationStandsWhenRentUpdateFails() {
	ctx := context.Background()

	s.mockTenantRepo.On("FindTenantByID", ctx, s.tenantID).Return(&domain.Tenant{TenantID: s.tenantID}, nil).Once()
	s.mockRoomRepo.On("FindRoomByID", ctx, s.roomID).Return(&domain.Room{RoomID: s.roomID}, nil).Once()
	s.mockTenantRepo.On("FindOpenAllocationByRoomID", ctx, s.roomID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockTenantRepo.On("SaveAllocation", ctx, mock.AnythingOfType("domain.TenantRoomAllocation")).Return(nil).Once()

	rent := decimal.NewFromInt(6500)
	s.mockRoomSvc.On("UpdateRoomRent", ctx, s.roomID, mock.AnythingOfType("dto.UpdateRoomRentRequest"), s.operatorID).
		Return(nil, apperrors.ErrConflict).Once()

	allocation, err := s.service.AllocateRoom(ctx, s.tenantID, dto.AllocateRoomRequest{
		RoomID:     s.roomID,
		MoveInDate: "2024-04-12",
		Rent:       &rent,
	}, s.operatorID)

	s.Require().ErrorIs(err, apperrors.ErrConflict)
	s.Require().NotNil(allocation, "the saved allocation is returned even when the rent change is rejected")
	s.Equal(s.roomID, allocation.RoomID)
}

func (s *TenantServiceTestSuite) TestAllocateRoom_RejectsMalformedMoveInDate() {
	ctx := context.Background()

	_, err := s.service.AllocateRoom(ctx, s.tenantID, dto.AllocateRoomRequest{
		RoomID:     s.roomID,
		MoveInDate: "12-04-2024",
	}, s.operatorID)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockTenantRepo.AssertNotCalled(s.T(), "FindTenantByID", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestVacate_ClosesOpenAllocation() {
	ctx := context.Background()
	allocationID := uuid.NewString()
	moveIn := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)

	s.mockTenantRepo.On("FindOpenAllocationByRoomID", ctx, s.roomID).
		Return(&domain.TenantRoomAllocation{
			AllocationID: allocationID,
			TenantID:     s.tenantID,
			RoomID:       s.roomID,
			MoveInDate:   moveIn,
		}, nil).Once()

	moveOut := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	s.mockTenantRepo.On("CloseAllocation", ctx, allocationID, moveOut, s.operatorID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	allocation, err := s.service.Vacate(ctx, s.tenantID, dto.VacateRequest{
		RoomID:      s.roomID,
		MoveOutDate: "2024-06-30",
	}, s.operatorID)

	s.Require().NoError(err)
	s.Require().NotNil(allocation.MoveOutDate)
	s.Equal(moveOut, *allocation.MoveOutDate)
	s.mockTenantRepo.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestVacate_RejectsWrongTenant() {
	ctx := context.Background()

	s.mockTenantRepo.On("FindOpenAllocationByRoomID", ctx, s.roomID).
		Return(&domain.TenantRoomAllocation{
			AllocationID: uuid.NewString(),
			TenantID:     uuid.NewString(),
			RoomID:       s.roomID,
			MoveInDate:   time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		}, nil).Once()

	_, err := s.service.Vacate(ctx, s.tenantID, dto.VacateRequest{
		RoomID:      s.roomID,
		MoveOutDate: "2024-06-30",
	}, s.operatorID)

	s.Require().ErrorIs(err, apperrors.ErrConflict)
	s.mockTenantRepo.AssertNotCalled(s.T(), "CloseAllocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestVacate_RejectsMoveOutBeforeMoveIn() {
	ctx := context.Background()

	s.mockTenantRepo.On("FindOpenAllocationByRoomID", ctx, s.roomID).
		Return(&domain.TenantRoomAllocation{
			AllocationID: uuid.NewString(),
			TenantID:     s.tenantID,
			RoomID:       s.roomID,
			MoveInDate:   time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		}, nil).Once()

	_, err := s.service.Vacate(ctx, s.tenantID, dto.VacateRequest{
		RoomID:      s.roomID,
		MoveOutDate: "2024-06-30",
	}, s.operatorID)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockTenantRepo.AssertNotCalled(s.T(), "CloseAllocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTenantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}
