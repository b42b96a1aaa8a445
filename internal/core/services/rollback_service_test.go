package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/apperrors"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	portssvc "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/services"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RollbackServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	service        portssvc.RollbackSvcFacade

	tenantID string
	actorID  string
	now      time.Time

	// One payment bundle: a 12000 payment plus a 1000 discount, funding
	// January and February at 6000 each (1000 left as credit).
	paymentEntry  domain.LedgerEntry
	discountEntry domain.LedgerEntry
	bundleEntries []domain.LedgerEntry
	fundedRows    []domain.RentPayment
}

func (s *RollbackServiceTestSuite) SetupTest() {
	s.mockLedgerRepo = new(MockLedgerRepository)
	s.now = time.Date(2024, time.April, 2, 9, 0, 0, 0, time.UTC)
	s.service = services.NewRollbackService(
		s.mockLedgerRepo,
		services.WithRollbackClock(func() time.Time { return s.now }),
	)

	s.tenantID = uuid.NewString()
	s.actorID = uuid.NewString()

	bundleID := uuid.NewString()
	s.paymentEntry = domain.LedgerEntry{
		EntryID:   uuid.NewString(),
		TenantID:  s.tenantID,
		EntryType: domain.EntryPayment,
		Amount:    decimal.NewFromInt(12000),
		BundleID:  bundleID,
	}
	s.discountEntry = domain.LedgerEntry{
		EntryID:   uuid.NewString(),
		TenantID:  s.tenantID,
		EntryType: domain.EntryAdjustment,
		Subtype:   domain.SubtypeDiscount,
		Amount:    decimal.NewFromInt(1000),
		BundleID:  bundleID,
	}
	s.bundleEntries = []domain.LedgerEntry{s.discountEntry, s.paymentEntry}
	s.fundedRows = []domain.RentPayment{
		{
			RentPaymentID: uuid.NewString(),
			TenantID:      s.tenantID,
			Period:        domain.Period{Year: 2024, Month: time.January},
			Amount:        decimal.NewFromInt(6000),
			EntryID:       s.paymentEntry.EntryID,
		},
		{
			RentPaymentID: uuid.NewString(),
			TenantID:      s.tenantID,
			Period:        domain.Period{Year: 2024, Month: time.February},
			Amount:        decimal.NewFromInt(6000),
			EntryID:       s.paymentEntry.EntryID,
		},
	}
}

func (s *RollbackServiceTestSuite) expectScope(ctx context.Context) {
	s.mockLedgerRepo.On("FindEntryByID", ctx, s.paymentEntry.EntryID).Return(&s.paymentEntry, nil)
	s.mockLedgerRepo.On("FindEntriesByBundleID", ctx, s.paymentEntry.BundleID).Return(s.bundleEntries, nil)
	s.mockLedgerRepo.On("FindRentPaymentsByEntryIDs", ctx, mock.AnythingOfType("[]string")).Return(s.fundedRows, nil)
}

func (s *RollbackServiceTestSuite) TestValidateRollback_ReportsDetails() {
	ctx := context.Background()
	s.expectScope(ctx)
	s.mockLedgerRepo.On("FindRollbackRecordByEntryID", ctx, s.paymentEntry.EntryID).Return(nil, apperrors.ErrNotFound).Once()
	// The whole ledger is just this bundle; removing it leaves nothing owed.
	s.mockLedgerRepo.On("FindEntriesByTenantID", ctx, s.tenantID).Return(s.bundleEntries, nil).Once()
	s.mockLedgerRepo.On("FindRentPaymentsByTenantID", ctx, s.tenantID).Return(s.fundedRows, nil).Once()

	validation, err := s.service.ValidateRollback(ctx, s.paymentEntry.EntryID)

	s.Require().NoError(err)
	s.True(validation.CanRollback)
	s.Empty(validation.Errors)
	s.Empty(validation.Warnings)

	s.Require().NotNil(validation.Details)
	s.Equal(s.tenantID, validation.Details.TenantID)
	s.Equal(s.paymentEntry.BundleID, validation.Details.BundleID)
	s.Equal(2, validation.Details.EntryCount)
	s.Len(validation.Details.PeriodsAffected, 2)
	s.True(validation.Details.RentTotal.Equal(decimal.NewFromInt(12000)))
	s.True(validation.Details.AdjustmentTotal.Equal(decimal.NewFromInt(1000)))
	s.True(validation.Details.PaymentAmount.Equal(decimal.NewFromInt(12000)))
}

func (s *RollbackServiceTestSuite) TestValidateRollback_OpeningBalanceBlocked() {
	ctx := context.Background()
	opening := domain.LedgerEntry{
		EntryID:   uuid.NewString(),
		TenantID:  s.tenantID,
		EntryType: domain.EntryOpeningBalance,
		Amount:    decimal.NewFromInt(-3000),
		BundleID:  uuid.NewString(),
	}
	s.mockLedgerRepo.On("FindEntryByID", ctx, opening.EntryID).Return(&opening, nil).Once()
	s.mockLedgerRepo.On("FindEntriesByBundleID", ctx, opening.BundleID).Return([]domain.LedgerEntry{opening}, nil).Once()
	s.mockLedgerRepo.On("FindRentPaymentsByEntryIDs", ctx, mock.AnythingOfType("[]string")).Return([]domain.RentPayment{}, nil).Once()
	s.mockLedgerRepo.On("FindRollbackRecordByEntryID", ctx, opening.EntryID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockLedgerRepo.On("FindEntriesByTenantID", ctx, s.tenantID).Return([]domain.LedgerEntry{opening}, nil).Once()
	s.mockLedgerRepo.On("FindRentPaymentsByTenantID", ctx, s.tenantID).Return([]domain.RentPayment{}, nil).Once()

	validation, err := s.service.ValidateRollback(ctx, opening.EntryID)

	s.Require().NoError(err)
	s.False(validation.CanRollback)
	s.Require().Len(validation.Errors, 1)
	s.Contains(validation.Errors[0], "opening balance")
}

func (s *RollbackServiceTestSuite) TestValidateRollback_AdjustmentTargetBlocked() {
	ctx := context.Background()
	adjustment := domain.LedgerEntry{
		EntryID:   uuid.NewString(),
		TenantID:  s.tenantID,
		EntryType: domain.EntryAdjustment,
		Subtype:   domain.SubtypeMaintenance,
		Amount:    decimal.NewFromInt(-500),
		BundleID:  uuid.NewString(),
	}
	s.mockLedgerRepo.On("FindEntryByID", ctx, adjustment.EntryID).Return(&adjustment, nil).Once()
	s.mockLedgerRepo.On("FindEntriesByBundleID", ctx, adjustment.BundleID).Return([]domain.LedgerEntry{adjustment}, nil).Once()
	s.mockLedgerRepo.On("FindRentPaymentsByEntryIDs", ctx, mock.AnythingOfType("[]string")).Return([]domain.RentPayment{}, nil).Once()
	s.mockLedgerRepo.On("FindRollbackRecordByEntryID", ctx, adjustment.EntryID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockLedgerRepo.On("FindEntriesByTenantID", ctx, s.tenantID).Return([]domain.LedgerEntry{adjustment}, nil).Once()
	s.mockLedgerRepo.On("FindRentPaymentsByTenantID", ctx, s.tenantID).Return([]domain.RentPayment{}, nil).Once()

	validation, err := s.service.ValidateRollback(ctx, adjustment.EntryID)

	s.Require().NoError(err)
	s.False(validation.CanRollback)
	s.Require().Len(validation.Errors, 1)
	s.Contains(validation.Errors[0], "only payment entries")
}

func (s *RollbackServiceTestSuite) TestValidateRollback_SurfacesLedgerReadFailure() {
	ctx := context.Background()
	s.expectScope(ctx)
	s.mockLedgerRepo.On("FindRollbackRecordByEntryID", ctx, s.paymentEntry.EntryID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockLedgerRepo.On("FindEntriesByTenantID", ctx, s.tenantID).Return(nil, apperrors.ErrInternal).Once()

	validation, err := s.service.ValidateRollback(ctx, s.paymentEntry.EntryID)

	s.Require().ErrorIs(err, apperrors.ErrInternal)
	s.Nil(validation)
}

func (s *RollbackServiceTestSuite) TestValidateRollback_AlreadyRolledBack() {
	ctx := context.Background()
	s.expectScope(ctx)
	s.mockLedgerRepo.On("FindRollbackRecordByEntryID", ctx, s.paymentEntry.EntryID).
		Return(&domain.RollbackRecord{RollbackID: uuid.NewString(), EntryID: s.paymentEntry.EntryID}, nil).Once()
	s.mockLedgerRepo.On("FindEntriesByTenantID", ctx, s.tenantID).Return(s.bundleEntries, nil).Once()
	s.mockLedgerRepo.On("FindRentPaymentsByTenantID", ctx, s.tenantID).Return(s.fundedRows, nil).Once()

	validation, err := s.service.ValidateRollback(ctx, s.paymentEntry.EntryID)

	s.Require().NoError(err)
	s.False(validation.CanRollback)
	s.Require().Len(validation.Errors, 1)
	s.Contains(validation.Errors[0], "already been rolled back")
}

func (s *RollbackServiceTestSuite) TestValidateRollback_WarnsWhenLaterHistoryDependsOnCredit() {
	ctx := context.Background()
	s.expectScope(ctx)
	s.mockLedgerRepo.On("FindRollbackRecordByEntryID", ctx, s.paymentEntry.EntryID).Return(nil, apperrors.ErrNotFound).Once()

	// A later bundle paid March leaning on this bundle's leftover credit:
	// after deleting the target, the remaining ledger is 2000 in funds
	// against 6000 of consumed rent.
	laterEntry := domain.LedgerEntry{
		EntryID:   uuid.NewString(),
		TenantID:  s.tenantID,
		EntryType: domain.EntryPayment,
		Amount:    decimal.NewFromInt(2000),
		BundleID:  uuid.NewString(),
	}
	laterPayment := domain.RentPayment{
		RentPaymentID: uuid.NewString(),
		TenantID:      s.tenantID,
		Period:        domain.Period{Year: 2024, Month: time.March},
		Amount:        decimal.NewFromInt(6000),
		EntryID:       laterEntry.EntryID,
	}
	allEntries := append(append([]domain.LedgerEntry{}, s.bundleEntries...), laterEntry)
	allPayments := append(append([]domain.RentPayment{}, s.fundedRows...), laterPayment)
	s.mockLedgerRepo.On("FindEntriesByTenantID", ctx, s.tenantID).Return(allEntries, nil).Once()
	s.mockLedgerRepo.On("FindRentPaymentsByTenantID", ctx, s.tenantID).Return(allPayments, nil).Once()

	validation, err := s.service.ValidateRollback(ctx, s.paymentEntry.EntryID)

	s.Require().NoError(err)
	s.True(validation.CanRollback, "over-allocation warns but does not block")
	s.Require().Len(validation.Warnings, 1)
	s.Contains(validation.Warnings[0], "short by 4000")
}

func (s *RollbackServiceTestSuite) TestExecuteRollback_DeletesBundleAndWritesAudit() {
	ctx := context.Background()
	s.expectScope(ctx)
	s.mockLedgerRepo.On("WithTenantLock", ctx, s.tenantID).Return(nil).Once()
	s.mockLedgerRepo.On("FindRollbackRecordByEntryID", ctx, s.paymentEntry.EntryID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockLedgerRepo.On("FindEntriesByTenantID", ctx, s.tenantID).Return(s.bundleEntries, nil).Once()
	s.mockLedgerRepo.On("FindRentPaymentsByTenantID", ctx, s.tenantID).Return(s.fundedRows, nil).Once()

	before := domain.CashTotals{Collections: decimal.NewFromInt(12000)}
	after := domain.CashTotals{Collections: decimal.Zero}
	s.mockLedgerRepo.On("AggregateCashTotals", ctx).Return(before, nil).Once()

	var deletedPaymentIDs, deletedEntryIDs []string
	s.mockLedgerRepo.On("DeleteRentPayments", ctx, mock.AnythingOfType("[]string")).
		Run(func(args mock.Arguments) { deletedPaymentIDs = args.Get(1).([]string) }).Return(nil).Once()
	s.mockLedgerRepo.On("DeleteEntries", ctx, mock.AnythingOfType("[]string")).
		Run(func(args mock.Arguments) { deletedEntryIDs = args.Get(1).([]string) }).Return(nil).Once()

	s.mockLedgerRepo.On("AggregateCashTotals", ctx).Return(after, nil).Once()

	var savedRecord domain.RollbackRecord
	s.mockLedgerRepo.On("SaveRollbackRecord", ctx, mock.AnythingOfType("domain.RollbackRecord")).
		Run(func(args mock.Arguments) { savedRecord = args.Get(1).(domain.RollbackRecord) }).Return(nil).Once()

	result, err := s.service.ExecuteRollback(ctx, s.paymentEntry.EntryID, "duplicate entry", s.actorID)

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal(savedRecord.RollbackID, result.RollbackID)
	s.Len(result.PeriodsAffected, 2)
	s.True(result.AmountRefunded.Equal(decimal.NewFromInt(12000)))

	s.ElementsMatch(deletedPaymentIDs, []string{s.fundedRows[0].RentPaymentID, s.fundedRows[1].RentPaymentID})
	s.ElementsMatch(deletedEntryIDs, []string{s.paymentEntry.EntryID, s.discountEntry.EntryID})

	s.Equal("payment", savedRecord.RollbackType)
	s.Equal(s.tenantID, savedRecord.TenantID)
	s.Equal(s.paymentEntry.EntryID, savedRecord.EntryID)
	s.Len(savedRecord.DeletedEntries, 2)
	s.Len(savedRecord.DeletedPayments, 2)
	s.Len(savedRecord.PeriodsAffected, 2)
	s.True(savedRecord.RentRolledBack.Equal(decimal.NewFromInt(12000)))
	s.True(savedRecord.AdjustmentsRolledBack.Equal(decimal.NewFromInt(1000)))
	s.True(savedRecord.BalanceBefore.Equal(decimal.NewFromInt(12000)))
	s.True(savedRecord.BalanceAfter.IsZero())
	s.Equal("duplicate entry", savedRecord.Reason)
	s.Equal(s.actorID, savedRecord.ActorID)
	s.Equal(s.now, savedRecord.CreatedAt)

	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *RollbackServiceTestSuite) TestExecuteRollback_RequiresReason() {
	ctx := context.Background()

	_, err := s.service.ExecuteRollback(ctx, s.paymentEntry.EntryID, "", s.actorID)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "DeleteEntries", mock.Anything, mock.Anything)
}

func (s *RollbackServiceTestSuite) TestExecuteRollback_AlreadyRolledBack() {
	ctx := context.Background()
	s.expectScope(ctx)
	s.mockLedgerRepo.On("WithTenantLock", ctx, s.tenantID).Return(nil).Once()
	s.mockLedgerRepo.On("FindRollbackRecordByEntryID", ctx, s.paymentEntry.EntryID).
		Return(&domain.RollbackRecord{RollbackID: uuid.NewString()}, nil).Once()

	_, err := s.service.ExecuteRollback(ctx, s.paymentEntry.EntryID, "second attempt", s.actorID)

	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "DeleteEntries", mock.Anything, mock.Anything)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "SaveRollbackRecord", mock.Anything, mock.Anything)
}

func (s *RollbackServiceTestSuite) TestExecuteRollback_OpeningBalanceBlocked() {
	ctx := context.Background()
	opening := domain.LedgerEntry{
		EntryID:   uuid.NewString(),
		TenantID:  s.tenantID,
		EntryType: domain.EntryOpeningBalance,
		BundleID:  uuid.NewString(),
	}
	s.mockLedgerRepo.On("FindEntryByID", ctx, opening.EntryID).Return(&opening, nil)
	s.mockLedgerRepo.On("WithTenantLock", ctx, s.tenantID).Return(nil).Once()
	s.mockLedgerRepo.On("FindEntriesByBundleID", ctx, opening.BundleID).Return([]domain.LedgerEntry{opening}, nil).Once()
	s.mockLedgerRepo.On("FindRentPaymentsByEntryIDs", ctx, mock.AnythingOfType("[]string")).Return([]domain.RentPayment{}, nil).Once()

	_, err := s.service.ExecuteRollback(ctx, opening.EntryID, "mistake", s.actorID)

	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "DeleteEntries", mock.Anything, mock.Anything)
}

func (s *RollbackServiceTestSuite) TestExecuteRollback_CreditMarkerBlocked() {
	ctx := context.Background()
	marker := domain.LedgerEntry{
		EntryID:   uuid.NewString(),
		TenantID:  s.tenantID,
		EntryType: domain.EntryCredit,
		Amount:    decimal.Zero,
		BundleID:  uuid.NewString(),
	}
	funded := domain.RentPayment{
		RentPaymentID: uuid.NewString(),
		TenantID:      s.tenantID,
		Period:        domain.Period{Year: 2024, Month: time.March},
		Amount:        decimal.NewFromInt(6000),
		EntryID:       marker.EntryID,
	}
	s.mockLedgerRepo.On("FindEntryByID", ctx, marker.EntryID).Return(&marker, nil)
	s.mockLedgerRepo.On("WithTenantLock", ctx, s.tenantID).Return(nil).Once()
	s.mockLedgerRepo.On("FindEntriesByBundleID", ctx, marker.BundleID).Return([]domain.LedgerEntry{marker}, nil).Once()
	s.mockLedgerRepo.On("FindRentPaymentsByEntryIDs", ctx, mock.AnythingOfType("[]string")).Return([]domain.RentPayment{funded}, nil).Once()

	_, err := s.service.ExecuteRollback(ctx, marker.EntryID, "entered in error", s.actorID)

	s.Require().ErrorIs(err, apperrors.ErrConflict)
	s.ErrorContains(err, "only payment entries")
	s.mockLedgerRepo.AssertNotCalled(s.T(), "DeleteRentPayments", mock.Anything, mock.Anything)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "DeleteEntries", mock.Anything, mock.Anything)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "SaveRollbackRecord", mock.Anything, mock.Anything)
}

func TestRollbackServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RollbackServiceTestSuite))
}
