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

type CashbookServiceTestSuite struct {
	suite.Suite
	mockCashbookRepo *MockCashbookRepository
	service          portssvc.CashbookSvcFacade

	operatorID string
	now        time.Time
}

func (s *CashbookServiceTestSuite) SetupTest() {
	s.mockCashbookRepo = new(MockCashbookRepository)
	s.now = time.Date(2024, time.March, 5, 11, 0, 0, 0, time.UTC)
	s.service = services.NewCashbookService(
		s.mockCashbookRepo,
		services.WithCashbookClock(func() time.Time { return s.now }),
	)
	s.operatorID = uuid.NewString()
}

func (s *CashbookServiceTestSuite) TestRecordExpense() {
	ctx := context.Background()

	var saved domain.CashEvent
	s.mockCashbookRepo.On("SaveCashEvent", ctx, mock.AnythingOfType("domain.CashEvent")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.CashEvent) }).Return(nil).Once()

	req := dto.CreateCashEventRequest{
		Amount:      decimal.NewFromInt(1500),
		Date:        "2024-03-05",
		Description: "plumbing repair",
	}
	event, err := s.service.RecordExpense(ctx, req, s.operatorID)

	s.Require().NoError(err)
	s.Equal(domain.CashExpense, event.EventType)
	s.Equal(domain.CashExpense, saved.EventType)
	s.True(saved.Amount.Equal(decimal.NewFromInt(1500)))
	s.Equal("plumbing repair", saved.Description)
	s.Equal(s.operatorID, saved.CreatedBy)
	s.Equal(s.now, saved.CreatedAt)
}

func (s *CashbookServiceTestSuite) TestRecordWithdrawal() {
	ctx := context.Background()

	var saved domain.CashEvent
	s.mockCashbookRepo.On("SaveCashEvent", ctx, mock.AnythingOfType("domain.CashEvent")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.CashEvent) }).Return(nil).Once()

	req := dto.CreateCashEventRequest{Amount: decimal.NewFromInt(20000), Date: "2024-03-05"}
	_, err := s.service.RecordWithdrawal(ctx, req, s.operatorID)

	s.Require().NoError(err)
	s.Equal(domain.CashWithdrawal, saved.EventType)
}

func (s *CashbookServiceTestSuite) TestRecordExpense_RejectsNonPositiveAmount() {
	ctx := context.Background()

	req := dto.CreateCashEventRequest{Amount: decimal.Zero, Date: "2024-03-05"}
	_, err := s.service.RecordExpense(ctx, req, s.operatorID)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockCashbookRepo.AssertNotCalled(s.T(), "SaveCashEvent", mock.Anything, mock.Anything)
}

func (s *CashbookServiceTestSuite) TestRecordExpense_RejectsMalformedDate() {
	ctx := context.Background()

	req := dto.CreateCashEventRequest{Amount: decimal.NewFromInt(100), Date: "05/03/2024"}
	_, err := s.service.RecordExpense(ctx, req, s.operatorID)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *CashbookServiceTestSuite) TestBalance_DerivesFromTotals() {
	ctx := context.Background()

	totals := domain.CashTotals{
		Collections: decimal.NewFromInt(50000),
		Expenses:    decimal.NewFromInt(8000),
		Withdrawals: decimal.NewFromInt(20000),
		Adjustments: decimal.NewFromInt(500),
	}
	s.mockCashbookRepo.On("AggregateCashTotals", ctx).Return(totals, nil).Once()

	resp, err := s.service.Balance(ctx)

	s.Require().NoError(err)
	s.True(resp.Balance.Equal(decimal.NewFromInt(22500)))
	s.True(resp.Collections.Equal(decimal.NewFromInt(50000)))
}

func (s *CashbookServiceTestSuite) TestListEvents_DefaultsLimit() {
	ctx := context.Background()

	events := []domain.CashEvent{{CashEventID: uuid.NewString(), EventType: domain.CashExpense, Amount: decimal.NewFromInt(100)}}
	s.mockCashbookRepo.On("ListCashEvents", ctx, 20, (*string)(nil)).Return(events, nil, nil).Once()

	resp, next, err := s.service.ListEvents(ctx, 0, nil)

	s.Require().NoError(err)
	s.Len(resp, 1)
	s.Nil(next)
	s.mockCashbookRepo.AssertExpectations(s.T())
}

func TestCashbookServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashbookServiceTestSuite))
}
