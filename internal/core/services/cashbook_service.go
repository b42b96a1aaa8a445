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
)

// cashbookService tracks the operator cash box. Collections flow in
// automatically from tenant payment entries; expenses and withdrawals
// are recorded here and subtracted when computing the balance.
type cashbookService struct {
	BaseService
	cashbookRepo portsrepo.CashbookRepositoryFacade
}

// CashbookServiceOption configures a cashbook service.
type CashbookServiceOption func(*cashbookService)

// WithCashbookClock overrides the clock used to stamp cash events.
func WithCashbookClock(now func() time.Time) CashbookServiceOption {
	return func(s *cashbookService) {
		s.now = now
	}
}

// NewCashbookService creates a new CashbookService.
func NewCashbookService(cashbookRepo portsrepo.CashbookRepositoryFacade, options ...CashbookServiceOption) portssvc.CashbookSvcFacade {
	svc := &cashbookService{cashbookRepo: cashbookRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CashbookSvcFacade = (*cashbookService)(nil)

func (s *cashbookService) recordEvent(ctx context.Context, req dto.CreateCashEventRequest, eventType domain.CashEventType, creatorID string) (*domain.CashEvent, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	eventDate, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed event date", apperrors.ErrValidation)
	}

	now := s.clock()
	event := domain.CashEvent{
		CashEventID: uuid.NewString(),
		EventType:   eventType,
		Amount:      req.Amount,
		Description: req.Description,
		EventDate:   eventDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}
	if err := s.cashbookRepo.SaveCashEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to save cash event", slog.String("event_type", string(eventType)))
		return nil, err
	}

	s.LogInfo(ctx, "Cash event recorded",
		slog.String("event_type", string(eventType)),
		slog.String("amount", req.Amount.String()))
	return &event, nil
}

func (s *cashbookService) RecordExpense(ctx context.Context, req dto.CreateCashEventRequest, creatorID string) (*domain.CashEvent, error) {
	return s.recordEvent(ctx, req, domain.CashExpense, creatorID)
}

func (s *cashbookService) RecordWithdrawal(ctx context.Context, req dto.CreateCashEventRequest, creatorID string) (*domain.CashEvent, error) {
	return s.recordEvent(ctx, req, domain.CashWithdrawal, creatorID)
}

func (s *cashbookService) Balance(ctx context.Context) (*dto.CashBalanceResponse, error) {
	totals, err := s.cashbookRepo.AggregateCashTotals(ctx)
	if err != nil {
		return nil, err
	}
	resp := dto.ToCashBalanceResponse(totals)
	return &resp, nil
}

func (s *cashbookService) ListEvents(ctx context.Context, limit int, nextToken *string) ([]dto.CashEventResponse, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	events, next, err := s.cashbookRepo.ListCashEvents(ctx, limit, nextToken)
	if err != nil {
		return nil, nil, err
	}
	responses := make([]dto.CashEventResponse, len(events))
	for i := range events {
		responses[i] = dto.ToCashEventResponse(&events[i])
	}
	return responses, next, nil
}
