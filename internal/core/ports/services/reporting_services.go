package ports

import (
	"context"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/dto"
)

// ReportingSvcFacade provides read-only aggregations over the ledger.
type ReportingSvcFacade interface {
	Defaulters(ctx context.Context) ([]domain.DefaulterRow, error)
	CollectionRate(ctx context.Context, from, through domain.Period) (*domain.CollectionReport, error)
}

// CashbookSvcFacade manages the operator cash book.
type CashbookSvcFacade interface {
	RecordExpense(ctx context.Context, req dto.CreateCashEventRequest, creatorID string) (*domain.CashEvent, error)
	RecordWithdrawal(ctx context.Context, req dto.CreateCashEventRequest, creatorID string) (*domain.CashEvent, error)
	Balance(ctx context.Context) (*dto.CashBalanceResponse, error)
	ListEvents(ctx context.Context, limit int, nextToken *string) ([]dto.CashEventResponse, *string, error)
}

// AuthSvcFacade authenticates operators and manages their accounts.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CreateOperator(ctx context.Context, req dto.CreateOperatorRequest, creatorID string) (*domain.Operator, error)
}
