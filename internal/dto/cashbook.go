package dto

import (
	"time"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCashEventRequest records an expense or withdrawal from the
// operator cash box.
type CreateCashEventRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
}

// CashBalanceResponse is the operator cash position.
type CashBalanceResponse struct {
	Collections decimal.Decimal `json:"collections"`
	Expenses    decimal.Decimal `json:"expenses"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
	Adjustments decimal.Decimal `json:"adjustments"`
	Balance     decimal.Decimal `json:"balance"`
}

// CashEventResponse defines one cash-book event.
type CashEventResponse struct {
	CashEventID string          `json:"cashEventID"`
	EventType   string          `json:"eventType"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	EventDate   string          `json:"eventDate"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToCashBalanceResponse converts cash totals to the response DTO.
func ToCashBalanceResponse(t domain.CashTotals) CashBalanceResponse {
	return CashBalanceResponse{
		Collections: t.Collections,
		Expenses:    t.Expenses,
		Withdrawals: t.Withdrawals,
		Adjustments: t.Adjustments,
		Balance:     t.Balance(),
	}
}

// ToCashEventResponse converts a domain.CashEvent to its DTO.
func ToCashEventResponse(e *domain.CashEvent) CashEventResponse {
	return CashEventResponse{
		CashEventID: e.CashEventID,
		EventType:   string(e.EventType),
		Amount:      e.Amount,
		Description: e.Description,
		EventDate:   e.EventDate.Format(DateLayout),
		CreatedAt:   e.CreatedAt,
	}
}
