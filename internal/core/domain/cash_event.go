package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashEventType classifies an operator cash-book event.
type CashEventType string

const (
	CashExpense    CashEventType = "expense"
	CashWithdrawal CashEventType = "withdrawal"
	CashAdjustment CashEventType = "adjustment"
)

// CashEvent is money leaving (or correcting) the operator's cash box,
// outside any tenant ledger: expenses, owner withdrawals, manual
// adjustments. Amounts are always positive; the type carries the sign.
type CashEvent struct {
	CashEventID string          `json:"cashEventID"`
	EventType   CashEventType   `json:"eventType"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	EventDate   time.Time       `json:"eventDate"`
	AuditFields
}

// CashTotals are the global aggregates the operator balance derives
// from. Collections come from tenant payment entries; the rest from
// cash events.
type CashTotals struct {
	Collections decimal.Decimal `json:"collections"`
	Expenses    decimal.Decimal `json:"expenses"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
	Adjustments decimal.Decimal `json:"adjustments"`
}

// Balance is the operator cash balance implied by the totals.
func (t CashTotals) Balance() decimal.Decimal {
	return t.Collections.Sub(t.Expenses).Sub(t.Withdrawals).Add(t.Adjustments)
}
