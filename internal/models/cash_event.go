package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashEvent represents one operator cash-book row.
type CashEvent struct {
	CashEventID string          `json:"cashEventID" db:"cash_event_id"`
	EventType   string          `json:"eventType" db:"event_type"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Description string          `json:"description" db:"description"`
	EventDate   time.Time       `json:"eventDate" db:"event_date"`
	AuditFields
}
