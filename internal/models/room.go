package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room represents a rentable unit row.
type Room struct {
	RoomID   string          `json:"roomID" db:"room_id"`
	Code     string          `json:"code" db:"code"`
	BaseRent decimal.Decimal `json:"baseRent" db:"base_rent"`
	AuditFields
}

// RentUpdate represents one row of a room's rent change history.
// effective_from is stored normalized to the first day of its month, so
// the UNIQUE(room_id, effective_from) constraint enforces at most one
// update per (room, period).
type RentUpdate struct {
	RentUpdateID  string          `json:"rentUpdateID" db:"rent_update_id"`
	RoomID        string          `json:"roomID" db:"room_id"`
	OldAmount     decimal.Decimal `json:"oldAmount" db:"old_amount"`
	NewAmount     decimal.Decimal `json:"newAmount" db:"new_amount"`
	EffectiveFrom time.Time       `json:"effectiveFrom" db:"effective_from"`
	AuditFields
}
