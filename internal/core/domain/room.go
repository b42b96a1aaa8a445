package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room is a rentable unit. BaseRent is the rent that applies when the
// room has no recorded rent updates; once updates exist, the schedule
// resolver derives the effective rent from them.
type Room struct {
	RoomID   string          `json:"roomID"`
	Code     string          `json:"code"` // Human-facing room number, unique
	BaseRent decimal.Decimal `json:"baseRent"`
	AuditFields
}

// RentUpdate records a rent change for a room, effective from the
// period containing EffectiveFrom. At most one update may exist per
// (room, effective period).
type RentUpdate struct {
	RentUpdateID  string          `json:"rentUpdateID"`
	RoomID        string          `json:"roomID"`
	OldAmount     decimal.Decimal `json:"oldAmount"`
	NewAmount     decimal.Decimal `json:"newAmount"`
	EffectiveFrom time.Time       `json:"effectiveFrom"` // Normalized to the first day of its period
	AuditFields
}

// EffectivePeriod returns the first billing period the new amount applies to.
func (u RentUpdate) EffectivePeriod() Period {
	return PeriodOf(u.EffectiveFrom)
}
