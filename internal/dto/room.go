package dto

import (
	"time"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRoomRequest defines the payload for creating a room.
type CreateRoomRequest struct {
	Code     string          `json:"code" binding:"required"`
	BaseRent decimal.Decimal `json:"baseRent" binding:"required"`
}

// UpdateRoomRentRequest defines the payload for a scheduled rent change.
type UpdateRoomRentRequest struct {
	NewRent       decimal.Decimal `json:"newRent" binding:"required"`
	EffectiveFrom string          `json:"effectiveFrom" binding:"required,datetime=2006-01-02"`
}

// RoomResponse defines the data returned for a room.
type RoomResponse struct {
	RoomID      string          `json:"roomID"`
	Code        string          `json:"code"`
	CurrentRent decimal.Decimal `json:"currentRent"`
	Occupied    bool            `json:"occupied"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// RentUpdateResponse defines one rent schedule change.
type RentUpdateResponse struct {
	RentUpdateID  string          `json:"rentUpdateID"`
	OldAmount     decimal.Decimal `json:"oldAmount"`
	NewAmount     decimal.Decimal `json:"newAmount"`
	EffectiveFrom string          `json:"effectiveFrom"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToRentUpdateResponse converts a domain.RentUpdate to its DTO.
func ToRentUpdateResponse(u *domain.RentUpdate) RentUpdateResponse {
	return RentUpdateResponse{
		RentUpdateID:  u.RentUpdateID,
		OldAmount:     u.OldAmount,
		NewAmount:     u.NewAmount,
		EffectiveFrom: u.EffectiveFrom.Format(DateLayout),
		CreatedAt:     u.CreatedAt,
	}
}
