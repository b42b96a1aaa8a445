package dto

import (
	"time"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTenantRequest defines the payload for registering a tenant.
// OpeningDues, when set, records rent owed from before the system took
// over as a negative opening-balance ledger entry.
type CreateTenantRequest struct {
	Name        string          `json:"name" binding:"required"`
	Phone       string          `json:"phone"`
	OpeningDues decimal.Decimal `json:"openingDues"`
}

// AllocateRoomRequest moves a tenant into a room. Rent and
// RentEffectiveFrom optionally record a rent change alongside the
// allocation (defaulting to the move-in month).
type AllocateRoomRequest struct {
	RoomID            string           `json:"roomID" binding:"required"`
	MoveInDate        string           `json:"moveInDate" binding:"required,datetime=2006-01-02"`
	Rent              *decimal.Decimal `json:"rent,omitempty"`
	RentEffectiveFrom *string          `json:"rentEffectiveFrom,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// VacateRequest closes a tenant's open allocation for a room.
type VacateRequest struct {
	RoomID      string `json:"roomID" binding:"required"`
	MoveOutDate string `json:"moveOutDate" binding:"required,datetime=2006-01-02"`
}

// TenantResponse defines the data returned for a tenant.
type TenantResponse struct {
	TenantID  string    `json:"tenantID"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AllocationResponse defines one room occupancy interval.
type AllocationResponse struct {
	AllocationID string  `json:"allocationID"`
	RoomID       string  `json:"roomID"`
	MoveInDate   string  `json:"moveInDate"`
	MoveOutDate  *string `json:"moveOutDate,omitempty"`
}

// ToTenantResponse converts a domain.Tenant to its DTO.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:  t.TenantID,
		Name:      t.Name,
		Phone:     t.Phone,
		CreatedAt: t.CreatedAt,
	}
}

// ToAllocationResponse converts a domain.TenantRoomAllocation to its DTO.
func ToAllocationResponse(a *domain.TenantRoomAllocation) AllocationResponse {
	resp := AllocationResponse{
		AllocationID: a.AllocationID,
		RoomID:       a.RoomID,
		MoveInDate:   a.MoveInDate.Format(DateLayout),
	}
	if a.MoveOutDate != nil {
		out := a.MoveOutDate.Format(DateLayout)
		resp.MoveOutDate = &out
	}
	return resp
}
