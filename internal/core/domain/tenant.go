package domain

import "time"

// Tenant is a renter. A tenant may hold several room allocations at
// once; all rent obligations are tracked on a single per-tenant ledger.
type Tenant struct {
	TenantID string `json:"tenantID"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	AuditFields
}

// TenantRoomAllocation links a tenant to a room for an interval.
// MoveOutDate nil means the allocation is still open. A room has at
// most one open allocation at a time.
type TenantRoomAllocation struct {
	AllocationID string     `json:"allocationID"`
	TenantID     string     `json:"tenantID"`
	RoomID       string     `json:"roomID"`
	MoveInDate   time.Time  `json:"moveInDate"`
	MoveOutDate  *time.Time `json:"moveOutDate,omitempty"`
	AuditFields
}

// IsOpen reports whether the tenant still occupies the room.
func (a TenantRoomAllocation) IsOpen() bool {
	return a.MoveOutDate == nil
}

// ActiveIn reports whether the allocation overlaps the given period:
// move-in on or before the period's last day, and move-out absent or
// on/after the period's first day.
func (a TenantRoomAllocation) ActiveIn(p Period) bool {
	if a.MoveInDate.After(p.End()) {
		return false
	}
	if a.MoveOutDate != nil && a.MoveOutDate.Before(p.Start()) {
		return false
	}
	return true
}
