package models

import "time"

// Tenant represents a renter row.
type Tenant struct {
	TenantID string `json:"tenantID" db:"tenant_id"`
	Name     string `json:"name" db:"name"`
	Phone    string `json:"phone" db:"phone"`
	AuditFields
}

// TenantRoomAllocation represents one tenancy interval. move_out_date
// NULL means the allocation is still open.
type TenantRoomAllocation struct {
	AllocationID string     `json:"allocationID" db:"allocation_id"`
	TenantID     string     `json:"tenantID" db:"tenant_id"`
	RoomID       string     `json:"roomID" db:"room_id"`
	MoveInDate   time.Time  `json:"moveInDate" db:"move_in_date"`
	MoveOutDate  *time.Time `json:"moveOutDate,omitempty" db:"move_out_date"`
	AuditFields
}
