package ports

import (
	"context"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/dto"
)

// RoomSvcFacade manages rooms and their rent schedules.
type RoomSvcFacade interface {
	CreateRoom(ctx context.Context, req dto.CreateRoomRequest, creatorID string) (*domain.Room, error)
	GetRoomByID(ctx context.Context, roomID string) (*domain.Room, error)
	ListRooms(ctx context.Context) ([]dto.RoomResponse, error)
	UpdateRoomRent(ctx context.Context, roomID string, req dto.UpdateRoomRentRequest, creatorID string) (*domain.RentUpdate, error)
	RentHistory(ctx context.Context, roomID string) ([]domain.RentUpdate, error)
}

// TenantSvcFacade manages tenants and room allocations.
type TenantSvcFacade interface {
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorID string) (*domain.Tenant, error)
	GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
	AllocateRoom(ctx context.Context, tenantID string, req dto.AllocateRoomRequest, creatorID string) (*domain.TenantRoomAllocation, error)
	Vacate(ctx context.Context, tenantID string, req dto.VacateRequest, updaterID string) (*domain.TenantRoomAllocation, error)
}
