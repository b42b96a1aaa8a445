package services

import (
	"context"
	"fmt"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	portsrepo "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/repositories"
	portssvc "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/services"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/utils/rentmath"
	"github.com/shopspring/decimal"
)

// rentScheduleService resolves effective rents from rent update history
// and enumerates a tenant's owed billing periods.
type rentScheduleService struct {
	BaseService
	roomRepo   portsrepo.RoomRepositoryFacade
	tenantRepo portsrepo.TenantRepositoryFacade
}

// NewRentScheduleService creates a new rent schedule resolver.
func NewRentScheduleService(roomRepo portsrepo.RoomRepositoryFacade, tenantRepo portsrepo.TenantRepositoryFacade) portssvc.RentScheduleSvcFacade {
	return &rentScheduleService{roomRepo: roomRepo, tenantRepo: tenantRepo}
}

var _ portssvc.RentScheduleSvcFacade = (*rentScheduleService)(nil)

// ResolveRent returns the rent effective for a room in the given period.
func (s *rentScheduleService) ResolveRent(ctx context.Context, roomID string, period domain.Period) (decimal.Decimal, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to find room %s: %w", roomID, err)
	}

	updates, err := s.roomRepo.FindRentUpdatesByRoomID(ctx, roomID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load rent updates for room %s: %w", roomID, err)
	}

	return rentmath.ResolveRent(*room, updates, period), nil
}

// TenantCharges enumerates the tenant's owed periods with resolved
// rents, ascending, through the given period.
func (s *rentScheduleService) TenantCharges(ctx context.Context, tenantID string, through domain.Period) ([]domain.PeriodCharge, error) {
	allocations, err := s.tenantRepo.FindAllocationsByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load allocations for tenant %s: %w", tenantID, err)
	}
	if len(allocations) == 0 {
		return nil, nil
	}

	roomIDs := make([]string, 0, len(allocations))
	seen := make(map[string]struct{}, len(allocations))
	for _, a := range allocations {
		if _, ok := seen[a.RoomID]; ok {
			continue
		}
		seen[a.RoomID] = struct{}{}
		roomIDs = append(roomIDs, a.RoomID)
	}

	rooms, err := s.roomRepo.FindRoomsByIDs(ctx, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms for tenant %s: %w", tenantID, err)
	}
	updatesByRoom, err := s.roomRepo.FindRentUpdatesByRoomIDs(ctx, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load rent updates for tenant %s: %w", tenantID, err)
	}

	return rentmath.PeriodCharges(allocations, rooms, updatesByRoom, through), nil
}
