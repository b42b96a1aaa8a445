package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/apperrors"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	portsrepo "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/repositories"
	portssvc "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/services"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/dto"
)

// tenantService manages tenants and their room allocations.
type tenantService struct {
	BaseService
	tenantRepo portsrepo.TenantRepositoryFacade
	roomRepo   portsrepo.RoomRepositoryFacade
	ledgerRepo portsrepo.LedgerRepositoryWithTx
	roomSvc    portssvc.RoomSvcFacade
}

// NewTenantService creates a new TenantService.
func NewTenantService(
	tenantRepo portsrepo.TenantRepositoryFacade,
	roomRepo portsrepo.RoomRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryWithTx,
	roomSvc portssvc.RoomSvcFacade,
) portssvc.TenantSvcFacade {
	return &tenantService{
		tenantRepo: tenantRepo,
		roomRepo:   roomRepo,
		ledgerRepo: ledgerRepo,
		roomSvc:    roomSvc,
	}
}

var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

// CreateTenant registers a tenant. A non-zero opening-dues amount is
// recorded as a negative opening-balance ledger entry so the allocator
// sees the pre-existing debt as consumed credit.
func (s *tenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorID string) (*domain.Tenant, error) {
	if req.OpeningDues.IsNegative() {
		return nil, fmt.Errorf("%w: opening dues cannot be negative", apperrors.ErrValidation)
	}

	now := s.clock()
	tenant := domain.Tenant{
		TenantID: uuid.NewString(),
		Name:     req.Name,
		Phone:    req.Phone,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		s.LogError(ctx, err, "Failed to save tenant", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save tenant: %w", err)
	}

	if !req.OpeningDues.IsZero() {
		entry := domain.LedgerEntry{
			EntryID:         uuid.NewString(),
			TenantID:        tenant.TenantID,
			EntryType:       domain.EntryOpeningBalance,
			Subtype:         domain.SubtypeOpeningBalance,
			Amount:          req.OpeningDues.Neg(),
			BundleID:        uuid.NewString(),
			TransactionDate: now,
			Notes:           "Opening balance at tenant registration",
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorID,
			},
		}
		err := s.ledgerRepo.WithTenantLock(ctx, tenant.TenantID, func(repo portsrepo.LedgerRepositoryFacade) error {
			return repo.SaveBundle(ctx, []domain.LedgerEntry{entry}, nil)
		})
		if err != nil {
			s.LogError(ctx, err, "Failed to record opening balance", slog.String("tenant_id", tenant.TenantID))
			return nil, fmt.Errorf("failed to record opening balance: %w", err)
		}
	}

	s.LogInfo(ctx, "Tenant created", slog.String("tenant_id", tenant.TenantID))
	return &tenant, nil
}

// GetTenantByID fetches one tenant.
func (s *tenantService) GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	return s.tenantRepo.FindTenantByID(ctx, tenantID)
}

// ListTenants returns all tenants.
func (s *tenantService) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	return s.tenantRepo.ListTenants(ctx)
}

// AllocateRoom moves a tenant into a room. The room must not have
// another open allocation. When a rent amount is supplied the room's
// schedule gains a rent update effective from the given date (or the
// move-in month).
func (s *tenantService) AllocateRoom(ctx context.Context, tenantID string, req dto.AllocateRoomRequest, creatorID string) (*domain.TenantRoomAllocation, error) {
	moveIn, err := time.Parse(dto.DateLayout, req.MoveInDate)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed move-in date", apperrors.ErrValidation)
	}

	if _, err := s.tenantRepo.FindTenantByID(ctx, tenantID); err != nil {
		return nil, err
	}
	if _, err := s.roomRepo.FindRoomByID(ctx, req.RoomID); err != nil {
		return nil, err
	}

	existing, err := s.tenantRepo.FindOpenAllocationByRoomID(ctx, req.RoomID)
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("failed to check room occupancy: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: room %s is already occupied", apperrors.ErrConflict, req.RoomID)
	}

	now := s.clock()
	allocation := domain.TenantRoomAllocation{
		AllocationID: uuid.NewString(),
		TenantID:     tenantID,
		RoomID:       req.RoomID,
		MoveInDate:   moveIn,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.tenantRepo.SaveAllocation(ctx, allocation); err != nil {
		s.LogError(ctx, err, "Failed to save allocation", slog.String("tenant_id", tenantID), slog.String("room_id", req.RoomID))
		return nil, fmt.Errorf("failed to save allocation: %w", err)
	}

	if req.Rent != nil && req.Rent.GreaterThan(decimal.Zero) {
		effective := req.MoveInDate
		if req.RentEffectiveFrom != nil {
			effective = *req.RentEffectiveFrom
		}
		_, err := s.roomSvc.UpdateRoomRent(ctx, req.RoomID, dto.UpdateRoomRentRequest{
			NewRent:       *req.Rent,
			EffectiveFrom: effective,
		}, creatorID)
		if err != nil {
			// The allocation stands; the rent change is reported separately.
			s.LogWarn(ctx, "Allocation saved but rent update failed",
				slog.String("room_id", req.RoomID), slog.String("error", err.Error()))
			return &allocation, err
		}
	}

	s.LogInfo(ctx, "Room allocated", slog.String("tenant_id", tenantID), slog.String("room_id", req.RoomID))
	return &allocation, nil
}

// Vacate closes the tenant's open allocation for a room.
func (s *tenantService) Vacate(ctx context.Context, tenantID string, req dto.VacateRequest, updaterID string) (*domain.TenantRoomAllocation, error) {
	moveOut, err := time.Parse(dto.DateLayout, req.MoveOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed move-out date", apperrors.ErrValidation)
	}

	allocation, err := s.tenantRepo.FindOpenAllocationByRoomID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if allocation.TenantID != tenantID {
		return nil, fmt.Errorf("%w: room %s is not allocated to tenant %s", apperrors.ErrConflict, req.RoomID, tenantID)
	}
	if moveOut.Before(allocation.MoveInDate) {
		return nil, fmt.Errorf("%w: move-out date precedes move-in date", apperrors.ErrValidation)
	}

	now := s.clock()
	if err := s.tenantRepo.CloseAllocation(ctx, allocation.AllocationID, moveOut, updaterID, now); err != nil {
		s.LogError(ctx, err, "Failed to close allocation", slog.String("allocation_id", allocation.AllocationID))
		return nil, fmt.Errorf("failed to close allocation: %w", err)
	}

	allocation.MoveOutDate = &moveOut
	allocation.LastUpdatedAt = now
	allocation.LastUpdatedBy = updaterID

	s.LogInfo(ctx, "Tenant vacated", slog.String("tenant_id", tenantID), slog.String("room_id", req.RoomID))
	return allocation, nil
}
