package services

import (
	"context"
	"errors"
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
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/utils/rentmath"
)

// roomService manages rooms and their rent schedules.
type roomService struct {
	BaseService
	roomRepo   portsrepo.RoomRepositoryFacade
	tenantRepo portsrepo.TenantRepositoryFacade
}

// NewRoomService creates a new RoomService.
func NewRoomService(roomRepo portsrepo.RoomRepositoryFacade, tenantRepo portsrepo.TenantRepositoryFacade) portssvc.RoomSvcFacade {
	return &roomService{roomRepo: roomRepo, tenantRepo: tenantRepo}
}

var _ portssvc.RoomSvcFacade = (*roomService)(nil)

// CreateRoom registers a new rentable unit.
func (s *roomService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest, creatorID string) (*domain.Room, error) {
	if req.BaseRent.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: base rent must be positive", apperrors.ErrValidation)
	}

	now := s.clock()
	room := domain.Room{
		RoomID:   uuid.NewString(),
		Code:     req.Code,
		BaseRent: req.BaseRent,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.roomRepo.SaveRoom(ctx, room); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: room code %s already exists", apperrors.ErrDuplicate, req.Code)
		}
		s.LogError(ctx, err, "Failed to save room", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save room: %w", err)
	}

	s.LogInfo(ctx, "Room created", slog.String("room_id", room.RoomID), slog.String("code", room.Code))
	return &room, nil
}

// GetRoomByID fetches one room.
func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	return s.roomRepo.FindRoomByID(ctx, roomID)
}

// ListRooms returns all rooms with their current effective rent and
// occupancy status (derived from open allocations, never stored).
func (s *roomService) ListRooms(ctx context.Context) ([]dto.RoomResponse, error) {
	rooms, err := s.roomRepo.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	open, err := s.tenantRepo.FindOpenAllocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load open allocations: %w", err)
	}
	occupied := make(map[string]bool, len(open))
	for _, a := range open {
		occupied[a.RoomID] = true
	}

	roomIDs := make([]string, len(rooms))
	for i, r := range rooms {
		roomIDs[i] = r.RoomID
	}
	updatesByRoom, err := s.roomRepo.FindRentUpdatesByRoomIDs(ctx, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load rent updates: %w", err)
	}

	current := domain.PeriodOf(s.clock())
	responses := make([]dto.RoomResponse, len(rooms))
	for i, r := range rooms {
		responses[i] = dto.RoomResponse{
			RoomID:      r.RoomID,
			Code:        r.Code,
			CurrentRent: rentmath.ResolveRent(r, updatesByRoom[r.RoomID], current),
			Occupied:    occupied[r.RoomID],
			CreatedAt:   r.CreatedAt,
		}
	}
	return responses, nil
}

// UpdateRoomRent schedules a rent change effective from the period
// containing the given date. A second change for the same effective
// period is rejected.
func (s *roomService) UpdateRoomRent(ctx context.Context, roomID string, req dto.UpdateRoomRentRequest, creatorID string) (*domain.RentUpdate, error) {
	if req.NewRent.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: new rent must be positive", apperrors.ErrValidation)
	}

	effectiveFrom, err := time.Parse(dto.DateLayout, req.EffectiveFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed effective-from date", apperrors.ErrValidation)
	}
	// Rent changes take effect on whole-month boundaries.
	effectivePeriod := domain.PeriodOf(effectiveFrom)

	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	updates, err := s.roomRepo.FindRentUpdatesByRoomID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rent updates for room %s: %w", roomID, err)
	}

	// The rent in effect for the same period before this change.
	oldAmount := rentmath.ResolveRent(*room, updates, effectivePeriod)

	now := s.clock()
	update := domain.RentUpdate{
		RentUpdateID:  uuid.NewString(),
		RoomID:        roomID,
		OldAmount:     oldAmount,
		NewAmount:     req.NewRent,
		EffectiveFrom: effectivePeriod.Start(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.roomRepo.SaveRentUpdate(ctx, update); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: a rent update effective %s already exists for room %s", apperrors.ErrConflict, effectivePeriod, roomID)
		}
		s.LogError(ctx, err, "Failed to save rent update", slog.String("room_id", roomID))
		return nil, fmt.Errorf("failed to save rent update: %w", err)
	}

	s.LogInfo(ctx, "Room rent updated",
		slog.String("room_id", roomID),
		slog.String("effective", effectivePeriod.String()),
		slog.String("new_rent", req.NewRent.String()))
	return &update, nil
}

// RentHistory lists a room's rent updates, oldest first.
func (s *roomService) RentHistory(ctx context.Context, roomID string) ([]domain.RentUpdate, error) {
	if _, err := s.roomRepo.FindRoomByID(ctx, roomID); err != nil {
		return nil, err
	}
	return s.roomRepo.FindRentUpdatesByRoomID(ctx, roomID)
}
