package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/apperrors"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	portsrepo "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/repositories"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/models"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/utils/mapping"
)

type PgxRoomRepository struct {
	db *pgxpool.Pool
}

func newPgxRoomRepository(db *pgxpool.Pool) portsrepo.RoomRepositoryFacade {
	return &PgxRoomRepository{db: db}
}

var _ portsrepo.RoomRepositoryFacade = (*PgxRoomRepository)(nil)

const roomColumns = `room_id, code, base_rent, created_at, created_by, last_updated_at, last_updated_by`

func scanRoom(row pgx.Row) (models.Room, error) {
	var m models.Room
	err := row.Scan(
		&m.RoomID,
		&m.Code,
		&m.BaseRent,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveRoom inserts a room. Returns apperrors.ErrDuplicate when the code
// is already taken.
func (r *PgxRoomRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	m := mapping.ToModelRoom(room)
	query := `
		INSERT INTO rooms (` + roomColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query,
		m.RoomID, m.Code, m.BaseRent,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert room "+m.RoomID, err)
	}
	return nil
}

// FindRoomByID retrieves a room by its ID.
func (r *PgxRoomRepository) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE room_id = $1;`
	m, err := scanRoom(r.db.QueryRow(ctx, query, roomID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find room by ID "+roomID, err)
	}
	d := mapping.ToDomainRoom(m)
	return &d, nil
}

// FindRoomsByIDs retrieves rooms for the given IDs, keyed by room ID.
// Missing IDs are simply absent from the result.
func (r *PgxRoomRepository) FindRoomsByIDs(ctx context.Context, roomIDs []string) (map[string]domain.Room, error) {
	result := make(map[string]domain.Room, len(roomIDs))
	if len(roomIDs) == 0 {
		return result, nil
	}
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE room_id = ANY($1);`
	rows, err := r.db.Query(ctx, query, roomIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rooms by IDs", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanRoom(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan room row", err)
		}
		result[m.RoomID] = mapping.ToDomainRoom(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating room rows", err)
	}
	return result, nil
}

// ListRooms retrieves all rooms ordered by code.
func (r *PgxRoomRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY code;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rooms", err)
	}
	defer rows.Close()

	rooms := []models.Room{}
	for rows.Next() {
		m, err := scanRoom(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan room row", err)
		}
		rooms = append(rooms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating room rows", err)
	}
	return mapping.ToDomainRoomSlice(rooms), nil
}

const rentUpdateColumns = `rent_update_id, room_id, old_amount, new_amount, effective_from, created_at, created_by, last_updated_at, last_updated_by`

func scanRentUpdate(row pgx.Row) (models.RentUpdate, error) {
	var m models.RentUpdate
	err := row.Scan(
		&m.RentUpdateID,
		&m.RoomID,
		&m.OldAmount,
		&m.NewAmount,
		&m.EffectiveFrom,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveRentUpdate inserts a rent change row. effective_from arrives
// normalized to the first day of its month; the unique constraint on
// (room_id, effective_from) rejects a second update for the same
// period, surfaced as apperrors.ErrDuplicate.
func (r *PgxRoomRepository) SaveRentUpdate(ctx context.Context, update domain.RentUpdate) error {
	m := mapping.ToModelRentUpdate(update)
	query := `
		INSERT INTO rent_updates (` + rentUpdateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.RentUpdateID, m.RoomID, m.OldAmount, m.NewAmount, m.EffectiveFrom,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert rent update for room "+m.RoomID, err)
	}
	return nil
}

// FindRentUpdatesByRoomID retrieves a room's rent change history,
// oldest first.
func (r *PgxRoomRepository) FindRentUpdatesByRoomID(ctx context.Context, roomID string) ([]domain.RentUpdate, error) {
	query := `
		SELECT ` + rentUpdateColumns + `
		FROM rent_updates
		WHERE room_id = $1
		ORDER BY effective_from;
	`
	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rent updates for room "+roomID, err)
	}
	defer rows.Close()

	updates := []models.RentUpdate{}
	for rows.Next() {
		m, err := scanRentUpdate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rent update row", err)
		}
		updates = append(updates, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rent update rows", err)
	}
	return mapping.ToDomainRentUpdateSlice(updates), nil
}

// FindRentUpdatesByRoomIDs retrieves rent histories for several rooms
// at once, keyed by room ID, each oldest first.
func (r *PgxRoomRepository) FindRentUpdatesByRoomIDs(ctx context.Context, roomIDs []string) (map[string][]domain.RentUpdate, error) {
	result := make(map[string][]domain.RentUpdate, len(roomIDs))
	if len(roomIDs) == 0 {
		return result, nil
	}
	query := `
		SELECT ` + rentUpdateColumns + `
		FROM rent_updates
		WHERE room_id = ANY($1)
		ORDER BY room_id, effective_from;
	`
	rows, err := r.db.Query(ctx, query, roomIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rent updates by room IDs", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanRentUpdate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rent update row", err)
		}
		result[m.RoomID] = append(result[m.RoomID], mapping.ToDomainRentUpdate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rent update rows", err)
	}
	return result, nil
}
