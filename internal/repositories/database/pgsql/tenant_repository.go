package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/apperrors"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	portsrepo "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/repositories"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/models"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/utils/mapping"
)

type PgxTenantRepository struct {
	db *pgxpool.Pool
}

func newPgxTenantRepository(db *pgxpool.Pool) portsrepo.TenantRepositoryFacade {
	return &PgxTenantRepository{db: db}
}

var _ portsrepo.TenantRepositoryFacade = (*PgxTenantRepository)(nil)

const tenantColumns = `tenant_id, name, phone, created_at, created_by, last_updated_at, last_updated_by`

func scanTenant(row pgx.Row) (models.Tenant, error) {
	var m models.Tenant
	err := row.Scan(
		&m.TenantID,
		&m.Name,
		&m.Phone,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTenant inserts a tenant.
func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	query := `
		INSERT INTO tenants (` + tenantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query,
		m.TenantID, m.Name, m.Phone,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert tenant "+m.TenantID, err)
	}
	return nil
}

// FindTenantByID retrieves a tenant by its ID.
func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE tenant_id = $1;`
	m, err := scanTenant(r.db.QueryRow(ctx, query, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find tenant by ID "+tenantID, err)
	}
	d := mapping.ToDomainTenant(m)
	return &d, nil
}

// ListTenants retrieves all tenants ordered by name.
func (r *PgxTenantRepository) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants ORDER BY name;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tenants", err)
	}
	defer rows.Close()

	tenants := []models.Tenant{}
	for rows.Next() {
		m, err := scanTenant(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tenant row", err)
		}
		tenants = append(tenants, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating tenant rows", err)
	}
	return mapping.ToDomainTenantSlice(tenants), nil
}

const allocationColumns = `allocation_id, tenant_id, room_id, move_in_date, move_out_date, created_at, created_by, last_updated_at, last_updated_by`

func scanAllocation(row pgx.Row) (models.TenantRoomAllocation, error) {
	var m models.TenantRoomAllocation
	err := row.Scan(
		&m.AllocationID,
		&m.TenantID,
		&m.RoomID,
		&m.MoveInDate,
		&m.MoveOutDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAllocation inserts a tenancy interval. The partial unique index on
// open allocations per room rejects double occupancy, surfaced as
// apperrors.ErrConflict.
func (r *PgxTenantRepository) SaveAllocation(ctx context.Context, allocation domain.TenantRoomAllocation) error {
	m := mapping.ToModelAllocation(allocation)
	query := `
		INSERT INTO tenant_room_allocations (` + allocationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.AllocationID, m.TenantID, m.RoomID, m.MoveInDate, m.MoveOutDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to insert allocation "+m.AllocationID, err)
	}
	return nil
}

// CloseAllocation sets the move-out date on an open allocation.
func (r *PgxTenantRepository) CloseAllocation(ctx context.Context, allocationID string, moveOut time.Time, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE tenant_room_allocations
		SET move_out_date = $2, last_updated_at = $3, last_updated_by = $4
		WHERE allocation_id = $1 AND move_out_date IS NULL;
	`
	tag, err := r.db.Exec(ctx, query, allocationID, moveOut, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close allocation "+allocationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAllocationsByTenantID retrieves all of a tenant's tenancy
// intervals, oldest move-in first.
func (r *PgxTenantRepository) FindAllocationsByTenantID(ctx context.Context, tenantID string) ([]domain.TenantRoomAllocation, error) {
	query := `
		SELECT ` + allocationColumns + `
		FROM tenant_room_allocations
		WHERE tenant_id = $1
		ORDER BY move_in_date;
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query allocations for tenant "+tenantID, err)
	}
	defer rows.Close()

	allocations := []models.TenantRoomAllocation{}
	for rows.Next() {
		m, err := scanAllocation(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan allocation row", err)
		}
		allocations = append(allocations, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating allocation rows", err)
	}
	return mapping.ToDomainAllocationSlice(allocations), nil
}

// FindOpenAllocationByRoomID retrieves the room's current occupancy, if any.
func (r *PgxTenantRepository) FindOpenAllocationByRoomID(ctx context.Context, roomID string) (*domain.TenantRoomAllocation, error) {
	query := `
		SELECT ` + allocationColumns + `
		FROM tenant_room_allocations
		WHERE room_id = $1 AND move_out_date IS NULL;
	`
	m, err := scanAllocation(r.db.QueryRow(ctx, query, roomID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find open allocation for room "+roomID, err)
	}
	d := mapping.ToDomainAllocation(m)
	return &d, nil
}

// FindOpenAllocations retrieves every currently open allocation.
func (r *PgxTenantRepository) FindOpenAllocations(ctx context.Context) ([]domain.TenantRoomAllocation, error) {
	query := `
		SELECT ` + allocationColumns + `
		FROM tenant_room_allocations
		WHERE move_out_date IS NULL
		ORDER BY move_in_date;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query open allocations", err)
	}
	defer rows.Close()

	allocations := []models.TenantRoomAllocation{}
	for rows.Next() {
		m, err := scanAllocation(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan allocation row", err)
		}
		allocations = append(allocations, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating allocation rows", err)
	}
	return mapping.ToDomainAllocationSlice(allocations), nil
}
