package pgsql

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/apperrors"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	portsrepo "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/repositories"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/models"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/utils/mapping"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/utils/pagination"
)

type PgxCashbookRepository struct {
	db *pgxpool.Pool
}

func newPgxCashbookRepository(db *pgxpool.Pool) portsrepo.CashbookRepositoryFacade {
	return &PgxCashbookRepository{db: db}
}

var _ portsrepo.CashbookRepositoryFacade = (*PgxCashbookRepository)(nil)

const cashEventColumns = `cash_event_id, event_type, amount, description, event_date, created_at, created_by, last_updated_at, last_updated_by`

func scanCashEvent(row pgx.Row) (models.CashEvent, error) {
	var m models.CashEvent
	err := row.Scan(
		&m.CashEventID,
		&m.EventType,
		&m.Amount,
		&m.Description,
		&m.EventDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCashEvent inserts a cash-book row.
func (r *PgxCashbookRepository) SaveCashEvent(ctx context.Context, event domain.CashEvent) error {
	m := mapping.ToModelCashEvent(event)
	query := `
		INSERT INTO cash_events (` + cashEventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.CashEventID, m.EventType, m.Amount, m.Description, m.EventDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert cash event "+m.CashEventID, err)
	}
	return nil
}

// ListCashEvents retrieves a page of cash events, newest first, using
// token-based pagination over (event_date, created_at).
func (r *PgxCashbookRepository) ListCashEvents(ctx context.Context, limit int, nextToken *string) ([]domain.CashEvent, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + cashEventColumns + ` FROM cash_events`
	orderByClause := `ORDER BY event_date DESC, created_at DESC`

	args := []any{}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` WHERE (event_date, created_at) < ($1, $2)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query cash events", err)
	}
	defer rows.Close()

	events := []models.CashEvent{}
	for rows.Next() {
		m, err := scanCashEvent(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan cash event row", err)
		}
		events = append(events, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating cash event rows", err)
	}

	var nextTokenVal *string
	if len(events) > limit {
		last := events[limit-1]
		token := pagination.EncodeToken(last.EventDate, last.CreatedAt)
		nextTokenVal = &token
		events = events[:limit]
	}

	ds := make([]domain.CashEvent, len(events))
	for i, m := range events {
		ds[i] = mapping.ToDomainCashEvent(m)
	}
	return ds, nextTokenVal, nil
}

// AggregateCashTotals computes the operator cash aggregates.
func (r *PgxCashbookRepository) AggregateCashTotals(ctx context.Context) (domain.CashTotals, error) {
	return aggregateCashTotals(ctx, r.db)
}
