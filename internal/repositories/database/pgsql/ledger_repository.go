package pgsql

import (
	"context"
	"encoding/json"
	"errors"
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

// PgxLedgerRepository persists ledger entries, rent payments and
// rollback records. db is either the pool or, inside WithTenantLock, a
// transaction, so every query method works in both modes.
type PgxLedgerRepository struct {
	BaseRepository
	db dbConn
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		db:             pool,
	}
}

var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

// WithTenantLock runs fn against a transaction-bound repository after
// taking a row lock on the tenant. Concurrent writers for the same
// tenant queue on the lock, so fn's read-then-write sequence sees a
// stable snapshot. The transaction commits only when fn returns nil.
func (r *PgxLedgerRepository) WithTenantLock(ctx context.Context, tenantID string, fn func(repo portsrepo.LedgerRepositoryFacade) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var lockedID string
	err = tx.QueryRow(ctx, `SELECT tenant_id FROM tenants WHERE tenant_id = $1 FOR UPDATE;`, tenantID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock tenant "+tenantID, err)
	}

	txRepo := &PgxLedgerRepository{
		BaseRepository: r.BaseRepository,
		db:             tx,
	}
	if err := fn(txRepo); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

const entryColumns = `entry_id, tenant_id, entry_type, subtype, amount, bundle_id, payment_method, transaction_date, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID,
		&m.TenantID,
		&m.EntryType,
		&m.Subtype,
		&m.Amount,
		&m.BundleID,
		&m.PaymentMethod,
		&m.TransactionDate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLedgerRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.LedgerEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries", err)
	}
	defer rows.Close()

	entries := []models.LedgerEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}
	return mapping.ToDomainLedgerEntrySlice(entries), nil
}

// FindEntryByID retrieves a ledger entry by its ID.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE entry_id = $1;`
	m, err := scanEntry(r.db.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger entry by ID "+entryID, err)
	}
	d := mapping.ToDomainLedgerEntry(m)
	return &d, nil
}

// FindEntriesByTenantID retrieves a tenant's full ledger, oldest first
// with created_at as the within-day tie-break.
func (r *PgxLedgerRepository) FindEntriesByTenantID(ctx context.Context, tenantID string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE tenant_id = $1
		ORDER BY transaction_date, created_at;
	`
	return r.queryEntries(ctx, query, tenantID)
}

// FindEntriesByBundleID retrieves all entries created together as one
// logical transaction.
func (r *PgxLedgerRepository) FindEntriesByBundleID(ctx context.Context, bundleID string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE bundle_id = $1
		ORDER BY created_at;
	`
	return r.queryEntries(ctx, query, bundleID)
}

// ListEntriesByTenantID retrieves a page of a tenant's ledger, newest
// first, using token-based pagination over (transaction_date, created_at).
func (r *PgxLedgerRepository) ListEntriesByTenantID(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to determine whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE tenant_id = $1
	`
	orderByClause := `ORDER BY transaction_date DESC, created_at DESC`

	args := []any{tenantID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (transaction_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ledger page for tenant "+tenantID, err)
	}
	defer rows.Close()

	entries := []models.LedgerEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}

	var nextTokenVal *string
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		nextTokenVal = &token
		entries = entries[:limit]
	}

	return mapping.ToDomainLedgerEntrySlice(entries), nextTokenVal, nil
}

// SaveBundle atomically persists ledger entries together with the rent
// payments they fund. Called inside WithTenantLock the inserts join the
// surrounding transaction; standalone they run as a single batch, which
// pgx wraps in an implicit transaction. A duplicate (tenant, period)
// rent payment surfaces as apperrors.ErrConflict.
func (r *PgxLedgerRepository) SaveBundle(ctx context.Context, entries []domain.LedgerEntry, payments []domain.RentPayment) error {
	batch := &pgx.Batch{}

	entryQuery := `
		INSERT INTO ledger_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	for _, e := range entries {
		m := mapping.ToModelLedgerEntry(e)
		batch.Queue(entryQuery,
			m.EntryID, m.TenantID, m.EntryType, m.Subtype, m.Amount,
			m.BundleID, m.PaymentMethod, m.TransactionDate, m.Notes,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	paymentQuery := `
		INSERT INTO rent_payments (` + rentPaymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, p := range payments {
		m := mapping.ToModelRentPayment(p)
		batch.Queue(paymentQuery,
			m.RentPaymentID, m.TenantID, m.Period, m.Amount, m.EntryID,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to save ledger bundle", err)
	}
	return nil
}

const rentPaymentColumns = `rent_payment_id, tenant_id, period, amount, entry_id, created_at, created_by, last_updated_at, last_updated_by`

func scanRentPayment(row pgx.Row) (models.RentPayment, error) {
	var m models.RentPayment
	err := row.Scan(
		&m.RentPaymentID,
		&m.TenantID,
		&m.Period,
		&m.Amount,
		&m.EntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLedgerRepository) queryRentPayments(ctx context.Context, query string, args ...any) ([]domain.RentPayment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rent payments", err)
	}
	defer rows.Close()

	payments := []models.RentPayment{}
	for rows.Next() {
		m, err := scanRentPayment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rent payment row", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rent payment rows", err)
	}

	ds, err := mapping.ToDomainRentPaymentSlice(payments)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map rent payment rows", err)
	}
	return ds, nil
}

// FindRentPaymentsByTenantID retrieves all of a tenant's rent payments,
// oldest period first. The "YYYY-MM" period strings sort chronologically.
func (r *PgxLedgerRepository) FindRentPaymentsByTenantID(ctx context.Context, tenantID string) ([]domain.RentPayment, error) {
	query := `
		SELECT ` + rentPaymentColumns + `
		FROM rent_payments
		WHERE tenant_id = $1
		ORDER BY period;
	`
	return r.queryRentPayments(ctx, query, tenantID)
}

// FindRentPaymentsByEntryIDs retrieves the rent payments funded by the
// given ledger entries.
func (r *PgxLedgerRepository) FindRentPaymentsByEntryIDs(ctx context.Context, entryIDs []string) ([]domain.RentPayment, error) {
	if len(entryIDs) == 0 {
		return []domain.RentPayment{}, nil
	}
	query := `
		SELECT ` + rentPaymentColumns + `
		FROM rent_payments
		WHERE entry_id = ANY($1)
		ORDER BY period;
	`
	return r.queryRentPayments(ctx, query, entryIDs)
}

// FindRentPaymentsInRange retrieves every rent payment for periods in
// the inclusive range, across all tenants.
func (r *PgxLedgerRepository) FindRentPaymentsInRange(ctx context.Context, from, through domain.Period) ([]domain.RentPayment, error) {
	query := `
		SELECT ` + rentPaymentColumns + `
		FROM rent_payments
		WHERE period >= $1 AND period <= $2
		ORDER BY period;
	`
	return r.queryRentPayments(ctx, query, from.String(), through.String())
}

// DeleteRentPayments removes the given rent payment rows.
func (r *PgxLedgerRepository) DeleteRentPayments(ctx context.Context, paymentIDs []string) error {
	if len(paymentIDs) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, `DELETE FROM rent_payments WHERE rent_payment_id = ANY($1);`, paymentIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete rent payments", err)
	}
	return nil
}

// DeleteEntries removes the given ledger entry rows.
func (r *PgxLedgerRepository) DeleteEntries(ctx context.Context, entryIDs []string) error {
	if len(entryIDs) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, `DELETE FROM ledger_entries WHERE entry_id = ANY($1);`, entryIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete ledger entries", err)
	}
	return nil
}

// SaveRollbackRecord persists the rollback audit row. The deleted rows
// are stored verbatim as JSONB documents.
func (r *PgxLedgerRepository) SaveRollbackRecord(ctx context.Context, record domain.RollbackRecord) error {
	deletedEntries, err := json.Marshal(record.DeletedEntries)
	if err != nil {
		return apperrors.NewAppError(500, "failed to marshal deleted entries", err)
	}
	deletedPayments, err := json.Marshal(record.DeletedPayments)
	if err != nil {
		return apperrors.NewAppError(500, "failed to marshal deleted payments", err)
	}
	periods := make([]string, len(record.PeriodsAffected))
	for i, p := range record.PeriodsAffected {
		periods[i] = p.String()
	}

	query := `
		INSERT INTO rollback_records (
			rollback_id, rollback_type, tenant_id, entry_id,
			deleted_entries, deleted_payments, periods_affected,
			rent_rolled_back, adjustments_rolled_back,
			balance_before, balance_after, reason, actor_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = r.db.Exec(ctx, query,
		record.RollbackID, record.RollbackType, record.TenantID, record.EntryID,
		deletedEntries, deletedPayments, periods,
		record.RentRolledBack, record.AdjustmentsRolledBack,
		record.BalanceBefore, record.BalanceAfter, record.Reason, record.ActorID, record.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to insert rollback record "+record.RollbackID, err)
	}
	return nil
}

// FindRollbackRecordByEntryID retrieves the rollback record targeting
// the given ledger entry, if one exists.
func (r *PgxLedgerRepository) FindRollbackRecordByEntryID(ctx context.Context, entryID string) (*domain.RollbackRecord, error) {
	query := `
		SELECT rollback_id, rollback_type, tenant_id, entry_id,
		       deleted_entries, deleted_payments, periods_affected,
		       rent_rolled_back, adjustments_rolled_back,
		       balance_before, balance_after, reason, actor_id, created_at
		FROM rollback_records
		WHERE entry_id = $1;
	`
	var m models.RollbackRecord
	err := r.db.QueryRow(ctx, query, entryID).Scan(
		&m.RollbackID,
		&m.RollbackType,
		&m.TenantID,
		&m.EntryID,
		&m.DeletedEntries,
		&m.DeletedPayments,
		&m.PeriodsAffected,
		&m.RentRolledBack,
		&m.AdjustmentsRolledBack,
		&m.BalanceBefore,
		&m.BalanceAfter,
		&m.Reason,
		&m.ActorID,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find rollback record for entry "+entryID, err)
	}

	record := domain.RollbackRecord{
		RollbackID:            m.RollbackID,
		RollbackType:          m.RollbackType,
		TenantID:              m.TenantID,
		EntryID:               m.EntryID,
		RentRolledBack:        m.RentRolledBack,
		AdjustmentsRolledBack: m.AdjustmentsRolledBack,
		BalanceBefore:         m.BalanceBefore,
		BalanceAfter:          m.BalanceAfter,
		Reason:                m.Reason,
		ActorID:               m.ActorID,
		CreatedAt:             m.CreatedAt,
	}
	if err := json.Unmarshal(m.DeletedEntries, &record.DeletedEntries); err != nil {
		return nil, apperrors.NewAppError(500, "failed to unmarshal deleted entries for rollback "+m.RollbackID, err)
	}
	if err := json.Unmarshal(m.DeletedPayments, &record.DeletedPayments); err != nil {
		return nil, apperrors.NewAppError(500, "failed to unmarshal deleted payments for rollback "+m.RollbackID, err)
	}
	for _, s := range m.PeriodsAffected {
		p, perr := domain.ParsePeriod(s)
		if perr != nil {
			return nil, apperrors.NewAppError(500, "rollback record "+m.RollbackID+" has malformed period "+s, perr)
		}
		record.PeriodsAffected = append(record.PeriodsAffected, p)
	}
	return &record, nil
}

// AggregateCashTotals computes the global cash aggregates: collections
// from tenant payment entries, the rest from the cash book.
func (r *PgxLedgerRepository) AggregateCashTotals(ctx context.Context) (domain.CashTotals, error) {
	return aggregateCashTotals(ctx, r.db)
}

// aggregateCashTotals is shared with the cashbook repository so both
// read the same definition of the operator balance.
func aggregateCashTotals(ctx context.Context, db dbConn) (domain.CashTotals, error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(amount), 0) FROM ledger_entries WHERE entry_type = 'payment'),
			(SELECT COALESCE(SUM(amount), 0) FROM cash_events WHERE event_type = 'expense'),
			(SELECT COALESCE(SUM(amount), 0) FROM cash_events WHERE event_type = 'withdrawal'),
			(SELECT COALESCE(SUM(amount), 0) FROM cash_events WHERE event_type = 'adjustment');
	`
	var totals domain.CashTotals
	err := db.QueryRow(ctx, query).Scan(
		&totals.Collections,
		&totals.Expenses,
		&totals.Withdrawals,
		&totals.Adjustments,
	)
	if err != nil {
		return domain.CashTotals{}, apperrors.NewAppError(500, "failed to aggregate cash totals", err)
	}
	return totals, nil
}
