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

type PgxOperatorRepository struct {
	db *pgxpool.Pool
}

func newPgxOperatorRepository(db *pgxpool.Pool) portsrepo.OperatorRepositoryFacade {
	return &PgxOperatorRepository{db: db}
}

var _ portsrepo.OperatorRepositoryFacade = (*PgxOperatorRepository)(nil)

const operatorColumns = `operator_id, username, name, password_hash, created_at, created_by, last_updated_at, last_updated_by`

func scanOperator(row pgx.Row) (models.Operator, error) {
	var m models.Operator
	err := row.Scan(
		&m.OperatorID,
		&m.Username,
		&m.Name,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveOperator inserts an operator. Returns apperrors.ErrDuplicate when
// the username is taken.
func (r *PgxOperatorRepository) SaveOperator(ctx context.Context, operator domain.Operator) error {
	m := mapping.ToModelOperator(operator)
	query := `
		INSERT INTO operators (` + operatorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		m.OperatorID, m.Username, m.Name, m.PasswordHash,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert operator "+m.OperatorID, err)
	}
	return nil
}

func (r *PgxOperatorRepository) findOperator(ctx context.Context, whereClause string, arg any) (*domain.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators WHERE ` + whereClause + ` = $1;`
	m, err := scanOperator(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find operator", err)
	}
	d := mapping.ToDomainOperator(m)
	return &d, nil
}

// FindOperatorByID retrieves an operator by its ID.
func (r *PgxOperatorRepository) FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	return r.findOperator(ctx, "operator_id", operatorID)
}

// FindOperatorByUsername retrieves an operator by username.
func (r *PgxOperatorRepository) FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	return r.findOperator(ctx, "username", username)
}
