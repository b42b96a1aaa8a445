package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the concrete pgx repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RoomRepo:     newPgxRoomRepository(dbPool),
		TenantRepo:   newPgxTenantRepository(dbPool),
		LedgerRepo:   newPgxLedgerRepository(dbPool),
		CashbookRepo: newPgxCashbookRepository(dbPool),
		OperatorRepo: newPgxOperatorRepository(dbPool),
	}
}
