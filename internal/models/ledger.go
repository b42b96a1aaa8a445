package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry represents one signed monetary record against a tenant.
// subtype and payment_method are empty strings when not applicable.
type LedgerEntry struct {
	EntryID         string          `json:"entryID" db:"entry_id"`
	TenantID        string          `json:"tenantID" db:"tenant_id"`
	EntryType       string          `json:"entryType" db:"entry_type"`
	Subtype         string          `json:"subtype" db:"subtype"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	BundleID        string          `json:"bundleID" db:"bundle_id"`
	PaymentMethod   string          `json:"paymentMethod" db:"payment_method"`
	TransactionDate time.Time       `json:"transactionDate" db:"transaction_date"`
	Notes           string          `json:"notes" db:"notes"`
	AuditFields
}

// RentPayment marks one billing period as fully paid. period is stored
// as the canonical "YYYY-MM" string; UNIQUE(tenant_id, period) backs
// the full-period-only allocation rule.
type RentPayment struct {
	RentPaymentID string          `json:"rentPaymentID" db:"rent_payment_id"`
	TenantID      string          `json:"tenantID" db:"tenant_id"`
	Period        string          `json:"period" db:"period"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	EntryID       string          `json:"entryID" db:"entry_id"`
	AuditFields
}

// RollbackRecord is the audit row written when a bundle is reversed.
// The deleted ledger entries and rent payments are stored verbatim as
// JSONB documents.
type RollbackRecord struct {
	RollbackID            string          `json:"rollbackID" db:"rollback_id"`
	RollbackType          string          `json:"rollbackType" db:"rollback_type"`
	TenantID              string          `json:"tenantID" db:"tenant_id"`
	EntryID               string          `json:"entryID" db:"entry_id"`
	DeletedEntries        []byte          `json:"-" db:"deleted_entries"`
	DeletedPayments       []byte          `json:"-" db:"deleted_payments"`
	PeriodsAffected       []string        `json:"periodsAffected" db:"periods_affected"`
	RentRolledBack        decimal.Decimal `json:"rentRolledBack" db:"rent_rolled_back"`
	AdjustmentsRolledBack decimal.Decimal `json:"adjustmentsRolledBack" db:"adjustments_rolled_back"`
	BalanceBefore         decimal.Decimal `json:"balanceBefore" db:"balance_before"`
	BalanceAfter          decimal.Decimal `json:"balanceAfter" db:"balance_after"`
	Reason                string          `json:"reason" db:"reason"`
	ActorID               string          `json:"actorID" db:"actor_id"`
	CreatedAt             time.Time       `json:"createdAt" db:"created_at"`
}
