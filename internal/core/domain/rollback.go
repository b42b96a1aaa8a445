package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RollbackRecord is the immutable audit entry written when a payment
// bundle is reversed. It captures the deleted rows verbatim so the
// reversal can be reconstructed (or re-applied) later.
type RollbackRecord struct {
	RollbackID            string          `json:"rollbackID"`
	RollbackType          string          `json:"rollbackType"` // currently always "payment"
	TenantID              string          `json:"tenantID"`
	EntryID               string          `json:"entryID"` // The payment entry that was targeted
	DeletedEntries        []LedgerEntry   `json:"deletedEntries"`
	DeletedPayments       []RentPayment   `json:"deletedPayments"`
	PeriodsAffected       []Period        `json:"periodsAffected"`
	RentRolledBack        decimal.Decimal `json:"rentRolledBack"`
	AdjustmentsRolledBack decimal.Decimal `json:"adjustmentsRolledBack"`
	BalanceBefore         decimal.Decimal `json:"balanceBefore"` // Operator cash balance snapshots
	BalanceAfter          decimal.Decimal `json:"balanceAfter"`
	Reason                string          `json:"reason"`
	ActorID               string          `json:"actorID"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// RollbackValidation is the outcome of a pre-flight rollback check.
// Errors block execution; warnings flag history that depended on the
// target payment's credit but do not block.
type RollbackValidation struct {
	CanRollback bool             `json:"canRollback"`
	Errors      []string         `json:"errors,omitempty"`
	Warnings    []string         `json:"warnings,omitempty"`
	Details     *RollbackDetails `json:"details,omitempty"`
}

// RollbackDetails describes what executing the rollback would remove.
type RollbackDetails struct {
	TenantID        string          `json:"tenantID"`
	BundleID        string          `json:"bundleID"`
	EntryCount      int             `json:"entryCount"`
	PeriodsAffected []Period        `json:"periodsAffected"`
	RentTotal       decimal.Decimal `json:"rentTotal"`
	AdjustmentTotal decimal.Decimal `json:"adjustmentTotal"`
	PaymentAmount   decimal.Decimal `json:"paymentAmount"`
}

// RollbackResult summarizes an executed rollback.
type RollbackResult struct {
	RollbackID      string          `json:"rollbackID"`
	PeriodsAffected []Period        `json:"periodsAffected"`
	AmountRefunded  decimal.Decimal `json:"amountRefunded"`
}
