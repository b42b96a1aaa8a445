package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a ledger entry.
type EntryType string

const (
	EntryPayment        EntryType = "payment"
	EntryCredit         EntryType = "credit"
	EntryAdjustment     EntryType = "adjustment"
	EntryOpeningBalance EntryType = "opening_balance"
)

// EntrySubtype qualifies an adjustment or opening-balance entry.
type EntrySubtype string

const (
	SubtypeDiscount       EntrySubtype = "discount"
	SubtypeMaintenance    EntrySubtype = "maintenance"
	SubtypeOpeningBalance EntrySubtype = "opening_balance"
	SubtypeOther          EntrySubtype = "other"
)

// LedgerEntry is a signed monetary record against a tenant. Positive
// amounts increase tenant credit (money received or a tenant-favorable
// adjustment); negative amounts represent pre-existing dues.
//
// Entries created together as one logical transaction (a payment plus
// its adjustments) share a BundleID. Entries are append-only; the only
// deletion path is the rollback engine, which preserves the deleted
// rows in a RollbackRecord.
type LedgerEntry struct {
	EntryID         string          `json:"entryID"`
	TenantID        string          `json:"tenantID"`
	EntryType       EntryType       `json:"entryType"`
	Subtype         EntrySubtype    `json:"subtype,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	BundleID        string          `json:"bundleID"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"` // cash, upi, bank, ...
	TransactionDate time.Time       `json:"transactionDate"`
	Notes           string          `json:"notes,omitempty"`
	AuditFields
}

// BeforeOrAt reports whether the entry falls within a point-in-time
// cutoff: transaction date strictly before cutoffDate, or same date
// with creation timestamp at or before cutoffCreatedAt. The created-at
// tie-break makes snapshots deterministic for same-day entries.
func (e LedgerEntry) BeforeOrAt(cutoffDate, cutoffCreatedAt time.Time) bool {
	d := dateOnly(e.TransactionDate)
	c := dateOnly(cutoffDate)
	if d.Before(c) {
		return true
	}
	return d.Equal(c) && !e.CreatedAt.After(cutoffCreatedAt)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
