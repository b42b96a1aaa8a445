package domain

import "github.com/shopspring/decimal"

// BalanceSnapshot is a point-in-time view of a tenant's ledger.
// NetCredit positive means unapplied credit; negative means the tenant
// is in arrears beyond what unpaid-period enumeration captures.
type BalanceSnapshot struct {
	LedgerTotal  decimal.Decimal `json:"ledgerTotal"`
	RentConsumed decimal.Decimal `json:"rentConsumed"`
	NetCredit    decimal.Decimal `json:"netCredit"`
}
