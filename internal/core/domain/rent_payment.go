package domain

import "github.com/shopspring/decimal"

// RentPayment records that a ledger entry paid one billing period in
// full, at the rent resolved for that period. At most one RentPayment
// exists per (tenant, period): a period is either fully paid or unpaid,
// never partially paid — any shortfall stays as unapplied credit.
type RentPayment struct {
	RentPaymentID string          `json:"rentPaymentID"`
	TenantID      string          `json:"tenantID"`
	Period        Period          `json:"period"`
	Amount        decimal.Decimal `json:"amount"` // Equals the resolved rent for Period
	EntryID       string          `json:"entryID"`
	AuditFields
}

// PeriodCharge is one unpaid-or-paid billing period with the rent due
// for it (summed across the rooms the tenant occupied in that period).
type PeriodCharge struct {
	Period Period          `json:"period"`
	Rent   decimal.Decimal `json:"rent"`
}
