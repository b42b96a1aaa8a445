package dto

import (
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the single money-in payload. Type selects
// the operation: "payment" records a payment bundle (optionally
// auto-applied to unpaid rent), "credit" applies existing credit to
// rent, "adjustment" writes a standalone adjustment entry.
type CreateTransactionRequest struct {
	TenantID string          `json:"tenantID" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Type     string          `json:"type" binding:"required,oneof=payment credit adjustment"`
	Method   string          `json:"method" binding:"omitempty,oneof=cash upi bank cheque"`
	Date     string          `json:"date" binding:"required,datetime=2006-01-02"`
	Notes    string          `json:"notes"`

	// Adjustment components bundled with a payment.
	Discount             decimal.Decimal `json:"discount"`
	MaintenanceDeduction decimal.Decimal `json:"maintenanceDeduction"`
	OtherAdjustment      decimal.Decimal `json:"otherAdjustment"`

	// Subtype qualifies a standalone adjustment.
	Subtype string `json:"subtype" binding:"omitempty,oneof=discount maintenance other"`

	// AutoApplyToRent defaults to true when omitted.
	AutoApplyToRent *bool `json:"autoApplyToRent,omitempty"`
}

// AutoApply resolves the AutoApplyToRent default.
func (r CreateTransactionRequest) AutoApply() bool {
	return r.AutoApplyToRent == nil || *r.AutoApplyToRent
}

// ApplyCreditRequest applies already-banked credit to unpaid rent.
type ApplyCreditRequest struct {
	TenantID string          `json:"tenantID" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Date     string          `json:"date" binding:"required,datetime=2006-01-02"`
	Notes    string          `json:"notes"`
}

// ToTransactionRequest adapts the dedicated payload to the shared
// money-in shape consumed by the payment service.
func (r ApplyCreditRequest) ToTransactionRequest() CreateTransactionRequest {
	return CreateTransactionRequest{
		TenantID: r.TenantID,
		Amount:   r.Amount,
		Type:     "credit",
		Date:     r.Date,
		Notes:    r.Notes,
	}
}

// TransactionOutcome reports what a ledger mutation did.
type TransactionOutcome struct {
	BundleID        string          `json:"bundleID"`
	EntryID         string          `json:"entryID"`
	PeriodsPaid     []domain.Period `json:"periodsPaid"`
	AmountApplied   decimal.Decimal `json:"amountApplied"`
	RemainingCredit decimal.Decimal `json:"remainingCredit"`
}
