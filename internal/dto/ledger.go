package dto

import (
	"time"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceResponse is the output of the ledger balance calculator,
// combined with unpaid-period enumeration.
type BalanceResponse struct {
	LedgerTotal     decimal.Decimal       `json:"ledgerTotal"`
	RentConsumed    decimal.Decimal       `json:"rentConsumed"`
	NetCredit       decimal.Decimal       `json:"netCredit"`
	UnpaidRentTotal decimal.Decimal       `json:"unpaidRentTotal"`
	UnpaidPeriods   []domain.PeriodCharge `json:"unpaidPeriods"`
}

// LedgerEntryResponse defines one ledger entry in a tenant's history.
type LedgerEntryResponse struct {
	EntryID         string          `json:"entryID"`
	EntryType       string          `json:"entryType"`
	Subtype         string          `json:"subtype,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	BundleID        string          `json:"bundleID"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	TransactionDate string          `json:"transactionDate"`
	RunningTotal    decimal.Decimal `json:"runningTotal"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ListLedgerResponse is a page of ledger entries, newest first.
type ListLedgerResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:         e.EntryID,
		EntryType:       string(e.EntryType),
		Subtype:         string(e.Subtype),
		Amount:          e.Amount,
		BundleID:        e.BundleID,
		PaymentMethod:   e.PaymentMethod,
		TransactionDate: e.TransactionDate.Format(DateLayout),
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
	}
}

// ToLedgerEntryResponses converts a slice of entries.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses
}
