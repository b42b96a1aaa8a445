package dto

// ValidateRollbackRequest targets a payment ledger entry for reversal.
type ValidateRollbackRequest struct {
	LedgerID string `json:"ledgerID" binding:"required"`
}

// ExecuteRollbackRequest reverses a payment bundle. Reason is required
// for the audit record.
type ExecuteRollbackRequest struct {
	LedgerID string `json:"ledgerID" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}
