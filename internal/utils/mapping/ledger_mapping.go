package mapping

import (
	"fmt"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:         d.EntryID,
		TenantID:        d.TenantID,
		EntryType:       string(d.EntryType),
		Subtype:         string(d.Subtype),
		Amount:          d.Amount,
		BundleID:        d.BundleID,
		PaymentMethod:   d.PaymentMethod,
		TransactionDate: d.TransactionDate,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:         m.EntryID,
		TenantID:        m.TenantID,
		EntryType:       domain.EntryType(m.EntryType),
		Subtype:         domain.EntrySubtype(m.Subtype),
		Amount:          m.Amount,
		BundleID:        m.BundleID,
		PaymentMethod:   m.PaymentMethod,
		TransactionDate: m.TransactionDate,
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerEntrySlice converts model ledger entries to domain form.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}

// ToModelRentPayment converts a domain RentPayment to a model RentPayment.
func ToModelRentPayment(d domain.RentPayment) models.RentPayment {
	return models.RentPayment{
		RentPaymentID: d.RentPaymentID,
		TenantID:      d.TenantID,
		Period:        d.Period.String(),
		Amount:        d.Amount,
		EntryID:       d.EntryID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRentPayment converts a model RentPayment to a domain
// RentPayment. It fails when the stored period string is malformed.
func ToDomainRentPayment(m models.RentPayment) (domain.RentPayment, error) {
	period, err := domain.ParsePeriod(m.Period)
	if err != nil {
		return domain.RentPayment{}, fmt.Errorf("rent payment %s has malformed period %q: %w", m.RentPaymentID, m.Period, err)
	}
	return domain.RentPayment{
		RentPaymentID: m.RentPaymentID,
		TenantID:      m.TenantID,
		Period:        period,
		Amount:        m.Amount,
		EntryID:       m.EntryID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainRentPaymentSlice converts model rent payments to domain form.
func ToDomainRentPaymentSlice(ms []models.RentPayment) ([]domain.RentPayment, error) {
	ds := make([]domain.RentPayment, len(ms))
	for i, m := range ms {
		d, err := ToDomainRentPayment(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}

// ToModelCashEvent converts a domain CashEvent to a model CashEvent.
func ToModelCashEvent(d domain.CashEvent) models.CashEvent {
	return models.CashEvent{
		CashEventID: d.CashEventID,
		EventType:   string(d.EventType),
		Amount:      d.Amount,
		Description: d.Description,
		EventDate:   d.EventDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashEvent converts a model CashEvent to a domain CashEvent.
func ToDomainCashEvent(m models.CashEvent) domain.CashEvent {
	return domain.CashEvent{
		CashEventID: m.CashEventID,
		EventType:   domain.CashEventType(m.EventType),
		Amount:      m.Amount,
		Description: m.Description,
		EventDate:   m.EventDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelOperator converts a domain Operator to a model Operator.
func ToModelOperator(d domain.Operator) models.Operator {
	return models.Operator{
		OperatorID:   d.OperatorID,
		Username:     d.Username,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOperator converts a model Operator to a domain Operator.
func ToDomainOperator(m models.Operator) domain.Operator {
	return domain.Operator{
		OperatorID:   m.OperatorID,
		Username:     m.Username,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
