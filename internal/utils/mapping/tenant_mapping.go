package mapping

import (
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/models"
)

// ToModelTenant converts a domain Tenant to a model Tenant.
func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:    d.TenantID,
		Name:        d.Name,
		Phone:       d.Phone,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTenant converts a model Tenant to a domain Tenant.
func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:    m.TenantID,
		Name:        m.Name,
		Phone:       m.Phone,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTenantSlice converts a slice of model Tenants to domain Tenants.
func ToDomainTenantSlice(ms []models.Tenant) []domain.Tenant {
	ds := make([]domain.Tenant, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTenant(m)
	}
	return ds
}

// ToModelAllocation converts a domain allocation to its model.
func ToModelAllocation(d domain.TenantRoomAllocation) models.TenantRoomAllocation {
	return models.TenantRoomAllocation{
		AllocationID: d.AllocationID,
		TenantID:     d.TenantID,
		RoomID:       d.RoomID,
		MoveInDate:   d.MoveInDate,
		MoveOutDate:  d.MoveOutDate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAllocation converts a model allocation to its domain form.
func ToDomainAllocation(m models.TenantRoomAllocation) domain.TenantRoomAllocation {
	return domain.TenantRoomAllocation{
		AllocationID: m.AllocationID,
		TenantID:     m.TenantID,
		RoomID:       m.RoomID,
		MoveInDate:   m.MoveInDate,
		MoveOutDate:  m.MoveOutDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAllocationSlice converts a slice of model allocations to
// domain allocations.
func ToDomainAllocationSlice(ms []models.TenantRoomAllocation) []domain.TenantRoomAllocation {
	ds := make([]domain.TenantRoomAllocation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAllocation(m)
	}
	return ds
}
