package mapping

import (
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/models"
)

// ToModelRoom converts a domain Room to a model Room.
func ToModelRoom(d domain.Room) models.Room {
	return models.Room{
		RoomID:      d.RoomID,
		Code:        d.Code,
		BaseRent:    d.BaseRent,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRoom converts a model Room to a domain Room.
func ToDomainRoom(m models.Room) domain.Room {
	return domain.Room{
		RoomID:      m.RoomID,
		Code:        m.Code,
		BaseRent:    m.BaseRent,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRoomSlice converts a slice of model Rooms to domain Rooms.
func ToDomainRoomSlice(ms []models.Room) []domain.Room {
	ds := make([]domain.Room, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRoom(m)
	}
	return ds
}

// ToModelRentUpdate converts a domain RentUpdate to a model RentUpdate.
func ToModelRentUpdate(d domain.RentUpdate) models.RentUpdate {
	return models.RentUpdate{
		RentUpdateID:  d.RentUpdateID,
		RoomID:        d.RoomID,
		OldAmount:     d.OldAmount,
		NewAmount:     d.NewAmount,
		EffectiveFrom: d.EffectiveFrom,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRentUpdate converts a model RentUpdate to a domain RentUpdate.
func ToDomainRentUpdate(m models.RentUpdate) domain.RentUpdate {
	return domain.RentUpdate{
		RentUpdateID:  m.RentUpdateID,
		RoomID:        m.RoomID,
		OldAmount:     m.OldAmount,
		NewAmount:     m.NewAmount,
		EffectiveFrom: m.EffectiveFrom,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRentUpdateSlice converts a slice of model RentUpdates to
// domain RentUpdates.
func ToDomainRentUpdateSlice(ms []models.RentUpdate) []domain.RentUpdate {
	ds := make([]domain.RentUpdate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRentUpdate(m)
	}
	return ds
}
