package appointment

import "ecitoyen/internal/storage/kv"

// Repository - коллекция записей на прием. Отмена - это смена статуса.
type Repository interface {
	All() []Appointment
	Find(id string) (Appointment, bool)
	Append(a Appointment)
	UpdateByID(id string, fn func(Appointment) Appointment) bool
}

// NewRepository возвращает коллекцию в ключе citizenAppointments.
func NewRepository(store *kv.Store) *kv.List[Appointment] {
	return kv.NewList[Appointment](store, kv.KeyAppointments)
}

var _ Repository = (*kv.List[Appointment])(nil)
