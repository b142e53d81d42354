package demand

import "ecitoyen/internal/storage/kv"

// Repository - коллекция заявок. Удаления нет: отмена - это смена статуса.
type Repository interface {
	All() []Demand
	Find(id string) (Demand, bool)
	Append(d Demand)
	UpdateByID(id string, fn func(Demand) Demand) bool
	StageAppend(b *kv.Batch, d Demand)
}

// NewRepository возвращает коллекцию заявок в ключе citizenDemands.
func NewRepository(store *kv.Store) *kv.List[Demand] {
	return kv.NewList[Demand](store, kv.KeyDemands)
}

var _ Repository = (*kv.List[Demand])(nil)
