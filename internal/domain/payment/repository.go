package payment

import "ecitoyen/internal/storage/kv"

// Repository - коллекция платежей. Удаления нет.
type Repository interface {
	All() []Payment
	Find(id string) (Payment, bool)
	Append(p Payment)
	UpdateByID(id string, fn func(Payment) Payment) bool
	StageAppend(b *kv.Batch, p Payment)
}

// NewRepository возвращает коллекцию платежей в ключе citizenPayments.
func NewRepository(store *kv.Store) *kv.List[Payment] {
	return kv.NewList[Payment](store, kv.KeyPayments)
}

var _ Repository = (*kv.List[Payment])(nil)
