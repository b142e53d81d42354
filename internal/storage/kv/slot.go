package kv

import "sync"

// Slot keeps the in-memory mirror of a single key. The mirror is read once on
// construction and then changed only through Set/Update/Modify/Remove, each of
// which writes through to the backend before the mirror moves.
//
// Update functions run under the slot lock and must not call back into the
// same slot.
type Slot[T any] struct {
	store *Store
	key   string
	def   T

	mu    sync.RWMutex
	value T
}

func NewSlot[T any](s *Store, key string, def T) *Slot[T] {
	return &Slot[T]{
		store: s,
		key:   key,
		def:   def,
		value: Get(s, key, def),
	}
}

func (sl *Slot[T]) Key() string {
	return sl.key
}

func (sl *Slot[T]) Value() T {
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	return sl.value
}

func (sl *Slot[T]) Set(v T) {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	Set(sl.store, sl.key, v)
	sl.value = v
}

// Update applies fn to the current mirror value and stores the result.
func (sl *Slot[T]) Update(fn func(prev T) T) T {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	next := fn(sl.value)
	Set(sl.store, sl.key, next)
	sl.value = next

	return next
}

// Modify is Update for callers that may decide nothing changed; nothing is
// written when fn returns false.
func (sl *Slot[T]) Modify(fn func(prev T) (T, bool)) bool {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	next, changed := fn(sl.value)
	if !changed {
		return false
	}

	Set(sl.store, sl.key, next)
	sl.value = next

	return true
}

// Remove удаляет ключ и возвращает зеркало к значению по умолчанию.
func (sl *Slot[T]) Remove() {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	sl.store.Remove(sl.key)
	sl.value = sl.def
}

// Reload перечитывает значение из хранилища.
func (sl *Slot[T]) Reload() {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	sl.value = Get(sl.store, sl.key, sl.def)
}

// Stage adds v to the batch; the mirror follows on Commit.
func (sl *Slot[T]) Stage(b *Batch, v T) {
	b.stage(sl.key, v, func() {
		sl.mu.Lock()
		sl.value = v
		sl.mu.Unlock()
	})
}

// StageUpdate stages fn applied to the value already staged for this key in b,
// or to the mirror when nothing is staged yet.
func (sl *Slot[T]) StageUpdate(b *Batch, fn func(prev T) T) {
	prev := sl.Value()
	if v, ok := b.staged(sl.key); ok {
		if tv, ok := v.(T); ok {
			prev = tv
		}
	}
	sl.Stage(b, fn(prev))
}
