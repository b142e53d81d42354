package kv

// Identified - запись коллекции с уникальным строковым идентификатором
type Identified interface {
	GetID() string
}

// List - упорядоченная коллекция записей под одним ключом.
// Порядок вставки сохраняется.
type List[T Identified] struct {
	slot *Slot[[]T]
}

func NewList[T Identified](s *Store, key string) *List[T] {
	return &List[T]{
		slot: NewSlot(s, key, []T{}),
	}
}

func (l *List[T]) Key() string {
	return l.slot.Key()
}

// All возвращает копию записей.
func (l *List[T]) All() []T {
	items := l.slot.Value()
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func (l *List[T]) Len() int {
	return len(l.slot.Value())
}

func (l *List[T]) Find(id string) (T, bool) {
	for _, item := range l.slot.Value() {
		if item.GetID() == id {
			return item, true
		}
	}

	var zero T
	return zero, false
}

// Append добавляет запись в конец коллекции.
func (l *List[T]) Append(item T) {
	l.slot.Update(func(prev []T) []T {
		return appendCopy(prev, item)
	})
}

// Prepend добавляет запись в начало коллекции.
func (l *List[T]) Prepend(item T) {
	l.slot.Update(func(prev []T) []T {
		next := make([]T, 0, len(prev)+1)
		next = append(next, item)
		return append(next, prev...)
	})
}

// UpdateByID replaces the record with the given id by fn(record). An unknown
// id is a silent no-op and nothing is written. It reports whether a record
// matched.
func (l *List[T]) UpdateByID(id string, fn func(T) T) bool {
	return l.slot.Modify(func(prev []T) ([]T, bool) {
		found := false
		next := make([]T, len(prev))
		for i, item := range prev {
			if item.GetID() == id {
				next[i] = fn(item)
				found = true
				continue
			}
			next[i] = item
		}
		return next, found
	})
}

// UpdateWhere applies fn to every record matching match.
func (l *List[T]) UpdateWhere(match func(T) bool, fn func(T) T) int {
	updated := 0
	l.slot.Modify(func(prev []T) ([]T, bool) {
		next := make([]T, len(prev))
		for i, item := range prev {
			if match(item) {
				next[i] = fn(item)
				updated++
				continue
			}
			next[i] = item
		}
		return next, updated > 0
	})
	return updated
}

// Retain keeps only the records for which keep returns true and reports how
// many were dropped.
func (l *List[T]) Retain(keep func(T) bool) int {
	dropped := 0
	l.slot.Modify(func(prev []T) ([]T, bool) {
		next := make([]T, 0, len(prev))
		for _, item := range prev {
			if keep(item) {
				next = append(next, item)
				continue
			}
			dropped++
		}
		return next, dropped > 0
	})
	return dropped
}

// Replace перезаписывает коллекцию целиком.
func (l *List[T]) Replace(items []T) {
	next := make([]T, len(items))
	copy(next, items)
	l.slot.Set(next)
}

// StageAppend добавляет запись в пакет; зеркало обновится при Commit.
func (l *List[T]) StageAppend(b *Batch, item T) {
	l.slot.StageUpdate(b, func(prev []T) []T {
		return appendCopy(prev, item)
	})
}

func (l *List[T]) Reload() {
	l.slot.Reload()
}

func appendCopy[T any](prev []T, item T) []T {
	next := make([]T, 0, len(prev)+1)
	next = append(next, prev...)
	return append(next, item)
}
