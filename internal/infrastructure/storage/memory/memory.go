package memory

import (
	"errors"
	"sort"
	"sync"

	"ecitoyen/internal/storage/kv"
)

var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Storage - in-memory хранилище ключ/значение.
// Используется при STORAGE_DRIVER=memory и как запасной вариант,
// если SQLite недоступен.
type Storage struct {
	mu    sync.RWMutex
	data  map[string][]byte
	quota int
}

type Option func(*Storage)

// WithQuota ограничивает суммарный размер значений в байтах.
func WithQuota(bytes int) Option {
	return func(s *Storage) {
		s.quota = bytes
	}
}

func New(opts ...Option) *Storage {
	s := &Storage{
		data: make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Storage) Load(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return clone(v), true, nil
}

func (s *Storage) Save(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fits(map[string][]byte{key: value}) {
		return ErrQuotaExceeded
	}
	s.data[key] = clone(value)
	return nil
}

func (s *Storage) SaveBatch(entries []kv.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make(map[string][]byte, len(entries))
	for _, e := range entries {
		if e.Delete {
			pending[e.Key] = nil
			continue
		}
		pending[e.Key] = e.Value
	}
	if !s.fits(pending) {
		return ErrQuotaExceeded
	}

	for _, e := range entries {
		if e.Delete {
			delete(s.data, e.Key)
			continue
		}
		s.data[e.Key] = clone(e.Value)
	}
	return nil
}

func (s *Storage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

func (s *Storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)
	return nil
}

func (s *Storage) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Size возвращает суммарный размер значений в байтах.
func (s *Storage) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size(nil)
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) fits(pending map[string][]byte) bool {
	if s.quota <= 0 {
		return true
	}
	return s.size(pending) <= s.quota
}

// size считает размер с учетом ожидающих записей; nil в pending означает удаление.
func (s *Storage) size(pending map[string][]byte) int {
	total := 0
	for k, v := range s.data {
		if _, replaced := pending[k]; replaced {
			continue
		}
		total += len(v)
	}
	for _, v := range pending {
		total += len(v)
	}
	return total
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
