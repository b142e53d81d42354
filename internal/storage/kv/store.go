package kv

import (
	"encoding/json"

	"golang.org/x/exp/slog"
)

type Store struct {
	backend Backend
	log     *slog.Logger
}

func New(backend Backend, log *slog.Logger) *Store {
	return &Store{
		backend: backend,
		log:     log.With("component", "kv_store"),
	}
}

// Get decodes the value stored under key. A missing key, a read error or a
// value that does not decode into T all yield def; the stored entry is not
// repaired.
func Get[T any](s *Store, key string, def T) T {
	raw, ok, err := s.backend.Load(key)
	if err != nil {
		s.log.Warn("read failed, using default", "key", key, "error", err)
		return def
	}
	if !ok || len(raw) == 0 {
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Warn("stored value is corrupt, using default", "key", key, "error", err)
		return def
	}

	return v
}

// Set encodes v and writes it under key. It reports whether the value reached
// the backend; failures are logged, never returned.
func Set[T any](s *Store, key string, v T) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Error("encode failed", "key", key, "error", err)
		return false
	}

	if err := s.backend.Save(key, raw); err != nil {
		s.log.Error("write failed", "key", key, "error", err)
		return false
	}

	return true
}

// Remove удаляет ключ. Ошибки только логируются.
func (s *Store) Remove(key string) bool {
	if err := s.backend.Delete(key); err != nil {
		s.log.Error("delete failed", "key", key, "error", err)
		return false
	}
	return true
}

// Clear удаляет все ключи хранилища.
func (s *Store) Clear() bool {
	if err := s.backend.Clear(); err != nil {
		s.log.Error("clear failed", "error", err)
		return false
	}
	return true
}

// Raw возвращает сохраненные байты без декодирования.
func (s *Store) Raw(key string) ([]byte, bool) {
	raw, ok, err := s.backend.Load(key)
	if err != nil {
		s.log.Warn("read failed", "key", key, "error", err)
		return nil, false
	}
	return raw, ok
}

// Keys возвращает список сохраненных ключей.
func (s *Store) Keys() []string {
	keys, err := s.backend.Keys()
	if err != nil {
		s.log.Warn("list keys failed", "error", err)
		return nil
	}
	return keys
}

func (s *Store) Logger() *slog.Logger {
	return s.log
}
