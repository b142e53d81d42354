package kv

import "errors"

var ErrStorageUnavailable = errors.New("storage unavailable")

// Backend - долговременное хранилище ключ/значение
type Backend interface {
	// Load возвращает сохраненное значение; ok=false если ключа нет.
	Load(key string) (value []byte, ok bool, err error)
	Save(key string, value []byte) error
	Delete(key string) error
	Clear() error
	Keys() ([]string, error)
}

// Entry - одна запись пакетной операции
type Entry struct {
	Key    string
	Value  []byte
	Delete bool
}

// BatchBackend - хранилище, умеющее записывать несколько ключей атомарно
type BatchBackend interface {
	Backend
	SaveBatch(entries []Entry) error
}
