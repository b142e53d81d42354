package kv

import (
	"errors"
	"sort"
	"sync"
)

var errWrite = errors.New("quota exceeded")

type fakeBackend struct {
	mu        sync.Mutex
	data      map[string][]byte
	failSave  bool
	failLoad  bool
	saves     int
	batches   int
	failBatch bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{data: make(map[string][]byte)}
}

func (f *fakeBackend) Load(key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failLoad {
		return nil, false, errors.New("storage disabled")
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeBackend) Save(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.failSave {
		return errWrite
	}
	f.data[key] = value
	return nil
}

func (f *fakeBackend) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

func (f *fakeBackend) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = make(map[string][]byte)
	return nil
}

func (f *fakeBackend) Keys() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.data))
	for k := range f.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// fakeBatchBackend применяет пакет целиком или не применяет вовсе.
type fakeBatchBackend struct {
	*fakeBackend
}

func (f fakeBatchBackend) SaveBatch(entries []Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches++
	if f.failBatch {
		return errWrite
	}
	for _, e := range entries {
		if e.Delete {
			delete(f.data, e.Key)
			continue
		}
		f.data[e.Key] = e.Value
	}
	return nil
}

type record struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (r record) GetID() string { return r.ID }
