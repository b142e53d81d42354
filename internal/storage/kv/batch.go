package kv

import "encoding/json"

// Batch collects writes to several keys. Commit writes them in a single
// transaction when the backend implements BatchBackend and one by one
// otherwise; mirrors are updated after the write either way.
//
// A key staged twice keeps one entry holding the last value; StageUpdate
// builds on the value already staged for its key.
type Batch struct {
	store   *Store
	entries []Entry
	commits []func()
	index   map[string]int
	pending map[string]any
}

func (s *Store) NewBatch() *Batch {
	return &Batch{
		store:   s,
		index:   make(map[string]int),
		pending: make(map[string]any),
	}
}

func (b *Batch) stage(key string, v any, commit func()) {
	raw, err := json.Marshal(v)
	if err != nil {
		b.store.log.Error("encode failed, entry skipped", "key", key, "error", err)
		return
	}

	b.pending[key] = v
	if i, ok := b.index[key]; ok {
		b.entries[i].Value = raw
		b.commits[i] = commit
		return
	}

	b.index[key] = len(b.entries)
	b.entries = append(b.entries, Entry{Key: key, Value: raw})
	b.commits = append(b.commits, commit)
}

// staged возвращает значение, уже добавленное в пакет для key.
func (b *Batch) staged(key string) (any, bool) {
	v, ok := b.pending[key]
	return v, ok
}

func (b *Batch) Len() int {
	return len(b.entries)
}

// Commit reports whether every entry reached the backend.
func (b *Batch) Commit() bool {
	if len(b.entries) == 0 {
		return true
	}

	persisted := true

	if bb, ok := b.store.backend.(BatchBackend); ok {
		if err := bb.SaveBatch(b.entries); err != nil {
			b.store.log.Error("batch write failed", "entries", len(b.entries), "error", err)
			persisted = false
		}
	} else {
		b.store.log.Debug("backend has no batch support, writing entries one by one", "entries", len(b.entries))
		for _, e := range b.entries {
			if err := b.store.backend.Save(e.Key, e.Value); err != nil {
				b.store.log.Error("write failed", "key", e.Key, "error", err)
				persisted = false
			}
		}
	}

	for _, commit := range b.commits {
		commit()
	}

	b.entries = nil
	b.commits = nil
	b.index = make(map[string]int)
	b.pending = make(map[string]any)

	return persisted
}
