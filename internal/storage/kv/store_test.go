package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecitoyen/internal/utils/logger"
)

func TestStore_GetSet(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{name: "string", key: "a", value: "bonjour"},
		{name: "map", key: "b", value: map[string]any{"id": "x", "amount": "10"}},
		{name: "slice", key: "c", value: []any{"one", "two"}},
		{name: "null", key: "d", value: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(newFakeBackend(), logger.Discard())
			require.True(t, Set(s, tt.key, tt.value))
			assert.Equal(t, tt.value, Get[any](s, tt.key, "default"))
		})
	}
}

func TestStore_GetDefault(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		s := New(newFakeBackend(), logger.Discard())
		assert.Equal(t, []record{}, Get(s, KeyDemands, []record{}))
	})

	t.Run("corrupt value is left untouched", func(t *testing.T) {
		b := newFakeBackend()
		b.data[KeyDemands] = []byte("{not json")
		s := New(b, logger.Discard())

		assert.Equal(t, []record{}, Get(s, KeyDemands, []record{}))

		raw, ok := s.Raw(KeyDemands)
		require.True(t, ok)
		assert.Equal(t, "{not json", string(raw))
	})

	t.Run("wrong shape", func(t *testing.T) {
		b := newFakeBackend()
		b.data[KeyDemands] = []byte(`{"id":"x"}`)
		s := New(b, logger.Discard())
		assert.Empty(t, Get(s, KeyDemands, []record{}))
	})

	t.Run("read error", func(t *testing.T) {
		b := newFakeBackend()
		b.failLoad = true
		s := New(b, logger.Discard())
		assert.Equal(t, "fallback", Get(s, "k", "fallback"))
	})
}

func TestStore_SetFailure(t *testing.T) {
	b := newFakeBackend()
	b.failSave = true
	s := New(b, logger.Discard())

	assert.False(t, Set(s, "k", "v"))
	_, ok := s.Raw("k")
	assert.False(t, ok)
}

func TestStore_RemoveAndClear(t *testing.T) {
	s := New(newFakeBackend(), logger.Discard())
	Set(s, "a", 1)
	Set(s, "b", 2)

	assert.Equal(t, []string{"a", "b"}, s.Keys())

	assert.True(t, s.Remove("a"))
	assert.Equal(t, []string{"b"}, s.Keys())

	assert.True(t, s.Clear())
	assert.Empty(t, s.Keys())
}

func TestSlot(t *testing.T) {
	t.Run("reads stored value once", func(t *testing.T) {
		b := newFakeBackend()
		b.data["counter"] = []byte("41")
		s := New(b, logger.Discard())

		sl := NewSlot(s, "counter", 0)
		assert.Equal(t, 41, sl.Value())

		assert.Equal(t, 42, sl.Update(func(prev int) int { return prev + 1 }))
		assert.Equal(t, "42", string(b.data["counter"]))
	})

	t.Run("write failure still updates mirror", func(t *testing.T) {
		b := newFakeBackend()
		b.failSave = true
		s := New(b, logger.Discard())

		sl := NewSlot(s, "k", "initial")
		sl.Set("next")

		assert.Equal(t, "next", sl.Value())
		_, ok := b.data["k"]
		assert.False(t, ok)
	})

	t.Run("modify without change writes nothing", func(t *testing.T) {
		b := newFakeBackend()
		s := New(b, logger.Discard())
		sl := NewSlot(s, "k", "v")

		changed := sl.Modify(func(prev string) (string, bool) { return prev, false })
		assert.False(t, changed)
		assert.Equal(t, 0, b.saves)
	})

	t.Run("remove resets to default", func(t *testing.T) {
		s := New(newFakeBackend(), logger.Discard())
		sl := NewSlot(s, "k", "default")
		sl.Set("value")
		sl.Remove()

		assert.Equal(t, "default", sl.Value())
		_, ok := s.Raw("k")
		assert.False(t, ok)
	})

	t.Run("reload picks up external writes", func(t *testing.T) {
		b := newFakeBackend()
		s := New(b, logger.Discard())
		sl := NewSlot(s, "k", "")

		b.data["k"] = []byte(`"external"`)
		assert.Equal(t, "", sl.Value())
		sl.Reload()
		assert.Equal(t, "external", sl.Value())
	})
}

func TestBatch(t *testing.T) {
	t.Run("transactional backend", func(t *testing.T) {
		b := fakeBatchBackend{newFakeBackend()}
		s := New(b, logger.Discard())

		demands := NewList[record](s, KeyDemands)
		payments := NewList[record](s, KeyPayments)

		batch := s.NewBatch()
		demands.StageAppend(batch, record{ID: "RDC-1", Status: "pending"})
		payments.StageAppend(batch, record{ID: "PAY-1", Status: "completed"})

		assert.Equal(t, 0, demands.Len(), "mirror moves only on commit")
		require.True(t, batch.Commit())

		assert.Equal(t, 1, b.batches)
		assert.Equal(t, 0, b.saves)
		assert.Equal(t, 1, demands.Len())
		assert.Equal(t, 1, payments.Len())
	})

	t.Run("failed transaction leaves nothing on disk", func(t *testing.T) {
		b := fakeBatchBackend{newFakeBackend()}
		b.failBatch = true
		s := New(b, logger.Discard())

		demands := NewList[record](s, KeyDemands)
		payments := NewList[record](s, KeyPayments)

		batch := s.NewBatch()
		demands.StageAppend(batch, record{ID: "RDC-1"})
		payments.StageAppend(batch, record{ID: "PAY-1"})

		assert.False(t, batch.Commit())
		assert.Empty(t, b.data)
		assert.Equal(t, 1, demands.Len())
		assert.Equal(t, 1, payments.Len())
	})

	t.Run("plain backend writes one by one", func(t *testing.T) {
		b := newFakeBackend()
		s := New(b, logger.Discard())

		sl := NewSlot(s, "a", "")
		batch := s.NewBatch()
		sl.Stage(batch, "x")
		NewSlot(s, "b", 0).Stage(batch, 7)

		assert.Equal(t, 2, batch.Len())
		require.True(t, batch.Commit())
		assert.Equal(t, 2, b.saves)
		assert.Equal(t, "x", sl.Value())
		assert.Equal(t, 0, batch.Len())
	})

	t.Run("appends to one list accumulate", func(t *testing.T) {
		b := fakeBatchBackend{newFakeBackend()}
		s := New(b, logger.Discard())

		demands := NewList[record](s, KeyDemands)
		demands.Append(record{ID: "RDC-0"})

		batch := s.NewBatch()
		demands.StageAppend(batch, record{ID: "RDC-1"})
		demands.StageAppend(batch, record{ID: "RDC-2"})

		assert.Equal(t, 1, batch.Len(), "one entry per key")
		require.True(t, batch.Commit())

		want := []record{{ID: "RDC-0"}, {ID: "RDC-1"}, {ID: "RDC-2"}}
		assert.Equal(t, want, demands.All())
		assert.JSONEq(t, `[{"id":"RDC-0","status":""},{"id":"RDC-1","status":""},{"id":"RDC-2","status":""}]`, string(b.data[KeyDemands]))

		demands.Reload()
		assert.Equal(t, want, demands.All())
	})

	t.Run("restaging a key keeps the last value", func(t *testing.T) {
		b := newFakeBackend()
		s := New(b, logger.Discard())

		sl := NewSlot(s, "a", "")
		batch := s.NewBatch()
		sl.Stage(batch, "x")
		sl.Stage(batch, "y")

		require.True(t, batch.Commit())
		assert.Equal(t, 1, b.saves)
		assert.Equal(t, "y", sl.Value())
		assert.Equal(t, `"y"`, string(b.data["a"]))
	})

	t.Run("empty batch", func(t *testing.T) {
		s := New(newFakeBackend(), logger.Discard())
		assert.True(t, s.NewBatch().Commit())
	})
}
