package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecitoyen/internal/storage/kv"
	"ecitoyen/internal/utils/logger"
)

var _ kv.BatchBackend = (*Storage)(nil)

func newTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "portal.db")
	s, err := New(path, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestStorage_SaveLoad(t *testing.T) {
	s, _ := newTestStorage(t)

	_, ok, err := s.Load(kv.KeyDemands)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(kv.KeyDemands, []byte(`[{"id":"RDC-1"}]`)))
	require.NoError(t, s.Save(kv.KeyDemands, []byte(`[{"id":"RDC-2"}]`)))

	got, ok, err := s.Load(kv.KeyDemands)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"RDC-2"}]`, string(got))
}

func TestStorage_Reopen(t *testing.T) {
	s, path := newTestStorage(t)
	require.NoError(t, s.Save(kv.KeyCurrentUser, []byte(`{"id":"citizen-1"}`)))
	require.NoError(t, s.Close())

	reopened, err := New(path, logger.Discard())
	require.NoError(t, err)
	defer reopened.Close()

	got, ok, err := reopened.Load(kv.KeyCurrentUser)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"id":"citizen-1"}`, string(got))
}

func TestStorage_SaveBatch(t *testing.T) {
	s, _ := newTestStorage(t)
	require.NoError(t, s.Save("stale", []byte(`1`)))

	err := s.SaveBatch([]kv.Entry{
		{Key: kv.KeyDemands, Value: []byte(`[]`)},
		{Key: kv.KeyPayments, Value: []byte(`[]`)},
		{Key: "stale", Delete: true},
	})
	require.NoError(t, err)

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{kv.KeyDemands, kv.KeyPayments}, keys)
}

func TestStorage_DeleteClear(t *testing.T) {
	s, _ := newTestStorage(t)
	require.NoError(t, s.Save("a", []byte(`1`)))
	require.NoError(t, s.Save("b", []byte(`2`)))

	require.NoError(t, s.Delete("a"))
	_, ok, err := s.Load("a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Clear())
	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestStorage_WithStore(t *testing.T) {
	s, _ := newTestStorage(t)
	store := kv.New(s, logger.Discard())

	kv.Set(store, kv.KeyNotifications, []string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, kv.Get(store, kv.KeyNotifications, []string{}))
}
