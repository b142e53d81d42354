package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecitoyen/internal/storage/kv"
)

var _ kv.BatchBackend = (*Storage)(nil)

func TestStorage_SaveLoad(t *testing.T) {
	s := New()

	_, ok, err := s.Load("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte(`{"id":"1"}`)
	require.NoError(t, s.Save("k", value))

	value[0] = 'X'
	got, ok, err := s.Load("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"id":"1"}`, string(got), "stored bytes must not alias the caller's slice")
}

func TestStorage_DeleteClearKeys(t *testing.T) {
	s := New()
	require.NoError(t, s.Save("b", []byte("2")))
	require.NoError(t, s.Save("a", []byte("1")))

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, s.Delete("a"))
	keys, _ = s.Keys()
	assert.Equal(t, []string{"b"}, keys)

	require.NoError(t, s.Clear())
	keys, _ = s.Keys()
	assert.Empty(t, keys)
}

func TestStorage_Quota(t *testing.T) {
	s := New(WithQuota(8))

	require.NoError(t, s.Save("a", []byte("1234")))
	require.NoError(t, s.Save("a", []byte("12345678")), "replacing a value counts only the new size")
	assert.ErrorIs(t, s.Save("b", []byte("1")), ErrQuotaExceeded)
	assert.Equal(t, 8, s.Size())
}

func TestStorage_SaveBatch(t *testing.T) {
	t.Run("applies all entries", func(t *testing.T) {
		s := New()
		require.NoError(t, s.Save("old", []byte("x")))

		err := s.SaveBatch([]kv.Entry{
			{Key: "a", Value: []byte("1")},
			{Key: "b", Value: []byte("2")},
			{Key: "old", Delete: true},
		})
		require.NoError(t, err)

		keys, _ := s.Keys()
		assert.Equal(t, []string{"a", "b"}, keys)
	})

	t.Run("all or nothing on quota", func(t *testing.T) {
		s := New(WithQuota(4))

		err := s.SaveBatch([]kv.Entry{
			{Key: "a", Value: []byte("12")},
			{Key: "b", Value: []byte("345")},
		})
		assert.ErrorIs(t, err, ErrQuotaExceeded)

		keys, _ := s.Keys()
		assert.Empty(t, keys)
	})
}
