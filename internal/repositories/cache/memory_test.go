package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	s := NewMemoryStorage(time.Minute)

	t.Run("missing key", func(t *testing.T) {
		val, err := s.Get("nope")
		assert.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("set copies the buffer", func(t *testing.T) {
		buf := []byte("42")
		require.NoError(t, s.Set("ip:1", buf, 0))
		buf[0] = 'x'

		val, err := s.Get("ip:1")
		require.NoError(t, err)
		assert.Equal(t, []byte("42"), val)
	})

	t.Run("expiry", func(t *testing.T) {
		require.NoError(t, s.Set("ip:2", []byte("1"), 20*time.Millisecond))
		time.Sleep(40 * time.Millisecond)

		val, err := s.Get("ip:2")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("empty values ignored", func(t *testing.T) {
		require.NoError(t, s.Set("ip:3", nil, 0))
		val, _ := s.Get("ip:3")
		assert.Nil(t, val)
	})

	t.Run("delete and reset", func(t *testing.T) {
		require.NoError(t, s.Set("a", []byte("1"), 0))
		require.NoError(t, s.Set("b", []byte("2"), 0))

		require.NoError(t, s.Delete("a"))
		val, _ := s.Get("a")
		assert.Nil(t, val)

		require.NoError(t, s.Reset())
		val, _ = s.Get("b")
		assert.Nil(t, val)
	})

	assert.NoError(t, s.HealthCheck(context.Background()))
	assert.Equal(t, "memory", Backend(s))
	assert.NoError(t, s.Close())
}
