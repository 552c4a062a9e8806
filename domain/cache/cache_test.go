package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dexroute/rcs/domain/cache"
)

func TestCache_SetGet(t *testing.T) {
	c := cache.New()

	c.Set("key", 1)
	c.Set("key", 2)

	value, ok := c.Get("key")
	require.True(t, ok)
	require.Equal(t, 2, value)

	_, ok = c.Get("missing")
	require.False(t, ok)

	require.Equal(t, 1, c.Len())
}

func TestCache_Delete(t *testing.T) {
	c := cache.New()
	c.Set("key", "value")

	c.Delete("key")

	_, ok := c.Get("key")
	require.False(t, ok)
	require.Zero(t, c.Len())
}
