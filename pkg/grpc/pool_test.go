package grpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/connectivity"
)

func TestGetConnection(t *testing.T) {
	t.Parallel()

	t.Run("caches one connection per target", func(t *testing.T) {
		t.Parallel()
		pool := NewPool()
		defer pool.Close()

		first, err := pool.GetConnection("localhost:50051")
		require.NoError(t, err)
		second, err := pool.GetConnection("localhost:50051")
		require.NoError(t, err)

		assert.Same(t, first, second)
	})

	t.Run("distinct targets get distinct connections", func(t *testing.T) {
		t.Parallel()
		pool := NewPool()
		defer pool.Close()

		first, err := pool.GetConnection("localhost:50051")
		require.NoError(t, err)
		second, err := pool.GetConnection("localhost:50052")
		require.NoError(t, err)

		assert.NotSame(t, first, second)
	})

	t.Run("replaces a shut down connection", func(t *testing.T) {
		t.Parallel()
		pool := NewPool()
		defer pool.Close()

		first, err := pool.GetConnection("localhost:50053")
		require.NoError(t, err)
		require.NoError(t, first.Close())
		require.Equal(t, connectivity.Shutdown, first.GetState())

		second, err := pool.GetConnection("localhost:50053")
		require.NoError(t, err)

		assert.NotSame(t, first, second)
		assert.NotEqual(t, connectivity.Shutdown, second.GetState())
	})
}

func TestClose(t *testing.T) {
	t.Parallel()

	pool := NewPool()

	conn, err := pool.GetConnection("localhost:50054")
	require.NoError(t, err)

	require.NoError(t, pool.Close())
	assert.Equal(t, connectivity.Shutdown, conn.GetState())

	// 關閉後仍可重新取得連線
	fresh, err := pool.GetConnection("localhost:50054")
	require.NoError(t, err)
	defer pool.Close()
	assert.NotSame(t, conn, fresh)
}
