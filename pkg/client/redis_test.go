package client

import (
	"context"
	"storefront/config"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	conf := &config.Config{Redis: &config.Redis{
		Address:       mr.Host(),
		Port:          port,
		PoolSize:      8,
		DialTimeoutMs: 500,
	}}

	client := NewRedisClient(conf)
	defer client.Close()

	assert.Equal(t, mr.Addr(), client.Options().Addr)
	assert.Equal(t, 8, client.Options().PoolSize)
	require.NoError(t, client.Set(context.Background(), "shop:cart:x", "1", 0).Err())
	assert.True(t, mr.Exists("shop:cart:x"))
}
