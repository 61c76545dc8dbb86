//go:build integration

package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
)

func startRedis(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	c, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestSlotLocker(t *testing.T) {
	c := startRedis(t)
	ctx := context.Background()
	l := NewSlotLocker(c, 5*time.Second)

	release, err := l.Lock(ctx, "booking:1:2026-10-20:10:00")
	require.NoError(t, err)

	_, err = l.Lock(ctx, "booking:1:2026-10-20:10:00")
	assert.ErrorIs(t, err, domain.ErrSlotLocked)

	other, err := l.Lock(ctx, "booking:1:2026-10-20:10:30")
	require.NoError(t, err)
	other()

	release()
	again, err := l.Lock(ctx, "booking:1:2026-10-20:10:00")
	require.NoError(t, err)
	again()
}

func TestTokenDenylist(t *testing.T) {
	c := startRedis(t)
	ctx := context.Background()
	d := NewTokenDenylist(c)

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))
	require.NoError(t, d.Revoke(ctx, "jti-expired", time.Now().Add(-time.Minute)))

	revoked, err := d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = d.IsRevoked(ctx, "jti-expired")
	require.NoError(t, err)
	assert.False(t, revoked)
}
