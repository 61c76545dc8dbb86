package redisstore

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
)

// TokenDenylist keeps "revoked:<jti>" keys alive until the token expires.
type TokenDenylist struct {
	c   *Client
	now func() time.Time
}

func NewTokenDenylist(c *Client) *TokenDenylist {
	return &TokenDenylist{c: c, now: time.Now}
}

func revokedKey(jti string) string { return "revoked:" + jti }

func (d *TokenDenylist) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := until.Sub(d.now())
	if ttl <= 0 {
		return nil
	}
	return d.c.rdb.Set(ctx, revokedKey(jti), 1, ttl).Err()
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.c.rdb.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ auth.Revoker = (*TokenDenylist)(nil)
