package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	appointment "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
)

// releaseScript deletes the lock only if we still own it.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

const DefaultLockTTL = 10 * time.Second

// SlotLocker is a SET NX lock with an owner token. The TTL bounds how long a
// crashed request can hold a slot.
type SlotLocker struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotLocker(c *Client, ttl time.Duration) *SlotLocker {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &SlotLocker{rdb: c.rdb, ttl: ttl}
}

func (l *SlotLocker) Lock(ctx context.Context, key string) (func(), error) {
	key = "lock:" + key
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire %s: %w", key, err)
	}
	if !ok {
		return nil, domain.ErrSlotLocked
	}

	return func() {
		// the request context may already be cancelled
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Err(); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("slot lock release failed")
		}
	}, nil
}

var _ appointment.SlotLocker = (*SlotLocker)(nil)
