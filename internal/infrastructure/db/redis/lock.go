package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	defaultLockTTL   = 5 * time.Second
	lockRetryBackoff = 25 * time.Millisecond
	lockKeyPrefix    = "lock:"
	releaseTimeout   = 2 * time.Second
)

// ErrLockLost is logged when the lock expired before fn finished and another
// holder may have run concurrently.
var ErrLockLost = errors.New("record lock expired before release")

// releaseScript deletes the lock only when it is still held by our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Locker serializes work on a key across every instance sharing the Redis
// server. Key format: lock:<key>
type Locker struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewLocker creates a Locker. A non-positive ttl falls back to defaultLockTTL.
func NewLocker(client *redis.Client, ttl time.Duration, log zerolog.Logger) *Locker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &Locker{client: client, ttl: ttl, log: log}
}

// Do acquires the lock for key with SET NX PX, runs fn and releases the lock.
// It waits for the lock until ctx is done. Once fn has run, its result is
// returned; release problems are only logged since the write already happened.
func (l *Locker) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	lockKey := lockKeyPrefix + key
	token := uuid.NewString()

	if err := l.acquire(ctx, lockKey, token); err != nil {
		return err
	}

	fnErr := fn(ctx)

	released, err := l.release(ctx, lockKey, token)
	switch {
	case err != nil:
		l.log.Warn().Err(err).Str("key", lockKey).Msg("failed to release record lock")
	case !released:
		l.log.Warn().Err(ErrLockLost).Str("key", lockKey).Dur("ttl", l.ttl).Msg("record lock expired while held")
	}
	return fnErr
}

func (l *Locker) acquire(ctx context.Context, lockKey, token string) error {
	for {
		ok, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
		if err != nil {
			return fmt.Errorf("acquire lock %s: %w", lockKey, err)
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("acquire lock %s: %w", lockKey, ctx.Err())
		case <-time.After(lockRetryBackoff):
		}
	}
}

func (l *Locker) release(ctx context.Context, lockKey, token string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	n, err := releaseScript.Run(ctx, l.client, []string{lockKey}, token).Int64()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
