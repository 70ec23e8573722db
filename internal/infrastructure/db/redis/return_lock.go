package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vidly/rental-system/internal/core/domain"
)

const defaultLockTTL = 30 * time.Second

// releaseScript deletes the key only if it still holds our token, so an
// expired lock re-acquired by another request is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ReturnLock implements ports.ReturnLocker with SET NX.
// Key format: return-lock:<customer_id>:<movie_id>
type ReturnLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReturnLock creates a ReturnLock; the TTL bounds how long a crashed
// request can block the pair.
func NewReturnLock(client *redis.Client, ttl time.Duration) *ReturnLock {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &ReturnLock{client: client, ttl: ttl}
}

func (l *ReturnLock) Lock(ctx context.Context, customerID, movieID string) (func(context.Context) error, error) {
	key := l.key(customerID, movieID)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("return lock: %w", err)
	}
	if !ok {
		return nil, domain.ErrReturnInProgress
	}

	unlock := func(ctx context.Context) error {
		return releaseScript.Run(ctx, l.client, []string{key}, token).Err()
	}
	return unlock, nil
}

func (l *ReturnLock) key(customerID, movieID string) string {
	return fmt.Sprintf("return-lock:%s:%s", customerID, movieID)
}
