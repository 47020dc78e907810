package claim

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"synapse-go/internal/logger"
)

// DefaultTTL bounds how long a crashed holder can block a session.
const DefaultTTL = 2 * time.Minute

// releaseScript deletes the key only while it still holds our token, so an
// expired claim taken over by another worker is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis claims keys across processes sharing one Redis.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	log    *logrus.Entry
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{
		client: client,
		prefix: "synapse:claim:",
		ttl:    ttl,
		log:    logger.New().WithComponent("claim"),
	}
}

// NewRedisClient builds a client from a redis:// URL or a bare host:port.
func NewRedisClient(addr string) (*redis.Client, error) {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opts, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opts), nil
	}
	return redis.NewClient(&redis.Options{Addr: addr}), nil
}

func (r *Redis) Claim(ctx context.Context, key string) (func(), error) {
	k := r.prefix + key
	token := uuid.New().String()
	ok, err := r.client.SetNX(ctx, k, token, r.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("claim %s: %w", key, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInFlight, key)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// the caller's context may already be done
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := releaseScript.Run(ctx, r.client, []string{k}, token).Err(); err != nil {
				r.log.WithField("key", key).WithField("error", err.Error()).Warn("claim release failed")
			}
		})
	}, nil
}
