package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Decision — результат наблюдения одного запроса.
type Decision struct {
	// Admit — пропускать ли запрос дальше.
	Admit bool
	// NotifyOnce истинно ровно один раз за окно: на первом запросе
	// сверх лимита. Пользователь получает одно предупреждение.
	NotifyOnce bool
}

// RedisRateLimiter — счетчик с фиксированным окном в Redis.
// Ключ: <namespace>:rate_limit:<user_id>:<interval_seconds>.
type RedisRateLimiter struct {
	client    *redis.Client
	namespace string
	limit     uint16
	interval  time.Duration
}

// New создает limiter поверх готового клиента Redis.
func New(client *redis.Client, namespace string, limit uint16, interval time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client:    client,
		namespace: namespace,
		limit:     limit,
		interval:  interval,
	}
}

func (l *RedisRateLimiter) key(userID int64) string {
	return fmt.Sprintf("%s:rate_limit:%d:%d", l.namespace, userID, int64(l.interval.Seconds()))
}

// Observe учитывает один запрос пользователя и возвращает решение.
// Окно стартует с первого запроса: TTL ставится только при count == 1.
func (l *RedisRateLimiter) Observe(ctx context.Context, userID int64) (Decision, error) {
	key := l.key(userID)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return Decision{}, err
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, l.interval).Err(); err != nil {
			return Decision{}, err
		}
	}

	return decide(count, l.limit), nil
}

func decide(count int64, limit uint16) Decision {
	return Decision{
		Admit:      count <= int64(limit),
		NotifyOnce: count == int64(limit)+1,
	}
}
