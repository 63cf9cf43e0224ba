package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AvailabilityCache guarda os horários ocupados por data. Toda operação é
// best-effort: miss ou erro de Redis nunca falham a requisição.
type AvailabilityCache interface {
	GetBooked(ctx context.Context, date string) ([]string, bool)
	SetBooked(ctx context.Context, date string, times []string)
	Invalidate(ctx context.Context, date string)
}

const bookedTTL = 60 * time.Second

type RedisAvailabilityCache struct {
	client *redis.Client
	log    *zap.SugaredLogger
}

func NewRedisAvailabilityCache(url string, log *zap.SugaredLogger) (*RedisAvailabilityCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	return &RedisAvailabilityCache{
		client: redis.NewClient(opts),
		log:    log,
	}, nil
}

func key(date string) string {
	return "availability:" + date
}

func (c *RedisAvailabilityCache) GetBooked(ctx context.Context, date string) ([]string, bool) {
	raw, err := c.client.Get(ctx, key(date)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnw("availability cache read failed", "date", date, "error", err)
		}
		return nil, false
	}

	var times []string
	if err := json.Unmarshal([]byte(raw), &times); err != nil {
		return nil, false
	}
	return times, true
}

func (c *RedisAvailabilityCache) SetBooked(ctx context.Context, date string, times []string) {
	raw, err := json.Marshal(times)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key(date), raw, bookedTTL).Err(); err != nil {
		c.log.Warnw("availability cache write failed", "date", date, "error", err)
	}
}

func (c *RedisAvailabilityCache) Invalidate(ctx context.Context, date string) {
	if err := c.client.Del(ctx, key(date)).Err(); err != nil {
		c.log.Warnw("availability cache invalidate failed", "date", date, "error", err)
	}
}

// NoopAvailabilityCache atende a interface quando REDIS_URL não está
// configurado.
type NoopAvailabilityCache struct{}

func (NoopAvailabilityCache) GetBooked(context.Context, string) ([]string, bool) { return nil, false }
func (NoopAvailabilityCache) SetBooked(context.Context, string, []string)       {}
func (NoopAvailabilityCache) Invalidate(context.Context, string)                {}
