package presence

import (
	"context"
	"fmt"
	"net"

	"github.com/redis/go-redis/v9"

	"github.com/lernora/conversation-service/internal/config"
	"github.com/lernora/conversation-service/internal/model"
)

const onlineSetKey = "conversation:online"

// RedisRegistry keeps the online set in a shared Redis instance so that
// every service replica sees the same membership. SADD/SREM return the
// number of members actually added/removed, which is exactly the
// transition signal the Registry contract needs.
type RedisRegistry struct {
	client *redis.Client
}

var _ Registry = (*RedisRegistry)(nil)

func NewRedisRegistry(cfg *config.Config) *RedisRegistry {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return &RedisRegistry{client: client}
}

func (r *RedisRegistry) Close() {
	_ = r.client.Close()
}

func (r *RedisRegistry) MarkOnline(ctx context.Context, p model.Participant) (bool, error) {
	added, err := r.client.SAdd(ctx, onlineSetKey, p.String()).Result()
	if err != nil {
		return false, fmt.Errorf("failed to add to online set: %w", err)
	}
	return added > 0, nil
}

func (r *RedisRegistry) MarkOffline(ctx context.Context, p model.Participant) (bool, error) {
	removed, err := r.client.SRem(ctx, onlineSetKey, p.String()).Result()
	if err != nil {
		return false, fmt.Errorf("failed to remove from online set: %w", err)
	}
	return removed > 0, nil
}

func (r *RedisRegistry) IsOnline(ctx context.Context, p model.Participant) (bool, error) {
	ok, err := r.client.SIsMember(ctx, onlineSetKey, p.String()).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check online set: %w", err)
	}
	return ok, nil
}
