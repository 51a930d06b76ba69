package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	RedisHelper *redisUtil
)

type redisUtil struct {
	client *redis.Client
	ctx    context.Context
}

// InitRedis connects the helper. Callers skip this entirely when caching is
// disabled; every method is a safe no-op on the nil helper.
func InitRedis(url string) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid Redis URL")
	}

	redisClient := redis.NewClient(opts)
	ctx := context.Background()

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		log.Fatal().Err(err).Msg("Could not connect to Redis")
	}

	log.Info().Msg("Connected to Redis")

	RedisHelper = &redisUtil{
		client: redisClient,
		ctx:    ctx,
	}
}

func (r *redisUtil) Active() bool {
	return r != nil
}

func (r *redisUtil) Set(key string, value any, expiration time.Duration) error {
	if r == nil {
		return nil
	}

	payload, err := encodeValue(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Redis SET encode error")
		return err
	}

	if err := r.client.Set(r.ctx, key, payload, expiration).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Redis SET error")
		return err
	}
	return nil
}

func (r *redisUtil) Get(key string) (string, error) {
	if r == nil {
		return "", nil
	}

	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Redis GET error")
		return "", err
	}
	return val, nil
}

// GetAsStruct unmarshals a cached JSON value into target. The bool reports
// whether a value was present and decoded.
func (r *redisUtil) GetAsStruct(key string, target any) (bool, error) {
	val, err := r.Get(key)
	if err != nil || val == "" {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), target); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Redis cached value decode error")
		return false, err
	}
	return true, nil
}

// PushCapped prepends value to a list, trims it to keep+1 entries and
// refreshes the key TTL.
func (r *redisUtil) PushCapped(key, value string, keep int64, ttl time.Duration) error {
	if r == nil {
		return nil
	}

	if err := r.client.LPush(r.ctx, key, value).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Redis LPUSH error")
		return err
	}
	if err := r.client.LTrim(r.ctx, key, 0, keep).Err(); err != nil {
		return err
	}
	return r.client.Expire(r.ctx, key, ttl).Err()
}

func (r *redisUtil) List(key string) ([]string, error) {
	if r == nil {
		return nil, nil
	}

	vals, err := r.client.LRange(r.ctx, key, 0, -1).Result()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Redis LRANGE error")
		return nil, err
	}
	return vals, nil
}

func (r *redisUtil) Delete(key string) error {
	if r == nil {
		return nil
	}
	return r.client.Del(r.ctx, key).Err()
}

func encodeValue(value any) (any, error) {
	switch v := value.(type) {
	case string, []byte:
		return v, nil
	default:
		payload, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return payload, nil
	}
}
