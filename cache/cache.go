// Package cache wraps the optional redis client. Every helper is a
// no-op when redis is not configured, so the API keeps serving from
// the database alone.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

func Init(addr, password string) {
	RDB = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}

// GetJSON reports whether key was found and decoded into v.
func GetJSON(ctx context.Context, key string, v any) bool {
	if RDB == nil {
		return false
	}
	raw, err := RDB.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if RDB == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	RDB.Set(ctx, key, raw, ttl)
}

func Delete(ctx context.Context, keys ...string) {
	if RDB == nil {
		return
	}
	RDB.Del(ctx, keys...)
}
