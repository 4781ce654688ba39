package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"athlete-portal/internal/config"

	"github.com/redis/go-redis/v9"
)

// ViewCache holds rendered page payloads. A missing or unreachable redis is
// never fatal: reads report a miss and writes become no-ops, so the portal
// keeps serving straight from postgres.
type ViewCache struct {
	client *redis.Client
	logger *log.Logger
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

func NewViewCache(cfg config.RedisConfig, logger *log.Logger) *ViewCache {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(cfg.Port)
	if port == "" {
		port = "6379"
	}

	ttl := cfg.ViewTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: strings.TrimSpace(cfg.Password),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[Cache] Redis unavailable, bypassing view cache: %v", err)
		}
		_ = client.Close()
		return &ViewCache{client: nil, logger: logger, ttl: ttl}
	}

	return &ViewCache{client: client, logger: logger, ttl: ttl}
}

func (v *ViewCache) isUnavailable() bool {
	return v == nil || v.client == nil
}

func (v *ViewCache) warnUnavailableOnce(err error) {
	if v == nil || v.logger == nil {
		return
	}
	if v.warnedUnavailable.CompareAndSwap(false, true) {
		v.logger.Printf("[Cache] Redis unavailable, bypassing view cache: %v", err)
	}
}

func (v *ViewCache) Ping(ctx context.Context) error {
	if v.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return v.client.Ping(ctx).Err()
}

func (v *ViewCache) Close() error {
	if v.isUnavailable() {
		return nil
	}
	return v.client.Close()
}

func (v *ViewCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if v.isUnavailable() {
		return false, nil
	}
	b, err := v.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		v.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (v *ViewCache) SetJSON(ctx context.Context, key string, value any) error {
	if v.isUnavailable() {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := v.client.Set(ctx, key, b, v.ttl).Err(); err != nil {
		v.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (v *ViewCache) Delete(ctx context.Context, keys ...string) error {
	if v.isUnavailable() || len(keys) == 0 {
		return nil
	}
	if err := v.client.Del(ctx, keys...).Err(); err != nil {
		v.warnUnavailableOnce(err)
		return err
	}
	return nil
}
