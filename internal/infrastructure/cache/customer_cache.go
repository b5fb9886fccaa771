package cache

import (
	"context"
	"emi-payments/internal/config"
	"emi-payments/internal/domain/customer"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const customersKey = "emi-payments:customers:all"

// CustomerCache keeps the ordered customer list in Redis under a single key.
type CustomerCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

var _ customer.Cache = (*CustomerCache)(nil)

func NewCustomerCache(client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *CustomerCache {
	if client == nil {
		panic("redis client cannot be nil for CustomerCache")
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CustomerCache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "CustomerCache"),
	}
}

func (c *CustomerCache) GetCustomers(ctx context.Context) ([]*customer.Customer, bool, error) {
	raw, err := c.client.Get(ctx, customersKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read customers from cache: %w", err)
	}

	var customers []*customer.Customer
	if err := json.Unmarshal(raw, &customers); err != nil {
		c.logger.WarnContext(ctx, "Discarding undecodable cache entry", slog.String("key", customersKey), slog.Any("error", err))
		return nil, false, fmt.Errorf("failed to decode cached customers: %w", err)
	}
	if customers == nil {
		customers = make([]*customer.Customer, 0)
	}

	return customers, true, nil
}

func (c *CustomerCache) SetCustomers(ctx context.Context, customers []*customer.Customer) error {
	payload, err := json.Marshal(customers)
	if err != nil {
		return fmt.Errorf("failed to encode customers for cache: %w", err)
	}

	if err := c.client.Set(ctx, customersKey, string(payload), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write customers to cache: %w", err)
	}

	c.logger.DebugContext(ctx, "Cached customer list", slog.Int("count", len(customers)), slog.Duration("ttl", c.ttl))
	return nil
}

// NewRedisClient connects and pings. Callers treat an error as "run without cache".
func NewRedisClient(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}

	logger.Info("Connected to Redis", "addr", cfg.Addr, "db", cfg.DB)
	return client, nil
}
