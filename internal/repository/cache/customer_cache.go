// internal/repository/cache/customer_cache.go
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"customer-registration-service/internal/domain/customer"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const DefaultTTL = 10 * time.Minute

// CustomerCache is a read-through, write-through Redis cache in front of a
// customer.Store. Redis failures fall back to the wrapped store. Misses are
// not cached, so a phone number freed in the store is visible immediately.
type CustomerCache struct {
	next   customer.Store
	client redis.Cmdable
	ttl    time.Duration
	logger *zap.Logger
}

func NewCustomerCache(next customer.Store, client redis.Cmdable, ttl time.Duration, logger *zap.Logger) *CustomerCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CustomerCache{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CustomerCache) SelectCustomerByPhoneNumber(ctx context.Context, phoneNumber string) (*customer.Customer, error) {
	key := phoneKey(phoneNumber)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var cached customer.Customer
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		c.logger.Warn("dropping undecodable cache entry", zap.String("key", key))
		c.client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("redis error, falling back to store", zap.Error(err))
	}

	found, err := c.next.SelectCustomerByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	c.put(ctx, found)

	return found, nil
}

func (c *CustomerCache) Save(ctx context.Context, cust *customer.Customer) error {
	if err := c.next.Save(ctx, cust); err != nil {
		return err
	}

	c.put(ctx, cust)

	return nil
}

// Invalidate drops the cached entry for a phone number
func (c *CustomerCache) Invalidate(ctx context.Context, phoneNumber string) error {
	if err := c.client.Del(ctx, phoneKey(phoneNumber)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache entry: %w", err)
	}
	return nil
}

func (c *CustomerCache) put(ctx context.Context, cust *customer.Customer) {
	data, err := json.Marshal(cust)
	if err != nil {
		c.logger.Warn("failed to encode customer for cache", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, phoneKey(cust.PhoneNumber), data, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache customer", zap.Error(err))
	}
}

func phoneKey(phoneNumber string) string {
	return fmt.Sprintf("customer:phone:%s", phoneNumber)
}
