package cache_utils

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/valkey-io/valkey-go"
)

const (
	DefaultCacheTimeout = 5 * time.Second
	DefaultCacheExpiry  = 10 * time.Minute
)

// CacheUtil stores JSON encoded values of T under prefix+key with a fixed TTL.
// Reads and writes are best effort: a cache failure behaves like a miss.
type CacheUtil[T any] struct {
	client  valkey.Client
	prefix  string
	timeout time.Duration
	expiry  time.Duration
}

func NewCacheUtil[T any](client valkey.Client, prefix string) *CacheUtil[T] {
	return &CacheUtil[T]{
		client:  client,
		prefix:  prefix,
		timeout: DefaultCacheTimeout,
		expiry:  DefaultCacheExpiry,
	}
}

func (c *CacheUtil[T]) WithExpiry(expiry time.Duration) *CacheUtil[T] {
	c.expiry = expiry
	return c
}

func (c *CacheUtil[T]) Key(key string) string {
	return c.prefix + key
}

// TestCacheConnection round-trips a value through Valkey.
func TestCacheConnection(client valkey.Client) error {
	cacheUtil := NewCacheUtil[string](client, "mm_test:")

	testKey := "connection_test"
	testValue := "valkey_is_working"

	cacheUtil.Set(testKey, &testValue)

	retrievedValue := cacheUtil.Get(testKey)
	if retrievedValue == nil {
		return errors.New("cache test failed: could not retrieve cached value")
	}

	if *retrievedValue != testValue {
		return errors.New("cache test failed: retrieved value does not match expected")
	}

	cacheUtil.Invalidate(testKey)

	if cacheUtil.Get(testKey) != nil {
		return errors.New("cache test failed: test key was not properly invalidated")
	}

	return nil
}

func (c *CacheUtil[T]) Get(key string) *T {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	result := c.client.Do(ctx, c.client.B().Get().Key(c.Key(key)).Build())
	if result.Error() != nil {
		return nil
	}

	data, err := result.AsBytes()
	if err != nil {
		return nil
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return nil
	}

	return &item
}

func (c *CacheUtil[T]) Set(key string, item *T) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	data, err := json.Marshal(item)
	if err != nil {
		return
	}

	c.client.Do(ctx, c.client.B().Set().Key(c.Key(key)).Value(string(data)).Ex(c.expiry).Build())
}

func (c *CacheUtil[T]) Invalidate(keys ...string) {
	if len(keys) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	fullKeys := make([]string, len(keys))
	for i, key := range keys {
		fullKeys[i] = c.Key(key)
	}

	c.client.Do(ctx, c.client.B().Del().Key(fullKeys...).Build())
}
