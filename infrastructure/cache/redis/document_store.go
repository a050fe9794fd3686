// ABOUTME: JSON document storage on top of Redis using the ReJSON module
// ABOUTME: Persists enriched media records as native JSON documents with TTL

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nitishm/go-rejson/v4"
	goredis "github.com/redis/go-redis/v9"
)

// DocumentStore stores structured documents in Redis via ReJSON commands.
// Unlike the byte cache it keeps values queryable as JSON server-side.
type DocumentStore struct {
	client  *goredis.Client
	handler *rejson.Handler
	prefix  string
}

// NewDocumentStore creates a document store sharing the cache's connection
func NewDocumentStore(cache *RedisCache, prefix string) *DocumentStore {
	handler := rejson.NewReJSONHandler()
	handler.SetGoRedisClientWithContext(context.Background(), cache.Client())

	return &DocumentStore{
		client:  cache.Client(),
		handler: handler,
		prefix:  prefix,
	}
}

// SetDocument stores a document at the given key. A ttl of 0 means no expiration.
func (s *DocumentStore) SetDocument(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	fullKey := s.prefix + ":" + key

	if _, err := s.handler.JSONSet(fullKey, ".", value); err != nil {
		return err
	}

	if ttl != 0 {
		if err := s.client.Expire(ctx, fullKey, ttl).Err(); err != nil {
			return err
		}
	}

	return nil
}

// GetDocument retrieves a document into dest
func (s *DocumentStore) GetDocument(ctx context.Context, key string, dest interface{}) error {
	val, err := s.handler.JSONGet(s.prefix+":"+key, ".")
	if err != nil {
		return err
	}

	raw, ok := val.([]byte)
	if !ok {
		return errors.New("unexpected reply type from JSON.GET")
	}

	return json.Unmarshal(raw, dest)
}

// DeleteDocument removes a document
func (s *DocumentStore) DeleteDocument(ctx context.Context, key string) error {
	_, err := s.handler.JSONDel(s.prefix+":"+key, ".")
	return err
}

// Keys lists document keys under the store's prefix
func (s *DocumentStore) Keys(ctx context.Context) ([]string, error) {
	return s.client.Keys(ctx, s.prefix+":*").Result()
}
