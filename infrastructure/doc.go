// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation using go-cache
// - cache/redis: Redis-based cache plus ReJSON document storage
// - cache/sqlite: Persistent file-based cache for provider responses
// - http/ratelimited: HTTP client with provider rate limiting and retries
// - logger/logrus: Structured logger backed by logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(1 * time.Hour)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cfg := config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	}
//	cache, err := redis.NewRedisCache(cfg)
//
// # HTTP Client
//
// The HTTP client rate-limits outbound requests and retries transient
// failures:
//
//	client := ratelimited.NewClient(30*time.Second, 10)
//	resp, err := client.Get(ctx, "https://api.openverse.org/v1/images?q=cats")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logruslog.NewLogger()
//	logger.Info("Search completed", map[string]interface{}{
//	    "media_type": "image",
//	    "results":    240,
//	})
package infrastructure
