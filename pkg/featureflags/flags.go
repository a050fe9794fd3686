// ABOUTME: Feature flag system for enabling/disabling functionality at runtime
// ABOUTME: Supports environment variable based flags with sensible defaults

package featureflags

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"
)

// FeatureFlag represents a feature that can be toggled
type FeatureFlag string

const (
	// XMLEscaping escapes interpolated values in XML attribution snippets
	XMLEscaping FeatureFlag = "xml_escaping"

	// EnrichmentEnabled enables background media enrichment workers
	EnrichmentEnabled FeatureFlag = "enrichment_enabled"

	// RateLimitEnabled enables API rate limiting middleware
	RateLimitEnabled FeatureFlag = "rate_limit_enabled"

	// CacheEnabled enables caching of provider search responses
	CacheEnabled FeatureFlag = "cache_enabled"
)

// Manager handles feature flag checking
type Manager interface {
	IsEnabled(flag FeatureFlag) bool
}

// EnvManager implements feature flags using environment variables
type EnvManager struct {
	mu    sync.RWMutex
	cache map[FeatureFlag]bool
}

// NewEnvManager creates a new environment-based feature flag manager
func NewEnvManager() *EnvManager {
	return &EnvManager{
		cache: make(map[FeatureFlag]bool),
	}
}

// IsEnabled checks if a feature flag is enabled
func (m *EnvManager) IsEnabled(flag FeatureFlag) bool {
	m.mu.RLock()
	if enabled, exists := m.cache[flag]; exists {
		m.mu.RUnlock()
		return enabled
	}
	m.mu.RUnlock()

	// Check environment variable
	envVar := "FEATURE_" + strings.ToUpper(string(flag))
	value := os.Getenv(envVar)

	enabled := false
	if value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			enabled = parsed
		}
	} else {
		// Default values for flags
		enabled = m.getDefault(flag)
	}

	// Cache the result
	m.mu.Lock()
	m.cache[flag] = enabled
	m.mu.Unlock()

	return enabled
}

// getDefault returns the default value for a flag
func (m *EnvManager) getDefault(flag FeatureFlag) bool {
	switch flag {
	case XMLEscaping:
		return false
	case EnrichmentEnabled:
		return true
	case RateLimitEnabled:
		return true
	case CacheEnabled:
		return true
	default:
		return false
	}
}

// ClearCache clears the cached flag values, forcing re-evaluation
func (m *EnvManager) ClearCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = make(map[FeatureFlag]bool)
}

// StaticManager implements feature flags with static values (useful for testing)
type StaticManager struct {
	flags map[FeatureFlag]bool
}

// NewStaticManager creates a manager with predefined flag values
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	return &StaticManager{flags: flags}
}

// IsEnabled checks if a feature flag is enabled
func (m *StaticManager) IsEnabled(flag FeatureFlag) bool {
	enabled, exists := m.flags[flag]
	return exists && enabled
}

// contextKey is used for storing the manager in context
type contextKey struct{}

// WithManager adds a feature flag manager to the context
func WithManager(ctx context.Context, manager Manager) context.Context {
	return context.WithValue(ctx, contextKey{}, manager)
}

// FromContext retrieves the feature flag manager from context
func FromContext(ctx context.Context) Manager {
	if manager, ok := ctx.Value(contextKey{}).(Manager); ok {
		return manager
	}
	// Return a default manager if none in context
	return NewEnvManager()
}

// GetAllFlags returns all defined feature flags
func GetAllFlags() []FeatureFlag {
	return []FeatureFlag{
		XMLEscaping,
		EnrichmentEnabled,
		RateLimitEnabled,
		CacheEnabled,
	}
}
