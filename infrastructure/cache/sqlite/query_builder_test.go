// ABOUTME: Tests for the safe SQL query builder
// ABOUTME: Verifies parameterization, name validation, and key/value validation

package sqlite

import (
	"strings"
	"testing"
)

func TestQueryBuilder_Select(t *testing.T) {
	qb := NewQueryBuilder()
	query, params := qb.Select("value", "expiry").
		From("provider_cache").
		Where("key", "=", "abc").
		Build()

	expected := "SELECT value, expiry FROM provider_cache WHERE key = ?"
	if query != expected {
		t.Errorf("expected %q, got %q", expected, query)
	}
	if len(params) != 1 || params[0] != "abc" {
		t.Errorf("unexpected params: %v", params)
	}
}

func TestQueryBuilder_MultipleWhere(t *testing.T) {
	qb := NewQueryBuilder()
	query, params := qb.Select("value").
		From("provider_cache").
		Where("key", "=", "abc").
		Where("expiry", ">", int64(100)).
		Build()

	if !strings.Contains(query, "WHERE key = ? AND expiry > ?") {
		t.Errorf("expected AND-joined conditions, got %q", query)
	}
	if len(params) != 2 {
		t.Errorf("expected 2 params, got %d", len(params))
	}
}

func TestQueryBuilder_InvalidOperatorDefaultsToEquals(t *testing.T) {
	qb := NewQueryBuilder()
	query, _ := qb.Select("value").
		From("provider_cache").
		Where("key", "; DROP TABLE", "abc").
		Build()

	if !strings.Contains(query, "key = ?") {
		t.Errorf("expected invalid operator to fall back to =, got %q", query)
	}
	if strings.Contains(query, "DROP") {
		t.Errorf("operator injection leaked into query: %q", query)
	}
}

func TestQueryBuilder_InvalidColumnName(t *testing.T) {
	qb := NewQueryBuilder()
	query, params := qb.Select("value").
		From("provider_cache").
		Where("key; DROP TABLE provider_cache", "=", "abc").
		Build()

	if strings.Contains(query, "DROP") {
		t.Errorf("column injection leaked into query: %q", query)
	}
	if len(params) != 0 {
		t.Errorf("expected no params for rejected condition, got %v", params)
	}
}

func TestQueryBuilder_InsertOrReplace(t *testing.T) {
	qb := NewQueryBuilder()
	query, params := qb.InsertOrReplace("provider_cache").
		Values([]string{"key", "value", "expiry"}, []interface{}{"k", []byte("v"), int64(1)}).
		Build()

	expected := "INSERT OR REPLACE INTO provider_cache (key, value, expiry) VALUES (?, ?, ?)"
	if query != expected {
		t.Errorf("expected %q, got %q", expected, query)
	}
	if len(params) != 3 {
		t.Errorf("expected 3 params, got %d", len(params))
	}
}

func TestQueryBuilder_Delete(t *testing.T) {
	qb := NewQueryBuilder()
	query, _ := qb.Delete("provider_cache").Where("key", "=", "k").Build()

	expected := "DELETE FROM provider_cache WHERE key = ?"
	if query != expected {
		t.Errorf("expected %q, got %q", expected, query)
	}
}

func TestCacheQueryBuilder_PrebuiltQueries(t *testing.T) {
	cq := NewCacheQueryBuilder()

	getQuery, getParams := cq.GetQuery()
	if !strings.Contains(getQuery, "FROM provider_cache") || getParams != 2 {
		t.Errorf("unexpected get query: %q (%d params)", getQuery, getParams)
	}

	setQuery, setParams := cq.SetQuery()
	if !strings.Contains(setQuery, "INSERT OR REPLACE INTO provider_cache") || setParams != 3 {
		t.Errorf("unexpected set query: %q (%d params)", setQuery, setParams)
	}

	deleteQuery, deleteParams := cq.DeleteQuery()
	if !strings.Contains(deleteQuery, "DELETE FROM provider_cache") || deleteParams != 1 {
		t.Errorf("unexpected delete query: %q (%d params)", deleteQuery, deleteParams)
	}

	cleanupQuery, cleanupParams := cq.CleanupQuery()
	if !strings.Contains(cleanupQuery, "expiry <= ?") || cleanupParams != 1 {
		t.Errorf("unexpected cleanup query: %q (%d params)", cleanupQuery, cleanupParams)
	}
}

func TestValidateKey(t *testing.T) {
	if err := ValidateKey("", nil); err == nil {
		t.Error("expected error for empty key")
	}

	if err := ValidateKey(strings.Repeat("k", 256), nil); err == nil {
		t.Error("expected error for over-long key")
	}

	if err := ValidateKey("key\x00with-null", nil); err == nil {
		t.Error("expected error for key with null byte")
	}

	if err := ValidateKey("search:image:cats:1", nil); err != nil {
		t.Errorf("expected valid key to pass, got %v", err)
	}
}

func TestValidateKey_LogsSuspiciousPatterns(t *testing.T) {
	logger := &mockLogger{}

	if err := ValidateKey("key'; DROP TABLE provider_cache;--", logger); err != nil {
		t.Errorf("suspicious keys are allowed (parameterized), got error %v", err)
	}
	if len(logger.warnings) == 0 {
		t.Error("expected warnings for suspicious patterns")
	}
}

func TestValidateValue(t *testing.T) {
	if err := ValidateValue(nil); err == nil {
		t.Error("expected error for empty value")
	}

	if err := ValidateValue(make([]byte, maxValueLength+1)); err == nil {
		t.Error("expected error for oversized value")
	}

	if err := ValidateValue([]byte("data")); err != nil {
		t.Errorf("expected valid value to pass, got %v", err)
	}
}

func FuzzValidateKey(f *testing.F) {
	f.Add("search:image:cats:1")
	f.Add("key'; DROP TABLE provider_cache;--")
	f.Add("")

	f.Fuzz(func(t *testing.T, key string) {
		// Must never panic, whatever the input
		ValidateKey(key, nil)
	})
}
