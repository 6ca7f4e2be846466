package config_test

import (
	"testing"
	"time"

	"go-hrms/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TENANT_CACHE_SIZE", "")
	t.Setenv("TENANT_STRICT_RESOLUTION", "")
	t.Setenv("TENANT_EVICT_GRACE", "")

	cfg := config.Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 50, cfg.TenantCacheSize)
	assert.True(t, cfg.TenantStrictResolve)
	assert.Equal(t, "hrms", cfg.TenantDBPrefix)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.TenantEvictGrace)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("TENANT_CACHE_SIZE", "5")
	t.Setenv("TENANT_STRICT_RESOLUTION", "false")
	t.Setenv("HTTP_WRITE_TIMEOUT", "30s")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("TENANT_EVICT_GRACE", "2m")

	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5, cfg.TenantCacheSize)
	assert.False(t, cfg.TenantStrictResolve)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 2*time.Minute, cfg.TenantEvictGrace)
}
