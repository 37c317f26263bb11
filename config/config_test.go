package config

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))

// isolate runs the test from an empty directory so no .env is picked up.
func isolate(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("CONFIG_FILE", "")
}

func TestLoadConfigMemoryBackend(t *testing.T) {
	isolate(t)
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("PASETO_SECRET", testSecret)
	t.Setenv("TIMEZONE", "Asia/Jakarta")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, "Asia/Jakarta", cfg.Location.String())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, int64(20000), cfg.EmployeeIDBase)
	assert.Equal(t, int64(10000), cfg.StaffIDBase)

	key, err := cfg.PasetoKey()
	require.NoError(t, err)
	assert.Len(t, key, 32)
}

func TestLoadConfigGeneratesEphemeralKey(t *testing.T) {
	isolate(t)
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("PASETO_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	key, err := cfg.PasetoKey()
	require.NoError(t, err)
	assert.Len(t, key, 32)
}

func TestLoadConfigYAMLOverlay(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
STORE_BACKEND: "memory"
PORT: "8080"
RATE_LIMIT_PER_MIN: "30"
SEED_DEMO: "true"
`), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PASETO_SECRET", testSecret)
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, "9090", cfg.Port, "environment wins over the file")
	assert.Equal(t, 30, cfg.RateLimitPerMin)
	assert.True(t, cfg.SeedDemo)
}

func TestLoadConfigMissingFile(t *testing.T) {
	isolate(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *AppConfig {
		return &AppConfig{StoreBackend: BackendMemory, PasetoSecret: testSecret, BcryptCost: 10}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *AppConfig)
	}{
		{"mongo without uri", func(c *AppConfig) { c.StoreBackend = BackendMongo }},
		{"unknown backend", func(c *AppConfig) { c.StoreBackend = "postgres" }},
		{"short key", func(c *AppConfig) { c.PasetoSecret = base64.StdEncoding.EncodeToString([]byte("short")) }},
		{"not base64", func(c *AppConfig) { c.PasetoSecret = "%%%" }},
		{"bcrypt too cheap", func(c *AppConfig) { c.BcryptCost = 2 }},
		{"seed without password", func(c *AppConfig) { c.SeedAdmin = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestPasetoKeyAcceptsURLEncoding(t *testing.T) {
	raw := []byte{0xfb, 0xff, 0xfe}
	for len(raw) < 32 {
		raw = append(raw, 0xff)
	}
	c := &AppConfig{PasetoSecret: base64.URLEncoding.EncodeToString(raw)}
	key, err := c.PasetoKey()
	require.NoError(t, err)
	assert.Equal(t, raw, key)
}
