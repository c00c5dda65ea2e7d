package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"GRAVITY_GRPC_ENDPOINT", "GRAVITY_GRPC_INSECURE", "GRAVITY_QUERY_TIMEOUT", "GRAVITY_LOG_LEVEL", "GRAVITY_BECH32_PREFIX"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	assert.NilError(t, err)
	assert.DeepEqual(t, Default(), cfg)

	timeout, err := cfg.Timeout()
	assert.NilError(t, err)
	assert.Equal(t, 10*time.Second, timeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GRAVITY_GRPC_ENDPOINT", "sommelier.example:9090")
	t.Setenv("GRAVITY_GRPC_INSECURE", "false")
	t.Setenv("GRAVITY_QUERY_TIMEOUT", "1m")
	t.Setenv("GRAVITY_LOG_LEVEL", "debug")

	cfg, err := Load()
	assert.NilError(t, err)
	assert.Equal(t, "sommelier.example:9090", cfg.GRPCEndpoint)
	assert.Equal(t, false, cfg.GRPCInsecure)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://sommelier.example:9090", cfg.Endpoint())

	timeout, err := cfg.Timeout()
	assert.NilError(t, err)
	assert.Equal(t, time.Minute, timeout)
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("GRAVITY_LOG_LEVEL", "error")

	file := filepath.Join(t.TempDir(), "gravity.env")
	contents := "GRAVITY_GRPC_ENDPOINT=filehost:9090\nGRAVITY_LOG_LEVEL=debug\n"
	assert.NilError(t, os.WriteFile(file, []byte(contents), 0o600))

	cfg, err := LoadFrom(file)
	assert.NilError(t, err)
	assert.Equal(t, "filehost:9090", cfg.GRPCEndpoint)
	// the environment wins over the file
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"empty endpoint", func(c *Config) { c.GRPCEndpoint = "" }, "grpc endpoint cannot be empty"},
		{"zero timeout", func(c *Config) { c.QueryTimeout = "0s" }, "query timeout must be positive, got 0s"},
		{"bad timeout", func(c *Config) { c.QueryTimeout = "soon" }, `invalid query timeout "soon"`},
		{"empty prefix", func(c *Config) { c.Bech32Prefix = "" }, "bech32 prefix cannot be empty"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			assert.ErrorContains(t, err, tc.errMsg)
		})
	}
	assert.NilError(t, Default().Validate())
}

func TestEndpointKeepsScheme(t *testing.T) {
	cfg := Default()
	cfg.GRPCInsecure = false
	cfg.GRPCEndpoint = "http://localhost:9090"
	assert.Equal(t, "http://localhost:9090", cfg.Endpoint())
}
