package falkorclient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/falkordb/falkordb-go/falkorclient"
	"github.com/falkordb/falkordb-go/falkorlog"
)

func TestLoadConfigFromEnv_DefaultsApplyWhenUnset(t *testing.T) {
	// Deliberately not calling t.Setenv here: an empty-but-present
	// value is not the same as unset to the teacher's loader (an empty
	// string still unmarshals successfully as a string), so the only
	// reliable way to exercise the default-tag path is to leave these
	// variables absent altogether.
	log := falkorlog.NewBaseLogger(nil).NewLogger()

	cfg := falkorclient.LoadConfigFromEnv(log)

	assert.Equal(t, "falkor://127.0.0.1:6379", cfg.URL)
	assert.Equal(t, uint8(8), cfg.PoolSize)
	assert.Equal(t, int64(0), cfg.DefaultTimeoutMS)
}

func TestLoadConfigFromEnv_EnvOverridesDefault(t *testing.T) {
	t.Setenv("URL", "redis://example:6380")
	t.Setenv("POOL_SIZE", "16")
	t.Setenv("DEFAULT_TIMEOUT_MS", "500")

	log := falkorlog.NewBaseLogger(nil).NewLogger()

	cfg := falkorclient.LoadConfigFromEnv(log)

	assert.Equal(t, "redis://example:6380", cfg.URL)
	assert.Equal(t, uint8(16), cfg.PoolSize)
	assert.Equal(t, int64(500), cfg.DefaultTimeoutMS)
}

func TestClientBuilder_FromConfigAppliesDefaults(t *testing.T) {
	cfg := &falkorclient.Config{URL: "redis://localhost:6379", PoolSize: 4, DefaultTimeoutMS: 100}

	// FromConfig only records state on the builder; Build is exercised
	// against a real (fake) server in client_test.go, so this just
	// checks the method chains without panicking.
	b := falkorclient.NewClientBuilder().FromConfig(cfg).WithPoolSize(4)
	assert.NotNil(t, b)
}
