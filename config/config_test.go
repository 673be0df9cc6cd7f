package config_test

import (
	"os"
	"testing"

	"github.com/falkordb/falkordb-go/config"
	"github.com/falkordb/falkordb-go/falkorlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	URL          string          `default:"falkor://127.0.0.1:6379"`
	PoolSize     int             `default:"4"`
	TimeoutMS    uint64          `default:"0"`
	AutoReconnect bool           `default:"true"`
	Level        falkorlog.Level `default:"info"`
	Tags         []string        `default:"a,b,c"`
	Labels       map[string]int  `default:"foo:1,bar:2"`
}

func newTestLogger() falkorlog.Logger {
	return falkorlog.NewBaseLogger(nil).NewLogger()
}

func TestLoadConfigStructFromEnvDefaults(t *testing.T) {
	var cfg testStruct

	config.LoadConfigStructFromEnv(&cfg, newTestLogger())

	assert.Equal(t, "falkor://127.0.0.1:6379", cfg.URL)
	assert.Equal(t, 4, cfg.PoolSize)
	assert.Equal(t, uint64(0), cfg.TimeoutMS)
	assert.True(t, cfg.AutoReconnect)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Tags)
	assert.Equal(t, map[string]int{"foo": 1, "bar": 2}, cfg.Labels)
}

func TestLoadConfigStructFromEnvOverride(t *testing.T) {
	t.Setenv("URL", "falkor://db.internal:6380")
	t.Setenv("POOL_SIZE", "16")
	t.Setenv("AUTO_RECONNECT", "false")

	var cfg testStruct

	config.LoadConfigStructFromEnv(&cfg, newTestLogger())

	assert.Equal(t, "falkor://db.internal:6380", cfg.URL)
	assert.Equal(t, 16, cfg.PoolSize)
	assert.False(t, cfg.AutoReconnect)
}

func TestLoadConfigStructFromEnvDotEnvFile(t *testing.T) {
	file, err := os.Create(config.DotEnvFile)
	require.NoError(t, err)

	_, err = file.WriteString("POOL_SIZE=8\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	t.Cleanup(func() { os.Remove(config.DotEnvFile) })

	var cfg testStruct

	config.LoadConfigStructFromEnv(&cfg, newTestLogger())

	assert.Equal(t, 8, cfg.PoolSize)
}
