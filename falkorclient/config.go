package falkorclient

import (
	"github.com/falkordb/falkordb-go/config"
	"github.com/falkordb/falkordb-go/falkorlog"
)

// Config is the env-loadable set of client construction defaults,
// optional sugar over ClientBuilder per spec §4.6/§6 — the builder
// remains the primary construction path.
type Config struct {
	URL              string `default:"falkor://127.0.0.1:6379"`
	PoolSize         uint8  `default:"8"`
	DefaultTimeoutMS int64  `default:"0"`
}

// LoadConfigFromEnv loads Config's fields from the environment (and an
// optional .env file) using the teacher's reflection-based loader,
// falling back to each field's default tag when unset.
func LoadConfigFromEnv(log falkorlog.Logger) *Config {
	cfg := &Config{}
	config.LoadConfigStructFromEnv(cfg, log)

	return cfg
}
