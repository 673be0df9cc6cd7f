package falkorclient

import (
	"context"

	"github.com/falkordb/falkordb-go/connectioninfo"
	"github.com/falkordb/falkordb-go/falkorerrors"
	"github.com/falkordb/falkordb-go/falkorlog"
	"github.com/falkordb/falkordb-go/falkorpool"
)

const defaultPoolSize = 8

// ClientBuilder accumulates connection info, pool size, and logger
// before dialing. This is the primary construction path; Config is
// sugar that populates a builder from the environment.
type ClientBuilder struct {
	url              string
	capacity         uint8
	log              falkorlog.Logger
	defaultTimeoutMS int64
}

// NewClientBuilder starts a builder with the default pool size and a
// no-op-free base logger.
func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		capacity: defaultPoolSize,
		log:      falkorlog.NewBaseLogger(nil).NewLogger(),
	}
}

// WithURL sets the connection URL (scheme redis/rediss/falkor). Unset,
// Build uses falkor://127.0.0.1:6379.
func (b *ClientBuilder) WithURL(url string) *ClientBuilder {
	b.url = url

	return b
}

// WithPoolSize sets the connection pool's fixed capacity, clamped to
// [1,32] by falkorpool.New.
func (b *ClientBuilder) WithPoolSize(capacity uint8) *ClientBuilder {
	b.capacity = capacity

	return b
}

// WithLogger overrides the builder's logger.
func (b *ClientBuilder) WithLogger(log falkorlog.Logger) *ClientBuilder {
	b.log = log

	return b
}

// WithDefaultTimeout sets the server-side timeout, in milliseconds,
// applied to every Query/ROQuery builder a Graph produced by the built
// Client starts. A per-query Builder.WithTimeout call still overrides
// it. Zero means no default is applied.
func (b *ClientBuilder) WithDefaultTimeout(ms int64) *ClientBuilder {
	b.defaultTimeoutMS = ms

	return b
}

// FromConfig applies an env-loaded Config's fields as builder defaults.
// Explicit With* calls made afterward still override it.
func (b *ClientBuilder) FromConfig(cfg *Config) *ClientBuilder {
	b.url = cfg.URL
	b.capacity = cfg.PoolSize
	b.defaultTimeoutMS = cfg.DefaultTimeoutMS

	return b
}

// Build parses the accumulated connection info, dials a pool of
// capacity connections, and returns a ready Client.
func (b *ClientBuilder) Build(ctx context.Context) (*Client, falkorerrors.Error) {
	info, err := connectioninfo.ParseURL(b.url)
	if err != nil {
		return nil, err.Wrap("build client")
	}

	pool, err := falkorpool.New(ctx, info, b.capacity, b.log)
	if err != nil {
		return nil, err.Wrap("build client")
	}

	return newClient(pool, b.log, b.defaultTimeoutMS), nil
}

// BuildFromSocket is the embedded-server construction path: it skips
// URL parsing and dials directly against a pre-spawned Unix socket.
func (b *ClientBuilder) BuildFromSocket(ctx context.Context, socketPath string) (*Client, falkorerrors.Error) {
	info, err := connectioninfo.EmbeddedSocket(socketPath)
	if err != nil {
		return nil, err.Wrap("build client from socket")
	}

	pool, err := falkorpool.New(ctx, info, b.capacity, b.log)
	if err != nil {
		return nil, err.Wrap("build client from socket")
	}

	return newClient(pool, b.log, b.defaultTimeoutMS), nil
}
