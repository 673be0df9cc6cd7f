package falkorclient

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/falkordb/falkordb-go/falkorerrors"
	"github.com/falkordb/falkordb-go/falkorgraph"
	"github.com/falkordb/falkordb-go/falkorlog"
	"github.com/falkordb/falkordb-go/falkorpool"
	"github.com/falkordb/falkordb-go/falkorquery"
	"github.com/falkordb/falkordb-go/threadsafemap"
)

// Client is the top-level handle: one connection pool shared by every
// open Graph, plus a registry so repeated SelectGraph calls for the
// same name return the same Graph instance and therefore the same
// schema cache (Design Note "Per-graph vs per-client schema caches").
type Client struct {
	pool             *falkorpool.Pool
	graphs           *threadsafemap.ThreadSafeMap[string, *falkorgraph.Graph]
	log              falkorlog.Logger
	defaultTimeoutMS int64
}

func newClient(pool *falkorpool.Pool, log falkorlog.Logger, defaultTimeoutMS int64) *Client {
	return &Client{
		pool:             pool,
		graphs:           threadsafemap.NewThreadSafeMap[string, *falkorgraph.Graph](),
		log:              log,
		defaultTimeoutMS: defaultTimeoutMS,
	}
}

// SelectGraph returns the Graph handle for name, creating and caching
// one on first use. GetOrSet's atomicity means concurrent first-callers
// for the same name all observe one winning Graph, never two.
func (c *Client) SelectGraph(name string) *falkorgraph.Graph {
	candidate := falkorgraph.New(name, c.pool, c.defaultTimeoutMS)
	winner, _ := c.graphs.GetOrSet(name, candidate)

	return winner
}

// CopyGraph duplicates src under dst on the server.
func (c *Client) CopyGraph(ctx context.Context, src, dst string) falkorerrors.Error {
	return c.SelectGraph(src).Copy(ctx, dst)
}

// ListGraphs parses GRAPH.LIST into the names of every graph currently
// loaded on the server.
func (c *Client) ListGraphs(ctx context.Context) ([]string, falkorerrors.Error) {
	raw, err := withConnection(ctx, c.pool, func(conn *redis.Conn) (any, falkorerrors.Error) {
		return falkorquery.RunRaw(ctx, conn, []any{falkorquery.CommandList})
	})
	if err != nil {
		return nil, err.Wrap("list graphs")
	}

	elems, ok := raw.([]any)
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.MalformedResponse, "GRAPH.LIST reply is not an array")
	}

	names := make([]string, 0, len(elems))

	for _, elem := range elems {
		name, isString := elem.(string)
		if !isString {
			return nil, falkorerrors.FromString(falkorerrors.ParsingString, "GRAPH.LIST entry is not a string")
		}

		names = append(names, name)
	}

	return names, nil
}

// ConfigGet issues GRAPH.CONFIG GET key. key "*" returns every
// configuration option; any other key returns a single-entry map.
func (c *Client) ConfigGet(ctx context.Context, key string) (map[string]ConfigValue, falkorerrors.Error) {
	raw, err := withConnection(ctx, c.pool, func(conn *redis.Conn) (any, falkorerrors.Error) {
		return falkorquery.RunRaw(ctx, conn, []any{falkorquery.CommandConfig, "GET", key})
	})
	if err != nil {
		return nil, err.Wrap("config get " + key)
	}

	elems, ok := raw.([]any)
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.MalformedResponse, "GRAPH.CONFIG GET reply is not an array")
	}

	if len(elems) == 2 {
		if _, pairIsArray := elems[0].([]any); !pairIsArray {
			return decodeConfigPair(elems)
		}
	}

	out := make(map[string]ConfigValue, len(elems))

	for _, row := range elems {
		pair, pairOk := row.([]any)
		if !pairOk {
			return nil, falkorerrors.FromString(falkorerrors.MalformedResponse, "GRAPH.CONFIG GET row is not a pair")
		}

		decoded, decodeErr := decodeConfigPair(pair)
		if decodeErr != nil {
			return nil, decodeErr
		}

		for k, v := range decoded {
			out[k] = v
		}
	}

	return out, nil
}

func decodeConfigPair(pair []any) (map[string]ConfigValue, falkorerrors.Error) {
	if len(pair) != 2 {
		return nil, falkorerrors.FromString(falkorerrors.MalformedResponse, "GRAPH.CONFIG GET pair must have 2 elements")
	}

	key, keyOk := pair[0].(string)
	if !keyOk {
		return nil, falkorerrors.FromString(falkorerrors.ParsingString, "GRAPH.CONFIG GET key is not a string")
	}

	value, valErr := parseConfigValue(pair[1])
	if valErr != nil {
		return nil, valErr
	}

	return map[string]ConfigValue{key: value}, nil
}

// ConfigSet issues GRAPH.CONFIG SET key value.
func (c *Client) ConfigSet(ctx context.Context, key string, value ConfigValue) falkorerrors.Error {
	_, err := withConnection(ctx, c.pool, func(conn *redis.Conn) (any, falkorerrors.Error) {
		return falkorquery.RunRaw(ctx, conn, []any{falkorquery.CommandConfig, "SET", key, value.arg()})
	})
	if err != nil {
		return err.Wrap("config set " + key)
	}

	return nil
}

// RedisInfo issues the underlying server's INFO command, optionally
// scoped to section, for diagnostics passthrough.
func (c *Client) RedisInfo(ctx context.Context, section string) (string, falkorerrors.Error) {
	args := []any{"INFO"}
	if section != "" {
		args = append(args, section)
	}

	raw, err := withConnection(ctx, c.pool, func(conn *redis.Conn) (any, falkorerrors.Error) {
		return falkorquery.RunRaw(ctx, conn, args)
	})
	if err != nil {
		return "", err.Wrap("redis info")
	}

	info, ok := raw.(string)
	if !ok {
		return "", falkorerrors.FromString(falkorerrors.MalformedResponse, "INFO reply is not a string")
	}

	return info, nil
}

// Ping checks connectivity using a connection borrowed from the pool.
func (c *Client) Ping(ctx context.Context) falkorerrors.Error {
	return c.pool.Ping(ctx)
}

// Close releases every pooled connection.
func (c *Client) Close() falkorerrors.Error {
	return c.pool.Close()
}

// PoolCapacity reports the underlying pool's fixed size.
func (c *Client) PoolCapacity() uint8 {
	return c.pool.Capacity()
}
