// Package falkorgraph implements the per-graph-name handle bundling a
// connection pool reference and a schema cache, as spec §4.6's
// GraphHandle: queries, EXPLAIN/PROFILE, slowlog, and index/constraint
// management all live here.
package falkorgraph

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/falkordb/falkordb-go/falkorerrors"
	"github.com/falkordb/falkordb-go/falkorpool"
)

// withConnection borrows a connection from pool, runs fn, and releases
// the guard on every exit path. A ConnectionDown result poisons the
// guard so the pool replaces the connection instead of recycling it.
func withConnection[T any](ctx context.Context, pool *falkorpool.Pool, fn func(*redis.Conn) (T, falkorerrors.Error)) (T, falkorerrors.Error) {
	var zero T

	guard, err := pool.Borrow(ctx)
	if err != nil {
		return zero, err.Wrap("borrow connection")
	}
	defer guard.Release()

	conn, err := guard.Conn()
	if err != nil {
		return zero, err.Wrap("borrow connection")
	}

	result, fnErr := fn(conn)
	if fnErr != nil && fnErr.Code() == falkorerrors.ConnectionDown {
		guard.Poison()
	}

	return result, fnErr
}
