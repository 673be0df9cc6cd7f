package falkorquery

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/falkordb/falkordb-go/falkorerrors"
	"github.com/falkordb/falkordb-go/falkorschema"
)

// doCommand issues args over conn and returns the raw RESP-decoded
// reply (nil, int64, string, or []any for arrays), wrapping any
// transport failure as ConnectionDown so the caller can poison its
// guard.
func doCommand(ctx context.Context, conn *redis.Conn, args []any) (any, falkorerrors.Error) {
	result, err := conn.Do(ctx, args...).Result()
	if err != nil {
		return nil, falkorerrors.FromError(falkorerrors.ConnectionDown, err, "execute command")
	}

	return result, nil
}

// RunRaw issues an arbitrary GRAPH.* command and returns its
// RESP-decoded reply verbatim, for commands that aren't shaped like a
// query result (GRAPH.DELETE, GRAPH.COPY, GRAPH.LIST, GRAPH.CONFIG).
func RunRaw(ctx context.Context, conn *redis.Conn, args []any) (any, falkorerrors.Error) {
	return doCommand(ctx, conn, args)
}

// asOuterArray validates that raw is the top-level []any every
// GRAPH.* reply is shaped as.
func asOuterArray(raw any) ([]any, falkorerrors.Error) {
	elems, ok := raw.([]any)
	if !ok {
		return nil, falkorerrors.FromString(
			falkorerrors.MalformedResponse,
			"command reply is not an array",
		)
	}

	return elems, nil
}

// Run issues b's query over conn and classifies the reply shape into a
// QueryResult backed by a lazy, cache-consuming row iterator.
func Run(ctx context.Context, conn *redis.Conn, cache *falkorschema.Cache, b *Builder) (*QueryResult, falkorerrors.Error) {
	raw, err := doCommand(ctx, conn, b.Args())
	if err != nil {
		return nil, err
	}

	return parseQueryResult(raw, cache)
}
