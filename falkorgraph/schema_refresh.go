package falkorgraph

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/falkordb/falkordb-go/falkorerrors"
	"github.com/falkordb/falkordb-go/falkorpool"
	"github.com/falkordb/falkordb-go/falkorquery"
	"github.com/falkordb/falkordb-go/falkorschema"
	"github.com/falkordb/falkordb-go/falkorvalue"
)

// schemaRefreshCache backs the one procedure call a schema refresh
// itself issues. Its rows are plain strings (label/property-key/
// relationship-type names), which never touch label, property, or
// relationship resolution, so this cache's own refresh function is
// never expected to run; it exists only to satisfy falkorquery.Run's
// signature without recursing into the cache being refreshed.
var schemaRefreshCache = falkorschema.NewCache(func(context.Context, falkorschema.Kind) ([]string, falkorerrors.Error) {
	return nil, falkorerrors.FromString(
		falkorerrors.MalformedResponse,
		"schema refresh row unexpectedly required further schema resolution",
	)
})

func procedureForKind(kind falkorschema.Kind) string {
	switch kind {
	case falkorschema.Labels:
		return "DB.LABELS"
	case falkorschema.PropertyKeys:
		return "DB.PROPERTYKEYS"
	case falkorschema.Relationships:
		return "DB.RELATIONSHIPTYPES"
	default:
		return ""
	}
}

// newSchemaRefreshFunc builds the falkorschema.RefreshFunc for
// graphName against pool: one read-only procedure call per kind,
// decoded into a plain name list, positionally indexed by id.
func newSchemaRefreshFunc(pool *falkorpool.Pool, graphName string) falkorschema.RefreshFunc {
	return func(ctx context.Context, kind falkorschema.Kind) ([]string, falkorerrors.Error) {
		procedure := procedureForKind(kind)

		return withConnection(ctx, pool, func(conn *redis.Conn) ([]string, falkorerrors.Error) {
			result, err := falkorquery.Run(
				ctx,
				conn,
				schemaRefreshCache,
				falkorquery.NewProcedureCall(graphName, procedure, true).Build(),
			)
			if err != nil {
				return nil, err.Wrap("fetch schema names: " + kind.String())
			}

			names := make([]string, 0, result.Data.Len())

			for {
				row, ok := result.Data.Next(ctx)
				if !ok {
					break
				}

				if len(row) == 0 {
					continue
				}

				if unparseable, isUnparseable := row[0].(falkorvalue.Unparseable); isUnparseable {
					return nil, unparseable.Err.Wrap("decode schema name")
				}

				name, isString := falkorvalue.AsString(row[0])
				if !isString {
					return nil, falkorerrors.FromString(falkorerrors.ParsingString, "schema name row is not a string")
				}

				names = append(names, name)
			}

			return names, nil
		})
	}
}
