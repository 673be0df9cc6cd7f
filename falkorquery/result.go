package falkorquery

import (
	"context"

	"github.com/falkordb/falkordb-go/falkorerrors"
	"github.com/falkordb/falkordb-go/falkorparser"
	"github.com/falkordb/falkordb-go/falkorschema"
	"github.com/falkordb/falkordb-go/falkorvalue"
)

const (
	statsOnlyReplyLen  = 1
	headerStatsLen     = 2
	headerDataStatsLen = 3
)

// QueryResult is one GRAPH.QUERY[_RO] reply: an optional column header,
// a lazily-decoded row set, and the server's human-readable statistics
// strings.
type QueryResult struct {
	Header     []string
	Data       *LazyResultSet
	Statistics []string
}

// LazyResultSet owns the still-undecoded row array and an exclusive
// reference to the schema cache it needs to resolve label/property/
// relationship ids as rows are pulled. It must outlive every row
// produced by Next, and must not be shared across graph handles (the
// cache it holds is per-graph).
type LazyResultSet struct {
	rows  []any
	cache *falkorschema.Cache
}

func newLazyResultSet(rows []any, cache *falkorschema.Cache) *LazyResultSet {
	return &LazyResultSet{rows: rows, cache: cache}
}

// Len reports the number of rows not yet pulled.
func (l *LazyResultSet) Len() int {
	return len(l.rows)
}

// IsEmpty reports whether every row has been pulled.
func (l *LazyResultSet) IsEmpty() bool {
	return len(l.rows) == 0
}

// Next decodes and removes the next row. ok is false once the set is
// exhausted. A row that fails to parse is never an error: it is
// substituted with a single-element [Unparseable] row so the caller
// can see which row failed and keep consuming the rest.
func (l *LazyResultSet) Next(ctx context.Context) (row []falkorvalue.Value, ok bool) {
	if len(l.rows) == 0 {
		return nil, false
	}

	raw := l.rows[0]
	l.rows = l.rows[1:]

	cells, cellsErr := asOuterArray(raw)
	if cellsErr != nil {
		return []falkorvalue.Value{falkorvalue.Unparseable{Err: cellsErr}}, true
	}

	out := make([]falkorvalue.Value, 0, len(cells))

	for _, cell := range cells {
		val, err := falkorparser.Decode(ctx, l.cache, cell)
		if err != nil {
			return []falkorvalue.Value{falkorvalue.Unparseable{Err: err}}, true
		}

		out = append(out, val)
	}

	return out, true
}

func decodeStatistics(raw any) ([]string, falkorerrors.Error) {
	elems, err := asOuterArray(raw)
	if err != nil {
		return nil, err.Wrap("decode statistics")
	}

	out := make([]string, 0, len(elems))

	for _, elem := range elems {
		s, ok := elem.(string)
		if !ok {
			return nil, falkorerrors.FromString(falkorerrors.MalformedResponse, "statistics entry is not a string")
		}

		out = append(out, s)
	}

	return out, nil
}

func decodeHeader(raw any) ([]string, falkorerrors.Error) {
	elems, err := asOuterArray(raw)
	if err != nil {
		return nil, err.Wrap("decode header")
	}

	out := make([]string, 0, len(elems))

	for _, elem := range elems {
		cols, ok := elem.([]any)
		if !ok || len(cols) == 0 {
			return nil, falkorerrors.FromString(falkorerrors.ParsingHeader, "header column is not a [type, name] pair")
		}

		name, ok := cols[len(cols)-1].(string)
		if !ok {
			return nil, falkorerrors.FromString(falkorerrors.ParsingHeader, "header column name is not a string")
		}

		out = append(out, name)
	}

	return out, nil
}

// parseQueryResult classifies the outer reply array by length, as spec
// §4.5: 0 elements is an empty result (no header, no rows, no
// statistics), 1 element is stats-only, 2 is [header, stats], 3 is
// [header, rows, stats]. Any other length is MalformedResponse.
func parseQueryResult(raw any, cache *falkorschema.Cache) (*QueryResult, falkorerrors.Error) {
	elems, err := asOuterArray(raw)
	if err != nil {
		return nil, err
	}

	switch len(elems) {
	case 0:
		return &QueryResult{Data: newLazyResultSet(nil, cache)}, nil
	case statsOnlyReplyLen:
		stats, statsErr := decodeStatistics(elems[0])
		if statsErr != nil {
			return nil, statsErr
		}

		return &QueryResult{Data: newLazyResultSet(nil, cache), Statistics: stats}, nil
	case headerStatsLen:
		header, headerErr := decodeHeader(elems[0])
		if headerErr != nil {
			return nil, headerErr
		}

		stats, statsErr := decodeStatistics(elems[1])
		if statsErr != nil {
			return nil, statsErr
		}

		return &QueryResult{Header: header, Data: newLazyResultSet(nil, cache), Statistics: stats}, nil
	case headerDataStatsLen:
		header, headerErr := decodeHeader(elems[0])
		if headerErr != nil {
			return nil, headerErr
		}

		rows, rowsErr := asOuterArray(elems[1])
		if rowsErr != nil {
			return nil, rowsErr.Wrap("decode rows")
		}

		stats, statsErr := decodeStatistics(elems[2])
		if statsErr != nil {
			return nil, statsErr
		}

		return &QueryResult{Header: header, Data: newLazyResultSet(rows, cache), Statistics: stats}, nil
	default:
		return nil, falkorerrors.FromString(
			falkorerrors.MalformedResponse,
			"query reply must have 1, 2, or 3 elements",
		)
	}
}
