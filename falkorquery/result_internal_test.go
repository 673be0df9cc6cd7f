package falkorquery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falkordb/falkordb-go/falkorerrors"
	"github.com/falkordb/falkordb-go/falkorschema"
	"github.com/falkordb/falkordb-go/falkorvalue"
)

func noopCache() *falkorschema.Cache {
	return falkorschema.NewCache(func(context.Context, falkorschema.Kind) ([]string, falkorerrors.Error) {
		return nil, nil
	})
}

func TestParseQueryResult_EmptyReplyIsEmptyResult(t *testing.T) {
	result, err := parseQueryResult([]any{}, nil)
	require.Nil(t, err)
	assert.Nil(t, result.Header)
	assert.True(t, result.Data.IsEmpty())
	assert.Nil(t, result.Statistics)
}

func TestParseQueryResult_StatsOnly(t *testing.T) {
	raw := []any{[]any{"Query internal execution time: 0.5 ms"}}

	result, err := parseQueryResult(raw, nil)
	require.Nil(t, err)
	assert.Nil(t, result.Header)
	assert.True(t, result.Data.IsEmpty())
	assert.Equal(t, []string{"Query internal execution time: 0.5 ms"}, result.Statistics)
}

func TestParseQueryResult_HeaderAndStats(t *testing.T) {
	raw := []any{
		[]any{[]any{int64(1), "n"}},
		[]any{"stats"},
	}

	result, err := parseQueryResult(raw, nil)
	require.Nil(t, err)
	assert.Equal(t, []string{"n"}, result.Header)
	assert.True(t, result.Data.IsEmpty())
}

func TestParseQueryResult_FullShapeWithRows(t *testing.T) {
	raw := []any{
		[]any{[]any{int64(1), "n"}},
		[]any{
			[]any{[]any{int64(3), int64(42)}},
		},
		[]any{"stats"},
	}

	result, err := parseQueryResult(raw, noopCache())
	require.Nil(t, err)
	require.Equal(t, 1, result.Data.Len())

	row, ok := result.Data.Next(context.Background())
	require.True(t, ok)
	require.Len(t, row, 1)

	i, isInt := falkorvalue.AsInt(row[0])
	assert.True(t, isInt)
	assert.Equal(t, int64(42), i)

	assert.True(t, result.Data.IsEmpty())

	_, ok = result.Data.Next(context.Background())
	assert.False(t, ok)
}

func TestParseQueryResult_WrongArityFails(t *testing.T) {
	_, err := parseQueryResult([]any{1, 2, 3, 4}, nil)
	require.NotNil(t, err)
}

func TestLazyResultSet_UnparseableRowIsNonTerminal(t *testing.T) {
	raw := []any{
		[]any{[]any{int64(1), "n"}},
		[]any{
			"not-an-array-row",
			[]any{[]any{int64(3), int64(7)}},
		},
		[]any{"stats"},
	}

	result, err := parseQueryResult(raw, noopCache())
	require.Nil(t, err)

	row, ok := result.Data.Next(context.Background())
	require.True(t, ok)
	require.Len(t, row, 1)

	_, isUnparseable := row[0].(falkorvalue.Unparseable)
	assert.True(t, isUnparseable)

	row, ok = result.Data.Next(context.Background())
	require.True(t, ok)

	i, isInt := falkorvalue.AsInt(row[0])
	assert.True(t, isInt)
	assert.Equal(t, int64(7), i)
}
