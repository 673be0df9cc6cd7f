package falkorparser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falkordb/falkordb-go/falkorerrors"
	"github.com/falkordb/falkordb-go/falkorparser"
	"github.com/falkordb/falkordb-go/falkorschema"
	"github.com/falkordb/falkordb-go/falkorvalue"
)

func newCache(labels, propKeys, rels []string) *falkorschema.Cache {
	return falkorschema.NewCache(func(_ context.Context, kind falkorschema.Kind) ([]string, falkorerrors.Error) {
		switch kind {
		case falkorschema.Labels:
			return labels, nil
		case falkorschema.PropertyKeys:
			return propKeys, nil
		case falkorschema.Relationships:
			return rels, nil
		default:
			return nil, falkorerrors.FromString(falkorerrors.UnknownType, "unknown kind")
		}
	})
}

func TestDecodeNode_MatchesScenarioS6(t *testing.T) {
	cache := newCache([]string{"actor"}, []string{"name"}, nil)

	raw := []any{int64(8), []any{
		int64(203),
		[]any{int64(0)},
		[]any{[]any{int64(1), int64(2), "FirstNode"}},
	}}

	val, err := falkorparser.Decode(context.Background(), cache, raw)
	require.Nil(t, err)

	node, ok := falkorvalue.AsNode(val)
	require.True(t, ok)
	assert.Equal(t, int64(203), node.EntityID)
	assert.Equal(t, []string{"actor"}, node.Labels)

	name, ok := node.Properties.Get("name")
	require.True(t, ok)
	assert.Equal(t, falkorvalue.String("FirstNode"), name)
}

func TestDecodeEdge(t *testing.T) {
	cache := newCache(nil, []string{"since"}, []string{"acted_in"})

	raw := []any{int64(7), []any{
		int64(1), int64(0), int64(10), int64(20),
		[]any{[]any{int64(0), int64(3), int64(1999)}},
	}}

	val, err := falkorparser.Decode(context.Background(), cache, raw)
	require.Nil(t, err)

	edge, ok := falkorvalue.AsEdge(val)
	require.True(t, ok)
	assert.Equal(t, "acted_in", edge.RelationshipType)
	assert.Equal(t, int64(10), edge.SrcNodeID)
	assert.Equal(t, int64(20), edge.DstNodeID)

	since, ok := edge.Properties.Get("since")
	require.True(t, ok)
	assert.Equal(t, falkorvalue.Int(1999), since)
}

func TestDecodePrimitiveLeaves(t *testing.T) {
	cache := newCache(nil, nil, nil)
	ctx := context.Background()

	val, err := falkorparser.Decode(ctx, cache, []any{int64(2), "hello"})
	require.Nil(t, err)
	assert.Equal(t, falkorvalue.String("hello"), val)

	val, err = falkorparser.Decode(ctx, cache, []any{int64(4), "true"})
	require.Nil(t, err)
	assert.Equal(t, falkorvalue.Bool(true), val)

	val, err = falkorparser.Decode(ctx, cache, []any{int64(5), "3.5"})
	require.Nil(t, err)
	assert.Equal(t, falkorvalue.Float(3.5), val)

	val, err = falkorparser.Decode(ctx, cache, []any{int64(11), []any{"1.5", "2.5"}})
	require.Nil(t, err)
	assert.Equal(t, falkorvalue.Point{Latitude: 1.5, Longitude: 2.5}, val)

	val, err = falkorparser.Decode(ctx, cache, []any{int64(12), []any{"1.0", "2.0"}})
	require.Nil(t, err)
	assert.Equal(t, falkorvalue.Vector32{1.0, 2.0}, val)
}

func TestDecodeUnknownTagFails(t *testing.T) {
	cache := newCache(nil, nil, nil)

	_, err := falkorparser.Decode(context.Background(), cache, []any{int64(99), "x"})
	require.NotNil(t, err)
	assert.Equal(t, falkorerrors.UnknownType, err.Code())
}

func TestDecodeMalformedShapeFails(t *testing.T) {
	cache := newCache(nil, nil, nil)

	_, err := falkorparser.Decode(context.Background(), cache, []any{int64(2)})
	require.NotNil(t, err)
	assert.Equal(t, falkorerrors.MalformedResponse, err.Code())
}

func TestDecodeMapFlatAlternating(t *testing.T) {
	cache := newCache(nil, nil, nil)

	raw := []any{int64(10), []any{"a", []any{int64(3), int64(1)}, "b", []any{int64(2), "x"}}}

	val, err := falkorparser.Decode(context.Background(), cache, raw)
	require.Nil(t, err)

	m, ok := falkorvalue.AsMap(val)
	require.True(t, ok)

	a, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, falkorvalue.Int(1), a)
}
