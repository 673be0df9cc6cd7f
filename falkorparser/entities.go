package falkorparser

import (
	"context"
	"fmt"

	"github.com/falkordb/falkordb-go/falkorerrors"
	"github.com/falkordb/falkordb-go/falkorschema"
	"github.com/falkordb/falkordb-go/falkorvalue"
)

// resolveIDs translates a set of ids for kind into names, verifying
// against the cache first and refreshing at most once on a miss — the
// refresh itself fails with SchemaUnknownId if an id is still absent
// afterward, so callers never loop.
func resolveIDs(ctx context.Context, cache *falkorschema.Cache, kind falkorschema.Kind, ids []int64) (map[int64]string, falkorerrors.Error) {
	if sub, ok := cache.Verify(kind, ids); ok {
		return sub, nil
	}

	return cache.Refresh(ctx, kind, ids)
}

func decodeNode(ctx context.Context, cache *falkorschema.Cache, payload any) (falkorvalue.Value, falkorerrors.Error) {
	elems, ok := payload.([]any)
	if !ok || len(elems) != nodeElementCount {
		return nil, falkorerrors.FromString(falkorerrors.ParsingNode, "node payload must be a 3-element array")
	}

	entityID, ok := asInt(elems[0])
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.ParsingNode, "node entity_id is not an integer")
	}

	labelIDRaw, ok := elems[1].([]any)
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.ParsingNode, "node label_ids is not an array")
	}

	labelIDs := make([]int64, 0, len(labelIDRaw))

	for _, raw := range labelIDRaw {
		id, ok := asInt(raw)
		if !ok {
			return nil, falkorerrors.FromString(falkorerrors.ParsingNode, "node label id is not an integer")
		}

		labelIDs = append(labelIDs, id)
	}

	labelNames, err := resolveIDs(ctx, cache, falkorschema.Labels, labelIDs)
	if err != nil {
		return nil, err.Wrap("resolve node labels")
	}

	labels := make([]string, len(labelIDs))
	for i, id := range labelIDs {
		labels[i] = labelNames[id]
	}

	props, err := decodeProperties(ctx, cache, elems[2])
	if err != nil {
		return nil, err.Wrap("decode node properties")
	}

	return falkorvalue.Node{
		EntityID:   entityID,
		Labels:     labels,
		Properties: props,
	}, nil
}

func decodeEdge(ctx context.Context, cache *falkorschema.Cache, payload any) (falkorvalue.Value, falkorerrors.Error) {
	elems, ok := payload.([]any)
	if !ok || len(elems) != edgeElementCount {
		return nil, falkorerrors.FromString(falkorerrors.ParsingEdge, "edge payload must be a 5-element array")
	}

	entityID, ok := asInt(elems[0])
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.ParsingEdge, "edge entity_id is not an integer")
	}

	relTypeID, ok := asInt(elems[1])
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.ParsingEdge, "edge relationship type id is not an integer")
	}

	srcID, ok := asInt(elems[2])
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.ParsingEdge, "edge src_id is not an integer")
	}

	dstID, ok := asInt(elems[3])
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.ParsingEdge, "edge dst_id is not an integer")
	}

	relNames, err := resolveIDs(ctx, cache, falkorschema.Relationships, []int64{relTypeID})
	if err != nil {
		return nil, err.Wrap("resolve edge relationship type")
	}

	props, err := decodeProperties(ctx, cache, elems[4])
	if err != nil {
		return nil, err.Wrap("decode edge properties")
	}

	return falkorvalue.Edge{
		EntityID:         entityID,
		RelationshipType: relNames[relTypeID],
		SrcNodeID:        srcID,
		DstNodeID:        dstID,
		Properties:       props,
	}, nil
}

func decodePath(ctx context.Context, cache *falkorschema.Cache, payload any) (falkorvalue.Value, falkorerrors.Error) {
	elems, ok := payload.([]any)
	if !ok || len(elems) != pathElementCount {
		return nil, falkorerrors.FromString(falkorerrors.ParsingPath, "path payload must be a 2-element array")
	}

	nodesRaw, ok := elems[0].([]any)
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.ParsingPath, "path nodes is not an array")
	}

	relsRaw, ok := elems[1].([]any)
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.ParsingPath, "path relationships is not an array")
	}

	nodes := make([]falkorvalue.Node, 0, len(nodesRaw))

	for i, raw := range nodesRaw {
		val, err := Decode(ctx, cache, raw)
		if err != nil {
			return nil, err.Wrap(fmt.Sprintf("decode path node %d", i))
		}

		node, ok := falkorvalue.AsNode(val)
		if !ok {
			return nil, falkorerrors.FromString(falkorerrors.ParsingPath, "path node element is not a node")
		}

		nodes = append(nodes, node)
	}

	rels := make([]falkorvalue.Edge, 0, len(relsRaw))

	for i, raw := range relsRaw {
		val, err := Decode(ctx, cache, raw)
		if err != nil {
			return nil, err.Wrap(fmt.Sprintf("decode path relationship %d", i))
		}

		edge, ok := falkorvalue.AsEdge(val)
		if !ok {
			return nil, falkorerrors.FromString(falkorerrors.ParsingPath, "path relationship element is not an edge")
		}

		rels = append(rels, edge)
	}

	return falkorvalue.Path{Nodes: nodes, Relationships: rels}, nil
}

// decodeProperties parses a node/edge property list: an array of
// 3-element tuples [property_key_id, type_tag, value].
func decodeProperties(ctx context.Context, cache *falkorschema.Cache, payload any) (*falkorvalue.Map, falkorerrors.Error) {
	elems, ok := payload.([]any)
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.ParsingMap, "property list is not an array")
	}

	keyIDs := make([]int64, 0, len(elems))
	tuples := make([][]any, 0, len(elems))

	for _, raw := range elems {
		tuple, ok := raw.([]any)
		if !ok || len(tuple) != propertyTupleCount {
			return nil, falkorerrors.FromString(falkorerrors.ParsingMap, "property tuple must have 3 elements")
		}

		keyID, ok := asInt(tuple[0])
		if !ok {
			return nil, falkorerrors.FromString(falkorerrors.ParsingMap, "property key id is not an integer")
		}

		keyIDs = append(keyIDs, keyID)
		tuples = append(tuples, tuple)
	}

	keyNames, err := resolveIDs(ctx, cache, falkorschema.PropertyKeys, keyIDs)
	if err != nil {
		return nil, err.Wrap("resolve property keys")
	}

	entries := make([]falkorvalue.MapEntry, 0, len(tuples))

	for i, tuple := range tuples {
		tag, ok := asInt(tuple[1])
		if !ok {
			return nil, falkorerrors.FromString(falkorerrors.ParsingMap, "property type tag is not an integer")
		}

		val, verr := decodeTagged(ctx, cache, tag, tuple[2])
		if verr != nil {
			return nil, verr.Wrap(fmt.Sprintf("decode property value for key id %d", keyIDs[i]))
		}

		entries = append(entries, falkorvalue.MapEntry{Key: keyNames[keyIDs[i]], Value: val})
	}

	return falkorvalue.NewMap(entries), nil
}
