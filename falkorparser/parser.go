// Package falkorparser implements the recursive decoder from a
// compact-mode response tree (as returned by the RESP transport: arrays
// decode to []any, bulk strings to string, integers to int64) into
// falkorvalue.Value instances, consulting a falkorschema.Cache to
// resolve label/property-key/relationship-type ids along the way.
package falkorparser

import (
	"context"
	"fmt"

	"github.com/falkordb/falkordb-go/falkorerrors"
	"github.com/falkordb/falkordb-go/falkorschema"
	"github.com/falkordb/falkordb-go/falkorvalue"
	"github.com/falkordb/falkordb-go/valueparser"
)

const (
	tagNull     = 1
	tagString   = 2
	tagInt64    = 3
	tagBool     = 4
	tagDouble   = 5
	tagArray    = 6
	tagEdge     = 7
	tagNode     = 8
	tagPath     = 9
	tagMap      = 10
	tagPoint    = 11
	tagVector32 = 12
)

const (
	taggedElementCount = 2
	edgeElementCount   = 5
	nodeElementCount   = 3
	pathElementCount   = 2
	pointElementCount  = 2
	propertyTupleCount = 3
)

// Decode parses one top-level compact-mode element, a two-element
// array [type_tag, payload], into a falkorvalue.Value.
func Decode(ctx context.Context, cache *falkorschema.Cache, raw any) (falkorvalue.Value, falkorerrors.Error) {
	elems, ok := raw.([]any)
	if !ok || len(elems) != taggedElementCount {
		return nil, falkorerrors.FromString(
			falkorerrors.MalformedResponse,
			"compact element must be a 2-element [tag, payload] array",
		)
	}

	tag, ok := asInt(elems[0])
	if !ok {
		return nil, falkorerrors.FromString(
			falkorerrors.MalformedResponse,
			"compact element tag must be an integer",
		)
	}

	return decodeTagged(ctx, cache, tag, elems[1])
}

func decodeTagged(ctx context.Context, cache *falkorschema.Cache, tag int64, payload any) (falkorvalue.Value, falkorerrors.Error) {
	switch tag {
	case tagNull:
		return falkorvalue.Null{}, nil
	case tagString:
		return decodeString(payload)
	case tagInt64:
		return decodeInt(payload)
	case tagBool:
		return decodeBool(payload)
	case tagDouble:
		return decodeFloat(payload)
	case tagArray:
		return decodeArray(ctx, cache, payload)
	case tagEdge:
		return decodeEdge(ctx, cache, payload)
	case tagNode:
		return decodeNode(ctx, cache, payload)
	case tagPath:
		return decodePath(ctx, cache, payload)
	case tagMap:
		return decodeMap(ctx, cache, payload)
	case tagPoint:
		return decodePoint(payload)
	case tagVector32:
		return decodeVector32(payload)
	default:
		return nil, falkorerrors.FromString(
			falkorerrors.UnknownType,
			fmt.Sprintf("unknown compact type tag %d", tag),
		)
	}
}

func decodeString(payload any) (falkorvalue.Value, falkorerrors.Error) {
	s, ok := asString(payload)
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.ParsingString, "string payload is not a string")
	}

	return falkorvalue.String(s), nil
}

func decodeInt(payload any) (falkorvalue.Value, falkorerrors.Error) {
	i, ok := asInt(payload)
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.ParsingI64, "int64 payload is not an integer")
	}

	return falkorvalue.Int(i), nil
}

func decodeBool(payload any) (falkorvalue.Value, falkorerrors.Error) {
	s, ok := asString(payload)
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.ParsingBool, "bool payload is not a string")
	}

	b, err := valueparser.ParseValue[bool](s)
	if err != nil {
		return nil, falkorerrors.FromError(falkorerrors.ParsingBool, err, "parse bool payload "+s)
	}

	return falkorvalue.Bool(b), nil
}

func decodeFloat(payload any) (falkorvalue.Value, falkorerrors.Error) {
	s, ok := asString(payload)
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.ParsingF64, "double payload is not a string")
	}

	f, err := valueparser.ParseValue[float64](s)
	if err != nil {
		return nil, falkorerrors.FromError(falkorerrors.ParsingF64, err, "parse double payload "+s)
	}

	return falkorvalue.Float(f), nil
}

func decodeArray(ctx context.Context, cache *falkorschema.Cache, payload any) (falkorvalue.Value, falkorerrors.Error) {
	elems, ok := payload.([]any)
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.ParsingArray, "array payload is not an array")
	}

	out := make(falkorvalue.Array, 0, len(elems))

	for i, elem := range elems {
		val, err := Decode(ctx, cache, elem)
		if err != nil {
			return nil, err.Wrap(fmt.Sprintf("parse array element %d", i))
		}

		out = append(out, val)
	}

	return out, nil
}

func decodePoint(payload any) (falkorvalue.Value, falkorerrors.Error) {
	elems, ok := payload.([]any)
	if !ok || len(elems) != pointElementCount {
		return nil, falkorerrors.FromString(falkorerrors.ParsingPoint, "point payload must be a 2-element array")
	}

	latStr, ok := asString(elems[0])
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.ParsingPoint, "point latitude is not a string")
	}

	lonStr, ok := asString(elems[1])
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.ParsingPoint, "point longitude is not a string")
	}

	lat, err := valueparser.ParseValue[float64](latStr)
	if err != nil {
		return nil, falkorerrors.FromError(falkorerrors.ParsingPoint, err, "parse point latitude")
	}

	lon, err := valueparser.ParseValue[float64](lonStr)
	if err != nil {
		return nil, falkorerrors.FromError(falkorerrors.ParsingPoint, err, "parse point longitude")
	}

	return falkorvalue.Point{Latitude: lat, Longitude: lon}, nil
}

func decodeVector32(payload any) (falkorvalue.Value, falkorerrors.Error) {
	elems, ok := payload.([]any)
	if !ok {
		return nil, falkorerrors.FromString(falkorerrors.ParsingVec32, "vector32 payload is not an array")
	}

	out := make(falkorvalue.Vector32, 0, len(elems))

	for i, elem := range elems {
		s, ok := asString(elem)
		if !ok {
			return nil, falkorerrors.FromString(
				falkorerrors.ParsingVec32,
				fmt.Sprintf("vector32 element %d is not a string", i),
			)
		}

		f, err := valueparser.ParseValue[float32](s)
		if err != nil {
			return nil, falkorerrors.FromError(falkorerrors.ParsingVec32, err, fmt.Sprintf("parse vector32 element %d", i))
		}

		out = append(out, f)
	}

	return out, nil
}

func decodeMap(ctx context.Context, cache *falkorschema.Cache, payload any) (falkorvalue.Value, falkorerrors.Error) {
	elems, ok := payload.([]any)
	if !ok || len(elems)%2 != 0 {
		return nil, falkorerrors.FromString(
			falkorerrors.ParsingMap,
			"map payload must be a flat array alternating key and tagged value",
		)
	}

	entries := make([]falkorvalue.MapEntry, 0, len(elems)/2)

	for i := 0; i < len(elems); i += 2 {
		key, ok := asString(elems[i])
		if !ok {
			return nil, falkorerrors.FromString(falkorerrors.ParsingMap, "map key is not a string")
		}

		val, err := Decode(ctx, cache, elems[i+1])
		if err != nil {
			return nil, err.Wrap("parse map value for key " + key)
		}

		entries = append(entries, falkorvalue.MapEntry{Key: key, Value: val})
	}

	return falkorvalue.NewMap(entries), nil
}

// asInt coerces a raw RESP integer reply (int64, or occasionally int on
// some transport shims) to int64.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}

// asString coerces a raw RESP bulk-string reply (string, or []byte on
// some transport shims) to string.
func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	default:
		return "", false
	}
}
