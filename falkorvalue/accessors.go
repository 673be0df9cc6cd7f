package falkorvalue

import "github.com/falkordb/falkordb-go/falkorerrors"

// AsInt returns the wrapped int64 and true, or zero and false if v is not
// an Int.
func AsInt(v Value) (int64, bool) {
	i, ok := v.(Int)

	return int64(i), ok
}

// AsString returns the wrapped string and true, or "" and false if v is
// not a String.
func AsString(v Value) (string, bool) {
	s, ok := v.(String)

	return string(s), ok
}

// AsBool returns the wrapped bool and true, or false and false if v is
// not a Bool.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(Bool)

	return bool(b), ok
}

// AsFloat returns the wrapped float64 and true, or zero and false if v is
// not a Float.
func AsFloat(v Value) (float64, bool) {
	f, ok := v.(Float)

	return float64(f), ok
}

// AsArray returns the wrapped slice and true, or nil and false if v is
// not an Array.
func AsArray(v Value) ([]Value, bool) {
	a, ok := v.(Array)

	return []Value(a), ok
}

// AsMap returns the wrapped map and true, or nil and false if v is not a
// *Map.
func AsMap(v Value) (*Map, bool) {
	m, ok := v.(*Map)

	return m, ok
}

// AsNode returns the wrapped Node and true, or the zero Node and false if
// v is not a Node.
func AsNode(v Value) (Node, bool) {
	n, ok := v.(Node)

	return n, ok
}

// AsEdge returns the wrapped Edge and true, or the zero Edge and false if
// v is not an Edge.
func AsEdge(v Value) (Edge, bool) {
	e, ok := v.(Edge)

	return e, ok
}

// AsPath returns the wrapped Path and true, or the zero Path and false if
// v is not a Path.
func AsPath(v Value) (Path, bool) {
	p, ok := v.(Path)

	return p, ok
}

// AsPoint returns the wrapped Point and true, or the zero Point and false
// if v is not a Point.
func AsPoint(v Value) (Point, bool) {
	p, ok := v.(Point)

	return p, ok
}

// AsVector32 returns the wrapped []float32 and true, or nil and false if
// v is not a Vector32.
func AsVector32(v Value) ([]float32, bool) {
	vec, ok := v.(Vector32)

	return []float32(vec), ok
}

// IntoArray consumes v, returning its elements or a ParsingArray error
// when v is not an Array.
func IntoArray(v Value) ([]Value, falkorerrors.Error) {
	if a, ok := AsArray(v); ok {
		return a, nil
	}

	return nil, falkorerrors.FromString(
		falkorerrors.ParsingArray,
		"value is not an array",
	)
}

// IntoString consumes v, returning its string or a ParsingString error
// when v is not a String.
func IntoString(v Value) (string, falkorerrors.Error) {
	if s, ok := AsString(v); ok {
		return s, nil
	}

	return "", falkorerrors.FromString(
		falkorerrors.ParsingString,
		"value is not a string",
	)
}

// IntoMap consumes v, returning its map or a ParsingMap error when v is
// not a *Map.
func IntoMap(v Value) (*Map, falkorerrors.Error) {
	if m, ok := AsMap(v); ok {
		return m, nil
	}

	return nil, falkorerrors.FromString(
		falkorerrors.ParsingMap,
		"value is not a map",
	)
}

// IntoNode consumes v, returning its Node or a ParsingNode error when v
// is not a Node.
func IntoNode(v Value) (Node, falkorerrors.Error) {
	if n, ok := AsNode(v); ok {
		return n, nil
	}

	return Node{}, falkorerrors.FromString(
		falkorerrors.ParsingNode,
		"value is not a node",
	)
}

// IntoEdge consumes v, returning its Edge or a ParsingEdge error when v
// is not an Edge.
func IntoEdge(v Value) (Edge, falkorerrors.Error) {
	if e, ok := AsEdge(v); ok {
		return e, nil
	}

	return Edge{}, falkorerrors.FromString(
		falkorerrors.ParsingEdge,
		"value is not an edge",
	)
}

// IntoPath consumes v, returning its Path or a ParsingPath error when v
// is not a Path.
func IntoPath(v Value) (Path, falkorerrors.Error) {
	if p, ok := AsPath(v); ok {
		return p, nil
	}

	return Path{}, falkorerrors.FromString(
		falkorerrors.ParsingPath,
		"value is not a path",
	)
}
