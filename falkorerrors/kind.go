package falkorerrors

// ErrorKind is the closed set of error categories this client can raise,
// mirroring FalkorDBError in the reference implementation this client's
// wire semantics were distilled from.
type ErrorKind uint8

const (
	// ConnectionDown reports a pool connection that failed a health check
	// or a fatal transport error mid-command.
	ConnectionDown ErrorKind = iota
	// InvalidConnectionInfo reports a malformed connection URL or info struct.
	InvalidConnectionInfo
	// InvalidPoolSize reports a requested pool size outside [1,32].
	InvalidPoolSize
	// EmptyConnection reports use of a connection guard after its
	// connection was released back to the pool.
	EmptyConnection
	// SchemaUnknownId reports an integer id with no entry in the schema
	// cache even after a refresh.
	SchemaUnknownId
	// UnknownType reports a compact-protocol type tag outside [1,12].
	UnknownType
	// MalformedResponse reports a response shape that doesn't match any
	// dispatch rule (wrong array arity, unexpected nesting).
	MalformedResponse
	// ParsingString reports a failure decoding a tag-2 string leaf.
	ParsingString
	// ParsingI64 reports a failure decoding a tag-3 integer leaf.
	ParsingI64
	// ParsingF64 reports a failure decoding a tag-5 float leaf.
	ParsingF64
	// ParsingBool reports a failure decoding a tag-4 boolean leaf.
	ParsingBool
	// ParsingArray reports a failure decoding a tag-6 array.
	ParsingArray
	// ParsingMap reports a failure decoding a tag-10 map.
	ParsingMap
	// ParsingNode reports a failure decoding a tag-8 node.
	ParsingNode
	// ParsingEdge reports a failure decoding a tag-7 edge.
	ParsingEdge
	// ParsingPath reports a failure decoding a tag-9 path.
	ParsingPath
	// ParsingPoint reports a failure decoding a tag-11 point.
	ParsingPoint
	// ParsingVec32 reports a failure decoding a tag-12 vector32.
	ParsingVec32
	// ParsingConfigValue reports a failure decoding a CONFIG GET reply entry.
	ParsingConfigValue
	// ParsingHeader reports a failure decoding a query result's header row.
	ParsingHeader
	// InvalidEnum reports an unrecognized string for a closed enum (index
	// status/type, config value kind, and similar).
	InvalidEnum
	// SingleThreadedRuntime reports that an async client was constructed
	// with GOMAXPROCS(0) == 1 without explicitly opting in.
	SingleThreadedRuntime
	// UnavailableProvider reports a connection-info fallback provider that
	// produced no usable address.
	UnavailableProvider
)

//nolint:cyclop
func (k ErrorKind) String() string {
	switch k {
	case ConnectionDown:
		return "connection_down"
	case InvalidConnectionInfo:
		return "invalid_connection_info"
	case InvalidPoolSize:
		return "invalid_pool_size"
	case EmptyConnection:
		return "empty_connection"
	case SchemaUnknownId:
		return "schema_unknown_id"
	case UnknownType:
		return "unknown_type"
	case MalformedResponse:
		return "malformed_response"
	case ParsingString:
		return "parsing_string"
	case ParsingI64:
		return "parsing_i64"
	case ParsingF64:
		return "parsing_f64"
	case ParsingBool:
		return "parsing_bool"
	case ParsingArray:
		return "parsing_array"
	case ParsingMap:
		return "parsing_map"
	case ParsingNode:
		return "parsing_node"
	case ParsingEdge:
		return "parsing_edge"
	case ParsingPath:
		return "parsing_path"
	case ParsingPoint:
		return "parsing_point"
	case ParsingVec32:
		return "parsing_vec32"
	case ParsingConfigValue:
		return "parsing_config_value"
	case ParsingHeader:
		return "parsing_header"
	case InvalidEnum:
		return "invalid_enum"
	case SingleThreadedRuntime:
		return "single_threaded_runtime"
	case UnavailableProvider:
		return "unavailable_provider"
	default:
		return "unknown"
	}
}
