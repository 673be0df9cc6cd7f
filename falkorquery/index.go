package falkorquery

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/falkordb/falkordb-go/falkorerrors"
	"github.com/falkordb/falkordb-go/falkorschema"
	"github.com/falkordb/falkordb-go/falkorvalue"
)

const indexRowLen = 8

// IndexType is the kind of index structure backing a field.
type IndexType uint8

const (
	IndexTypeRange IndexType = iota
	IndexTypeVector
	IndexTypeFulltext
)

func (t IndexType) String() string {
	switch t {
	case IndexTypeVector:
		return "VECTOR"
	case IndexTypeFulltext:
		return "FULLTEXT"
	default:
		return "RANGE"
	}
}

// cypherPrefix is the token prepended to "INDEX" in a CREATE/DROP
// statement; Range has none.
func (t IndexType) cypherPrefix() string {
	switch t {
	case IndexTypeVector:
		return "VECTOR "
	case IndexTypeFulltext:
		return "FULLTEXT "
	default:
		return ""
	}
}

// ParseIndexType converts a server-reported index-type string,
// case-insensitively, to an IndexType.
func ParseIndexType(s string) (IndexType, falkorerrors.Error) {
	switch strings.ToUpper(s) {
	case "RANGE":
		return IndexTypeRange, nil
	case "VECTOR":
		return IndexTypeVector, nil
	case "FULLTEXT":
		return IndexTypeFulltext, nil
	default:
		return 0, falkorerrors.FromString(falkorerrors.InvalidEnum, "unknown index type "+s)
	}
}

// IndexStatus reports whether an index is ready to serve queries.
type IndexStatus uint8

const (
	IndexStatusActive IndexStatus = iota
	IndexStatusPending
)

// ParseIndexStatus converts the server's status string, case
// insensitively: OPERATIONAL maps to Active, UNDER CONSTRUCTION to
// Pending.
func ParseIndexStatus(s string) (IndexStatus, falkorerrors.Error) {
	switch strings.ToUpper(s) {
	case "OPERATIONAL":
		return IndexStatusActive, nil
	case "UNDER CONSTRUCTION":
		return IndexStatusPending, nil
	default:
		return 0, falkorerrors.FromString(falkorerrors.InvalidEnum, "unknown index status "+s)
	}
}

// Index describes one index registered on the graph, as reported by
// DB.INDEXES.
type Index struct {
	EntityType EntityType
	Status     IndexStatus
	Label      string
	Fields     []string
	FieldTypes map[string][]IndexType
	Language   string
	Stopwords  []string
	Info       *falkorvalue.Map
}

func stringSlice(v falkorvalue.Value) ([]string, falkorerrors.Error) {
	arr, err := falkorvalue.IntoArray(v)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(arr))

	for _, elem := range arr {
		s, ok := falkorvalue.AsString(elem)
		if !ok {
			return nil, falkorerrors.FromString(falkorerrors.ParsingString, "expected array of strings")
		}

		out = append(out, s)
	}

	return out, nil
}

func indexFieldTypes(v falkorvalue.Value) (map[string][]IndexType, falkorerrors.Error) {
	m, err := falkorvalue.IntoMap(v)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]IndexType, m.Len())

	for _, entry := range m.Entries() {
		types, typesErr := stringSlice(entry.Value)
		if typesErr != nil {
			return nil, typesErr
		}

		parsed := make([]IndexType, 0, len(types))

		for _, t := range types {
			it, parseErr := ParseIndexType(t)
			if parseErr != nil {
				return nil, parseErr
			}

			parsed = append(parsed, it)
		}

		out[entry.Key] = parsed
	}

	return out, nil
}

func decodeIndex(row falkorvalue.Value) (Index, falkorerrors.Error) {
	cells, err := falkorvalue.IntoArray(row)
	if err != nil || len(cells) != indexRowLen {
		return Index{}, falkorerrors.FromString(
			falkorerrors.MalformedResponse,
			"index row must have 8 elements",
		)
	}

	label, ok := falkorvalue.AsString(cells[0])
	if !ok {
		return Index{}, falkorerrors.FromString(falkorerrors.ParsingString, "index label is not a string")
	}

	fields, err := stringSlice(cells[1])
	if err != nil {
		return Index{}, err
	}

	fieldTypes, err := indexFieldTypes(cells[2])
	if err != nil {
		return Index{}, err
	}

	language, ok := falkorvalue.AsString(cells[3])
	if !ok {
		return Index{}, falkorerrors.FromString(falkorerrors.ParsingString, "index language is not a string")
	}

	stopwords, err := stringSlice(cells[4])
	if err != nil {
		return Index{}, err
	}

	entityTypeStr, ok := falkorvalue.AsString(cells[5])
	if !ok {
		return Index{}, falkorerrors.FromString(falkorerrors.ParsingString, "index entity_type is not a string")
	}

	entityType, err := ParseEntityType(entityTypeStr)
	if err != nil {
		return Index{}, err
	}

	statusStr, ok := falkorvalue.AsString(cells[6])
	if !ok {
		return Index{}, falkorerrors.FromString(falkorerrors.ParsingString, "index status is not a string")
	}

	status, err := ParseIndexStatus(statusStr)
	if err != nil {
		return Index{}, err
	}

	info, ok := falkorvalue.AsMap(cells[7])
	if !ok {
		return Index{}, falkorerrors.FromString(falkorerrors.ParsingMap, "index info is not a map")
	}

	return Index{
		EntityType: entityType,
		Status:     status,
		Label:      label,
		Fields:     fields,
		FieldTypes: fieldTypes,
		Language:   language,
		Stopwords:  stopwords,
		Info:       info,
	}, nil
}

// entityPattern renders the Cypher pattern an index/constraint
// statement anchors on: (l:Label) for nodes, ()-[l:Label]->() for
// relationships.
func entityPattern(entity EntityType, label, alias string) string {
	if entity == EntityTypeRelationship {
		return "()-[" + alias + ":" + label + "]->()"
	}

	return "(" + alias + ":" + label + ")"
}

func prefixedProperties(alias string, props []string) string {
	prefixed := make([]string, len(props))
	for i, p := range props {
		prefixed[i] = alias + "." + p
	}

	return strings.Join(prefixed, ", ")
}

// CreateIndexQuery builds the Cypher statement creating an index of
// kind on entity's label, covering props.
func CreateIndexQuery(graphName string, kind IndexType, entity EntityType, label string, props []string) *Builder {
	query := "CREATE " + kind.cypherPrefix() + "INDEX FOR " +
		entityPattern(entity, label, "l") + " ON (" + prefixedProperties("l", props) + ")"

	return NewQuery(graphName, query)
}

// DropIndexQuery builds the Cypher statement dropping an index of
// kind on entity's label, covering props.
func DropIndexQuery(graphName string, kind IndexType, entity EntityType, label string, props []string) *Builder {
	query := "DROP " + kind.cypherPrefix() + "INDEX FOR " +
		entityPattern(entity, label, "e") + " ON (" + prefixedProperties("e", props) + ")"

	return NewQuery(graphName, query)
}

// RunListIndices calls DB.INDEXES as a read-only procedure and decodes
// its rows into Index records.
func RunListIndices(ctx context.Context, conn *redis.Conn, cache *falkorschema.Cache, graphName string) ([]Index, falkorerrors.Error) {
	result, err := Run(ctx, conn, cache, NewProcedureCall(graphName, "DB.INDEXES", true).Build())
	if err != nil {
		return nil, err
	}

	out := make([]Index, 0, result.Data.Len())

	for {
		row, ok := result.Data.Next(ctx)
		if !ok {
			break
		}

		if len(row) == 0 {
			continue
		}

		if unparseable, isUnparseable := row[0].(falkorvalue.Unparseable); isUnparseable {
			return nil, unparseable.Err.Wrap("decode index row")
		}

		idx, idxErr := decodeIndex(row[0])
		if idxErr != nil {
			return nil, idxErr
		}

		out = append(out, idx)
	}

	return out, nil
}
