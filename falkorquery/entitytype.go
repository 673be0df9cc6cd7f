package falkorquery

import (
	"strings"

	"github.com/falkordb/falkordb-go/falkorerrors"
)

// EntityType distinguishes a node-scoped from an edge-scoped schema
// object (index, constraint).
type EntityType uint8

const (
	EntityTypeNode EntityType = iota
	EntityTypeRelationship
)

func (e EntityType) String() string {
	if e == EntityTypeRelationship {
		return "RELATIONSHIP"
	}

	return "NODE"
}

// ParseEntityType converts a server-reported entity-type string,
// case-insensitively, to an EntityType.
func ParseEntityType(s string) (EntityType, falkorerrors.Error) {
	switch strings.ToUpper(s) {
	case "NODE":
		return EntityTypeNode, nil
	case "RELATIONSHIP", "EDGE":
		return EntityTypeRelationship, nil
	default:
		return 0, falkorerrors.FromString(falkorerrors.InvalidEnum, "unknown entity type "+s)
	}
}
