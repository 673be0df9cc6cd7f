package falkorquery

import (
	"context"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/falkordb/falkordb-go/falkorerrors"
	"github.com/falkordb/falkordb-go/falkorschema"
	"github.com/falkordb/falkordb-go/falkorvalue"
)

const constraintRowLen = 5

// ConstraintKind is the restriction a constraint enforces.
type ConstraintKind uint8

const (
	ConstraintUnique ConstraintKind = iota
	ConstraintMandatory
)

func (k ConstraintKind) String() string {
	if k == ConstraintMandatory {
		return "MANDATORY"
	}

	return "UNIQUE"
}

func parseConstraintKind(s string) (ConstraintKind, falkorerrors.Error) {
	switch strings.ToUpper(s) {
	case "UNIQUE":
		return ConstraintUnique, nil
	case "MANDATORY":
		return ConstraintMandatory, nil
	default:
		return 0, falkorerrors.FromString(falkorerrors.InvalidEnum, "unknown constraint kind "+s)
	}
}

// ConstraintStatus reports whether a constraint is fully enforced.
type ConstraintStatus uint8

const (
	ConstraintStatusActive ConstraintStatus = iota
	ConstraintStatusPending
	ConstraintStatusFailed
)

func parseConstraintStatus(s string) (ConstraintStatus, falkorerrors.Error) {
	switch strings.ToUpper(s) {
	case "OPERATIONAL":
		return ConstraintStatusActive, nil
	case "UNDER CONSTRUCTION":
		return ConstraintStatusPending, nil
	case "FAILED":
		return ConstraintStatusFailed, nil
	default:
		return 0, falkorerrors.FromString(falkorerrors.InvalidEnum, "unknown constraint status "+s)
	}
}

// Constraint describes one constraint registered on the graph, as
// reported by DB.CONSTRAINTS.
type Constraint struct {
	Kind       ConstraintKind
	Label      string
	Properties []string
	EntityType EntityType
	Status     ConstraintStatus
}

func decodeConstraint(row falkorvalue.Value) (Constraint, falkorerrors.Error) {
	cells, err := falkorvalue.IntoArray(row)
	if err != nil || len(cells) != constraintRowLen {
		return Constraint{}, falkorerrors.FromString(
			falkorerrors.MalformedResponse,
			"constraint row must have 5 elements",
		)
	}

	kindStr, ok := falkorvalue.AsString(cells[0])
	if !ok {
		return Constraint{}, falkorerrors.FromString(falkorerrors.ParsingString, "constraint kind is not a string")
	}

	kind, err := parseConstraintKind(kindStr)
	if err != nil {
		return Constraint{}, err
	}

	label, ok := falkorvalue.AsString(cells[1])
	if !ok {
		return Constraint{}, falkorerrors.FromString(falkorerrors.ParsingString, "constraint label is not a string")
	}

	properties, err := stringSlice(cells[2])
	if err != nil {
		return Constraint{}, err
	}

	entityTypeStr, ok := falkorvalue.AsString(cells[3])
	if !ok {
		return Constraint{}, falkorerrors.FromString(falkorerrors.ParsingString, "constraint entity_type is not a string")
	}

	entityType, err := ParseEntityType(entityTypeStr)
	if err != nil {
		return Constraint{}, err
	}

	statusStr, ok := falkorvalue.AsString(cells[4])
	if !ok {
		return Constraint{}, falkorerrors.FromString(falkorerrors.ParsingString, "constraint status is not a string")
	}

	status, err := parseConstraintStatus(statusStr)
	if err != nil {
		return Constraint{}, err
	}

	return Constraint{
		Kind:       kind,
		Label:      label,
		Properties: properties,
		EntityType: entityType,
		Status:     status,
	}, nil
}

// constraintCommandArgs assembles the GRAPH.CONSTRAINT CREATE|DROP
// argument vector: GRAPH.CONSTRAINT, action, graph name, kind,
// entity_type, label, PROPERTIES, n, p1, p2, ...
func constraintCommandArgs(action string, graphName string, kind ConstraintKind, entity EntityType, label string, props []string) []any {
	args := []any{CommandConstraint, action, graphName, kind.String(), entity.String(), label, "PROPERTIES", strconv.Itoa(len(props))}

	for _, p := range props {
		args = append(args, p)
	}

	return args
}

// RunCreateMandatoryConstraint issues GRAPH.CONSTRAINT CREATE MANDATORY.
func RunCreateMandatoryConstraint(ctx context.Context, conn *redis.Conn, graphName string, entity EntityType, label string, props []string) falkorerrors.Error {
	_, err := doCommand(ctx, conn, constraintCommandArgs("CREATE", graphName, ConstraintMandatory, entity, label, props))

	return err
}

// RunCreateUniqueConstraint first creates a supporting range index
// (the server requires one to back a UNIQUE constraint), then issues
// GRAPH.CONSTRAINT CREATE UNIQUE.
func RunCreateUniqueConstraint(ctx context.Context, conn *redis.Conn, cache *falkorschema.Cache, graphName string, entity EntityType, label string, props []string) falkorerrors.Error {
	if _, err := Run(ctx, conn, cache, CreateIndexQuery(graphName, IndexTypeRange, entity, label, props)); err != nil {
		return err.Wrap("create supporting index for unique constraint")
	}

	_, err := doCommand(ctx, conn, constraintCommandArgs("CREATE", graphName, ConstraintUnique, entity, label, props))

	return err
}

// RunDropConstraint issues GRAPH.CONSTRAINT DROP.
func RunDropConstraint(ctx context.Context, conn *redis.Conn, graphName string, kind ConstraintKind, entity EntityType, label string, props []string) falkorerrors.Error {
	_, err := doCommand(ctx, conn, constraintCommandArgs("DROP", graphName, kind, entity, label, props))

	return err
}

// RunListConstraints calls DB.CONSTRAINTS as a read-only procedure and
// decodes its rows into Constraint records.
func RunListConstraints(ctx context.Context, conn *redis.Conn, cache *falkorschema.Cache, graphName string) ([]Constraint, falkorerrors.Error) {
	result, err := Run(ctx, conn, cache, NewProcedureCall(graphName, "DB.CONSTRAINTS", true).Build())
	if err != nil {
		return nil, err
	}

	out := make([]Constraint, 0, result.Data.Len())

	for {
		row, ok := result.Data.Next(ctx)
		if !ok {
			break
		}

		if len(row) == 0 {
			continue
		}

		if unparseable, isUnparseable := row[0].(falkorvalue.Unparseable); isUnparseable {
			return nil, unparseable.Err.Wrap("decode constraint row")
		}

		c, cErr := decodeConstraint(row[0])
		if cErr != nil {
			return nil, cErr
		}

		out = append(out, c)
	}

	return out, nil
}
