package falkorquery

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/falkordb/falkordb-go/falkorerrors"
)

// ExecutionPlan is the decoded output of GRAPH.EXPLAIN / GRAPH.PROFILE:
// one trimmed line per planner step.
type ExecutionPlan struct {
	Plan []string
}

// Text joins Plan back into the multi-line form the server originally
// printed it as.
func (e ExecutionPlan) Text() string {
	return strings.Join(e.Plan, "\n")
}

func parseExecutionPlan(raw any) (ExecutionPlan, falkorerrors.Error) {
	elems, err := asOuterArray(raw)
	if err != nil {
		return ExecutionPlan{}, err.Wrap("decode execution plan")
	}

	steps := make([]string, 0, len(elems))

	for _, elem := range elems {
		line, ok := elem.(string)
		if !ok {
			return ExecutionPlan{}, falkorerrors.FromString(
				falkorerrors.MalformedResponse,
				"execution plan line is not a string",
			)
		}

		steps = append(steps, strings.TrimSpace(line))
	}

	return ExecutionPlan{Plan: steps}, nil
}

// RunExplain issues GRAPH.EXPLAIN for query against graphName. Unlike
// GRAPH.QUERY[_RO], EXPLAIN/PROFILE never send --compact: the reply is
// already a flat array of human-readable strings.
func RunExplain(ctx context.Context, conn *redis.Conn, graphName, query string) (ExecutionPlan, falkorerrors.Error) {
	return runPlanCommand(ctx, conn, CommandExplain, graphName, query)
}

// RunProfile issues GRAPH.PROFILE for query against graphName.
func RunProfile(ctx context.Context, conn *redis.Conn, graphName, query string) (ExecutionPlan, falkorerrors.Error) {
	return runPlanCommand(ctx, conn, CommandProfile, graphName, query)
}

func runPlanCommand(ctx context.Context, conn *redis.Conn, command, graphName, query string) (ExecutionPlan, falkorerrors.Error) {
	raw, err := doCommand(ctx, conn, []any{command, graphName, query})
	if err != nil {
		return ExecutionPlan{}, err
	}

	return parseExecutionPlan(raw)
}
