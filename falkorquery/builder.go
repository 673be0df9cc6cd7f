// Package falkorquery builds and dispatches GRAPH.* commands: composing
// the CYPHER parameter prelude, procedure-call sugar, and the
// --compact/timeout argument vector, then classifying the server's
// reply shape into a QueryResult.
package falkorquery

import (
	"sort"
	"strconv"
	"strings"
)

const (
	CommandQuery       = "GRAPH.QUERY"
	CommandQueryRO     = "GRAPH.QUERY_RO"
	CommandExplain     = "GRAPH.EXPLAIN"
	CommandProfile     = "GRAPH.PROFILE"
	CommandSlowlog     = "GRAPH.SLOWLOG"
	CommandConfig      = "GRAPH.CONFIG"
	CommandCopy        = "GRAPH.COPY"
	CommandDelete      = "GRAPH.DELETE"
	CommandList        = "GRAPH.LIST"
	CommandConstraint  = "GRAPH.CONSTRAINT"
	compactFlag        = "--compact"
	procedureParamName = "param"
)

// Builder accumulates a single query's text, parameters, read-only
// routing, and optional timeout, then assembles the argument vector
// GRAPH.QUERY[_RO] expects.
type Builder struct {
	graphName string
	readonly  bool
	query     string
	params    map[string]string
	timeoutMS int64
	hasTO     bool
}

// NewQuery starts a read-write query builder for graphName.
func NewQuery(graphName, query string) *Builder {
	return &Builder{graphName: graphName, query: query, params: map[string]string{}}
}

// NewReadOnlyQuery starts a GRAPH.QUERY_RO builder for graphName.
func NewReadOnlyQuery(graphName, query string) *Builder {
	return &Builder{graphName: graphName, query: query, readonly: true, params: map[string]string{}}
}

// WithParams attaches the CYPHER k=v prelude parameters. Values are
// spliced into the command string verbatim with no quoting or
// escaping, matching the server's protocol for this command family.
func (b *Builder) WithParams(params map[string]string) *Builder {
	for k, v := range params {
		b.params[k] = v
	}

	return b
}

// WithTimeout attaches a server-side timeout in milliseconds.
func (b *Builder) WithTimeout(ms int64) *Builder {
	b.timeoutMS = ms
	b.hasTO = true

	return b
}

// command returns GRAPH.QUERY or GRAPH.QUERY_RO depending on routing.
func (b *Builder) command() string {
	if b.readonly {
		return CommandQueryRO
	}

	return CommandQuery
}

// composedQuery prepends the CYPHER parameter prelude when params is
// non-empty. Keys are sorted so the composed string is deterministic
// across runs despite Go's randomized map iteration order.
func composedQuery(query string, params map[string]string) string {
	if len(params) == 0 {
		return query
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var prelude strings.Builder

	prelude.WriteString("CYPHER ")

	for _, k := range keys {
		prelude.WriteString(k)
		prelude.WriteByte('=')
		prelude.WriteString(params[k])
		prelude.WriteByte(' ')
	}

	return prelude.String() + query
}

// Args assembles the full command argument vector:
// <command> <graph_name> <composed_query> --compact ["timeout <ms>"].
func (b *Builder) Args() []any {
	args := []any{b.command(), b.graphName, composedQuery(b.query, b.params), compactFlag}

	if b.hasTO {
		args = append(args, "timeout "+strconv.FormatInt(b.timeoutMS, 10))
	}

	return args
}

// ProcedureBuilder composes the CALL proc($param0,...) [YIELD ...] sugar
// into a plain Builder, binding each positional arg to a synthetic
// paramN parameter so it rides the same CYPHER prelude as any other
// query parameter.
type ProcedureBuilder struct {
	graphName string
	readonly  bool
	procedure string
	args      []string
	yields    []string
}

// NewProcedureCall starts a procedure-call builder for graphName.
func NewProcedureCall(graphName, procedure string, readonly bool) *ProcedureBuilder {
	return &ProcedureBuilder{graphName: graphName, readonly: readonly, procedure: procedure}
}

// WithArgs sets the procedure's positional arguments.
func (p *ProcedureBuilder) WithArgs(args []string) *ProcedureBuilder {
	p.args = args

	return p
}

// WithYields sets the procedure's YIELD column list.
func (p *ProcedureBuilder) WithYields(yields []string) *ProcedureBuilder {
	p.yields = yields

	return p
}

// Build resolves the procedure-call sugar into a Builder carrying the
// generated "CALL proc($param0,...) [YIELD ...]" text and its
// synthetic parameter map.
func (p *ProcedureBuilder) Build() *Builder {
	params := make(map[string]string, len(p.args))
	boundArgs := make([]string, len(p.args))

	for i, arg := range p.args {
		name := procedureParamName + strconv.Itoa(i)
		params[name] = arg
		boundArgs[i] = "$" + name
	}

	query := "CALL " + p.procedure + "(" + strings.Join(boundArgs, ",") + ")"

	if len(p.yields) > 0 {
		query += " YIELD " + strings.Join(p.yields, ",")
	}

	b := &Builder{graphName: p.graphName, readonly: p.readonly, query: query, params: params}

	return b
}
