package falkorquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/falkordb/falkordb-go/falkorquery"
)

func TestBuilder_NoParamsNoTimeout(t *testing.T) {
	args := falkorquery.NewQuery("social", "MATCH (n) RETURN n").Args()

	assert.Equal(t, []any{
		falkorquery.CommandQuery, "social", "MATCH (n) RETURN n", "--compact",
	}, args)
}

func TestBuilder_ReadOnlyUsesQueryRO(t *testing.T) {
	args := falkorquery.NewReadOnlyQuery("social", "MATCH (n) RETURN n").Args()

	assert.Equal(t, falkorquery.CommandQueryRO, args[0])
}

func TestBuilder_ParamsPreludeIsSortedAndSpaceSeparated(t *testing.T) {
	args := falkorquery.NewQuery("social", "MATCH (n) RETURN n").
		WithParams(map[string]string{"age": "30", "name": "Alice"}).
		Args()

	assert.Equal(t, "CYPHER age=30 name=Alice MATCH (n) RETURN n", args[2])
}

func TestBuilder_EmptyParamsProduceNoPrelude(t *testing.T) {
	args := falkorquery.NewQuery("social", "MATCH (n) RETURN n").WithParams(map[string]string{}).Args()

	assert.Equal(t, "MATCH (n) RETURN n", args[2])
}

func TestBuilder_TimeoutAppendsLiteralArg(t *testing.T) {
	args := falkorquery.NewQuery("social", "MATCH (n) RETURN n").WithTimeout(500).Args()

	assert.Equal(t, "timeout 500", args[len(args)-1])
}

func TestProcedureBuilder_NoArgsNoYields(t *testing.T) {
	args := falkorquery.NewProcedureCall("social", "DB.LABELS", true).Build().Args()

	assert.Equal(t, falkorquery.CommandQueryRO, args[0])
	assert.Equal(t, "CALL DB.LABELS()", args[2])
}

func TestProcedureBuilder_ArgsBoundToSyntheticParams(t *testing.T) {
	args := falkorquery.NewProcedureCall("social", "db.idx.fulltext.queryNodes", false).
		WithArgs([]string{"Person", "alice"}).
		Build().
		Args()

	assert.Equal(t, "CYPHER param0=Person param1=alice CALL db.idx.fulltext.queryNodes($param0,$param1)", args[2])
}

func TestProcedureBuilder_YieldsAppended(t *testing.T) {
	args := falkorquery.NewProcedureCall("social", "DB.INDEXES", true).
		WithYields([]string{"label", "status"}).
		Build().
		Args()

	assert.Equal(t, "CALL DB.INDEXES() YIELD label,status", args[2])
}
