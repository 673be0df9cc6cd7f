package falkorquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExecutionPlan_TrimsAndJoins(t *testing.T) {
	raw := []any{"  Results  ", "    Project  "}

	plan, err := parseExecutionPlan(raw)
	require.Nil(t, err)
	assert.Equal(t, []string{"Results", "Project"}, plan.Plan)
	assert.Equal(t, "Results\nProject", plan.Text())
}

func TestParseExecutionPlan_NonStringFails(t *testing.T) {
	_, err := parseExecutionPlan([]any{42})
	require.NotNil(t, err)
}
