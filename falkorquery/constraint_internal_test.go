package falkorquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falkordb/falkordb-go/falkorvalue"
)

func TestDecodeConstraint_Full(t *testing.T) {
	row := falkorvalue.Array{
		falkorvalue.String("UNIQUE"),
		falkorvalue.String("Person"),
		falkorvalue.Array{falkorvalue.String("email")},
		falkorvalue.String("NODE"),
		falkorvalue.String("OPERATIONAL"),
	}

	c, err := decodeConstraint(row)
	require.Nil(t, err)
	assert.Equal(t, ConstraintUnique, c.Kind)
	assert.Equal(t, "Person", c.Label)
	assert.Equal(t, []string{"email"}, c.Properties)
	assert.Equal(t, EntityTypeNode, c.EntityType)
	assert.Equal(t, ConstraintStatusActive, c.Status)
}

func TestDecodeConstraint_FailedStatus(t *testing.T) {
	row := falkorvalue.Array{
		falkorvalue.String("MANDATORY"),
		falkorvalue.String("Person"),
		falkorvalue.Array{falkorvalue.String("email")},
		falkorvalue.String("NODE"),
		falkorvalue.String("FAILED"),
	}

	c, err := decodeConstraint(row)
	require.Nil(t, err)
	assert.Equal(t, ConstraintMandatory, c.Kind)
	assert.Equal(t, ConstraintStatusFailed, c.Status)
}

func TestConstraintCommandArgs_Shape(t *testing.T) {
	args := constraintCommandArgs("CREATE", "social", ConstraintMandatory, EntityTypeNode, "Person", []string{"email", "name"})

	assert.Equal(t, []any{
		CommandConstraint, "CREATE", "social", "MANDATORY", "NODE", "Person", "PROPERTIES", "2", "email", "name",
	}, args)
}
