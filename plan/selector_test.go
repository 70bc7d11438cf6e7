package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.confplan.dev/vplan/plan"
	"go.confplan.dev/vplan/value"
)

// S2.
func TestFilterByPath(t *testing.T) {
	root := value.NewDict(dict("k1", value.Int(1)))

	single, err := plan.FilterByPath(root, []string{"k1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), single.Int())

	unchanged, err := plan.FilterByPath(root, nil)
	require.NoError(t, err)
	assert.True(t, unchanged.Equal(root))

	multi, err := plan.FilterByPath(root, []string{"k1", "k1"})
	require.NoError(t, err)
	require.True(t, multi.IsList())
	assert.Equal(t, 2, multi.List().Len())
	assert.Equal(t, int64(1), multi.List().Index(0).Int())
	assert.Equal(t, int64(1), multi.List().Index(1).Int())

	_, err = plan.FilterByPath(root, []string{"err"})
	assert.EqualError(t, err, "invalid path select operand err, value not found")
}

func TestFilterByPathOnNonConfigReturnsUnchanged(t *testing.T) {
	v, err := plan.FilterByPath(value.Int(1), []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int())
}
