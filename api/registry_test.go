package api_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.confplan.dev/vplan/api"
	"go.confplan.dev/vplan/value"
)

func TestRegistryAllocGetFree(t *testing.T) {
	reg := api.NewRegistry()

	h := reg.Alloc(value.Int(42))

	v, ok := reg.Get(h)
	assert.True(t, ok)
	assert.Equal(t, int64(42), v.Int())

	reg.Free(h)

	_, ok = reg.Get(h)
	assert.False(t, ok)
}

func TestRegistryHandlesAreDistinct(t *testing.T) {
	reg := api.NewRegistry()

	h1 := reg.Alloc(value.Int(1))
	h2 := reg.Alloc(value.Int(2))

	assert.NotEqual(t, h1, h2)
}
