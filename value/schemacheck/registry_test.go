package schemacheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.confplan.dev/vplan/value"
	"go.confplan.dev/vplan/value/schemacheck"
)

func TestRegistryRecordUnionsAcrossInstances(t *testing.T) {
	r := schemacheck.NewRegistry()

	d1 := &value.Dict{}
	d1.Upsert("name", value.Str("a"))

	d2 := &value.Dict{}
	d2.Upsert("port", value.Int(8080))

	r.Record("App", schemacheck.Infer(value.NewDict(d1)))
	r.Record("App", schemacheck.Infer(value.NewDict(d2)))

	shape := r.Shape("App")
	assert.Contains(t, shape.Properties, "name")
	assert.Contains(t, shape.Properties, "port")
}

func TestRegistryIgnoresEmptyTypePath(t *testing.T) {
	r := schemacheck.NewRegistry()
	r.Record("", schemacheck.TrueSchema())

	assert.Empty(t, r.TypePaths())
}
