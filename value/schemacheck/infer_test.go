package schemacheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.confplan.dev/vplan/value"
	"go.confplan.dev/vplan/value/schemacheck"
)

func TestInferScalars(t *testing.T) {
	assert.Equal(t, "boolean", schemacheck.Infer(value.Bool(true)).Type)
	assert.Equal(t, "integer", schemacheck.Infer(value.Int(1)).Type)
	assert.Equal(t, "number", schemacheck.Infer(value.Float(1.5)).Type)
	assert.Equal(t, "number", schemacheck.Infer(value.NewUnit(1024, 1, "Ki")).Type)
	assert.Equal(t, "string", schemacheck.Infer(value.Str("x")).Type)
}

func TestInferListWidensItemType(t *testing.T) {
	l := &value.List{}
	l.Append(value.Int(1))
	l.Append(value.Float(2.5))

	s := schemacheck.Infer(value.NewList(l))
	assert.Equal(t, "array", s.Type)
	assert.Equal(t, "number", s.Items.Type)
}

func TestInferConfigProperties(t *testing.T) {
	d := &value.Dict{}
	d.Upsert("name", value.Str("app"))
	d.Upsert("replicas", value.Int(3))

	s := schemacheck.Infer(value.NewDict(d))
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, []string{"name", "replicas"}, s.PropertyOrder)
	assert.Equal(t, "string", s.Properties["name"].Type)
	assert.Equal(t, "integer", s.Properties["replicas"].Type)
}

func TestInferFuncIsUnconstrained(t *testing.T) {
	s := schemacheck.Infer(value.NewFunc("f"))
	assert.Equal(t, "", s.Type)
	assert.Nil(t, s.Properties)
}
