package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.confplan.dev/vplan/value"
)

func TestGetByPath(t *testing.T) {
	settings := &value.Dict{}
	settings.Upsert(value.OutputTypeKey, value.Str(value.OutputStandalone))

	config := &value.Dict{}
	config.Upsert(value.SettingsKey, value.NewDict(settings))
	config.Upsert("n", value.Int(1))

	root := value.NewSchema(&value.Schema{Name: "S", Config: config})

	v, ok := root.GetByPath("settings.output_type")
	assert.True(t, ok)
	assert.Equal(t, value.OutputStandalone, v.Str())

	_, ok = root.GetByPath("settings.missing")
	assert.False(t, ok)

	_, ok = root.GetByPath("n.x")
	assert.False(t, ok, "traversing into a non-config value must fail")

	v, ok = root.GetByPath("")
	assert.True(t, ok)
	assert.True(t, v.IsSchema())
}
