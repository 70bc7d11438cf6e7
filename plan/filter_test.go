package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.confplan.dev/vplan/plan"
	"go.confplan.dev/vplan/value"
)

func dict(pairs ...any) *value.Dict {
	d := &value.Dict{}
	for i := 0; i < len(pairs); i += 2 {
		d.Upsert(pairs[i].(string), pairs[i+1].(value.Value))
	}

	return d
}

func schemaWith(settings *value.Dict, config *value.Dict) value.Value {
	if settings != nil {
		config.Upsert(value.SettingsKey, value.NewDict(settings))
	}

	return value.NewSchema(&value.Schema{Name: "S", Config: config})
}

// S1: a list of plain dicts plans to one document per dict.
func TestFilterResultsS1ListOfDicts(t *testing.T) {
	l := &value.List{}
	l.Append(value.NewDict(dict("k1", value.Int(1))))
	l.Append(value.NewDict(dict("k2", value.Int(2))))
	l.Append(value.NewDict(dict("k3", value.Int(3))))

	ctx := plan.NewContext(plan.Config{})
	results := plan.FilterResults(ctx, value.NewList(l), plan.Options{})

	require.Len(t, results, 3)
	v, ok := results[0].Dict().Get("k1")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.Int())
}

// S3: undefined, private, and ordinary keys.
func TestFilterResultsS3DropsUndefinedAndPrivate(t *testing.T) {
	d := dict("a", value.Undefined(), "_b", value.Int(2), "c", value.Int(3))

	ctx := plan.NewContext(plan.Config{})
	results := plan.FilterResults(ctx, value.NewDict(d), plan.Options{})

	require.Len(t, results, 1)
	assert.Equal(t, []string{"c"}, results[0].Dict().Keys())
}

// S4: a standalone schema promotes to a second document.
func TestFilterResultsS4StandaloneSchema(t *testing.T) {
	settings := dict(value.OutputTypeKey, value.Str(value.OutputStandalone))
	inner := schemaWith(settings, dict("n", value.Int(1)))

	root := dict("x", inner, "y", value.Int(2))

	ctx := plan.NewContext(plan.Config{})
	results := plan.FilterResults(ctx, value.NewDict(root), plan.Options{})

	require.Len(t, results, 2)
	assert.False(t, results[0].Dict().Has("x"))
	yVal, _ := results[0].Dict().Get("y")
	assert.Equal(t, int64(2), yVal.Int())

	nVal, ok := results[1].Dict().Get("n")
	require.True(t, ok)
	assert.Equal(t, int64(1), nVal.Int())
}

// S5: an "ignore" schema wrapping a standalone schema contributes nothing
// inline, but its derived standalone document is promoted.
func TestFilterResultsS5IgnoreSchemaPromotesDerivedStandalone(t *testing.T) {
	innerSettings := dict(value.OutputTypeKey, value.Str(value.OutputStandalone))
	inner := schemaWith(innerSettings, dict("n", value.Int(1)))

	outerSettings := dict(value.OutputTypeKey, value.Str(value.OutputIgnore))
	outer := schemaWith(outerSettings, dict("inner", inner))

	root := dict("x", outer)

	ctx := plan.NewContext(plan.Config{})
	results := plan.FilterResults(ctx, value.NewDict(root), plan.Options{})

	require.Len(t, results, 2)
	assert.Equal(t, 0, results[0].Dict().Len())

	nVal, ok := results[1].Dict().Get("n")
	require.True(t, ok)
	assert.Equal(t, int64(1), nVal.Int())
}

// S6: a list mixing a standalone schema and a plain dict.
func TestFilterResultsS6MixedList(t *testing.T) {
	settings := dict(value.OutputTypeKey, value.Str(value.OutputStandalone))
	schemaItem := schemaWith(settings, dict("n", value.Int(1)))

	l := &value.List{}
	l.Append(schemaItem)
	l.Append(value.NewDict(dict("m", value.Int(2))))

	root := dict("xs", value.NewList(l))

	ctx := plan.NewContext(plan.Config{})
	results := plan.FilterResults(ctx, value.NewDict(root), plan.Options{})

	require.Len(t, results, 2)

	xs, ok := results[0].Dict().Get("xs")
	require.True(t, ok)
	require.Equal(t, 1, xs.List().Len())

	mVal, ok := xs.List().Index(0).Dict().Get("m")
	require.True(t, ok)
	assert.Equal(t, int64(2), mVal.Int())

	nVal, ok := results[1].Dict().Get("n")
	require.True(t, ok)
	assert.Equal(t, int64(1), nVal.Int())
}

// A list of bare scalars takes the "$"-wrapping path in filterListKey
// (case (b).4 of the planning algorithm) for every item, since none of them
// are dicts, schemas, or dropped none values.
func TestFilterResultsPlainScalarListRoundTrips(t *testing.T) {
	l := &value.List{}
	l.Append(value.Int(1))
	l.Append(value.Int(2))
	l.Append(value.Int(3))

	root := dict("xs", value.NewList(l))

	ctx := plan.NewContext(plan.Config{})
	results := plan.FilterResults(ctx, value.NewDict(root), plan.Options{})

	require.Len(t, results, 1)

	xs, ok := results[0].Dict().Get("xs")
	require.True(t, ok)
	require.Equal(t, 3, xs.List().Len())

	assert.Equal(t, int64(1), xs.List().Index(0).Int())
	assert.Equal(t, int64(2), xs.List().Index(1).Int())
	assert.Equal(t, int64(3), xs.List().Index(2).Int())
}

func TestFilterResultsEmptyListBoundary(t *testing.T) {
	root := dict("xs", value.NewList(&value.List{}))

	ctx := plan.NewContext(plan.Config{})
	results := plan.FilterResults(ctx, value.NewDict(root), plan.Options{})

	require.Len(t, results, 1)
	xs, ok := results[0].Dict().Get("xs")
	require.True(t, ok)
	assert.True(t, xs.IsList())
	assert.Equal(t, 0, xs.List().Len())
}

func TestFilterResultsEmptyListSuppressedByDisableEmptyList(t *testing.T) {
	root := dict("xs", value.NewList(&value.List{}))

	ctx := plan.NewContext(plan.Config{DisableEmptyList: true})
	results := plan.FilterResults(ctx, value.NewDict(root), plan.Options{})

	require.Len(t, results, 1)
	assert.False(t, results[0].Dict().Has("xs"))
}

func TestFilterResultsNoneDroppedWhenDisableNone(t *testing.T) {
	root := dict("a", value.None(), "b", value.Int(1))

	ctx := plan.NewContext(plan.Config{DisableNone: true})
	results := plan.FilterResults(ctx, value.NewDict(root), plan.Options{})

	require.Len(t, results, 1)
	assert.False(t, results[0].Dict().Has("a"))
}

// A schema whose entire payload is filtered away still occupies its key as
// an empty inline document: only a *standalone* instance's emptiness prunes
// it from the results sequence (see is_planned_empty), never an inline one.
func TestFilterResultsSchemaWhosePayloadFiltersEmptyStaysAsEmptyDict(t *testing.T) {
	inner := value.NewSchema(&value.Schema{Name: "S", Config: dict("_priv", value.Int(1))})
	root := dict("x", inner, "y", value.Int(2))

	ctx := plan.NewContext(plan.Config{})
	results := plan.FilterResults(ctx, value.NewDict(root), plan.Options{})

	require.Len(t, results, 1)

	x, ok := results[0].Dict().Get("x")
	require.True(t, ok)
	assert.Equal(t, 0, x.Dict().Len())

	yVal, ok := results[0].Dict().Get("y")
	require.True(t, ok)
	assert.Equal(t, int64(2), yVal.Int())
}

// An "ignore" schema with no derived standalone documents of its own
// produces nothing at all: its own inline projection (filtered[0]) is
// unconditionally dropped by the ignore rule, and there is nothing left in
// filtered[1:] to promote.
func TestFilterResultsIgnoreSchemaWithNoDerivedStandaloneProducesNothing(t *testing.T) {
	settings := dict(value.OutputTypeKey, value.Str(value.OutputIgnore))
	inner := schemaWith(settings, dict("n", value.Int(1)))
	root := dict("x", inner)

	ctx := plan.NewContext(plan.Config{})
	results := plan.FilterResults(ctx, value.NewDict(root), plan.Options{})

	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].Dict().Len())
}

func TestFilterResultsNonConfigReturnsEmptySequence(t *testing.T) {
	ctx := plan.NewContext(plan.Config{})
	assert.Empty(t, plan.FilterResults(ctx, value.Int(1), plan.Options{}))
	assert.Empty(t, plan.FilterResults(ctx, value.Undefined(), plan.Options{}))
}

func TestFilterResultsIsPure(t *testing.T) {
	root := dict("a", value.Int(1))
	rootVal := value.NewDict(root)
	before := rootVal.DeepCopy()

	ctx := plan.NewContext(plan.Config{})
	plan.FilterResults(ctx, rootVal, plan.Options{})

	assert.True(t, before.Equal(rootVal))
}

func TestFilterResultsIncludeSchemaTypePath(t *testing.T) {
	settings := dict(value.SchemaTypeKey, value.Str("pkg.App"))
	inner := schemaWith(settings, dict("n", value.Int(1)))
	root := dict("x", inner)

	ctx := plan.NewContext(plan.Config{})
	results := plan.FilterResults(ctx, value.NewDict(root), plan.Options{IncludeSchemaTypePath: true})

	require.Len(t, results, 1)

	x, ok := results[0].Dict().Get("x")
	require.True(t, ok)

	typ, ok := x.Dict().Get(value.TypeMetaAttr)
	require.True(t, ok)
	assert.Equal(t, "App", typ.Str())
}
