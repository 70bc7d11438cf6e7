package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.confplan.dev/vplan/value/decode"
)

func TestYAMLPreservesKeyOrder(t *testing.T) {
	v, err := decode.YAML([]byte("b: 2\na: 1\n"))
	require.NoError(t, err)
	require.True(t, v.IsDict())
	assert.Equal(t, []string{"b", "a"}, v.Dict().Keys())
}

func TestYAMLScalarTypes(t *testing.T) {
	v, err := decode.YAML([]byte("n: 42\nf: 1.5\ns: hello\nb: true\nz: null\n"))
	require.NoError(t, err)

	n, _ := v.Dict().Get("n")
	assert.Equal(t, int64(42), n.Int())

	f, _ := v.Dict().Get("f")
	assert.InDelta(t, 1.5, f.Float(), 0.0001)

	s, _ := v.Dict().Get("s")
	assert.Equal(t, "hello", s.Str())

	b, _ := v.Dict().Get("b")
	assert.True(t, b.Bool())

	z, _ := v.Dict().Get("z")
	assert.True(t, z.IsNone())
}

func TestYAMLNestedSequenceAndMapping(t *testing.T) {
	v, err := decode.YAML([]byte("items:\n  - name: a\n  - name: b\n"))
	require.NoError(t, err)

	items, ok := v.Dict().Get("items")
	require.True(t, ok)
	require.True(t, items.IsList())
	assert.Equal(t, 2, items.List().Len())

	first, ok := items.List().Index(0).Dict().Get("name")
	require.True(t, ok)
	assert.Equal(t, "a", first.Str())
}

func TestYAMLMergeKey(t *testing.T) {
	src := "base: &base\n  a: 1\n  b: 2\nderived:\n  <<: *base\n  b: 3\n"

	v, err := decode.YAML([]byte(src))
	require.NoError(t, err)

	derived, ok := v.Dict().Get("derived")
	require.True(t, ok)

	a, ok := derived.Dict().Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), a.Int())

	b, ok := derived.Dict().Get("b")
	require.True(t, ok)
	assert.Equal(t, int64(3), b.Int(), "explicit key wins over merged key")
}

func TestYAMLEmptyDocumentDecodesUndefined(t *testing.T) {
	v, err := decode.YAML([]byte(""))
	require.NoError(t, err)
	assert.True(t, v.IsUndefined())
}

func TestYAMLAllDecodesEachDocument(t *testing.T) {
	docs, err := decode.YAMLAll([]byte("a: 1\n---\nb: 2\n"))
	require.NoError(t, err)
	require.Len(t, docs, 2)

	a, _ := docs[0].Dict().Get("a")
	assert.Equal(t, int64(1), a.Int())

	b, _ := docs[1].Dict().Get("b")
	assert.Equal(t, int64(2), b.Int())
}

func TestYAMLInvalidSyntaxReturnsWrappedError(t *testing.T) {
	_, err := decode.YAML([]byte("a: [1, 2\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, decode.ErrInvalidYAML)
}
