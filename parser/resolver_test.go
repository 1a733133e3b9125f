package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openparity/openparity/parityerrors"
)

func resolverDoc(t *testing.T) *Document {
	t.Helper()
	result, err := New().ParseBytes([]byte(minimalJSON))
	require.NoError(t, err)
	return result.Document
}

func TestResolveRef(t *testing.T) {
	doc := resolverDoc(t)

	t.Run("empty ref resolves to nothing", func(t *testing.T) {
		node, err := doc.ResolveRef("")
		require.NoError(t, err)
		assert.Nil(t, node)
	})

	t.Run("root ref resolves to the document", func(t *testing.T) {
		node, err := doc.ResolveRef("#/")
		require.NoError(t, err)
		assert.Equal(t, doc.Raw(), node)
	})

	t.Run("schema ref resolves to the named subtree", func(t *testing.T) {
		node, err := doc.ResolveRef("#/components/schemas/FlowCreate")
		require.NoError(t, err)

		subtree, ok := node.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "object", subtree["type"])
	})

	t.Run("missing segment fails with the offending key", func(t *testing.T) {
		_, err := doc.ResolveRef("#/components/schemas/NotThere")
		require.Error(t, err)

		var lookupErr *parityerrors.LookupError
		require.True(t, errors.As(err, &lookupErr))
		assert.Equal(t, "NotThere", lookupErr.MissingKey)
		assert.True(t, errors.Is(err, parityerrors.ErrLookup))
	})

	t.Run("array index resolves", func(t *testing.T) {
		node, err := doc.ResolveRef("#/components/schemas/FlowCreate/required/0")
		require.NoError(t, err)
		assert.Equal(t, "name", node)
	})

	t.Run("out of range array index fails", func(t *testing.T) {
		_, err := doc.ResolveRef("#/components/schemas/FlowCreate/required/5")
		assert.True(t, errors.Is(err, parityerrors.ErrLookup))
	})

	t.Run("traversal into a scalar fails", func(t *testing.T) {
		_, err := doc.ResolveRef("#/info/version/extra")
		assert.True(t, errors.Is(err, parityerrors.ErrLookup))
	})
}

func TestResolveSchemaRef(t *testing.T) {
	doc := resolverDoc(t)

	schema, err := doc.ResolveSchemaRef("#/components/schemas/FlowCreate")
	require.NoError(t, err)
	require.NotNil(t, schema)
	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"name"}, schema.Required)
	assert.Contains(t, schema.Properties, "name")

	schema, err = doc.ResolveSchemaRef("")
	require.NoError(t, err)
	assert.Nil(t, schema)

	_, err = doc.ResolveSchemaRef("#/components/schemas/NotThere")
	assert.True(t, errors.Is(err, parityerrors.ErrLookup))
}

func TestUnescapeJSONPointer(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"a~1b", "a/b"},
		{"a~0b", "a~b"},
		{"~01", "~1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, unescapeJSONPointer(tt.input))
	}
}
