package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	valz "github.com/soracane/valz"
	"github.com/soracane/valz/bridge"
	"github.com/soracane/valz/dsl"
)

func TestExport_String(t *testing.T) {
	doc, err := bridge.Export(dsl.String().Min(1).Max(10).Email(), bridge.Options{})
	require.NoError(t, err)
	require.Equal(t, "string", doc.Type)
	require.Equal(t, 1, *doc.MinLength)
	require.Equal(t, 10, *doc.MaxLength)
	require.Equal(t, "email", doc.Format)
}

func TestExport_Number(t *testing.T) {
	doc, err := bridge.Export(dsl.Number().Int().Min(0).Max(100), bridge.Options{})
	require.NoError(t, err)
	require.Equal(t, "integer", doc.Type)
	require.Equal(t, float64(0), *doc.Minimum)
	require.Equal(t, float64(100), *doc.Maximum)

	doc, err = bridge.Export(dsl.Number(), bridge.Options{})
	require.NoError(t, err)
	require.Equal(t, "number", doc.Type)
}

func TestExport_LiteralAndEnum(t *testing.T) {
	doc, err := bridge.Export(dsl.Literal("on"), bridge.Options{})
	require.NoError(t, err)
	require.NotNil(t, doc.Const)
	require.Equal(t, "on", *doc.Const)

	doc, err = bridge.Export(dsl.Enum("a", "b"), bridge.Options{})
	require.NoError(t, err)
	require.Equal(t, []any{"a", "b"}, doc.Enum)
}

func TestExport_Object(t *testing.T) {
	s := dsl.Object(
		dsl.Field{Name: "id", Schema: dsl.Number().Int()},
		dsl.Field{Name: "nick", Schema: dsl.Optional(dsl.String())},
		dsl.Field{Name: "role", Schema: dsl.Default(dsl.String(), "guest")},
	).Strict()

	doc, err := bridge.Export(s, bridge.Options{})
	require.NoError(t, err)
	require.Equal(t, "object", doc.Type)
	require.Len(t, doc.Properties, 3)

	// Optional and defaulted fields are not required; insertion order holds.
	require.Equal(t, []string{"id"}, doc.Required)
	require.Equal(t, "guest", doc.Properties["role"].Default)
	require.Equal(t, false, doc.AdditionalProperties)

	open, err := bridge.Export(s.Strip(), bridge.Options{})
	require.NoError(t, err)
	require.Equal(t, true, open.AdditionalProperties)
}

func TestExport_Array(t *testing.T) {
	doc, err := bridge.Export(dsl.Array(dsl.String()).Min(1).Max(5), bridge.Options{})
	require.NoError(t, err)
	require.Equal(t, "array", doc.Type)
	require.Equal(t, "string", doc.Items.Type)
	require.Equal(t, 1, *doc.MinItems)
	require.Equal(t, 5, *doc.MaxItems)
}

func TestExport_Union(t *testing.T) {
	doc, err := bridge.Export(dsl.Union(dsl.String(), dsl.Number()), bridge.Options{})
	require.NoError(t, err)
	require.Len(t, doc.AnyOf, 2)
	require.Equal(t, "string", doc.AnyOf[0].Type)
	require.Equal(t, "number", doc.AnyOf[1].Type)
}

func TestExport_NullableScalarUsesTypeList(t *testing.T) {
	doc, err := bridge.Export(dsl.Nullable(dsl.String()), bridge.Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"string", "null"}, doc.Types())

	// Nullish exports identically to nullable.
	doc2, err := bridge.Export(dsl.Nullish(dsl.String()), bridge.Options{})
	require.NoError(t, err)
	require.Equal(t, doc.Types(), doc2.Types())
}

func TestExport_NullableUnionUsesAnyOf(t *testing.T) {
	doc, err := bridge.Export(dsl.Nullable(dsl.Union(dsl.String(), dsl.Number())), bridge.Options{})
	require.NoError(t, err)
	require.Len(t, doc.AnyOf, 2)
	require.Equal(t, "null", doc.AnyOf[1].Type)
}

func TestExport_ModifiersUnwrap(t *testing.T) {
	doc, err := bridge.Export(dsl.Optional(dsl.Number()), bridge.Options{})
	require.NoError(t, err)
	require.Equal(t, "number", doc.Type)

	doc, err = bridge.Export(dsl.Transform(dsl.String(), func(v any) any { return v }), bridge.Options{})
	require.NoError(t, err)
	require.Equal(t, "string", doc.Type)
}

func TestExport_CoercionsExportTargetType(t *testing.T) {
	for _, c := range []struct {
		s    valz.Schema
		want string
	}{
		{dsl.Coerce.String(), "string"},
		{dsl.Coerce.Number(), "number"},
		{dsl.Coerce.Bool(), "boolean"},
	} {
		doc, err := bridge.Export(c.s, bridge.Options{})
		require.NoError(t, err)
		require.Equal(t, c.want, doc.Type)
	}
}

func TestExport_DocumentAnnotations(t *testing.T) {
	doc, err := bridge.Export(dsl.String(), bridge.Options{
		IncludeSchemaVersion: true,
		ID:                   "https://example.com/s.json",
		Title:                "S",
	})
	require.NoError(t, err)
	require.Equal(t, bridge.SchemaVersion, doc.Version)
	require.Equal(t, "https://example.com/s.json", doc.ID)
	require.Equal(t, "S", doc.Title)
}
