package jsonschema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soracane/valz/jsonschema"
)

func TestUnmarshal(t *testing.T) {
	doc, err := jsonschema.Unmarshal([]byte(`{
		"type": "object",
		"properties": {
			"id":    {"type": "integer", "minimum": 1},
			"email": {"type": "string", "format": "email"}
		},
		"required": ["id"],
		"additionalProperties": false
	}`))
	require.NoError(t, err)
	require.Equal(t, []string{"object"}, doc.Types())
	require.Len(t, doc.Properties, 2)
	require.Equal(t, []string{"id"}, doc.Required)
	require.Equal(t, false, doc.AdditionalProperties)

	id := doc.Properties["id"]
	require.Equal(t, []string{"integer"}, id.Types())
	require.NotNil(t, id.Minimum)
	require.Equal(t, float64(1), *id.Minimum)
	require.Equal(t, "email", doc.Properties["email"].Format)
}

func TestTypes_List(t *testing.T) {
	doc, err := jsonschema.Unmarshal([]byte(`{"type": ["string", "null"]}`))
	require.NoError(t, err)
	require.Equal(t, []string{"string", "null"}, doc.Types())
}

func TestTypes_Absent(t *testing.T) {
	doc, err := jsonschema.Unmarshal([]byte(`{"properties": {"a": {"type": "string"}}}`))
	require.NoError(t, err)
	require.Nil(t, doc.Types())
}

func TestUnmarshal_ConstNullKeepsKeyPresence(t *testing.T) {
	doc, err := jsonschema.Unmarshal([]byte(`{"const": null}`))
	require.NoError(t, err)
	require.NotNil(t, doc.Const)
	require.Nil(t, *doc.Const)

	// An absent const keyword stays a nil pointer.
	doc, err = jsonschema.Unmarshal([]byte(`{"type": "string"}`))
	require.NoError(t, err)
	require.Nil(t, doc.Const)

	// Nested schemas get the same treatment.
	doc, err = jsonschema.Unmarshal([]byte(`{"properties": {"v": {"const": null}}}`))
	require.NoError(t, err)
	require.NotNil(t, doc.Properties["v"].Const)
	require.Nil(t, *doc.Properties["v"].Const)
}

func TestMarshal_OmitsEmptyKeywords(t *testing.T) {
	doc := &jsonschema.Schema{Type: "string"}
	out, err := doc.Marshal()
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"string"}`, string(out))
}

func TestParseYAML(t *testing.T) {
	doc, err := jsonschema.ParseYAML([]byte(`
type: object
properties:
  name:
    type: string
    minLength: 1
required:
  - name
additionalProperties: false
`))
	require.NoError(t, err)
	require.Equal(t, []string{"object"}, doc.Types())
	require.NotNil(t, doc.Properties["name"].MinLength)
	require.Equal(t, 1, *doc.Properties["name"].MinLength)
	require.Equal(t, false, doc.AdditionalProperties)
}

func TestParseYAML_BadInput(t *testing.T) {
	_, err := jsonschema.ParseYAML([]byte("{: not yaml"))
	require.Error(t, err)
}
