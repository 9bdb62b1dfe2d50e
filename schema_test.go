package valz_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	valz "github.com/soracane/valz"
	"github.com/soracane/valz/dsl"
)

func TestParse_Success(t *testing.T) {
	out, err := valz.Parse(dsl.String(), "hello")
	require.NoError(t, err)
	require.Equal(t, "hello", out)
}

func TestParse_FailureReturnsIssues(t *testing.T) {
	_, err := valz.Parse(dsl.String(), 42)
	require.Error(t, err)

	iss, ok := valz.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	require.Equal(t, valz.CodeInvalidType, iss[0].Code)
	require.Equal(t, "string", iss[0].Expected)
	require.Equal(t, "number", iss[0].Received)
	require.Equal(t, "/", iss[0].Pointer())
}

func TestMustParse_PanicsWithIssues(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		iss, ok := r.(error)
		require.True(t, ok)
		_, ok = valz.AsIssues(iss)
		require.True(t, ok)
	}()
	valz.MustParse(dsl.Number(), "nope")
}

func TestSafeParse(t *testing.T) {
	res := valz.SafeParse(dsl.Bool(), true)
	require.True(t, res.Success)
	require.Equal(t, true, res.Data)
	require.Empty(t, res.Error)

	res = valz.SafeParse(dsl.Bool(), "true")
	require.False(t, res.Success)
	require.Nil(t, res.Data)
	require.Len(t, res.Error, 1)
}

func TestParseJSON(t *testing.T) {
	s := dsl.Object(
		dsl.Field{Name: "id", Schema: dsl.Number().Int()},
		dsl.Field{Name: "name", Schema: dsl.String()},
	)
	out, err := valz.ParseJSON(s, []byte(`{"id": 7, "name": "ann"}`))
	require.NoError(t, err)
	m, ok := out.(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(7), m["id"])
	require.Equal(t, "ann", m["name"])
}

func TestParseJSON_DecodeErrorIsNotIssues(t *testing.T) {
	_, err := valz.ParseJSON(dsl.String(), []byte(`{not json`))
	require.Error(t, err)
	_, ok := valz.AsIssues(err)
	require.False(t, ok)
}

func TestSafeParseJSON_DecodeErrorBecomesCustomIssue(t *testing.T) {
	res := valz.SafeParseJSON(dsl.String(), []byte(`{not json`))
	require.False(t, res.Success)
	require.Len(t, res.Error, 1)
	require.Equal(t, valz.CodeCustom, res.Error[0].Code)
	require.Equal(t, "/", res.Error[0].Pointer())
}

func TestErrorMap_Precedence(t *testing.T) {
	defer valz.ResetErrorMap()

	s := dsl.String().Message("node says no")

	// Per-node message beats the process-wide map.
	valz.SetErrorMap(func(valz.Issue) string { return "global" })
	_, err := valz.Parse(s, 1)
	iss, _ := valz.AsIssues(err)
	require.Equal(t, "node says no", iss[0].Message)

	// Call-scoped override beats both.
	_, err = valz.Parse(s, 1, valz.WithErrorMap(func(valz.Issue) string { return "call" }))
	iss, _ = valz.AsIssues(err)
	require.Equal(t, "call", iss[0].Message)

	// Without a node message the process-wide map applies.
	_, err = valz.Parse(dsl.String(), 1)
	iss, _ = valz.AsIssues(err)
	require.Equal(t, "global", iss[0].Message)
}

func TestSetErrorMap_NilRestoresDefault(t *testing.T) {
	valz.SetErrorMap(func(valz.Issue) string { return "x" })
	valz.SetErrorMap(nil)
	_, err := valz.Parse(dsl.String(), 1)
	iss, _ := valz.AsIssues(err)
	require.Equal(t, "invalid type: expected string, received number", iss[0].Message)
}

func TestDefaultErrorMap_Messages(t *testing.T) {
	_, err := valz.Parse(dsl.String().Min(3), "ab")
	iss, _ := valz.AsIssues(err)
	require.Equal(t, "too small: min 3", iss[0].Message)

	_, err = valz.Parse(dsl.Enum("a", "b"), "c")
	iss, _ = valz.AsIssues(err)
	require.Equal(t, "invalid enum value: expected one of a, b", iss[0].Message)
}
