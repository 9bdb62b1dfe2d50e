package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	valz "github.com/soracane/valz"
	"github.com/soracane/valz/dsl"
)

func TestArray_Success(t *testing.T) {
	out, err := valz.Parse(dsl.Array(dsl.Number()), []any{float64(1), float64(2)})
	require.NoError(t, err)
	require.Equal(t, []any{float64(1), float64(2)}, out)
}

func TestArray_NonArrayInput(t *testing.T) {
	_, err := valz.Parse(dsl.Array(dsl.Number()), "nope")
	iss, _ := valz.AsIssues(err)
	require.Equal(t, valz.CodeInvalidType, iss[0].Code)
	require.Equal(t, "array", iss[0].Expected)
}

func TestArray_ElementIssuesCarryIndexPaths(t *testing.T) {
	_, err := valz.Parse(dsl.Array(dsl.String()), []any{"ok", 1, "ok", true})
	iss, _ := valz.AsIssues(err)
	require.Len(t, iss, 2)
	require.Equal(t, "/1", iss[0].Pointer())
	require.Equal(t, "/3", iss[1].Pointer())
}

func TestArray_LengthAndElementIssuesAggregate(t *testing.T) {
	s := dsl.Array(dsl.String()).Max(1)
	_, err := valz.Parse(s, []any{"ok", 2})
	iss, _ := valz.AsIssues(err)
	require.Len(t, iss, 2)
	require.Equal(t, valz.CodeTooBig, iss[0].Code)
	require.Equal(t, valz.CodeInvalidType, iss[1].Code)
	require.Equal(t, "/1", iss[1].Pointer())
}

func TestArray_Length(t *testing.T) {
	s := dsl.Array(dsl.Number()).Length(2)
	_, err := valz.Parse(s, []any{float64(1)})
	require.Error(t, err)
	_, err = valz.Parse(s, []any{float64(1), float64(2)})
	require.NoError(t, err)
}

func TestArray_EmptyIsValidByDefault(t *testing.T) {
	out, err := valz.Parse(dsl.Array(dsl.String()), []any{})
	require.NoError(t, err)
	require.Equal(t, []any{}, out)
}
