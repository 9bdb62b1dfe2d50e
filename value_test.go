package valz_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	valz "github.com/soracane/valz"
)

func TestTypeName(t *testing.T) {
	require.Equal(t, "string", valz.TypeName("x"))
	require.Equal(t, "number", valz.TypeName(1.5))
	require.Equal(t, "number", valz.TypeName(json.Number("3")))
	require.Equal(t, "boolean", valz.TypeName(false))
	require.Equal(t, "null", valz.TypeName(nil))
	require.Equal(t, "absent", valz.TypeName(valz.Absent))
	require.Equal(t, "array", valz.TypeName([]any{}))
	require.Equal(t, "object", valz.TypeName(map[string]any{}))
}

func TestNumberValue(t *testing.T) {
	f, ok := valz.NumberValue(int32(7))
	require.True(t, ok)
	require.Equal(t, float64(7), f)

	f, ok = valz.NumberValue(json.Number("2.5"))
	require.True(t, ok)
	require.Equal(t, 2.5, f)

	_, ok = valz.NumberValue("2.5")
	require.False(t, ok)
}

func TestIsAbsent(t *testing.T) {
	require.True(t, valz.IsAbsent(valz.Absent))
	require.False(t, valz.IsAbsent(nil))
	require.False(t, valz.IsAbsent(0))
}
