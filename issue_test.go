package valz_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	valz "github.com/soracane/valz"
)

func TestPointerOf(t *testing.T) {
	require.Equal(t, "/", valz.PointerOf(nil))
	require.Equal(t, "/", valz.PointerOf([]any{}))
	require.Equal(t, "/items/2/price", valz.PointerOf([]any{"items", 2, "price"}))
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := valz.Issues{
		{Code: valz.CodeInvalidType, Path: []any{"a"}},
		{Code: valz.CodeTooSmall, Path: []any{"b", 0}},
	}
	require.Equal(t, "invalid_type at /a; too_small at /b/0", iss.Error())
}

func TestIssues_ErrorSummaryTruncates(t *testing.T) {
	var iss valz.Issues
	for i := 0; i < 5; i++ {
		iss = valz.AppendIssues(iss, valz.Issue{Code: valz.CodeCustom, Path: []any{i}})
	}
	require.Equal(t, "custom at /0; custom at /1; custom at /2; ... (total 5)", iss.Error())
}

func TestAsIssues(t *testing.T) {
	iss := valz.Issues{{Code: valz.CodeCustom}}

	got, ok := valz.AsIssues(iss)
	require.True(t, ok)
	require.Len(t, got, 1)

	wrapped := fmt.Errorf("outer: %w", iss)
	got, ok = valz.AsIssues(wrapped)
	require.True(t, ok)
	require.Len(t, got, 1)

	_, ok = valz.AsIssues(nil)
	require.False(t, ok)
	_, ok = valz.AsIssues(fmt.Errorf("plain"))
	require.False(t, ok)
}
