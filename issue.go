package valz

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType      = "invalid_type"
	CodeTooSmall         = "too_small"
	CodeTooBig           = "too_big"
	CodeInvalidString    = "invalid_string"
	CodeInvalidEnum      = "invalid_enum"
	CodeInvalidLiteral   = "invalid_literal"
	CodeInvalidUnion     = "invalid_union"
	CodeUnrecognizedKeys = "unrecognized_keys"
	CodeInvalidDate      = "invalid_date"
	CodeCustom           = "custom"
	// Reserved for function-schema support.
	CodeInvalidArguments  = "invalid_arguments"
	CodeInvalidReturnType = "invalid_return_type"
)

// Issue represents a single validation failure. Issues are created once and
// never mutated afterwards.
type Issue struct {
	Code    string // One of the codes listed above.
	Path    []any  // string field names and int indices from the root.
	Message string

	// Kind-specific details.
	Expected  string   // Expected type or literal representation.
	Received  string   // Received type name of the offending value.
	Min       *float64 // Lower bound (length or value), when applicable.
	Max       *float64 // Upper bound (length or value), when applicable.
	Inclusive bool     // Whether Min/Max are inclusive.
	Options   []any    // Valid members for invalid_enum.
	Keys      []string // Offending keys for unrecognized_keys.
	Format    string   // String format label (email, uuid, date, date-time).
}

// Pointer renders the issue path in JSON Pointer style (for example
// /items/2/price). The root path renders as "/".
func (i Issue) Pointer() string { return PointerOf(i.Path) }

// PointerOf renders path segments in JSON Pointer style.
func PointerOf(path []any) string {
	if len(path) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, seg := range path {
		b.WriteByte('/')
		fmt.Fprintf(b, "%v", seg)
	}
	return b.String()
}

// Issues is an ordered, non-empty collection of validation failures that
// implements error. It is the aggregated error every failing parse returns.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Pointer())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
