package valz

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"
)

// Schema is the contract every validator kind implements. ParseValue walks
// one raw value; invalid input is a normal, representable result, never a
// panic. Schema trees are immutable after construction and safe for
// concurrent parses.
type Schema interface {
	// Kind reports the node's concrete kind for tagged dispatch.
	Kind() Kind
	// ParseValue validates v at the context's current path. On success the
	// returned Issues is empty; on failure it carries every discovered issue.
	ParseValue(ctx *Context, v any) (any, Issues)
}

// UnknownPolicy controls how object schemas handle keys outside their shape.
type UnknownPolicy int

const (
	UnknownStrip        UnknownPolicy = iota // Drop unknown keys (default).
	UnknownStrict                            // Reject unknown keys with an error.
	UnknownPassthrough                       // Copy unknown keys into the output verbatim.
)

// ParseOption configures a single top-level parse call.
type ParseOption func(*Context)

// WithErrorMap overrides message formatting for this call only. It takes
// precedence over per-node messages and the process-wide map.
func WithErrorMap(m ErrorMap) ParseOption {
	return func(c *Context) { c.errMap = m }
}

// Result is the discriminated outcome of SafeParse.
type Result struct {
	Success bool
	Data    any
	Error   Issues
}

// Parse validates v against s, returning the produced value or the
// aggregated error.
func Parse(s Schema, v any, opts ...ParseOption) (any, error) {
	ctx := NewContext()
	for _, o := range opts {
		o(ctx)
	}
	out, iss := s.ParseValue(ctx, v)
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// MustParse is the raising form of Parse; it panics with the aggregated
// Issues on failure.
func MustParse(s Schema, v any, opts ...ParseOption) any {
	out, err := Parse(s, v, opts...)
	if err != nil {
		panic(err)
	}
	return out
}

// SafeParse validates v and reports the outcome as a value. It never signals
// through the error channel.
func SafeParse(s Schema, v any, opts ...ParseOption) Result {
	out, err := Parse(s, v, opts...)
	if err != nil {
		iss, _ := AsIssues(err)
		return Result{Success: false, Error: iss}
	}
	return Result{Success: true, Data: out}
}

// ParseJSON decodes data (numbers preserved as json.Number) and validates
// the result against s. Decode failures are reported as plain errors, not
// Issues, since no value was available to validate.
func ParseJSON(s Schema, data []byte, opts ...ParseOption) (any, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("valz: decode json: %w", err)
	}
	return Parse(s, v, opts...)
}

// SafeParseJSON is the non-raising form of ParseJSON. Decode failures
// surface as a single custom issue at the root.
func SafeParseJSON(s Schema, data []byte, opts ...ParseOption) Result {
	v, err := decodeJSON(data)
	if err != nil {
		return Result{Success: false, Error: Issues{{
			Code:    CodeCustom,
			Path:    []any{},
			Message: err.Error(),
		}}}
	}
	return SafeParse(s, v, opts...)
}

func decodeJSON(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
