package dsl

import (
	"fmt"
	"math"
	"strconv"

	gojson "github.com/goccy/go-json"

	valz "github.com/soracane/valz"
)

// Coerce groups the coercion constructors, mirroring the primitive ones:
// Coerce.String(), Coerce.Number(), Coerce.Bool().
var Coerce = coerceFactory{}

type coerceFactory struct{}

func (coerceFactory) String() *CoerceStringSchema { return &CoerceStringSchema{} }
func (coerceFactory) Number() *CoerceNumberSchema { return &CoerceNumberSchema{} }
func (coerceFactory) Bool() *CoerceBoolSchema     { return &CoerceBoolSchema{} }

// CoerceStringSchema converts any input to its textual representation.
// Numbers and booleans stringify, arrays and objects render as JSON. Only
// null and absent input are rejected.
type CoerceStringSchema struct {
	msg string
}

// Message overrides the generated message for issues raised by this node.
func (s *CoerceStringSchema) Message(msg string) *CoerceStringSchema {
	c := *s
	c.msg = msg
	return &c
}

func (s *CoerceStringSchema) Kind() valz.Kind { return valz.KindCoerceString }

func (s *CoerceStringSchema) ParseValue(ctx *valz.Context, v any) (any, valz.Issues) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	}
	if valz.IsAbsent(v) || v == nil {
		return nil, valz.Issues{ctx.NewIssue(valz.Issue{
			Code:     valz.CodeInvalidType,
			Expected: "string",
			Received: valz.TypeName(v),
		}, s.msg)}
	}
	if f, ok := valz.NumberValue(v); ok {
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	}
	switch v.(type) {
	case []any, map[string]any:
		if b, err := gojson.Marshal(v); err == nil {
			return string(b), nil
		}
	}
	return fmt.Sprintf("%v", v), nil
}

// CoerceNumberSchema converts scalar input to a float64. Booleans map to
// 1 and 0, numeric strings are parsed, and non-finite results are rejected.
type CoerceNumberSchema struct {
	msg string
}

// Message overrides the generated message for issues raised by this node.
func (s *CoerceNumberSchema) Message(msg string) *CoerceNumberSchema {
	c := *s
	c.msg = msg
	return &c
}

func (s *CoerceNumberSchema) Kind() valz.Kind { return valz.KindCoerceNumber }

func (s *CoerceNumberSchema) ParseValue(ctx *valz.Context, v any) (any, valz.Issues) {
	fail := func(received string) (any, valz.Issues) {
		return nil, valz.Issues{ctx.NewIssue(valz.Issue{
			Code:     valz.CodeInvalidType,
			Expected: "number",
			Received: received,
		}, s.msg)}
	}
	if b, ok := v.(bool); ok {
		if b {
			return float64(1), nil
		}
		return float64(0), nil
	}
	if f, ok := valz.NumberValue(v); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fail("non-finite number")
		}
		return f, nil
	}
	if str, ok := v.(string); ok {
		f, err := strconv.ParseFloat(str, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fail("string")
		}
		return f, nil
	}
	return fail(valz.TypeName(v))
}

// CoerceBoolSchema converts scalar input to a boolean. The strings "true"
// and "false" and the numbers 1 and 0 map exactly; everything else falls
// back to truthiness: null, absent, empty string and zero are false,
// non-empty strings, non-zero numbers, arrays and objects are true.
type CoerceBoolSchema struct{}

func (s *CoerceBoolSchema) Kind() valz.Kind { return valz.KindCoerceBool }

func (s *CoerceBoolSchema) ParseValue(ctx *valz.Context, v any) (any, valz.Issues) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		switch t {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return t != "", nil
	}
	if f, ok := valz.NumberValue(v); ok {
		return f != 0, nil
	}
	if v == nil || valz.IsAbsent(v) {
		return false, nil
	}
	return true, nil
}
