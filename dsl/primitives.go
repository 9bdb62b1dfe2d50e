package dsl

import (
	"fmt"

	valz "github.com/soracane/valz"
)

// BoolSchema validates boolean values. There is no truthy/falsy coercion
// here; see Coerce.Bool for the lenient variant.
type BoolSchema struct{ msg string }

// Bool returns a strict boolean schema.
func Bool() *BoolSchema { return &BoolSchema{} }

// Message sets a per-node message override.
func (b *BoolSchema) Message(msg string) *BoolSchema { return &BoolSchema{msg: msg} }

func (b *BoolSchema) Kind() valz.Kind { return valz.KindBool }

func (b *BoolSchema) ParseValue(ctx *valz.Context, v any) (any, valz.Issues) {
	bv, ok := v.(bool)
	if !ok {
		return nil, valz.Issues{ctx.NewIssue(valz.Issue{
			Code:     valz.CodeInvalidType,
			Expected: "boolean",
			Received: valz.TypeName(v),
		}, b.msg)}
	}
	return bv, nil
}

// LiteralSchema accepts exactly one pre-specified primitive value, compared
// by exact equality (numeric inputs are widened before comparison).
type LiteralSchema struct {
	value any
	msg   string
}

// Literal returns a schema accepting only v. v may be a string, number,
// boolean, nil, or the Absent marker.
func Literal(v any) *LiteralSchema { return &LiteralSchema{value: v} }

// Message sets a per-node message override.
func (l *LiteralSchema) Message(msg string) *LiteralSchema {
	return &LiteralSchema{value: l.value, msg: msg}
}

// Value reports the accepted literal.
func (l *LiteralSchema) Value() any { return l.value }

func (l *LiteralSchema) Kind() valz.Kind { return valz.KindLiteral }

func (l *LiteralSchema) ParseValue(ctx *valz.Context, v any) (any, valz.Issues) {
	if literalEqual(l.value, v) {
		return l.value, nil
	}
	return nil, valz.Issues{ctx.NewIssue(valz.Issue{
		Code:     valz.CodeInvalidLiteral,
		Expected: fmt.Sprintf("%v", l.value),
		Received: valz.TypeName(v),
	}, l.msg)}
}

// EnumSchema accepts exactly one of a fixed, non-empty list of primitive
// values.
type EnumSchema struct {
	options []any
	msg     string
}

// Enum returns a schema accepting any member of options. It panics when
// options is empty, which is a schema-definition-time bug.
func Enum(options ...any) *EnumSchema {
	if len(options) == 0 {
		panic("dsl: Enum requires at least one option")
	}
	return &EnumSchema{options: append([]any(nil), options...)}
}

// Message sets a per-node message override.
func (e *EnumSchema) Message(msg string) *EnumSchema {
	return &EnumSchema{options: e.options, msg: msg}
}

// Options returns the accepted members.
func (e *EnumSchema) Options() []any { return append([]any(nil), e.options...) }

func (e *EnumSchema) Kind() valz.Kind { return valz.KindEnum }

func (e *EnumSchema) ParseValue(ctx *valz.Context, v any) (any, valz.Issues) {
	for _, o := range e.options {
		if literalEqual(o, v) {
			return o, nil
		}
	}
	return nil, valz.Issues{ctx.NewIssue(valz.Issue{
		Code:     valz.CodeInvalidEnum,
		Options:  e.Options(),
		Received: valz.TypeName(v),
	}, e.msg)}
}

// literalEqual compares a configured literal against a raw input value.
// Numbers compare by widened float64 value so json.Number inputs match int
// or float literals.
func literalEqual(want, got any) bool {
	if wf, ok := valz.NumberValue(want); ok {
		gf, gok := valz.NumberValue(got)
		return gok && wf == gf
	}
	if want == nil {
		return got == nil
	}
	if valz.IsAbsent(want) {
		return valz.IsAbsent(got)
	}
	return want == got
}
