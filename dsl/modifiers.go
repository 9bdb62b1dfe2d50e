package dsl

import (
	valz "github.com/soracane/valz"
)

// Modifier wrappers compose uniformly over any schema and nest in any order.
// Apart from their short-circuit cases they delegate to the wrapped schema
// and propagate its aggregated error unchanged.

// OptionalSchema short-circuits absent input to the Absent marker.
type OptionalSchema struct{ inner valz.Schema }

// Optional wraps inner so that absent input succeeds with the Absent marker.
func Optional(inner valz.Schema) *OptionalSchema { return &OptionalSchema{inner: inner} }

// Inner returns the wrapped schema.
func (s *OptionalSchema) Inner() valz.Schema { return s.inner }

func (s *OptionalSchema) Kind() valz.Kind { return valz.KindOptional }

func (s *OptionalSchema) ParseValue(ctx *valz.Context, v any) (any, valz.Issues) {
	if valz.IsAbsent(v) {
		return valz.Absent, nil
	}
	return s.inner.ParseValue(ctx, v)
}

// NullableSchema short-circuits null input to nil.
type NullableSchema struct{ inner valz.Schema }

// Nullable wraps inner so that null input succeeds with nil.
func Nullable(inner valz.Schema) *NullableSchema { return &NullableSchema{inner: inner} }

// Inner returns the wrapped schema.
func (s *NullableSchema) Inner() valz.Schema { return s.inner }

func (s *NullableSchema) Kind() valz.Kind { return valz.KindNullable }

func (s *NullableSchema) ParseValue(ctx *valz.Context, v any) (any, valz.Issues) {
	if v == nil {
		return nil, nil
	}
	return s.inner.ParseValue(ctx, v)
}

// NullishSchema accepts either absent or null input.
type NullishSchema struct{ inner valz.Schema }

// Nullish wraps inner so that both absent and null input succeed.
func Nullish(inner valz.Schema) *NullishSchema { return &NullishSchema{inner: inner} }

// Inner returns the wrapped schema.
func (s *NullishSchema) Inner() valz.Schema { return s.inner }

func (s *NullishSchema) Kind() valz.Kind { return valz.KindNullish }

func (s *NullishSchema) ParseValue(ctx *valz.Context, v any) (any, valz.Issues) {
	if valz.IsAbsent(v) {
		return valz.Absent, nil
	}
	if v == nil {
		return nil, nil
	}
	return s.inner.ParseValue(ctx, v)
}

// DefaultSchema replaces absent input with a supplied value; any other input
// delegates to the wrapped schema.
type DefaultSchema struct {
	inner valz.Schema
	value any
	fn    func() any
}

// Default wraps inner so that absent input yields the fixed value v.
func Default(inner valz.Schema, v any) *DefaultSchema {
	return &DefaultSchema{inner: inner, value: v}
}

// DefaultFunc wraps inner so that absent input yields fn(), evaluated fresh
// on every parse.
func DefaultFunc(inner valz.Schema, fn func() any) *DefaultSchema {
	return &DefaultSchema{inner: inner, fn: fn}
}

// Inner returns the wrapped schema.
func (s *DefaultSchema) Inner() valz.Schema { return s.inner }

// Value reports the fixed default. It reports false for generator-backed
// defaults, which cannot be represented statically.
func (s *DefaultSchema) Value() (any, bool) {
	if s.fn != nil {
		return nil, false
	}
	return s.value, true
}

func (s *DefaultSchema) Kind() valz.Kind { return valz.KindDefault }

func (s *DefaultSchema) ParseValue(ctx *valz.Context, v any) (any, valz.Issues) {
	if valz.IsAbsent(v) {
		if s.fn != nil {
			return s.fn(), nil
		}
		return s.value, nil
	}
	return s.inner.ParseValue(ctx, v)
}

// TransformSchema applies a pure output-mapping function to the wrapped
// schema's successful result. The function is never invoked on failure.
type TransformSchema struct {
	inner valz.Schema
	fn    func(any) any
}

// Transform wraps inner with the output mapping fn.
func Transform(inner valz.Schema, fn func(any) any) *TransformSchema {
	return &TransformSchema{inner: inner, fn: fn}
}

// Inner returns the wrapped schema.
func (s *TransformSchema) Inner() valz.Schema { return s.inner }

func (s *TransformSchema) Kind() valz.Kind { return valz.KindTransform }

func (s *TransformSchema) ParseValue(ctx *valz.Context, v any) (any, valz.Issues) {
	out, iss := s.inner.ParseValue(ctx, v)
	if len(iss) > 0 {
		return nil, iss
	}
	return s.fn(out), nil
}
