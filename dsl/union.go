package dsl

import (
	valz "github.com/soracane/valz"
)

// UnionSchema tries an ordered, non-empty list of candidates against the
// original input. The first candidate that succeeds wins outright; when all
// fail, the per-candidate errors are replaced by a single invalid_union
// issue so callers are not flooded with complaints from mutually exclusive
// branches.
type UnionSchema struct {
	candidates []valz.Schema
	msg        string
}

// Union returns a union schema over candidates, tried in order. It panics
// when candidates is empty, which is a schema-definition-time bug.
func Union(candidates ...valz.Schema) *UnionSchema {
	if len(candidates) == 0 {
		panic("dsl: Union requires at least one candidate")
	}
	return &UnionSchema{candidates: append([]valz.Schema(nil), candidates...)}
}

// Message sets a per-node message override.
func (u *UnionSchema) Message(msg string) *UnionSchema {
	return &UnionSchema{candidates: u.candidates, msg: msg}
}

// Candidates returns the candidates in order.
func (u *UnionSchema) Candidates() []valz.Schema {
	return append([]valz.Schema(nil), u.candidates...)
}

func (u *UnionSchema) Kind() valz.Kind { return valz.KindUnion }

func (u *UnionSchema) ParseValue(ctx *valz.Context, v any) (any, valz.Issues) {
	for _, c := range u.candidates {
		if out, iss := c.ParseValue(ctx, v); len(iss) == 0 {
			return out, nil
		}
	}
	return nil, valz.Issues{ctx.NewIssue(valz.Issue{
		Code:     valz.CodeInvalidUnion,
		Received: valz.TypeName(v),
	}, u.msg)}
}
