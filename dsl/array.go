package dsl

import (
	valz "github.com/soracane/valz"
)

// ArraySchema applies one element validator to every item. Length bounds are
// inclusive and checked before per-element validation; length issues and
// element issues aggregate into the same error.
type ArraySchema struct {
	elem   valz.Schema
	minLen *int
	maxLen *int
	msg    string
}

// Array returns an array schema over the given element schema.
func Array(elem valz.Schema) *ArraySchema { return &ArraySchema{elem: elem} }

func (a *ArraySchema) clone() *ArraySchema {
	c := *a
	return &c
}

// Min sets the inclusive minimum length. Last write wins.
func (a *ArraySchema) Min(n int) *ArraySchema {
	c := a.clone()
	c.minLen = &n
	return c
}

// Max sets the inclusive maximum length. Last write wins.
func (a *ArraySchema) Max(n int) *ArraySchema {
	c := a.clone()
	c.maxLen = &n
	return c
}

// Length constrains the array to exactly n elements.
func (a *ArraySchema) Length(n int) *ArraySchema {
	c := a.clone()
	c.minLen = &n
	c.maxLen = &n
	return c
}

// Message sets a per-node message override.
func (a *ArraySchema) Message(msg string) *ArraySchema {
	c := a.clone()
	c.msg = msg
	return c
}

// ---- configuration views ----

// Element returns the element schema.
func (a *ArraySchema) Element() valz.Schema { return a.elem }

// MinLen reports the minimum length bound.
func (a *ArraySchema) MinLen() (int, bool) {
	if a.minLen == nil {
		return 0, false
	}
	return *a.minLen, true
}

// MaxLen reports the maximum length bound.
func (a *ArraySchema) MaxLen() (int, bool) {
	if a.maxLen == nil {
		return 0, false
	}
	return *a.maxLen, true
}

func (a *ArraySchema) Kind() valz.Kind { return valz.KindArray }

func (a *ArraySchema) ParseValue(ctx *valz.Context, v any) (any, valz.Issues) {
	arr, ok := v.([]any)
	if !ok {
		return nil, valz.Issues{ctx.NewIssue(valz.Issue{
			Code:     valz.CodeInvalidType,
			Expected: "array",
			Received: valz.TypeName(v),
		}, a.msg)}
	}
	var iss valz.Issues
	if a.minLen != nil && len(arr) < *a.minLen {
		min := float64(*a.minLen)
		iss = valz.AppendIssues(iss, ctx.NewIssue(valz.Issue{
			Code:      valz.CodeTooSmall,
			Min:       &min,
			Inclusive: true,
			Received:  "array",
		}, a.msg))
	}
	if a.maxLen != nil && len(arr) > *a.maxLen {
		max := float64(*a.maxLen)
		iss = valz.AppendIssues(iss, ctx.NewIssue(valz.Issue{
			Code:      valz.CodeTooBig,
			Max:       &max,
			Inclusive: true,
			Received:  "array",
		}, a.msg))
	}
	out := make([]any, 0, len(arr))
	for i, el := range arr {
		res, ferr := a.elem.ParseValue(ctx.Child(i), el)
		if len(ferr) > 0 {
			iss = valz.AppendIssues(iss, ferr...)
			continue
		}
		out = append(out, res)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}
