package dsl

import (
	"sort"

	valz "github.com/soracane/valz"
)

// Field pairs a name with its validator. A field is required unless its
// schema is an Optional/Nullish/Default wrapper.
type Field struct {
	Name   string
	Schema valz.Schema
}

// ObjectSchema validates string-keyed objects against an ordered shape.
// Field insertion order is preserved and drives the JSON Schema required
// list. The default unknown-key policy is strip.
type ObjectSchema struct {
	fields []Field
	index  map[string]int
	policy valz.UnknownPolicy
	msg    string
}

// Object returns an object schema over the given fields, in order. A later
// field with the same name overrides an earlier one.
func Object(fields ...Field) *ObjectSchema {
	o := &ObjectSchema{policy: valz.UnknownStrip}
	o.fields, o.index = mergeFields(nil, fields)
	return o
}

func mergeFields(base, more []Field) ([]Field, map[string]int) {
	out := append([]Field(nil), base...)
	index := make(map[string]int, len(out)+len(more))
	for i, f := range out {
		index[f.Name] = i
	}
	for _, f := range more {
		if i, ok := index[f.Name]; ok {
			out[i] = f
			continue
		}
		index[f.Name] = len(out)
		out = append(out, f)
	}
	return out, index
}

func (o *ObjectSchema) clone() *ObjectSchema {
	c := &ObjectSchema{policy: o.policy, msg: o.msg}
	c.fields, c.index = mergeFields(o.fields, nil)
	return c
}

// Strict rejects unknown keys with a single unrecognized_keys issue.
func (o *ObjectSchema) Strict() *ObjectSchema {
	c := o.clone()
	c.policy = valz.UnknownStrict
	return c
}

// Passthrough copies unknown keys into the output verbatim.
func (o *ObjectSchema) Passthrough() *ObjectSchema {
	c := o.clone()
	c.policy = valz.UnknownPassthrough
	return c
}

// Strip drops unknown keys silently (the default).
func (o *ObjectSchema) Strip() *ObjectSchema {
	c := o.clone()
	c.policy = valz.UnknownStrip
	return c
}

// Pick keeps only the named fields, preserving their original order.
func (o *ObjectSchema) Pick(names ...string) *ObjectSchema {
	keep := make(map[string]struct{}, len(names))
	for _, n := range names {
		keep[n] = struct{}{}
	}
	c := &ObjectSchema{policy: o.policy, msg: o.msg}
	var picked []Field
	for _, f := range o.fields {
		if _, ok := keep[f.Name]; ok {
			picked = append(picked, f)
		}
	}
	c.fields, c.index = mergeFields(nil, picked)
	return c
}

// Omit removes the named fields.
func (o *ObjectSchema) Omit(names ...string) *ObjectSchema {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	c := &ObjectSchema{policy: o.policy, msg: o.msg}
	var kept []Field
	for _, f := range o.fields {
		if _, ok := drop[f.Name]; !ok {
			kept = append(kept, f)
		}
	}
	c.fields, c.index = mergeFields(nil, kept)
	return c
}

// Partial wraps every field in Optional. Fields already optional are left
// as-is.
func (o *ObjectSchema) Partial() *ObjectSchema {
	c := o.clone()
	for i, f := range c.fields {
		if f.Schema.Kind() == valz.KindOptional {
			continue
		}
		c.fields[i] = Field{Name: f.Name, Schema: Optional(f.Schema)}
	}
	return c
}

// Required unwraps Optional wrappers back to their inner validator. A field
// that was never optional is left as-is.
func (o *ObjectSchema) Required() *ObjectSchema {
	c := o.clone()
	for i, f := range c.fields {
		if opt, ok := f.Schema.(*OptionalSchema); ok {
			c.fields[i] = Field{Name: f.Name, Schema: opt.Inner()}
		}
	}
	return c
}

// Extend adds fields; later fields override same-named earlier ones.
func (o *ObjectSchema) Extend(fields ...Field) *ObjectSchema {
	c := &ObjectSchema{policy: o.policy, msg: o.msg}
	c.fields, c.index = mergeFields(o.fields, fields)
	return c
}

// Message sets a per-node message override.
func (o *ObjectSchema) Message(msg string) *ObjectSchema {
	c := o.clone()
	c.msg = msg
	return c
}

// ---- configuration views ----

// Fields returns the shape in insertion order.
func (o *ObjectSchema) Fields() []Field { return append([]Field(nil), o.fields...) }

// Policy reports the unknown-key policy.
func (o *ObjectSchema) Policy() valz.UnknownPolicy { return o.policy }

func (o *ObjectSchema) Kind() valz.Kind { return valz.KindObject }

func (o *ObjectSchema) ParseValue(ctx *valz.Context, v any) (any, valz.Issues) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, valz.Issues{ctx.NewIssue(valz.Issue{
			Code:     valz.CodeInvalidType,
			Expected: "object",
			Received: valz.TypeName(v),
		}, o.msg)}
	}
	out := make(map[string]any, len(m))
	var iss valz.Issues
	for _, f := range o.fields {
		var raw any = valz.Absent
		if fv, exists := m[f.Name]; exists {
			raw = fv
		}
		res, ferr := f.Schema.ParseValue(ctx.Child(f.Name), raw)
		if len(ferr) > 0 {
			iss = valz.AppendIssues(iss, ferr...)
			continue
		}
		// Absent results (optional fields with missing input) are omitted
		// from the output entirely.
		if !valz.IsAbsent(res) {
			out[f.Name] = res
		}
	}
	switch o.policy {
	case valz.UnknownStrict:
		var unknown []string
		for k := range m {
			if _, known := o.index[k]; !known {
				unknown = append(unknown, k)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			// One issue listing every unknown key, merged with any
			// field-level issues collected above.
			iss = valz.AppendIssues(iss, ctx.NewIssue(valz.Issue{
				Code: valz.CodeUnrecognizedKeys,
				Keys: unknown,
			}, o.msg))
		}
	case valz.UnknownPassthrough:
		for k, val := range m {
			if _, known := o.index[k]; !known {
				out[k] = val
			}
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}
