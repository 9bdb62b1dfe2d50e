package dsl

import (
	"math"

	valz "github.com/soracane/valz"
)

// NumberSchema validates numeric values. Inputs are widened to float64;
// json.Number, Go ints/uints and floats are all accepted. NaN and infinities
// are rejected.
type NumberSchema struct {
	integer bool
	min     *float64
	max     *float64
	msg     string
}

// Number returns a strict number schema.
func Number() *NumberSchema { return &NumberSchema{} }

func (n *NumberSchema) clone() *NumberSchema {
	c := *n
	return &c
}

// Int requires the value to have no fractional part.
func (n *NumberSchema) Int() *NumberSchema {
	c := n.clone()
	c.integer = true
	return c
}

// Min sets the inclusive minimum. Last write wins.
func (n *NumberSchema) Min(v float64) *NumberSchema {
	c := n.clone()
	c.min = &v
	return c
}

// Max sets the inclusive maximum. Last write wins.
func (n *NumberSchema) Max(v float64) *NumberSchema {
	c := n.clone()
	c.max = &v
	return c
}

// Positive rejects zero and below. The bound is the smallest representable
// positive float64 used inclusively, mirroring the common minimum-based
// encoding rather than a strict comparison.
func (n *NumberSchema) Positive() *NumberSchema { return n.Min(math.SmallestNonzeroFloat64) }

// Negative rejects zero and above.
func (n *NumberSchema) Negative() *NumberSchema { return n.Max(-math.SmallestNonzeroFloat64) }

// NonNegative accepts zero and above.
func (n *NumberSchema) NonNegative() *NumberSchema { return n.Min(0) }

// NonPositive accepts zero and below.
func (n *NumberSchema) NonPositive() *NumberSchema { return n.Max(0) }

// Message sets a per-node message override.
func (n *NumberSchema) Message(msg string) *NumberSchema {
	c := n.clone()
	c.msg = msg
	return c
}

// ---- configuration views ----

// IsInt reports whether the integer constraint is set.
func (n *NumberSchema) IsInt() bool { return n.integer }

// Minimum reports the inclusive lower bound.
func (n *NumberSchema) Minimum() (float64, bool) {
	if n.min == nil {
		return 0, false
	}
	return *n.min, true
}

// Maximum reports the inclusive upper bound.
func (n *NumberSchema) Maximum() (float64, bool) {
	if n.max == nil {
		return 0, false
	}
	return *n.max, true
}

func (n *NumberSchema) Kind() valz.Kind { return valz.KindNumber }

func (n *NumberSchema) ParseValue(ctx *valz.Context, v any) (any, valz.Issues) {
	f, ok := valz.NumberValue(v)
	if !ok {
		return nil, valz.Issues{ctx.NewIssue(valz.Issue{
			Code:     valz.CodeInvalidType,
			Expected: "number",
			Received: valz.TypeName(v),
		}, n.msg)}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, valz.Issues{ctx.NewIssue(valz.Issue{
			Code:     valz.CodeInvalidType,
			Expected: "number",
			Received: "non-finite number",
		}, n.msg)}
	}
	if n.integer && math.Trunc(f) != f {
		return nil, valz.Issues{ctx.NewIssue(valz.Issue{
			Code:     valz.CodeInvalidType,
			Expected: "integer",
			Received: "float",
		}, n.msg)}
	}
	if n.min != nil && f < *n.min {
		min := *n.min
		return nil, valz.Issues{ctx.NewIssue(valz.Issue{
			Code:      valz.CodeTooSmall,
			Min:       &min,
			Inclusive: true,
			Received:  "number",
		}, n.msg)}
	}
	if n.max != nil && f > *n.max {
		max := *n.max
		return nil, valz.Issues{ctx.NewIssue(valz.Issue{
			Code:      valz.CodeTooBig,
			Max:       &max,
			Inclusive: true,
			Received:  "number",
		}, n.msg)}
	}
	return f, nil
}
