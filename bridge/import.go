package bridge

import (
	"fmt"
	"regexp"
	"sort"

	valz "github.com/soracane/valz"
	"github.com/soracane/valz/dsl"
	"github.com/soracane/valz/jsonschema"
)

// Import builds a validator tree from a JSON Schema document. Keywords
// outside the supported subset are ignored; a document with no recognized
// shape yields a permissive string validator rather than an error, so
// partially understood schemas still import. Malformed keywords such as an
// invalid pattern do fail.
func Import(doc *jsonschema.Schema) (valz.Schema, error) {
	if doc == nil {
		return nil, fmt.Errorf("bridge: nil schema document")
	}
	if doc.Const != nil {
		return dsl.Literal(normalizeConst(*doc.Const)), nil
	}
	if len(doc.Enum) > 0 {
		opts := make([]any, len(doc.Enum))
		for i, v := range doc.Enum {
			opts[i] = normalizeConst(v)
		}
		return dsl.Enum(opts...), nil
	}
	if branches := pickUnion(doc); len(branches) > 0 {
		return importUnion(branches)
	}
	if types := doc.Types(); len(types) > 0 {
		return importTypes(doc, types)
	}
	// No type keyword; infer from structural keywords.
	if len(doc.Properties) > 0 {
		return importObject(doc)
	}
	if doc.Items != nil {
		return importArray(doc)
	}
	return dsl.String(), nil
}

func pickUnion(doc *jsonschema.Schema) []*jsonschema.Schema {
	if len(doc.AnyOf) > 0 {
		return doc.AnyOf
	}
	return doc.OneOf
}

func importUnion(branches []*jsonschema.Schema) (valz.Schema, error) {
	cands := make([]valz.Schema, 0, len(branches))
	for _, b := range branches {
		s, err := Import(b)
		if err != nil {
			return nil, err
		}
		cands = append(cands, s)
	}
	if len(cands) == 1 {
		return cands[0], nil
	}
	return dsl.Union(cands...), nil
}

// importTypes handles the type keyword, including type lists. A null entry
// wraps the remainder in Nullable; multiple non-null entries become a union.
func importTypes(doc *jsonschema.Schema, types []string) (valz.Schema, error) {
	nullable := false
	nonNull := make([]string, 0, len(types))
	for _, t := range types {
		if t == "null" {
			nullable = true
			continue
		}
		nonNull = append(nonNull, t)
	}
	if len(nonNull) == 0 {
		return dsl.Literal(nil), nil
	}
	var s valz.Schema
	if len(nonNull) == 1 {
		one, err := importTyped(doc, nonNull[0])
		if err != nil {
			return nil, err
		}
		s = one
	} else {
		cands := make([]valz.Schema, 0, len(nonNull))
		for _, t := range nonNull {
			c, err := importTyped(doc, t)
			if err != nil {
				return nil, err
			}
			cands = append(cands, c)
		}
		s = dsl.Union(cands...)
	}
	if nullable {
		return dsl.Nullable(s), nil
	}
	return s, nil
}

func importTyped(doc *jsonschema.Schema, typ string) (valz.Schema, error) {
	switch typ {
	case "string":
		return importString(doc)
	case "integer":
		return importNumber(doc, true), nil
	case "number":
		return importNumber(doc, false), nil
	case "boolean":
		return dsl.Bool(), nil
	case "object":
		return importObject(doc)
	case "array":
		return importArray(doc)
	default:
		return nil, fmt.Errorf("bridge: unsupported type %q", typ)
	}
}

func importString(doc *jsonschema.Schema) (valz.Schema, error) {
	s := dsl.String()
	if doc.MinLength != nil {
		s = s.Min(*doc.MinLength)
	}
	if doc.MaxLength != nil {
		s = s.Max(*doc.MaxLength)
	}
	switch doc.Format {
	case dsl.FormatEmail:
		s = s.Email()
	case dsl.FormatUUID:
		s = s.UUID()
	case dsl.FormatDate:
		s = s.Date()
	case dsl.FormatDateTime:
		s = s.DateTime()
	}
	if doc.Pattern != "" {
		if _, err := regexp.Compile(doc.Pattern); err != nil {
			return nil, fmt.Errorf("bridge: invalid pattern %q: %w", doc.Pattern, err)
		}
		s = s.Pattern(doc.Pattern)
	}
	return s, nil
}

func importNumber(doc *jsonschema.Schema, integer bool) valz.Schema {
	n := dsl.Number()
	if integer {
		n = n.Int()
	}
	if doc.Minimum != nil {
		n = n.Min(*doc.Minimum)
	}
	if doc.Maximum != nil {
		n = n.Max(*doc.Maximum)
	}
	return n
}

// importObject rebuilds an object shape from the properties map. JSON object
// keys carry no order, so the rebuilt shape normalizes field order to sorted
// property names; a re-export lists required fields in that order, not in the
// source document's textual order.
func importObject(doc *jsonschema.Schema) (valz.Schema, error) {
	required := make(map[string]bool, len(doc.Required))
	for _, name := range doc.Required {
		required[name] = true
	}
	names := make([]string, 0, len(doc.Properties))
	for name := range doc.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]dsl.Field, 0, len(names))
	for _, name := range names {
		prop := doc.Properties[name]
		child, err := Import(prop)
		if err != nil {
			return nil, err
		}
		if prop != nil && prop.Default != nil {
			child = dsl.Default(child, normalizeConst(prop.Default))
		} else if !required[name] {
			child = dsl.Optional(child)
		}
		fields = append(fields, dsl.Field{Name: name, Schema: child})
	}
	obj := dsl.Object(fields...)
	if ap, ok := doc.AdditionalProperties.(bool); ok && !ap {
		obj = obj.Strict()
	}
	return obj, nil
}

func importArray(doc *jsonschema.Schema) (valz.Schema, error) {
	var elem valz.Schema
	if doc.Items != nil {
		child, err := Import(doc.Items)
		if err != nil {
			return nil, err
		}
		elem = child
	} else {
		elem = dsl.String()
	}
	arr := dsl.Array(elem)
	if doc.MinItems != nil {
		arr = arr.Min(*doc.MinItems)
	}
	if doc.MaxItems != nil {
		arr = arr.Max(*doc.MaxItems)
	}
	return arr, nil
}

// normalizeConst converts decoder artifacts such as json.Number into the
// plain values literal and enum comparison expects.
func normalizeConst(v any) any {
	if f, ok := valz.NumberValue(v); ok {
		return f
	}
	return v
}
