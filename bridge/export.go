// Package bridge converts between validator trees and JSON Schema documents.
// Export walks a tree and emits a draft-07 subset; Import builds a tree back
// from a document. A schema exported and re-imported accepts and rejects the
// same inputs, though fluent history such as overridden bounds is not
// preserved literally.
package bridge

import (
	"fmt"

	valz "github.com/soracane/valz"
	"github.com/soracane/valz/dsl"
	"github.com/soracane/valz/jsonschema"
)

// SchemaVersion is the dialect stamped on exported documents when requested.
const SchemaVersion = "http://json-schema.org/draft-07/schema#"

// Options controls document-level annotations on export.
type Options struct {
	// IncludeSchemaVersion stamps the $schema keyword on the root document.
	IncludeSchemaVersion bool
	ID                   string
	Title                string
	Description          string
}

// Export converts a validator tree into a JSON Schema document.
func Export(s valz.Schema, opts Options) (*jsonschema.Schema, error) {
	doc, err := exportNode(s)
	if err != nil {
		return nil, err
	}
	if opts.IncludeSchemaVersion {
		doc.Version = SchemaVersion
	}
	doc.ID = opts.ID
	doc.Title = opts.Title
	doc.Description = opts.Description
	return doc, nil
}

// ExportJSON exports a validator tree and renders it as indented JSON.
func ExportJSON(s valz.Schema, opts Options) ([]byte, error) {
	doc, err := Export(s, opts)
	if err != nil {
		return nil, err
	}
	return doc.MarshalIndent("", "  ")
}

func exportNode(s valz.Schema) (*jsonschema.Schema, error) {
	switch s.Kind() {
	case valz.KindString, valz.KindCoerceString:
		return exportString(s)
	case valz.KindNumber, valz.KindCoerceNumber:
		return exportNumber(s)
	case valz.KindBool, valz.KindCoerceBool:
		return &jsonschema.Schema{Type: "boolean"}, nil
	case valz.KindLiteral:
		l, ok := s.(*dsl.LiteralSchema)
		if !ok {
			return nil, unexportable(s)
		}
		v := l.Value()
		return &jsonschema.Schema{Const: &v}, nil
	case valz.KindEnum:
		e, ok := s.(*dsl.EnumSchema)
		if !ok {
			return nil, unexportable(s)
		}
		return &jsonschema.Schema{Enum: e.Options()}, nil
	case valz.KindObject:
		return exportObject(s)
	case valz.KindArray:
		return exportArray(s)
	case valz.KindUnion:
		return exportUnion(s)
	case valz.KindOptional:
		o, ok := s.(*dsl.OptionalSchema)
		if !ok {
			return nil, unexportable(s)
		}
		return exportNode(o.Inner())
	case valz.KindTransform:
		t, ok := s.(*dsl.TransformSchema)
		if !ok {
			return nil, unexportable(s)
		}
		return exportNode(t.Inner())
	case valz.KindDefault:
		d, ok := s.(*dsl.DefaultSchema)
		if !ok {
			return nil, unexportable(s)
		}
		doc, err := exportNode(d.Inner())
		if err != nil {
			return nil, err
		}
		if v, fixed := d.Value(); fixed {
			doc.Default = v
		}
		return doc, nil
	case valz.KindNullable, valz.KindNullish:
		return exportNullable(s)
	default:
		return nil, unexportable(s)
	}
}

func exportString(s valz.Schema) (*jsonschema.Schema, error) {
	doc := &jsonschema.Schema{Type: "string"}
	str, ok := s.(*dsl.StringSchema)
	if !ok {
		// Coercion nodes carry no constraints.
		return doc, nil
	}
	if n, set := str.MinLen(); set {
		doc.MinLength = &n
	}
	if n, set := str.MaxLen(); set {
		doc.MaxLength = &n
	}
	doc.Pattern = str.PatternString()
	doc.Format = str.Format()
	return doc, nil
}

func exportNumber(s valz.Schema) (*jsonschema.Schema, error) {
	doc := &jsonschema.Schema{Type: "number"}
	num, ok := s.(*dsl.NumberSchema)
	if !ok {
		return doc, nil
	}
	if num.IsInt() {
		doc.Type = "integer"
	}
	if v, set := num.Minimum(); set {
		doc.Minimum = &v
	}
	if v, set := num.Maximum(); set {
		doc.Maximum = &v
	}
	return doc, nil
}

func exportObject(s valz.Schema) (*jsonschema.Schema, error) {
	obj, ok := s.(*dsl.ObjectSchema)
	if !ok {
		return nil, unexportable(s)
	}
	fields := obj.Fields()
	doc := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(fields)),
	}
	for _, f := range fields {
		prop, err := exportNode(f.Schema)
		if err != nil {
			return nil, err
		}
		doc.Properties[f.Name] = prop
		switch f.Schema.Kind() {
		case valz.KindOptional, valz.KindNullish, valz.KindDefault:
		default:
			doc.Required = append(doc.Required, f.Name)
		}
	}
	switch obj.Policy() {
	case valz.UnknownStrict:
		doc.AdditionalProperties = false
	default:
		doc.AdditionalProperties = true
	}
	return doc, nil
}

func exportArray(s valz.Schema) (*jsonschema.Schema, error) {
	arr, ok := s.(*dsl.ArraySchema)
	if !ok {
		return nil, unexportable(s)
	}
	items, err := exportNode(arr.Element())
	if err != nil {
		return nil, err
	}
	doc := &jsonschema.Schema{Type: "array", Items: items}
	if n, set := arr.MinLen(); set {
		doc.MinItems = &n
	}
	if n, set := arr.MaxLen(); set {
		doc.MaxItems = &n
	}
	return doc, nil
}

func exportUnion(s valz.Schema) (*jsonschema.Schema, error) {
	u, ok := s.(*dsl.UnionSchema)
	if !ok {
		return nil, unexportable(s)
	}
	cands := u.Candidates()
	doc := &jsonschema.Schema{AnyOf: make([]*jsonschema.Schema, 0, len(cands))}
	for _, c := range cands {
		sub, err := exportNode(c)
		if err != nil {
			return nil, err
		}
		doc.AnyOf = append(doc.AnyOf, sub)
	}
	return doc, nil
}

// exportNullable widens the inner document to admit null. A plain typed
// schema gets a type list; anything richer becomes anyOf with a null branch.
func exportNullable(s valz.Schema) (*jsonschema.Schema, error) {
	var inner valz.Schema
	switch t := s.(type) {
	case *dsl.NullableSchema:
		inner = t.Inner()
	case *dsl.NullishSchema:
		inner = t.Inner()
	default:
		return nil, unexportable(s)
	}
	doc, err := exportNode(inner)
	if err != nil {
		return nil, err
	}
	if t, ok := doc.Type.(string); ok && len(doc.AnyOf) == 0 && doc.Const == nil && len(doc.Enum) == 0 {
		doc.Type = []string{t, "null"}
		return doc, nil
	}
	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{doc, {Type: "null"}},
	}, nil
}

func unexportable(s valz.Schema) error {
	return fmt.Errorf("bridge: cannot export schema kind %s", s.Kind())
}
