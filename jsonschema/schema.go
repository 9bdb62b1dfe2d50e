// Package jsonschema holds a minimal JSON Schema document model used by the
// bridge for export and import. Only the keywords the bridge understands are
// modeled; unknown keywords are dropped on decode.
package jsonschema

import (
	"bytes"

	gojson "github.com/goccy/go-json"
)

// Schema is a JSON Schema document (draft-07 subset).
type Schema struct {
	// Core
	Version     string `json:"$schema,omitempty"`
	ID          string `json:"$id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Type is either a single type string or a list of type strings.
	Type    any    `json:"type,omitempty"`
	Format  string `json:"format,omitempty"`
	Default any    `json:"default,omitempty"`
	Const   *any   `json:"const,omitempty"`
	Enum    []any  `json:"enum,omitempty"`

	// String
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Number
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Union
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// Types normalizes the type keyword to a list. A scalar "string" becomes
// ["string"]; an absent keyword yields nil.
func (s *Schema) Types() []string {
	switch t := s.Type.(type) {
	case string:
		return []string{t}
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, v := range t {
			if str, ok := v.(string); ok {
				out = append(out, str)
			}
		}
		return out
	default:
		return nil
	}
}

// Marshal renders the document as compact JSON.
func (s *Schema) Marshal() ([]byte, error) {
	return gojson.Marshal(s)
}

// MarshalIndent renders the document as indented JSON.
func (s *Schema) MarshalIndent(prefix, indent string) ([]byte, error) {
	return gojson.MarshalIndent(s, prefix, indent)
}

// Unmarshal decodes a JSON document. Numbers decode as json.Number so that
// integer defaults and enum members survive without float drift.
func Unmarshal(data []byte) (*Schema, error) {
	var s Schema
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UnmarshalJSON decodes one schema object. A "const": null keyword decodes
// into a nil pointer and would be indistinguishable from an absent keyword,
// so key presence is recovered from the raw document and a null const is
// pinned as a pointer to a nil value.
func (s *Schema) UnmarshalJSON(data []byte) error {
	type alias Schema
	var a alias
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&a); err != nil {
		return err
	}
	*s = Schema(a)
	if s.Const == nil {
		var raw map[string]gojson.RawMessage
		if gojson.Unmarshal(data, &raw) == nil {
			if _, ok := raw["const"]; ok {
				var nullValue any
				s.Const = &nullValue
			}
		}
	}
	return nil
}
