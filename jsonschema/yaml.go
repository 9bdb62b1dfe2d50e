package jsonschema

import (
	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML-encoded schema document. The YAML node tree is
// normalized to JSON-like values first so map keys are always strings, then
// routed through the JSON codec so both formats share one decode path.
func ParseYAML(data []byte) (*Schema, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	b, err := gojson.Marshal(yamlNormalize(node))
	if err != nil {
		return nil, err
	}
	return Unmarshal(b)
}

// yamlNormalize converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively.
func yamlNormalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalize(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalize(t[i])
		}
		return arr
	default:
		return v
	}
}
