package valz

import (
	"encoding/json"
	"fmt"
)

// absentType marks a missing value (an object field that did not appear in
// the input). It is distinct from JSON null.
type absentType struct{}

// Absent is the marker value for missing input. Optional wrappers return it
// to signal that an object field should be omitted from the output.
var Absent = absentType{}

// IsAbsent reports whether v is the Absent marker.
func IsAbsent(v any) bool {
	_, ok := v.(absentType)
	return ok
}

// TypeName reports the schema-facing type name of a raw value: "string",
// "number", "boolean", "null", "absent", "array" or "object". Values outside
// the decoded-JSON vocabulary report their Go type.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case absentType:
		return "absent"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// NumberValue widens any numeric raw value to float64. It reports false for
// non-numeric values and for json.Number payloads that do not parse.
func NumberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
