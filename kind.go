package valz

// Kind identifies a validator node's concrete type. Tree walkers such as the
// JSON Schema bridge switch on Kind and read the node's public configuration
// view rather than reflecting into private state.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindLiteral
	KindEnum
	KindObject
	KindArray
	KindUnion
	KindOptional
	KindNullable
	KindNullish
	KindDefault
	KindTransform
	KindCoerceString
	KindCoerceNumber
	KindCoerceBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindLiteral:
		return "literal"
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindUnion:
		return "union"
	case KindOptional:
		return "optional"
	case KindNullable:
		return "nullable"
	case KindNullish:
		return "nullish"
	case KindDefault:
		return "default"
	case KindTransform:
		return "transform"
	case KindCoerceString:
		return "coerce_string"
	case KindCoerceNumber:
		return "coerce_number"
	case KindCoerceBool:
		return "coerce_bool"
	default:
		return "unknown"
	}
}
