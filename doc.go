// Package valz provides:
//
// - Composable runtime validation of untyped values via immutable Schema trees
// - A stable error model via Issues (segment paths, code, message)
// - Modifier wrappers (optional/nullable/nullish/default/transform) that compose uniformly
// - A bidirectional JSON Schema bridge under bridge/
//
// Design policy:
// - Keep only public APIs in the root package; concrete validator kinds live under dsl/.
// - Place the interchange document model under jsonschema/ and the CLI under cmd/valz.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := dsl.Object(
//		dsl.Field{Name: "id", Schema: dsl.Number().Int().Positive()},
//		dsl.Field{Name: "email", Schema: dsl.Optional(dsl.String().Email())},
//	)
//	res := valz.SafeParse(s, input)
//	doc, err := bridge.Export(s, bridge.Options{})
package valz
