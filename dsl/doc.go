// Package dsl provides the concrete validator kinds and constructors.
//
// Every schema value is immutable: fluent configuration methods return a new
// schema wrapping the updated configuration, so a base schema can be shared
// and derived from freely. Modifier wrappers (Optional, Nullable, Nullish,
// Default, Transform) compose uniformly over any valz.Schema and nest in any
// order.
package dsl
