// Package dsl builds and runs schemas. A Builder accumulates fields,
// cross-field validators and an unknown-key policy, then freezes into an
// immutable Schema. Parsing walks fields in declaration order, runs each
// field's pipeline (preprocess, coerce, constrain, refine, transform) and
// either returns the normalized output mapping or the full ordered error
// collection.
//
//	schema := dsl.New().
//		Field("name").Of(types.String()).Min(1).Max(100).
//		Field("email").Of(types.String()).Format("email").
//		Field("age").Of(types.Integer()).Min(0).Optional().
//		MustBuild()
//
//	result := schema.SafeParse(sieve.EmptyContext, input)
package dsl
