// Package sieve validates and coerces untrusted structured input against
// declarative schemas. A schema describes the expected shape of a mapping:
// its fields, their types, constraints, refinements and hooks, plus
// cross-field validators and an unknown-key policy. Parsing yields either a
// typed, normalized output mapping or an ordered collection of path-tagged
// errors.
//
// The root package holds the data model shared by every subpackage: error
// codes and collections, paths, results, contexts, ordered maps, the
// TypeHandler/Constraint capability interfaces and the process-wide type
// registry. Schemas themselves are built with the sieve/dsl package;
// built-in type handlers live in sieve/types, constraints in
// sieve/constraint, and serialization in sieve/codec.
package sieve
