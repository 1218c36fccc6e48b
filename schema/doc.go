// Package schema models JSON Schema Draft 2020-12 documents.
//
// The Schema type covers the keyword subset the typeschema engine emits:
// core ($schema, $id, $ref, $comment, $defs), metadata (title,
// description, default, examples, deprecated), type validation (type,
// enum, const), numeric/string/array/object validation, and the
// composition keywords (allOf, anyOf, oneOf, not).
//
// Two properties distinguish this model from a plain struct mapping:
//
//   - Deterministic output: properties and $defs are held in an
//     OrderedMap that preserves insertion order through both JSON and
//     YAML marshaling, so repeated generation runs produce byte-identical
//     documents.
//   - Verbatim fragments: a Schema carrying a Raw payload marshals that
//     payload untouched, which is how raw-schema overrides short-circuit
//     generated output without keyword loss.
package schema
