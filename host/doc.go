// Package host supplies a concrete evaluation contract for the expression
// language in package lang, modeled after script engine semantics: every
// value is a byte vector, arithmetic treats vectors as unsigned big-endian
// integers of arbitrary width, and "||" concatenates vectors.
//
// An [Env] holds named variables and registered functions. It ships with a
// small set of built-in functions (len, cat, rev, hex) and can preload
// variables from a YAML document whose values are themselves expressions
// evaluated against the environment.
package host
