// Package types defines the adapter contract and error taxonomy for the
// query-ast engine.
//
// The engine never inspects raw tree nodes directly: every read and every
// reconstruction goes through the five functions of an Adapter. This package
// provides that contract, defaults for the common {type, value} node shape,
// and construction-time validation.
//
// Errors use typed categories (input/config/argument) with stable sentinels,
// so callers can branch on intent with errors.Is rather than matching text.
//
// This package has no dependencies beyond the standard library.
package types
