// Package errors provides unified error handling for fillkit.
// It implements structured error types with error codes covering the five
// fill failure kinds, plus normalization of arbitrary errors at the
// adapter boundary.
package errors
