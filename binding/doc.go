// Package binding applies fill pipeline output to concrete state containers.
//
// Three bindings share one pipeline core and differ only in how a value is
// applied: Plain drives a generic get/set container through the merge
// engine, Field drives a field-granular form container through per-field
// setters, and Bag drives a bag-style form container through its bulk
// setter. All three behave identically at the boundary: pipeline failures
// reach the caller only through the configured error callback and a false
// return; cancellation returns false with no callback at all; success runs
// the after-fill then success callbacks and returns true.
package binding
