// Package flatten converts nested objects to and from single-level maps
// with dot-joined path keys.
//
// Arrays and date-like values are atomic leaves: they are assigned verbatim
// and never traversed into, regardless of their internal structure.
package flatten
