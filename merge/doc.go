// Package merge combines a current state object with an incoming partial
// object under one of four strategies: merge (shallow union), replace,
// strict (existing keys only) and deep (recursive for plain objects).
//
// Merging is pure: neither input is ever mutated and the result is a fresh
// structure at every level the engine touches.
package merge
