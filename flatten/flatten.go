package flatten

import (
	"strings"
)

// Flatten collapses a nested object into a single-level map keyed by
// dot-joined paths. Nested plain objects are recursed into; every other
// value (arrays, date-like values, primitives, nil) is assigned verbatim as
// a leaf. Sibling branches write into one shared accumulator, so a key
// collision resolves last-write-wins by traversal order.
func Flatten(obj map[string]any) map[string]any {
	acc := make(map[string]any, len(obj))
	flattenInto(obj, "", acc)
	return acc
}

func flattenInto(obj map[string]any, prefix string, acc map[string]any) {
	for key, value := range obj {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if child, ok := value.(map[string]any); ok && child != nil {
			flattenInto(child, path, acc)
			continue
		}
		acc[path] = value
	}
}

// Unflatten rebuilds a nested object from a flattened map. It is the inverse
// of Flatten for trees whose leaves are all non-object values. A path segment
// that collides with an existing leaf replaces it.
func Unflatten(flat map[string]any) map[string]any {
	out := make(map[string]any)
	for key, value := range flat {
		parts := strings.Split(key, ".")
		cur := out
		for _, part := range parts[:len(parts)-1] {
			next, ok := cur[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				cur[part] = next
			}
			cur = next
		}
		cur[parts[len(parts)-1]] = value
	}
	return out
}
