package safejson

import (
	"encoding/json"

	"github.com/fillkit/fillkit/errors"
)

// ReservedKeys are the key names rejected at any depth of a parsed document.
var ReservedKeys = []string{"__proto__", "constructor", "prototype"}

var reserved = map[string]bool{
	"__proto__":   true,
	"constructor": true,
	"prototype":   true,
}

// Parse decodes text as JSON and returns the top-level object.
//
// It fails with a parse-kind error when the text is not valid JSON, when the
// top-level value is not an object (arrays, strings, numbers, booleans and
// null are rejected), or when any key in the parsed graph is reserved. The
// reserved-key scan runs after structural parsing and visits every object
// reachable from the root, including objects nested inside arrays.
func Parse(text string) (map[string]any, error) {
	return ParseBytes([]byte(text))
}

// ParseBytes is Parse for a raw byte slice.
func ParseBytes(text []byte) (map[string]any, error) {
	var v any
	if err := json.Unmarshal(text, &v); err != nil {
		return nil, errors.Parse(err.Error()).WithCause(err)
	}

	obj, ok := v.(map[string]any)
	if !ok || obj == nil {
		return nil, errors.Parse("top-level JSON value must be an object")
	}

	if err := CheckValue(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// CheckValue scans an already-parsed value depth-first for reserved keys.
// It returns a parse-kind error naming the first offending key, or nil.
// Pre-parsed object inputs entering the pipeline go through the same scan as
// freshly parsed text.
func CheckValue(v any) error {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			if reserved[k] {
				return errors.ReservedKey(k)
			}
			if err := CheckValue(child); err != nil {
				return err
			}
		}
	case []any:
		for _, child := range val {
			if err := CheckValue(child); err != nil {
				return err
			}
		}
	}
	return nil
}
