package merge

import (
	"regexp"
	"time"

	"github.com/fillkit/fillkit/util"
)

// IsPlainObject reports whether v is a plain object for merge purposes:
// a non-nil string-keyed map that is not a date-like or regex-like value.
// Arrays, primitives and nil are never plain objects. The deep strategy uses
// exactly this predicate to decide recurse-vs-overwrite.
func IsPlainObject(v any) bool {
	switch v.(type) {
	case time.Time, *time.Time, regexp.Regexp, *regexp.Regexp:
		return false
	case map[string]any:
		return v.(map[string]any) != nil
	}
	return false
}

// Merge combines current and incoming under the given strategy and returns a
// new map. An invalid strategy falls back to StrategyMerge, the default.
func Merge(current, incoming map[string]any, strategy Strategy) map[string]any {
	switch strategy {
	case StrategyReplace:
		return util.CloneMap(incoming)
	case StrategyStrict:
		return strict(current, incoming)
	case StrategyDeep:
		return deep(current, incoming)
	default:
		return shallow(current, incoming)
	}
}

// shallow is the default union: every current key survives unless incoming
// also defines it; incoming-only keys are added.
func shallow(current, incoming map[string]any) map[string]any {
	out := util.CloneMap(current)
	for k, v := range incoming {
		out[k] = v
	}
	return out
}

// strict starts from current and overwrites only keys current already has.
// Incoming-only keys are dropped.
func strict(current, incoming map[string]any) map[string]any {
	out := util.CloneMap(current)
	for k := range current {
		if v, ok := incoming[k]; ok {
			out[k] = v
		}
	}
	return out
}

// deep is shallow except where both sides hold plain objects, which are
// merged recursively. Arrays and primitives always overwrite.
func deep(current, incoming map[string]any) map[string]any {
	out := util.CloneMap(current)
	for k, inV := range incoming {
		curV, exists := out[k]
		if exists && IsPlainObject(curV) && IsPlainObject(inV) {
			out[k] = deep(curV.(map[string]any), inV.(map[string]any))
			continue
		}
		out[k] = inV
	}
	return out
}
