package merge

import "fmt"

// Strategy selects how an incoming partial object combines with current state.
type Strategy string

const (
	// StrategyMerge is a shallow union: incoming keys win, current-only keys survive.
	StrategyMerge Strategy = "merge"
	// StrategyReplace substitutes the incoming object wholesale.
	StrategyReplace Strategy = "replace"
	// StrategyStrict overwrites only keys already present in the current state.
	StrategyStrict Strategy = "strict"
	// StrategyDeep merges nested plain objects recursively; arrays and
	// primitives overwrite.
	StrategyDeep Strategy = "deep"
)

// Valid reports whether s is one of the four strategies.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyMerge, StrategyReplace, StrategyStrict, StrategyDeep:
		return true
	}
	return false
}

func (s Strategy) String() string { return string(s) }

// ParseStrategy converts a configuration string to a Strategy.
// An empty string resolves to the default StrategyMerge.
func ParseStrategy(s string) (Strategy, error) {
	if s == "" {
		return StrategyMerge, nil
	}
	st := Strategy(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown merge strategy %q (expected merge, replace, strict or deep)", s)
	}
	return st, nil
}
