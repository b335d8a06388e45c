package binding

import (
	"context"

	"github.com/fillkit/fillkit/fill"
	"github.com/fillkit/fillkit/merge"
)

// Field binds the pipeline to a field-granular form container.
//
// Replace uses the container's bulk-reset primitive. Strict sets only fields
// already present in the container's current values. Merge and deep set
// every incoming field individually by dotted path — the deep strategy's
// recursive semantics are intentionally not reproduced at this layer, since
// values are written per leaf path rather than merged as nested structures.
type Field struct {
	base
	store     FieldStore
	fieldOpts SetFieldOptions
}

// FieldOption configures a Field binding at setup.
type FieldOption func(*Field)

// WithSetFieldOptions overrides the per-field side-effect flags,
// which otherwise all default to true.
func WithSetFieldOptions(o SetFieldOptions) FieldOption {
	return func(f *Field) { f.fieldOpts = o }
}

// NewField creates a Field binding over store.
func NewField(store FieldStore, opts fill.Options, fieldOpts ...FieldOption) *Field {
	f := &Field{store: store, fieldOpts: DefaultSetFieldOptions()}
	f.base = newBase(opts, f.applyFields)
	for _, o := range fieldOpts {
		o(f)
	}
	return f
}

func (f *Field) applyFields(_ context.Context, data map[string]any) error {
	if f.opts.Strategy == merge.StrategyReplace {
		f.store.Reset(data)
		return nil
	}

	current := f.store.Values()
	for name, value := range data {
		if f.opts.Strategy == merge.StrategyStrict {
			if _, exists := current[name]; !exists {
				continue
			}
		}
		f.store.SetField(name, value, f.fieldOpts)
	}
	return nil
}
