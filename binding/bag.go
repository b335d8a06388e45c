package binding

import (
	"context"

	"github.com/fillkit/fillkit/fill"
	"github.com/fillkit/fillkit/merge"
)

// Bag binds the pipeline to a bag-style form container.
//
// Replace calls the bulk setter with the incoming data directly. Strict
// writes per field, only for keys already present in the container's current
// values. Merge and deep run the merge engine against the current values and
// hand the merged result to the bulk setter.
type Bag struct {
	base
	store          BagStore
	validateOnFill bool
}

// BagOption configures a Bag binding at setup.
type BagOption func(*Bag)

// WithValidateOnFill controls whether container validation is triggered on
// each write. Defaults to true.
func WithValidateOnFill(v bool) BagOption {
	return func(b *Bag) { b.validateOnFill = v }
}

// NewBag creates a Bag binding over store.
func NewBag(store BagStore, opts fill.Options, bagOpts ...BagOption) *Bag {
	b := &Bag{store: store, validateOnFill: true}
	b.base = newBase(opts, b.applyBag)
	for _, o := range bagOpts {
		o(b)
	}
	return b
}

func (b *Bag) applyBag(_ context.Context, data map[string]any) error {
	switch b.opts.Strategy {
	case merge.StrategyReplace:
		b.store.SetValues(data, b.validateOnFill)
	case merge.StrategyStrict:
		current := b.store.Values()
		for name, value := range data {
			if _, exists := current[name]; exists {
				b.store.SetFieldValue(name, value, b.validateOnFill)
			}
		}
	default:
		merged := merge.Merge(b.store.Values(), data, b.opts.Strategy)
		b.store.SetValues(merged, b.validateOnFill)
	}
	return nil
}
