package binding

import (
	"context"

	"github.com/fillkit/fillkit/fill"
	"github.com/fillkit/fillkit/merge"
	"github.com/fillkit/fillkit/util"
)

// Plain binds the pipeline to a generic get/set state container. Every
// strategy goes through the merge engine; for the replace strategy the
// engine substitutes the incoming value wholesale.
type Plain struct {
	base
	store      ValueStore
	initial    map[string]any
	hasInitial bool
}

// PlainOption configures a Plain binding at setup.
type PlainOption func(*Plain)

// WithInitial captures an initial value that Reset restores.
func WithInitial(values map[string]any) PlainOption {
	return func(p *Plain) {
		p.initial = util.CloneMap(values)
		p.hasInitial = true
	}
}

// NewPlain creates a Plain binding over store.
func NewPlain(store ValueStore, opts fill.Options, plainOpts ...PlainOption) *Plain {
	p := &Plain{store: store}
	p.base = newBase(opts, p.applyMerged)
	for _, o := range plainOpts {
		o(p)
	}
	return p
}

func (p *Plain) applyMerged(_ context.Context, data map[string]any) error {
	merged := merge.Merge(p.store.Value(), data, p.opts.Strategy)
	p.store.SetValue(merged)
	return nil
}

// Reset restores the initial value captured at setup. It returns false when
// none was captured.
func (p *Plain) Reset() bool {
	if !p.hasInitial {
		return false
	}
	p.store.SetValue(util.CloneMap(p.initial))
	return true
}
