package binding

import (
	"context"

	"github.com/fillkit/fillkit/errors"
	"github.com/fillkit/fillkit/fill"
	"github.com/fillkit/fillkit/logger"
	"github.com/fillkit/fillkit/observability"
	"github.com/fillkit/fillkit/source"
)

// base is the shared runner behind every binding. It owns the pipeline
// invocation, the callback discipline and the input-source helpers; concrete
// bindings contribute only the apply step.
type base struct {
	opts  fill.Options
	apply func(ctx context.Context, data map[string]any) error
	log   *logger.Logger
}

func newBase(opts fill.Options, apply func(context.Context, map[string]any) error) base {
	opts.ApplyDefaults()
	return base{opts: opts, apply: apply, log: logger.Get("binding")}
}

// Options returns the fill options the binding was built with, defaults applied.
func (b *base) Options() fill.Options { return b.opts }

// Fill runs the pipeline over input and applies the result to the bound
// container. It returns true only when a value was applied. Failures fire
// the error callback; a pre-fill cancellation fires nothing.
func (b *base) Fill(ctx context.Context, input any) bool {
	res, err := fill.Process(ctx, input, b.opts)
	if err != nil {
		b.dispatchError(ctx, err)
		return false
	}
	if res.Cancelled {
		return false
	}
	if aerr := b.apply(ctx, res.Data); aerr != nil {
		b.dispatchError(ctx, errors.Normalize(aerr))
		return false
	}
	if b.opts.OnAfterFill != nil {
		b.opts.OnAfterFill(ctx, res.Data)
	}
	if b.opts.OnSuccess != nil {
		b.opts.OnSuccess(ctx, res.Data)
	}
	return true
}

// FillFile reads path under the configured guards and fills from its content.
func (b *base) FillFile(ctx context.Context, path string) bool {
	content, err := source.ReadFile(path, b.opts.MaxFileSize)
	if err != nil {
		b.dispatchError(ctx, errors.Normalize(err))
		return false
	}
	observability.RecordInputSize(ctx, "file", int64(len(content)))
	return b.Fill(ctx, content)
}

// FillFiles handles a multi-file drop: every JSON file among the dropped
// items is processed in order. It returns true when all of them applied.
// A drop with no JSON files fires the error callback once.
func (b *base) FillFiles(ctx context.Context, files []source.File) bool {
	picked, err := source.PickJSON(files)
	if err != nil {
		b.dispatchError(ctx, errors.Normalize(err))
		return false
	}
	ok := true
	for _, f := range picked {
		content, rerr := source.Read(f, b.opts.MaxFileSize)
		if rerr != nil {
			b.dispatchError(ctx, errors.Normalize(rerr))
			ok = false
			continue
		}
		observability.RecordInputSize(ctx, "drop", int64(len(content)))
		if !b.Fill(ctx, content) {
			ok = false
		}
	}
	return ok
}

// FillPaste forwards pasted text when it passes the paste pre-filter.
// Text that does not look like JSON is ignored silently: no callback fires
// and false is returned.
func (b *base) FillPaste(ctx context.Context, text string) bool {
	doc, ok := source.FilterPaste(text)
	if !ok {
		return false
	}
	observability.RecordInputSize(ctx, "paste", int64(len(doc)))
	return b.Fill(ctx, doc)
}

func (b *base) dispatchError(ctx context.Context, err *errors.AppError) {
	b.log.Error("fill failed", logger.ErrorFields("fill", err))
	if b.opts.OnError != nil {
		b.opts.OnError(ctx, err)
	}
}
