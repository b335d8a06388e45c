package fill

import (
	"context"

	"github.com/fillkit/fillkit/errors"
	"github.com/fillkit/fillkit/merge"
	"github.com/fillkit/fillkit/util"
)

// DefaultMaxFileSize is the byte limit applied by the file-source guards
// when Options.MaxFileSize is unset.
const DefaultMaxFileSize int64 = 1 << 20

// TransformFunc reshapes the working value after field mapping.
type TransformFunc func(ctx context.Context, data map[string]any) (map[string]any, error)

// ValidateFunc accepts or rejects the working value. Returning false fails
// the pipeline with a validation error; returning an error propagates it.
type ValidateFunc func(ctx context.Context, data map[string]any) (bool, error)

// BeforeFillFunc may veto application of otherwise-valid data. Returning
// false cancels the fill without an error.
type BeforeFillFunc func(ctx context.Context, data map[string]any) (bool, error)

// AfterFillFunc runs after a binding has applied the data, before OnSuccess.
type AfterFillFunc func(ctx context.Context, data map[string]any)

// SuccessFunc runs last on a successful, non-cancelled fill.
type SuccessFunc func(ctx context.Context, data map[string]any)

// ErrorFunc receives every failure; it is the only channel errors reach the
// caller through at the binding boundary.
type ErrorFunc func(ctx context.Context, err *errors.AppError)

// FieldMap renames flattened source keys (dot-paths) to destination keys.
// It is applied exactly once, at the top level, after flattening; unmapped
// keys pass through under their original name.
type FieldMap map[string]string

// Options configures a fill pipeline invocation.
type Options struct {
	// Strategy selects the merge behavior. Defaults to merge.StrategyMerge.
	Strategy merge.Strategy
	// FieldMap renames flattened keys. Optional.
	FieldMap FieldMap
	// Flatten controls the flatten stage. Defaults to true when nil.
	Flatten *bool
	// MaxFileSize is the byte limit for file sources. Defaults to DefaultMaxFileSize.
	MaxFileSize int64

	Transform    TransformFunc
	Validate     ValidateFunc
	OnBeforeFill BeforeFillFunc
	OnAfterFill  AfterFillFunc
	OnSuccess    SuccessFunc
	OnError      ErrorFunc
}

// ApplyDefaults fills in the default strategy, flatten flag and size limit.
func (o *Options) ApplyDefaults() {
	if o.Strategy == "" {
		o.Strategy = merge.StrategyMerge
	}
	if o.Flatten == nil {
		o.Flatten = util.Ptr(true)
	}
	if o.MaxFileSize <= 0 {
		o.MaxFileSize = DefaultMaxFileSize
	}
}

// FlattenEnabled reports whether the flatten stage runs.
func (o *Options) FlattenEnabled() bool {
	return util.DerefOr(o.Flatten, true)
}

// Result is the transient outcome of one Process invocation.
type Result struct {
	// Data is the working value after every stage that ran.
	Data map[string]any
	// Cancelled is true when the pre-fill gate vetoed application.
	Cancelled bool
}
