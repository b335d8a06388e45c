package fill

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fillkit/fillkit/errors"
	"github.com/fillkit/fillkit/flatten"
	"github.com/fillkit/fillkit/logger"
	"github.com/fillkit/fillkit/observability"
	"github.com/fillkit/fillkit/safejson"
)

// Stage span names.
const (
	spanProcess    = "fill.process"
	spanParse      = "fill.parse"
	spanFlatten    = "fill.flatten"
	spanMap        = "fill.map"
	spanTransform  = "fill.transform"
	spanValidate   = "fill.validate"
	spanBeforeFill = "fill.before_fill"
)

// Process runs the ingest pipeline over input, which is either raw JSON
// (string or []byte) or an already-parsed map[string]any.
//
// Stage order is fixed: parse, flatten (unless disabled), field map,
// transform, validate, pre-fill gate. Hooks receive ctx and may block.
// Failures return a typed *errors.AppError: recognized typed errors raised
// by hooks pass through unchanged, anything else is wrapped preserving its
// message. A pre-fill gate returning false yields Result.Cancelled with a
// nil error. Once past the gate the invocation always runs to completion.
func Process(ctx context.Context, input any, opts Options) (Result, *errors.AppError) {
	opts.ApplyDefaults()

	fillID := uuid.NewString()
	log := logger.Get("fill").WithFields(logger.Fields(
		logger.FieldFillID, fillID,
		logger.FieldStrategy, opts.Strategy.String(),
	))
	start := time.Now()

	ctx, span := observability.StartSpan(ctx, spanProcess)
	defer span.End()
	observability.SetSpanAttribute(ctx, "fill.id", fillID)
	observability.SetSpanAttribute(ctx, "fill.strategy", opts.Strategy.String())

	res, err := run(ctx, input, opts)

	status := "ok"
	switch {
	case err != nil:
		status = "error"
		observability.SetSpanError(ctx, err)
		log.Error("fill pipeline failed", logger.ErrorFields("process", err))
	case res.Cancelled:
		status = "cancelled"
		log.Debug("fill cancelled by pre-fill gate")
	default:
		log.Debug("fill pipeline completed", logger.Fields(
			logger.FieldKeys, len(res.Data),
			logger.FieldDuration, time.Since(start).Milliseconds(),
		))
	}
	observability.RecordFill(ctx, opts.Strategy.String(), status, time.Since(start))

	return res, err
}

func run(ctx context.Context, input any, opts Options) (Result, *errors.AppError) {
	data, err := parseStage(ctx, input)
	if err != nil {
		return Result{}, err
	}

	if opts.FlattenEnabled() {
		data = stage(ctx, spanFlatten, data, flatten.Flatten)
	}

	data = stage(ctx, spanMap, data, func(d map[string]any) map[string]any {
		return ApplyFieldMap(d, opts.FieldMap)
	})

	if opts.Transform != nil {
		sctx, span := observability.StartSpan(ctx, spanTransform)
		out, terr := opts.Transform(sctx, data)
		if terr != nil {
			observability.SetSpanError(sctx, terr)
			span.End()
			return Result{}, errors.Normalize(terr)
		}
		span.End()
		data = out
	}

	if opts.Validate != nil {
		sctx, span := observability.StartSpan(ctx, spanValidate)
		ok, verr := opts.Validate(sctx, data)
		if verr != nil {
			observability.SetSpanError(sctx, verr)
			span.End()
			return Result{}, errors.Normalize(verr)
		}
		span.End()
		if !ok {
			return Result{}, errors.Validation("")
		}
	}

	if opts.OnBeforeFill != nil {
		sctx, span := observability.StartSpan(ctx, spanBeforeFill)
		proceed, gerr := opts.OnBeforeFill(sctx, data)
		if gerr != nil {
			observability.SetSpanError(sctx, gerr)
			span.End()
			return Result{}, errors.Normalize(gerr)
		}
		span.End()
		if !proceed {
			return Result{Data: data, Cancelled: true}, nil
		}
	}

	return Result{Data: data}, nil
}

// parseStage resolves the raw input into a checked object. Text inputs go
// through the safe parser; pre-parsed maps get the same reserved-key scan.
func parseStage(ctx context.Context, input any) (map[string]any, *errors.AppError) {
	sctx, span := observability.StartSpan(ctx, spanParse)
	defer span.End()

	var (
		data map[string]any
		err  error
	)
	switch in := input.(type) {
	case string:
		data, err = safejson.Parse(in)
	case []byte:
		data, err = safejson.ParseBytes(in)
	case map[string]any:
		data, err = in, safejson.CheckValue(in)
	default:
		err = errors.Parse("input must be JSON text or a string-keyed object")
	}
	if err != nil {
		observability.SetSpanError(sctx, err)
		return nil, errors.Normalize(err)
	}
	return data, nil
}

// stage wraps a pure in-memory transformation in a span.
func stage(ctx context.Context, name string, data map[string]any, fn func(map[string]any) map[string]any) map[string]any {
	_, span := observability.StartSpan(ctx, name)
	defer span.End()
	return fn(data)
}
