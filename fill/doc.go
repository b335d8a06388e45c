// Package fill orchestrates the JSON ingest pipeline: parse, flatten,
// field-map, transform, validate and the pre-fill gate, in that fixed order.
//
// Process turns raw JSON text or an already-parsed object into a flat
// map ready to merge into form state. Caller hooks run between stages and
// may block; the pipeline suspends on each and then continues in order. A
// stage failure surfaces as a typed *errors.AppError; the pre-fill gate
// returning false yields a cancelled result instead of an error.
//
//	res, err := fill.Process(ctx, raw, fill.Options{
//	    Strategy: merge.StrategyDeep,
//	    FieldMap: fill.FieldMap{"user.first_name": "firstName"},
//	})
package fill
