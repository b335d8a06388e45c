package validation

import (
	"context"
	"encoding/json"

	"github.com/fillkit/fillkit/errors"
	"github.com/fillkit/fillkit/fill"
)

// ForStruct builds a fill.ValidateFunc from a struct type with validate
// tags. The working value is decoded into T via a JSON round-trip and then
// tag-validated; failures surface as validation-kind errors so they pass
// through the pipeline typed.
func ForStruct[T any]() fill.ValidateFunc {
	return func(_ context.Context, data map[string]any) (bool, error) {
		raw, err := json.Marshal(data)
		if err != nil {
			return false, errors.Validation("data is not serializable").WithCause(err)
		}
		var target T
		if err := json.Unmarshal(raw, &target); err != nil {
			return false, errors.Validation("data does not match the expected shape").WithCause(err)
		}
		if err := Validate(target); err != nil {
			return false, err
		}
		return true, nil
	}
}
