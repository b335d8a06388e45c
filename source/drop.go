package source

import (
	"github.com/fillkit/fillkit/errors"
)

// PickJSON filters a dropped set of files down to the JSON ones, in order.
// It fails with an invalid-file-type error when none qualify.
func PickJSON(files []File) ([]File, error) {
	picked := make([]File, 0, len(files))
	for _, f := range files {
		if f.IsJSON() {
			picked = append(picked, f)
		}
	}
	if len(picked) == 0 {
		return nil, errors.NoJSONFiles()
	}
	return picked, nil
}
