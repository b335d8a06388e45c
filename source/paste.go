package source

import (
	"encoding/json"
	"strings"
)

// FilterPaste is the pre-filter for clipboard-style input. Pasted text is
// forwarded only when it looks like a JSON document: after trimming it must
// start with '{' or '[' and must independently parse as valid JSON.
// Everything else is silently ignored — ok is false and no error exists,
// because arbitrary clipboard content is not a failure.
func FilterPaste(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return "", false
	}
	if !json.Valid([]byte(trimmed)) {
		return "", false
	}
	return trimmed, true
}
