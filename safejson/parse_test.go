package safejson

import (
	"testing"

	"github.com/fillkit/fillkit/errors"
)

func TestParseObject(t *testing.T) {
	got, err := Parse(`{"name":"Jane","age":30,"tags":["a","b"]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["name"] != "Jane" {
		t.Errorf("expected name Jane, got %v", got["name"])
	}
	if got["age"] != float64(30) {
		t.Errorf("expected age 30, got %v", got["age"])
	}
}

func TestParseRejectsNonObjectTopLevel(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"array", `[1,2,3]`},
		{"string", `"hello"`},
		{"number", `42`},
		{"boolean", `true`},
		{"null", `null`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.text)
			if !errors.HasCode(err, errors.ErrCodeParse) {
				t.Errorf("expected PARSE_ERROR, got %v", err)
			}
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse(`{"name":`)
	if !errors.HasCode(err, errors.ErrCodeParse) {
		t.Errorf("expected PARSE_ERROR, got %v", err)
	}
}

func TestParseRejectsReservedKeys(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"top level proto", `{"__proto__":{"admin":true}}`},
		{"top level constructor", `{"constructor":{}}`},
		{"top level prototype", `{"prototype":1}`},
		{"nested", `{"user":{"profile":{"__proto__":{}}}}`},
		{"inside array", `{"items":[{"ok":1},{"constructor":{}}]}`},
		{"deep inside array", `{"a":[[{"b":{"prototype":null}}]]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.text)
			if !errors.HasCode(err, errors.ErrCodeParse) {
				t.Errorf("expected PARSE_ERROR, got %v", err)
			}
		})
	}
}

func TestParseRoundTripsWithoutReservedKeys(t *testing.T) {
	// Same shapes as above with the reserved key removed parse fine.
	got, err := Parse(`{"user":{"profile":{"name":"Jane"}},"items":[{"ok":1}]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	user, ok := got["user"].(map[string]any)
	if !ok {
		t.Fatal("expected nested user object")
	}
	profile := user["profile"].(map[string]any)
	if profile["name"] != "Jane" {
		t.Errorf("expected nested name, got %v", profile["name"])
	}
}

func TestCheckValuePreParsed(t *testing.T) {
	bad := map[string]any{
		"outer": []any{map[string]any{"__proto__": 1}},
	}
	if err := CheckValue(bad); !errors.HasCode(err, errors.ErrCodeParse) {
		t.Errorf("expected PARSE_ERROR, got %v", err)
	}
	good := map[string]any{"outer": []any{map[string]any{"x": 1}}}
	if err := CheckValue(good); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
