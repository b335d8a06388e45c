package binding

import (
	"context"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/fillkit/fillkit/errors"
	"github.com/fillkit/fillkit/fill"
	"github.com/fillkit/fillkit/merge"
	"github.com/fillkit/fillkit/source"
)

func TestBagFillReplaceUsesBulkSetter(t *testing.T) {
	store := &fakeBagStore{values: map[string]any{"old": 1}}
	b := NewBag(store, fill.Options{Strategy: merge.StrategyReplace})

	if !b.Fill(context.Background(), `{"new":2}`) {
		t.Fatal("expected success")
	}
	if len(store.bulkSets) != 1 {
		t.Fatalf("expected one bulk set, got %d", len(store.bulkSets))
	}
	if _, ok := store.values["old"]; ok {
		t.Errorf("replace must discard current values, got %v", store.values)
	}
}

func TestBagFillStrictWritesPerField(t *testing.T) {
	store := &fakeBagStore{values: map[string]any{"name": "", "email": ""}}
	b := NewBag(store, fill.Options{Strategy: merge.StrategyStrict})

	if !b.Fill(context.Background(), `{"name":"Bob","age":30}`) {
		t.Fatal("expected success")
	}
	if len(store.bulkSets) != 0 {
		t.Error("strict must not use the bulk setter")
	}
	if len(store.fieldWrites) != 1 || store.fieldWrites[0].name != "name" {
		t.Errorf("strict writes only existing keys, wrote %v", store.fieldWrites)
	}
}

func TestBagFillDeepMergesThenBulkSets(t *testing.T) {
	store := &fakeBagStore{values: map[string]any{
		"user": map[string]any{"name": "Jane"},
	}}
	no := false
	b := NewBag(store, fill.Options{Strategy: merge.StrategyDeep, Flatten: &no})

	if !b.Fill(context.Background(), `{"user":{"age":30}}`) {
		t.Fatal("expected success")
	}
	want := map[string]any{
		"user": map[string]any{"name": "Jane", "age": float64(30)},
	}
	if !reflect.DeepEqual(store.values, want) {
		t.Errorf("deep merge result = %v, want %v", store.values, want)
	}
}

func TestBagValidateOnFillFlag(t *testing.T) {
	store := &fakeBagStore{values: map[string]any{}}
	b := NewBag(store, fill.Options{}, WithValidateOnFill(false))

	b.Fill(context.Background(), `{"a":1}`)
	if len(store.bulkDidVal) != 1 || store.bulkDidVal[0] {
		t.Errorf("expected validation suppressed, got %v", store.bulkDidVal)
	}

	store2 := &fakeBagStore{values: map[string]any{}}
	NewBag(store2, fill.Options{}).Fill(context.Background(), `{"a":1}`)
	if len(store2.bulkDidVal) != 1 || !store2.bulkDidVal[0] {
		t.Errorf("expected validation triggered by default, got %v", store2.bulkDidVal)
	}
}

func TestBagFillFilesDrop(t *testing.T) {
	mk := func(name, contentType, content string) source.File {
		return source.File{
			Name:        name,
			ContentType: contentType,
			Size:        int64(len(content)),
			Open: func() (io.ReadCloser, error) {
				return io.NopCloser(strings.NewReader(content)), nil
			},
		}
	}

	store := &fakeBagStore{values: map[string]any{}}
	b := NewBag(store, fill.Options{})
	ok := b.FillFiles(context.Background(), []source.File{
		mk("ignore.txt", "text/plain", "junk"),
		mk("a.json", "", `{"a":1}`),
		mk("b.json", "", `{"b":2}`),
	})
	if !ok {
		t.Fatal("expected all JSON files to apply")
	}
	if store.values["a"] != float64(1) || store.values["b"] != float64(2) {
		t.Errorf("expected both documents applied, got %v", store.values)
	}
}

func TestBagFillFilesNoJSON(t *testing.T) {
	var got *errors.AppError
	store := &fakeBagStore{values: map[string]any{}}
	b := NewBag(store, fill.Options{
		OnError: func(_ context.Context, err *errors.AppError) { got = err },
	})

	ok := b.FillFiles(context.Background(), []source.File{
		{Name: "readme.txt", ContentType: "text/plain"},
	})
	if ok {
		t.Fatal("expected failure")
	}
	if got == nil || got.Code != errors.ErrCodeInvalidFileType {
		t.Errorf("expected INVALID_FILE_TYPE, got %v", got)
	}
}
