package binding

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fillkit/fillkit/errors"
	"github.com/fillkit/fillkit/fill"
	"github.com/fillkit/fillkit/merge"
)

func TestPlainFillShallowMerge(t *testing.T) {
	store := &fakeValueStore{v: map[string]any{"name": "", "email": "keep@x.com"}}
	b := NewPlain(store, fill.Options{})

	if !b.Fill(context.Background(), `{"name":"Bob"}`) {
		t.Fatal("expected success")
	}
	want := map[string]any{"name": "Bob", "email": "keep@x.com"}
	if !reflect.DeepEqual(store.v, want) {
		t.Errorf("store = %v, want %v", store.v, want)
	}
}

func TestPlainFillReplace(t *testing.T) {
	store := &fakeValueStore{v: map[string]any{"old": 1}}
	b := NewPlain(store, fill.Options{Strategy: merge.StrategyReplace})

	if !b.Fill(context.Background(), `{"new":2}`) {
		t.Fatal("expected success")
	}
	if _, ok := store.v["old"]; ok {
		t.Errorf("replace must discard current state, got %v", store.v)
	}
}

func TestPlainReset(t *testing.T) {
	initial := map[string]any{"name": "init"}
	store := &fakeValueStore{v: map[string]any{"name": "init"}}
	b := NewPlain(store, fill.Options{}, WithInitial(initial))

	b.Fill(context.Background(), `{"name":"changed"}`)
	if store.v["name"] != "changed" {
		t.Fatal("fill did not apply")
	}
	if !b.Reset() {
		t.Fatal("expected reset to succeed")
	}
	if store.v["name"] != "init" {
		t.Errorf("expected restored initial value, got %v", store.v)
	}
}

func TestPlainResetWithoutInitial(t *testing.T) {
	store := &fakeValueStore{v: map[string]any{}}
	b := NewPlain(store, fill.Options{})
	if b.Reset() {
		t.Error("reset must return false when no initial value was captured")
	}
}

func TestPlainCancellationLeavesStateUntouched(t *testing.T) {
	var errCalls, successCalls, afterCalls int
	store := &fakeValueStore{v: map[string]any{"name": "before"}}
	b := NewPlain(store, fill.Options{
		OnBeforeFill: func(context.Context, map[string]any) (bool, error) { return false, nil },
		OnError:      func(context.Context, *errors.AppError) { errCalls++ },
		OnAfterFill:  func(context.Context, map[string]any) { afterCalls++ },
		OnSuccess:    func(context.Context, map[string]any) { successCalls++ },
	})

	if b.Fill(context.Background(), `{"name":"after"}`) {
		t.Fatal("cancelled fill must report failure to the caller")
	}
	if store.v["name"] != "before" {
		t.Error("cancelled fill must not touch the container")
	}
	if store.setCalls != 0 {
		t.Error("cancelled fill must not call the updater")
	}
	if errCalls != 0 || successCalls != 0 || afterCalls != 0 {
		t.Error("cancellation fires no callbacks")
	}
}

func TestPlainErrorDispatch(t *testing.T) {
	var got *errors.AppError
	store := &fakeValueStore{v: map[string]any{}}
	b := NewPlain(store, fill.Options{
		OnError: func(_ context.Context, err *errors.AppError) { got = err },
	})

	if b.Fill(context.Background(), `not json`) {
		t.Fatal("expected failure")
	}
	if got == nil || got.Code != errors.ErrCodeParse {
		t.Errorf("expected PARSE_ERROR via callback, got %v", got)
	}
	if store.setCalls != 0 {
		t.Error("no partial state may be applied on failure")
	}
}

func TestPlainCallbackOrder(t *testing.T) {
	var order []string
	store := &fakeValueStore{v: map[string]any{}}
	b := NewPlain(store, fill.Options{
		OnAfterFill: func(context.Context, map[string]any) { order = append(order, "after") },
		OnSuccess:   func(context.Context, map[string]any) { order = append(order, "success") },
	})

	if !b.Fill(context.Background(), `{"a":1}`) {
		t.Fatal("expected success")
	}
	if !reflect.DeepEqual(order, []string{"after", "success"}) {
		t.Errorf("callback order = %v, want [after success]", order)
	}
}

func TestPlainFillFileTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.json")
	if err := os.WriteFile(path, make([]byte, 2048), 0o644); err != nil {
		t.Fatal(err)
	}

	var got *errors.AppError
	store := &fakeValueStore{v: map[string]any{}}
	b := NewPlain(store, fill.Options{
		MaxFileSize: 1024,
		OnError:     func(_ context.Context, err *errors.AppError) { got = err },
	})

	if b.FillFile(context.Background(), path) {
		t.Fatal("expected failure")
	}
	if got == nil || got.Code != errors.ErrCodeFileTooLarge {
		t.Errorf("expected FILE_TOO_LARGE, got %v", got)
	}
}

func TestPlainFillFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	if err := os.WriteFile(path, []byte(`{"name":"Jane"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	store := &fakeValueStore{v: map[string]any{}}
	b := NewPlain(store, fill.Options{})
	if !b.FillFile(context.Background(), path) {
		t.Fatal("expected success")
	}
	if store.v["name"] != "Jane" {
		t.Errorf("unexpected state %v", store.v)
	}
}

func TestPlainFillPasteIgnoresNonJSON(t *testing.T) {
	var errCalls int
	store := &fakeValueStore{v: map[string]any{}}
	b := NewPlain(store, fill.Options{
		OnError: func(context.Context, *errors.AppError) { errCalls++ },
	})

	if b.FillPaste(context.Background(), "hello world") {
		t.Fatal("non-JSON paste must not apply")
	}
	if errCalls != 0 {
		t.Error("non-JSON paste is ignored silently, no error callback")
	}
	if store.setCalls != 0 {
		t.Error("non-JSON paste must not touch the container")
	}
}

func TestPlainFillPaste(t *testing.T) {
	store := &fakeValueStore{v: map[string]any{}}
	b := NewPlain(store, fill.Options{})
	if !b.FillPaste(context.Background(), ` {"name":"Jane"}`) {
		t.Fatal("expected success")
	}
	if store.v["name"] != "Jane" {
		t.Errorf("unexpected state %v", store.v)
	}
}
