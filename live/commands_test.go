package live

import (
	"errors"
	"testing"

	"github.com/olzn/glint-studio/effects"
	"github.com/olzn/glint-studio/recipe"
)

func TestApply(t *testing.T) {
	store := newStore()
	v := effects.Number(1.5)

	if err := Apply(store, ClientMessage{Type: "setParam", Key: "fx1_waveSpeed", Value: &v}); err != nil {
		t.Fatal(err)
	}
	if got := store.State().Values["fx1_waveSpeed"]; got != v {
		t.Errorf("waveSpeed = %v", got)
	}
	if err := Apply(store, ClientMessage{Type: "setParam", Key: "fx1_waveSpeed"}); err == nil {
		t.Error("setParam without a value succeeded")
	}
	if err := Apply(store, ClientMessage{Type: "setParam", Key: "fx9_x", Value: &v}); !errors.Is(err, recipe.ErrUnknownInstance) {
		t.Errorf("unknown instance error = %v", err)
	}

	if err := Apply(store, ClientMessage{Type: "undo"}); err != nil {
		t.Fatal(err)
	}
	if got := store.State().Values["fx1_waveSpeed"]; got != effects.Number(1.2) {
		t.Errorf("after undo waveSpeed = %v", got)
	}
	if err := Apply(store, ClientMessage{Type: "redo"}); err != nil {
		t.Fatal(err)
	}
	if got := store.State().Values["fx1_waveSpeed"]; got != v {
		t.Errorf("after redo waveSpeed = %v", got)
	}

	if err := Apply(store, ClientMessage{Type: "preset", Preset: "cells"}); err != nil {
		t.Fatal(err)
	}
	if id := store.State().PresetID; id != "cells" {
		t.Errorf("preset = %q", id)
	}
	if err := Apply(store, ClientMessage{Type: "preset", Preset: "nope"}); !errors.Is(err, recipe.ErrUnknownPreset) {
		t.Errorf("unknown preset error = %v", err)
	}
	if err := Apply(store, ClientMessage{Type: "dance"}); !errors.Is(err, ErrUnknownMessage) {
		t.Errorf("unknown type error = %v", err)
	}
}
