package live

import (
	"io"
	"log"
	"reflect"
	"strings"
	"testing"

	"github.com/olzn/glint-studio/effects"
	"github.com/olzn/glint-studio/recipe"
	"github.com/olzn/glint-studio/translator"
)

type fakeTarget struct {
	compiles int
	fragment string
	fail     bool
	set      []string
	values   map[string]effects.Value
}

func (f *fakeTarget) Compile(vs, fs string) []translator.Diagnostic {
	f.compiles++
	f.fragment = fs
	if f.fail {
		return []translator.Diagnostic{{Line: 3, Message: "syntax error"}}
	}
	return nil
}

func (f *fakeTarget) SetUniform(name string, typ effects.ParamType, v effects.Value) {
	if f.values == nil {
		f.values = map[string]effects.Value{}
	}
	f.set = append(f.set, name)
	f.values[name] = v
}

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func newStore() *recipe.Store {
	return recipe.NewStore(recipe.Config{IDs: recipe.NewIDSource(), Logger: quietLogger()})
}

func TestSyncerRecompilesOnlyOnStructure(t *testing.T) {
	store := newStore()
	target := &fakeTarget{}
	s := NewSyncer(target, SyncerConfig{Logger: quietLogger()})
	detach := s.Attach(store)

	if target.compiles != 1 || !strings.Contains(target.fragment, "u_fx1_waveSpeed") {
		t.Fatalf("initial sync: %d compiles", target.compiles)
	}
	st := store.State()
	if want := len(st.Uniforms(s.Result())); len(target.set) != want {
		t.Fatalf("initial push = %d uniforms, want %d", len(target.set), want)
	}

	edits := []struct {
		name     string
		edit     func() error
		compiles int
		set      []string
	}{
		{"param", func() error { return store.SetParam("fx1_waveSpeed", effects.Number(1.5)) }, 1, []string{"u_fx1_waveSpeed"}},
		{"same param value", func() error { return store.SetParam("fx1_waveSpeed", effects.Number(1.5)) }, 1, nil},
		{"color", func() error { return store.SetColor(0, "#123456") }, 1, []string{"u_color0"}},
		{"stop", func() error { return store.SetStop(1, 0.95) }, 1, []string{"u_stop1"}},
		{"rename", func() error { return store.Rename("Other") }, 1, nil},
		{"add color", func() error { return store.AddColor("#ffffff") }, 2, nil},
		{"toggle", func() error { return store.ToggleEffect("fx3", false) }, 3, nil},
	}
	for _, e := range edits {
		target.set = nil
		if err := e.edit(); err != nil {
			t.Fatalf("%s: %v", e.name, err)
		}
		if target.compiles != e.compiles {
			t.Errorf("%s: compiles = %d, want %d", e.name, target.compiles, e.compiles)
		}
		if e.set != nil && !reflect.DeepEqual(target.set, e.set) {
			t.Errorf("%s: pushed %v, want %v", e.name, target.set, e.set)
		}
		if e.set == nil && e.compiles == 1 && len(target.set) != 0 {
			t.Errorf("%s: pushed %v, want nothing", e.name, target.set)
		}
	}

	// a recompile pushes everything again
	if target.values["u_color2"] != effects.Text("#ffffff") {
		t.Errorf("u_color2 = %v", target.values["u_color2"])
	}
	if strings.Contains(target.fragment, "u_fx3_") {
		t.Error("disabled instance still composed")
	}

	detach()
	before := target.compiles
	if _, err := store.AddEffect("wave"); err != nil {
		t.Fatal(err)
	}
	if target.compiles != before {
		t.Error("detached syncer still compiling")
	}
}

func TestSyncerKeepsDiagnostics(t *testing.T) {
	target := &fakeTarget{fail: true}
	s := NewSyncer(target, SyncerConfig{Logger: quietLogger()})
	store := newStore()
	s.Sync(store.State())
	if d := s.Diagnostics(); len(d) != 1 || d[0].Line != 3 {
		t.Fatalf("diagnostics = %v", d)
	}
	if len(target.set) == 0 {
		t.Error("uniforms not pushed after a failed compile")
	}

	target.fail = false
	if _, err := store.AddEffect("noise"); err != nil {
		t.Fatal(err)
	}
	if !s.Sync(store.State()) {
		t.Fatal("new effect did not recompile")
	}
	if d := s.Diagnostics(); len(d) != 0 {
		t.Errorf("diagnostics after fix = %v", d)
	}
}
