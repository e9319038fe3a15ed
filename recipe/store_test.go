package recipe

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/olzn/glint-studio/effects"
)

type fakeClock struct{ t time.Time }

func newClock() *fakeClock { return &fakeClock{t: time.Unix(1700000000, 0)} }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(t *testing.T, c *fakeClock) *Store {
	t.Helper()
	cfg := Config{IDs: NewIDSource()}
	if c != nil {
		cfg.Now = c.Now
	}
	return NewStore(cfg)
}

func blockIDs(st State) []string {
	var out []string
	for _, ae := range st.Effects {
		out = append(out, ae.BlockID)
	}
	return out
}

func TestInitialState(t *testing.T) {
	st := newTestStore(t, nil).State()
	if st.PresetID != "glow" || st.Name != "Glow" {
		t.Fatalf("initial preset = %q %q", st.PresetID, st.Name)
	}
	if got, want := blockIDs(st), []string{"glow-waves", "vignette", "film-grain"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("effects = %v, want %v", got, want)
	}
	if v := st.Values["fx1_waveSpeed"]; v != effects.Number(1.2) {
		t.Errorf("waveSpeed = %v", v)
	}
	if v := st.Values["fx3_intensity"]; v != effects.Number(0.04) {
		t.Errorf("film grain intensity = %v", v)
	}
	if !reflect.DeepEqual(st.Stops, []float64{0.6, 0.9}) {
		t.Errorf("stops = %v", st.Stops)
	}
	if st.Export.FunctionName != DefaultFunctionName {
		t.Errorf("function name = %q", st.Export.FunctionName)
	}
}

func TestAddEffectPlacement(t *testing.T) {
	s := newTestStore(t, nil)
	steps := []struct {
		block string
		want  []string
	}{
		{"pixelate", []string{"pixelate", "glow-waves", "vignette", "film-grain"}},
		{"wave", []string{"pixelate", "glow-waves", "wave", "vignette", "film-grain"}},
		{"kaleidoscope", []string{"pixelate", "kaleidoscope", "glow-waves", "wave", "vignette", "film-grain"}},
		{"dither", []string{"pixelate", "kaleidoscope", "glow-waves", "wave", "vignette", "film-grain", "dither"}},
	}
	for _, step := range steps {
		id, err := s.AddEffect(step.block)
		if err != nil {
			t.Fatal(err)
		}
		st := s.State()
		if got := blockIDs(st); !reflect.DeepEqual(got, step.want) {
			t.Fatalf("after adding %s: %v", step.block, got)
		}
		block, _ := effects.Default().Get(step.block)
		for _, p := range block.Params {
			if v, ok := st.Values[id+"_"+p.ID]; !ok || v != p.Default {
				t.Errorf("%s_%s = %v, want default %v", id, p.ID, v, p.Default)
			}
		}
		if st.PresetID != "" {
			t.Error("structural edit kept the preset id")
		}
	}

	if _, err := s.AddEffect("nope"); !errors.Is(err, ErrUnknownEffect) {
		t.Errorf("unknown block error = %v", err)
	}
}

func TestAddEffectIntoEmptyCategories(t *testing.T) {
	s := newTestStore(t, nil)
	if err := s.LoadPreset("blank"); err != nil {
		t.Fatal(err)
	}
	for _, b := range []string{"vignette", "wave", "pixelate"} {
		if _, err := s.AddEffect(b); err != nil {
			t.Fatal(err)
		}
	}
	if got, want := blockIDs(s.State()), []string{"pixelate", "wave", "vignette"}; !reflect.DeepEqual(got, want) {
		t.Errorf("effects = %v, want %v", got, want)
	}
}

func TestRemoveEffectClearsValues(t *testing.T) {
	s := newTestStore(t, nil)
	if err := s.RemoveEffect("fx1"); err != nil {
		t.Fatal(err)
	}
	st := s.State()
	for k := range st.Values {
		if strings.HasPrefix(k, "fx1_") {
			t.Errorf("value %s survived removal", k)
		}
	}
	if _, ok := st.Values["fx2_strength"]; !ok {
		t.Error("values of other instances removed")
	}
	if err := s.RemoveEffect("fx1"); !errors.Is(err, ErrUnknownInstance) {
		t.Errorf("second removal error = %v", err)
	}
}

func TestRemoveEffectWithSharedIDPrefix(t *testing.T) {
	s := newTestStore(t, nil)
	doc := NewDocument(State{
		Name: "Prefixes",
		Effects: []effects.ActiveEffect{
			{InstanceID: "a", BlockID: "wave", Enabled: true},
			{InstanceID: "ab", BlockID: "wave", Enabled: true},
		},
		Values: map[string]effects.Value{
			"a_frequency":  effects.Number(3),
			"ab_frequency": effects.Number(9),
		},
		Colors: []string{"#000000"},
	})
	if err := s.Load(doc); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveEffect("a"); err != nil {
		t.Fatal(err)
	}
	st := s.State()
	if _, ok := st.Values["a_frequency"]; ok {
		t.Error("a_frequency survived removal of a")
	}
	if v := st.Values["ab_frequency"]; v != effects.Number(9) {
		t.Errorf("ab_frequency = %v", v)
	}
	if err := s.RemoveEffect("ab"); err != nil {
		t.Fatal(err)
	}
	if st := s.State(); len(st.Values) != 0 {
		t.Errorf("values left after removing every instance: %v", st.Values)
	}
	d := s.Document()
	if err := d.Validate(effects.Default()); err != nil {
		t.Errorf("state no longer validates: %v", err)
	}

	doc.Effects[1].InstanceID = "a_b"
	doc.Values = map[string]effects.Value{"a_b_frequency": effects.Number(9)}
	if err := s.Load(doc); !errors.Is(err, ErrInvalidPayload) {
		t.Errorf("loading id a_b = %v, want ErrInvalidPayload", err)
	}
}

func TestRenameRejectsControlCharacters(t *testing.T) {
	s := newTestStore(t, nil)
	for _, name := range []string{"x\nexport const injected = 1;", "a\rb", "bell\a"} {
		if err := s.Rename(name); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("Rename(%q) = %v, want ErrInvalidValue", name, err)
		}
	}
	if got := s.State().Name; got != "Glow" {
		t.Errorf("name = %q after rejected renames", got)
	}
	if err := s.Rename("Dusk · v2"); err != nil {
		t.Errorf("plain name rejected: %v", err)
	}
}

func TestSetParamValidation(t *testing.T) {
	s := newTestStore(t, nil)
	tests := []struct {
		key  string
		v    effects.Value
		want error
	}{
		{"fx2_strength", effects.Number(0.8), nil},
		{"fx1_breathColor", effects.Text("#102030"), nil},
		{"fx1_breathColor", effects.Text("orange"), ErrInvalidValue},
		{"fx2_strength", effects.Text("#102030"), ErrInvalidValue},
		{"fx2_missing", effects.Number(1), ErrUnknownParam},
		{"fx99_strength", effects.Number(1), ErrUnknownInstance},
	}
	for _, tc := range tests {
		err := s.SetParam(tc.key, tc.v)
		if tc.want == nil && err != nil || tc.want != nil && !errors.Is(err, tc.want) {
			t.Errorf("SetParam(%s, %v) = %v, want %v", tc.key, tc.v, err, tc.want)
		}
	}
	if got := s.State().Values["fx2_strength"]; got != effects.Number(0.8) {
		t.Errorf("fx2_strength = %v", got)
	}
	if s.State().PresetID != "glow" {
		t.Error("parameter edit cleared the preset id")
	}
}

func TestReorderCategory(t *testing.T) {
	s := newTestStore(t, nil)
	if err := s.ReorderCategory(effects.Post, []string{"fx3", "fx2"}); err != nil {
		t.Fatal(err)
	}
	if got, want := blockIDs(s.State()), []string{"glow-waves", "film-grain", "vignette"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("effects = %v", got)
	}

	before := s.State()
	for _, ids := range [][]string{
		{"fx1", "fx2"},
		{"fx2"},
		{"fx2", "fx2"},
		{"fx2", "fx3", "fx1"},
	} {
		if err := s.ReorderCategory(effects.Post, ids); !errors.Is(err, ErrCrossCategory) {
			t.Errorf("ReorderCategory(%v) = %v", ids, err)
		}
	}
	if !reflect.DeepEqual(before, s.State()) {
		t.Error("rejected reorder changed state")
	}
}

func TestColors(t *testing.T) {
	s := newTestStore(t, nil)
	for _, c := range []string{"#111111", "#222222", "#333333"} {
		if err := s.AddColor(c); err != nil {
			t.Fatal(err)
		}
	}
	st := s.State()
	if len(st.Colors) != MaxColors || !reflect.DeepEqual(st.Stops, []float64{0, 0.25, 0.5, 0.75, 1}) {
		t.Fatalf("colors %v stops %v", st.Colors, st.Stops)
	}
	if err := s.AddColor("#444444"); !errors.Is(err, ErrTooManyColors) {
		t.Errorf("sixth color error = %v", err)
	}
	if err := s.AddColor("#abc"); err == nil {
		t.Error("short hex accepted")
	}

	if err := s.SetStop(0, 0.1); err != nil {
		t.Fatal(err)
	}
	if err := s.MoveColor(0, 3); err != nil {
		t.Fatal(err)
	}
	st = s.State()
	if want := []string{"#ff7130", "#111111", "#432cdc", "#222222", "#333333"}; !reflect.DeepEqual(st.Colors, want) {
		t.Errorf("colors after move = %v", st.Colors)
	}
	if st.Stops[2] != 0.1 {
		t.Errorf("stop did not move with its color: %v", st.Stops)
	}

	if err := s.RemoveColor(4); err != nil {
		t.Fatal(err)
	}
	if st = s.State(); len(st.Stops) != 4 || st.Stops[3] != 1 {
		t.Errorf("stops after removal = %v", st.Stops)
	}
	if err := s.SetStop(0, 1.5); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("out of range stop error = %v", err)
	}
}

func TestUndoRedo(t *testing.T) {
	s := newTestStore(t, newClock())
	orig := s.State()
	if s.CanUndo() || s.Undo() {
		t.Fatal("fresh store has history")
	}
	if _, err := s.AddEffect("noise"); err != nil {
		t.Fatal(err)
	}
	added := s.State()
	if !s.Undo() || !reflect.DeepEqual(s.State(), orig) {
		t.Fatal("undo did not restore the original state")
	}
	if !s.CanRedo() || !s.Redo() || !reflect.DeepEqual(s.State(), added) {
		t.Fatal("redo did not restore the edit")
	}
	s.Undo()
	if err := s.Rename("Other"); err != nil {
		t.Fatal(err)
	}
	if s.CanRedo() {
		t.Error("new edit kept the redo stack")
	}
}

func TestParamEditsCoalesce(t *testing.T) {
	clock := newClock()
	s := newTestStore(t, clock)
	orig := s.State()

	for i := 1; i <= 5; i++ {
		if err := s.SetParam("fx2_strength", effects.Number(float64(i)/10)); err != nil {
			t.Fatal(err)
		}
		clock.Advance(100 * time.Millisecond)
	}
	burst := s.State()

	clock.Advance(ParamCoalesce)
	if err := s.SetParam("fx2_strength", effects.Number(0.9)); err != nil {
		t.Fatal(err)
	}

	if !s.Undo() || !reflect.DeepEqual(s.State(), burst) {
		t.Fatalf("first undo = %v, want end of burst", s.State().Values["fx2_strength"])
	}
	if !s.Undo() || !reflect.DeepEqual(s.State(), orig) {
		t.Fatalf("second undo = %v, want original", s.State().Values["fx2_strength"])
	}
	if s.Undo() {
		t.Error("burst produced more than one undo entry")
	}
}

func TestHistoryIsBounded(t *testing.T) {
	s := newTestStore(t, newClock())
	for i := 0; i < MaxHistory+10; i++ {
		if err := s.Rename(strings.Repeat("x", i%20+1)); err != nil {
			t.Fatal(err)
		}
	}
	n := 0
	for s.Undo() {
		n++
	}
	if n != MaxHistory {
		t.Errorf("undo steps = %d, want %d", n, MaxHistory)
	}
}

func TestSubscribe(t *testing.T) {
	s := newTestStore(t, nil)
	var calls []string
	unsub := s.Subscribe(func(cur, prev State) {
		calls = append(calls, prev.Name+"->"+cur.Name)
	})
	_ = s.Rename("A")
	_ = s.Rename("B")
	s.Undo()
	unsub()
	_ = s.Rename("C")
	want := []string{"Glow->A", "A->B", "B->A"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestLoadReservesIDs(t *testing.T) {
	s := newTestStore(t, nil)
	doc := NewDocument(State{
		Name:    "Loaded",
		Effects: []effects.ActiveEffect{{InstanceID: "fx40", BlockID: "wave", Enabled: true}},
		Values:  map[string]effects.Value{"fx40_frequency": effects.Number(6.5)},
		Colors:  []string{"#000000"},
	})
	if err := s.Load(doc); err != nil {
		t.Fatal(err)
	}
	id, err := s.AddEffect("noise")
	if err != nil {
		t.Fatal(err)
	}
	if id != "fx41" {
		t.Errorf("new id = %s, want fx41", id)
	}
	if st := s.State(); len(st.Stops) != 1 {
		t.Errorf("stops not repaired: %v", st.Stops)
	}

	bad := doc
	bad.Colors = []string{"red"}
	if err := s.Load(bad); !errors.Is(err, ErrInvalidPayload) {
		t.Errorf("invalid document error = %v", err)
	}
}

func TestPresetsReferenceKnownParams(t *testing.T) {
	reg := effects.Default()
	for _, p := range Presets() {
		for key, v := range p.Overrides {
			blockID, paramID, _ := strings.Cut(key, ".")
			block, ok := reg.Get(blockID)
			if !ok {
				t.Errorf("%s: unknown block %s", p.ID, blockID)
				continue
			}
			spec, ok := block.Param(paramID)
			if !ok {
				t.Errorf("%s: %s has no param %s", p.ID, blockID, paramID)
				continue
			}
			if !v.Matches(spec.Type) {
				t.Errorf("%s: %s has the wrong shape", p.ID, key)
			}
		}
		st := p.State(reg, NewIDSource())
		doc := NewDocument(st)
		if err := doc.Validate(reg); err != nil {
			t.Errorf("%s: %v", p.ID, err)
		}
	}
}
