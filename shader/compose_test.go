package shader

import (
	"strings"
	"testing"

	"github.com/olzn/glint-studio/effects"
)

func fx(id, block string) effects.ActiveEffect {
	return effects.ActiveEffect{InstanceID: id, BlockID: block, Enabled: true}
}

func TestComposeDeterministic(t *testing.T) {
	a := []effects.ActiveEffect{fx("fx1", "kaleidoscope"), fx("fx2", "domain-warp"), fx("fx3", "vignette")}
	b := append([]effects.ActiveEffect(nil), a...)
	r1 := Compose(a, 3)
	r2 := Compose(b, 3)
	if r1.GLSL != r2.GLSL {
		t.Fatal("composing equal recipes produced different GLSL")
	}
	if len(r1.Params) != len(r2.Params) {
		t.Fatal("param lists differ")
	}
}

func TestComposeWaveAndVignette(t *testing.T) {
	res := Compose([]effects.ActiveEffect{fx("A", "wave"), fx("B", "vignette")}, 2)
	src := res.GLSL

	wave, _ := effects.Default().Get("wave")
	vig, _ := effects.Default().Get("vignette")
	if got, want := strings.Count(src, "uniform float u_A_"), len(wave.Params); got != want {
		t.Errorf("A declarations = %d, want %d", got, want)
	}
	if got, want := strings.Count(src, "uniform float u_B_"), len(vig.Params); got != want {
		t.Errorf("B declarations = %d, want %d", got, want)
	}
	if len(res.Params) != len(wave.Params)+len(vig.Params) {
		t.Errorf("params = %d", len(res.Params))
	}

	ramp := src[strings.Index(src, "vec3 colorRamp("):strings.Index(src, "void main()")]
	for _, name := range []string{"u_color0", "u_color1", "u_stop0", "u_stop1"} {
		if !strings.Contains(src, "uniform ") || !strings.Contains(ramp, name) {
			t.Errorf("color ramp does not reference %s", name)
		}
	}

	main := src[strings.Index(src, "void main()"):]
	ia := strings.Index(main, "u_A_frequency")
	ib := strings.Index(main, "u_B_strength")
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("generator body must precede post body (A@%d B@%d)", ia, ib)
	}
	// post runs after the generator scope closes, outside mixFactor's reach
	open := strings.Index(main, "float mixFactor")
	closing := open + strings.Index(main[open:], "\n  }\n")
	if open < 0 || closing < open || strings.Index(main, "// Vignette (B)") < closing {
		t.Error("post body emitted inside the generator scope")
	}
}

func section(src, header string) string {
	i := strings.Index(src, header)
	if i < 0 {
		return ""
	}
	rest := src[i:]
	if j := strings.Index(rest, "\n\n"); j >= 0 {
		return rest[:j]
	}
	return rest
}

func TestRemovingInstanceLeavesOthersUntouched(t *testing.T) {
	both := Compose([]effects.ActiveEffect{fx("A", "noise"), fx("B", "vignette")}, 2).GLSL
	only := Compose([]effects.ActiveEffect{fx("B", "vignette")}, 2).GLSL

	if section(both, "// Vignette (B)\nuniform") != section(only, "// Vignette (B)\nuniform") {
		t.Error("B declarations changed")
	}
	if section(both, "  // Vignette (B)\n  {") != section(only, "  // Vignette (B)\n  {") {
		t.Error("B body changed")
	}
	if !strings.Contains(both, "float fbm(") || !strings.Contains(both, "float hash(") {
		t.Error("noise utilities missing")
	}
	for _, sig := range []string{"float hash(", "float noise(", "float fbm("} {
		if strings.Contains(only, sig) {
			t.Errorf("%s still emitted after removing its only user", sig)
		}
	}
}

func TestScopingIsolation(t *testing.T) {
	res := Compose([]effects.ActiveEffect{fx("fx1", "wave"), fx("fx2", "wave")}, 2)
	seen := map[string]bool{}
	for _, line := range strings.Split(res.GLSL, "\n") {
		if strings.HasPrefix(line, "uniform ") {
			if seen[line] {
				t.Errorf("duplicate declaration %q", line)
			}
			seen[line] = true
		}
	}
	if !strings.Contains(res.GLSL, "u_fx1_frequency") || !strings.Contains(res.GLSL, "u_fx2_frequency") {
		t.Error("instances not scoped separately")
	}
	if strings.Contains(res.GLSL, "$frequency") {
		t.Error("unsubstituted token left in output")
	}
}

func TestCategoryGroupingAndOrder(t *testing.T) {
	recipe := []effects.ActiveEffect{
		fx("p1", "vignette"),
		fx("g1", "wave"),
		fx("u1", "pixelate"),
		fx("p2", "film-grain"),
		fx("g2", "gradient"),
		fx("u2", "kaleidoscope"),
	}
	main := func(r []effects.ActiveEffect) string {
		src := Compose(r, 2).GLSL
		return src[strings.Index(src, "void main()"):]
	}
	order := func(src string, ids ...string) bool {
		last := -1
		for _, id := range ids {
			i := strings.Index(src, "("+id+")")
			if i < last {
				return false
			}
			last = i
		}
		return true
	}
	m := main(recipe)
	if !order(m, "u1", "u2", "g1", "g2", "p1", "p2") {
		t.Fatalf("unexpected emission order:\n%s", m)
	}

	swapped := append([]effects.ActiveEffect(nil), recipe...)
	swapped[0], swapped[3] = swapped[3], swapped[0] // swap the two post effects
	m2 := main(swapped)
	if !order(m2, "u1", "u2", "g1", "g2", "p2", "p1") {
		t.Fatalf("post reorder not reflected:\n%s", m2)
	}
	cut := strings.Index(m, "// Vignette")
	if m[:cut] != m2[:strings.Index(m2, "// Film Grain")] {
		t.Error("reordering post effects changed earlier groups")
	}
}

func TestComposeSkipsDisabledAndUnknown(t *testing.T) {
	off := fx("fx1", "wave")
	off.Enabled = false
	res := Compose([]effects.ActiveEffect{off, fx("fx2", "does-not-exist"), fx("fx3", "brightness")}, 0)
	if strings.Contains(res.GLSL, "fx1") || strings.Contains(res.GLSL, "fx2") {
		t.Error("disabled or unknown instance emitted")
	}
	if len(res.Params) != 1 || res.Params[0].ID != "fx3_amount" {
		t.Errorf("params = %+v", res.Params)
	}
	if strings.Contains(res.GLSL, "mixFactor") {
		t.Error("generator scope emitted without generators")
	}
}

func TestPostMixFollowsItsGenerator(t *testing.T) {
	res := Compose([]effects.ActiveEffect{fx("g1", "domain-warp"), fx("g2", "wave")}, 2)
	start := strings.Index(res.GLSL, "void main()")
	if start < 0 {
		t.Fatal("main missing")
	}
	// the declaration block carries the same headers, so only look at main
	body := res.GLSL[start:]
	post := strings.Index(body, "color *= 0.85 + 0.15")
	if post < 0 {
		t.Fatal("post-mix code missing")
	}
	warp := strings.Index(body, "// Domain Warp (g1)")
	wave := strings.Index(body, "// Wave (g2)")
	if warp < 0 || wave < 0 {
		t.Fatalf("generator headers missing from main: warp=%d wave=%d", warp, wave)
	}
	if !(warp < post && post < wave) {
		t.Errorf("post-mix code at %d, want between %d and %d", post, warp, wave)
	}
}

func TestEqualStops(t *testing.T) {
	tests := []struct {
		n    int
		want []float64
	}{
		{0, []float64{}},
		{1, []float64{0}},
		{2, []float64{0, 1}},
		{5, []float64{0, 0.25, 0.5, 0.75, 1}},
	}
	for _, tc := range tests {
		got := EqualStops(tc.n)
		if len(got) != len(tc.want) {
			t.Fatalf("EqualStops(%d) = %v", tc.n, got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("EqualStops(%d)[%d] = %v, want %v", tc.n, i, got[i], tc.want[i])
			}
		}
	}
}
