package shader

import (
	"math"
	"reflect"
	"testing"

	"github.com/olzn/glint-studio/effects"
)

func TestComponents(t *testing.T) {
	tests := []struct {
		typ  effects.ParamType
		v    effects.Value
		want []float32
	}{
		{effects.Float, effects.Number(0.5), []float32{0.5}},
		{effects.Bool, effects.Number(1), []float32{1}},
		{effects.Select, effects.Number(2), []float32{2}},
		{effects.Color, effects.Text("#ff0000"), []float32{1, 0, 0}},
		{effects.Vec2, effects.Pair(0.25, -1), []float32{0.25, -1}},
		{effects.Color, effects.Text("red"), nil},
		{effects.Color, effects.Number(1), nil},
		{effects.Float, effects.Text("#ffffff"), nil},
		{effects.Float, effects.Number(math.Inf(1)), nil},
	}
	for _, tc := range tests {
		got, ok := Components(tc.typ, tc.v)
		if ok != (tc.want != nil) || !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Components(%s, %v) = %v, %v; want %v", tc.typ, tc.v, got, ok, tc.want)
		}
	}
}

func TestColorUniformsRepairStops(t *testing.T) {
	got := ColorUniforms([]string{"#000000", "#ffffff", "#ff0000"}, []float64{0.3})
	if len(got) != 6 {
		t.Fatalf("got %d uniforms", len(got))
	}
	if got[2].Name != "u_color1" || got[3].Name != "u_stop1" {
		t.Errorf("names = %s, %s", got[2].Name, got[3].Name)
	}
	if n, _ := got[3].Value.Num(); n != 0.5 {
		t.Errorf("middle stop = %v, want 0.5", n)
	}
}
