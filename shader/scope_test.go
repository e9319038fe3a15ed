package shader

import "testing"

func TestSubstitute(t *testing.T) {
	names := map[string]string{
		"scale":  "u_fx1_scale",
		"scale2": "u_fx1_scale2",
		"speed":  "u_fx1_speed",
	}
	tests := []struct {
		in, want string
	}{
		{"$scale", "u_fx1_scale"},
		{"$scale2 * $scale", "u_fx1_scale2 * u_fx1_scale"},
		{"st*$scale+t*$speed;", "st*u_fx1_scale+t*u_fx1_speed;"},
		{"($scale)($scale)", "(u_fx1_scale)(u_fx1_scale)"},
		{"$scales", "$scales"},
		{"$unknown + 1.0", "$unknown + 1.0"},
		{"cost $ 5", "cost $ 5"},
		{"end$", "end$"},
		{"no tokens here", "no tokens here"},
	}
	for _, tc := range tests {
		if got := Substitute(tc.in, names); got != tc.want {
			t.Errorf("Substitute(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestScopedNames(t *testing.T) {
	if got := ScopedID("fx3", "frequency"); got != "fx3_frequency" {
		t.Errorf("ScopedID = %q", got)
	}
	if got := UniformName("fx3", "frequency"); got != "u_fx3_frequency" {
		t.Errorf("UniformName = %q", got)
	}
}

func TestReplaceIdentsWholeWords(t *testing.T) {
	repl := map[string]string{"u_a_x": "1.0"}
	src := "u_a_x + u_a_x2 + vu_a_x + u_a_x;"
	want := "1.0 + u_a_x2 + vu_a_x + 1.0;"
	if got := string(replaceIdents(nil, src, repl)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
