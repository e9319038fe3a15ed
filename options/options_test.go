package options

import (
	"flag"
	"io"
	"testing"
)

func TestRegister(t *testing.T) {
	fs := flag.NewFlagSet("glint", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := Register(fs)
	err := fs.Parse([]string{"-mode", "export", "-fn", "drawGlow", "-async", "-width", "640"})
	if err != nil {
		t.Fatal(err)
	}
	if *opts.Mode != "export" || *opts.FunctionName != "drawGlow" || !*opts.Async || *opts.Width != 640 {
		t.Errorf("parsed %q %q %v %d", *opts.Mode, *opts.FunctionName, *opts.Async, *opts.Width)
	}
	if *opts.Height != 720 || *opts.FPS != 60 || *opts.Scale != 1 {
		t.Errorf("defaults %d %d %v", *opts.Height, *opts.FPS, *opts.Scale)
	}
}

func TestValidMode(t *testing.T) {
	for _, m := range Modes {
		if !ValidMode(m) {
			t.Errorf("ValidMode(%q) = false", m)
		}
	}
	if ValidMode("shadertoy") {
		t.Error("unknown mode accepted")
	}
}
