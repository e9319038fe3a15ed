package renderer

import (
	"errors"
	"testing"
)

func TestGLLoaderRemembersFailure(t *testing.T) {
	var l glLoader
	failure := errors.New("no current context")
	calls := 0
	init := func() error {
		calls++
		return failure
	}
	for i := 0; i < 3; i++ {
		if err := l.load(init); !errors.Is(err, failure) {
			t.Errorf("load %d = %v, want %v", i, err, failure)
		}
	}
	if calls != 1 {
		t.Errorf("init ran %d times, want 1", calls)
	}

	var ok glLoader
	if err := ok.load(func() error { return nil }); err != nil {
		t.Errorf("successful load = %v", err)
	}
	if err := ok.load(func() error { return failure }); err != nil {
		t.Errorf("second load ran init again: %v", err)
	}
}
