package live

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe.json")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := make(chan string, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- WatchFile(ctx, path, 5*time.Millisecond, quietLogger(), func(b []byte) { got <- string(b) })
	}()

	expect := func(want string) {
		t.Helper()
		select {
		case s := <-got:
			if s != want {
				t.Fatalf("got %q, want %q", s, want)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("no callback for %q", want)
		}
	}
	expect("one")

	if err := os.WriteFile(path, []byte("second"), 0o644); err != nil {
		t.Fatal(err)
	}
	expect("second")

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("WatchFile returned %v", err)
	}
	select {
	case s := <-got:
		t.Errorf("unexpected callback %q", s)
	default:
	}
}
