package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/olzn/glint-studio/effects"
	"github.com/olzn/glint-studio/recipe"
)

func testDocument(t *testing.T) recipe.Document {
	t.Helper()
	reg := effects.Default()
	return recipe.NewDocument(recipe.InitialState(reg, recipe.NewIDSource()))
}

func TestFetch(t *testing.T) {
	doc := testDocument(t)
	jsonBody, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	share, err := recipe.EncodeShare(doc)
	if err != nil {
		t.Fatal(err)
	}

	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		switch r.URL.Path {
		case "/doc.json":
			w.Write(jsonBody)
		case "/share.txt":
			w.Write([]byte(share + "\n"))
		case "/broken.json":
			w.Write([]byte(`{"name":`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	reg := effects.Default()
	ctx := context.Background()
	for _, path := range []string{"/doc.json", "/share.txt"} {
		got, err := Fetch(ctx, srv.Client(), srv.URL+path, reg)
		if err != nil {
			t.Fatalf("Fetch(%s): %v", path, err)
		}
		if got.Name != doc.Name || len(got.Effects) != len(doc.Effects) {
			t.Errorf("Fetch(%s) = %+v", path, got.State)
		}
	}

	if _, err := Fetch(ctx, srv.Client(), srv.URL+"/broken.json", reg); !errors.Is(err, recipe.ErrInvalidPayload) {
		t.Errorf("broken document error = %v", err)
	}
	if _, err := Fetch(ctx, srv.Client(), srv.URL+"/missing", reg); err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("missing document error = %v", err)
	}

	before := requests.Load()
	got, err := Fetch(ctx, srv.Client(), srv.URL+"/studio"+recipe.SharePrefix+share, reg)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != doc.Name {
		t.Errorf("fragment share name = %q", got.Name)
	}
	if requests.Load() != before {
		t.Error("fragment share string should not be requested")
	}
}

func TestFetchRejectsOversizedBodies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("a", MaxDocumentSize+10)))
	}))
	t.Cleanup(srv.Close)

	if _, err := Fetch(context.Background(), srv.Client(), srv.URL, effects.Default()); err == nil || !strings.Contains(err.Error(), "exceeds") {
		t.Errorf("error = %v", err)
	}
}

func TestFetchRejectsOtherSchemes(t *testing.T) {
	if _, err := Fetch(context.Background(), nil, "file:///etc/passwd", effects.Default()); err == nil {
		t.Error("file url accepted")
	}
}

func TestIsURL(t *testing.T) {
	tests := map[string]bool{
		"https://example.test/r.json": true,
		"http://localhost:8080/":      true,
		"recipe.json":                 false,
		"glow":                        false,
	}
	for in, want := range tests {
		if got := IsURL(in); got != want {
			t.Errorf("IsURL(%q) = %v", in, got)
		}
	}
}
