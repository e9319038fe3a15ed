package recipe

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/olzn/glint-studio/effects"
)

func sampleDocument() Document {
	return NewDocument(State{
		Name: "Sample",
		Effects: []effects.ActiveEffect{
			{InstanceID: "fx1", BlockID: "wave", Enabled: true},
			{InstanceID: "fx2", BlockID: "vignette", Enabled: false},
		},
		Values: map[string]effects.Value{
			"fx1_frequency": effects.Number(6.5),
			"fx2_strength":  effects.Number(0.3),
		},
		Colors: []string{"#3c1ea8", "#ff7130"},
		Stops:  []float64{0.2, 0.8},
		Export: ExportSettings{FunctionName: "drawBackdrop", Async: true},
	})
}

func TestShareRoundTrip(t *testing.T) {
	doc := sampleDocument()
	enc, err := EncodeShare(doc)
	if err != nil {
		t.Fatal(err)
	}
	if strings.ContainsAny(enc, "+/=") {
		t.Errorf("share string is not unpadded base64url: %s", enc)
	}
	for _, in := range []string{enc, SharePrefix + enc, " " + enc + "\n"} {
		got, err := DecodeShare(in, effects.Default())
		if err != nil {
			t.Fatalf("DecodeShare(%q): %v", in, err)
		}
		if !reflect.DeepEqual(got, doc) {
			t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, doc)
		}
	}

	url, err := ShareURL("https://example.test/studio#old", doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(url, "https://example.test/studio#s=") {
		t.Errorf("ShareURL = %s", url)
	}
}

func TestDecodeRepairsStops(t *testing.T) {
	data := []byte(`{"name":"x","effects":[],"values":{},"colors":["#000000","#ffffff","#ff0000"],"stops":[0.5]}`)
	doc, err := DecodeDocument(data, effects.Default())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(doc.Stops, []float64{0, 0.5, 1}) {
		t.Errorf("stops = %v", doc.Stops)
	}
	if doc.Version != DocumentVersion || doc.Export.FunctionName != DefaultFunctionName {
		t.Errorf("defaults not filled: %+v", doc)
	}
}

func TestDecodeAcceptsBooleanValues(t *testing.T) {
	data := []byte(`{"effects":[{"instanceId":"fx1","blockId":"ascii","enabled":true}],"values":{"fx1_invert":true},"colors":[]}`)
	doc, err := DecodeDocument(data, effects.Default())
	if err != nil {
		t.Fatal(err)
	}
	if doc.Values["fx1_invert"] != effects.Number(1) {
		t.Errorf("invert = %v", doc.Values["fx1_invert"])
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(d *Document)
		field string
	}{
		{"long name", func(d *Document) { d.Name = strings.Repeat("n", MaxNameLen+1) }, "name"},
		{"unknown block", func(d *Document) { d.Effects[0].BlockID = "teapot" }, "effects[0].blockId"},
		{"duplicate id", func(d *Document) { d.Effects[1].InstanceID = "fx1" }, "effects[1].instanceId"},
		{"unsafe id", func(d *Document) { d.Effects[0].InstanceID = "fx-1" }, "effects[0].instanceId"},
		{"underscore in id", func(d *Document) { d.Effects[1].InstanceID = "fx1_b" }, "effects[1].instanceId"},
		{"line break in name", func(d *Document) { d.Name = "x\nexport const injected = 1;" }, "name"},
		{"control character in name", func(d *Document) { d.Name = "tab\there" }, "name"},
		{"bad color", func(d *Document) { d.Colors[0] = "#12345g" }, "colors[0]"},
		{"too many colors", func(d *Document) {
			d.Colors = []string{"#000000", "#000000", "#000000", "#000000", "#000000", "#000000"}
		}, "colors"},
		{"stop out of range", func(d *Document) { d.Stops[1] = 1.5 }, "stops[1]"},
		{"orphan value", func(d *Document) { d.Values["fx9_frequency"] = effects.Number(1) }, "values.fx9_frequency"},
		{"unknown param", func(d *Document) { d.Values["fx1_size"] = effects.Number(1) }, "values.fx1_size"},
		{"wrong shape", func(d *Document) { d.Values["fx1_frequency"] = effects.Pair(1, 2) }, "values.fx1_frequency"},
		{"bad function name", func(d *Document) { d.Export.FunctionName = "1render" }, "export.functionName"},
		{"too many effects", func(d *Document) {
			for len(d.Effects) <= MaxEffects {
				d.Effects = append(d.Effects, effects.ActiveEffect{InstanceID: "fx1", BlockID: "noise"})
			}
		}, "effects"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := sampleDocument()
			tc.edit(&d)
			err := d.Validate(effects.Default())
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if ve.Field != tc.field {
				t.Errorf("field = %q, want %q (%v)", ve.Field, tc.field, err)
			}
			if !errors.Is(err, ErrInvalidPayload) {
				t.Error("validation error does not match ErrInvalidPayload")
			}
		})
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "!!!", "bm90IGpzb24"} {
		if _, err := DecodeShare(in, effects.Default()); !errors.Is(err, ErrInvalidPayload) {
			t.Errorf("DecodeShare(%q) = %v", in, err)
		}
	}
}

func TestDocumentJSONShape(t *testing.T) {
	data, err := json.Marshal(sampleDocument())
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"version", "name", "effects", "values", "colors", "stops", "export"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing top-level key %q in %s", key, data)
		}
	}
	if !strings.Contains(string(raw["effects"]), `"instanceId":"fx1"`) {
		t.Errorf("effects = %s", raw["effects"])
	}
}
