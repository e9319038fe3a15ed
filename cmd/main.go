package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/olzn/glint-studio/api"
	"github.com/olzn/glint-studio/effects"
	"github.com/olzn/glint-studio/export"
	"github.com/olzn/glint-studio/options"
	"github.com/olzn/glint-studio/recipe"
	"github.com/olzn/glint-studio/shader"
	"github.com/olzn/glint-studio/translator"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := options.Register(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("glint studio: compose, preview and export GLSL fragment shaders")
		flag.PrintDefaults()
		return
	}
	if !options.ValidMode(*opts.Mode) {
		log.Fatalf("Unknown mode %q, expected one of %s", *opts.Mode, strings.Join(options.Modes, ", "))
	}

	reg := effects.Default()
	ctx := context.Background()

	var err error
	switch *opts.Mode {
	case "list":
		err = listEffects(reg)
	case "presets":
		err = listPresets()
	case "schema":
		err = writeSchema(*opts.Out)
	case "library":
		err = showLibrary(opts, reg)
	case "preview":
		err = runPreview(ctx, opts, reg)
	case "record":
		err = runRecord(ctx, opts, reg)
	case "serve":
		err = runServe(ctx, opts, reg)
	default:
		var st recipe.State
		st, _, err = loadState(ctx, opts, reg)
		if err == nil {
			err = runOffline(opts, reg, st)
		}
	}
	if err != nil {
		log.Fatalf("%s failed: %v", *opts.Mode, err)
	}
}

// loadState resolves -recipe or -preset. found is false when neither is
// given, in which case st is the initial state.
func loadState(ctx context.Context, opts *options.Options, reg *effects.Registry) (st recipe.State, found bool, err error) {
	ids := recipe.NewIDSource()
	source := strings.TrimSpace(*opts.Recipe)
	switch {
	case source != "":
		var doc recipe.Document
		doc, err = readDocument(ctx, source, reg)
		if err != nil {
			return st, false, err
		}
		st, found = doc.State, true
	case *opts.Preset != "":
		p, ok := recipe.GetPreset(*opts.Preset)
		if !ok {
			return st, false, fmt.Errorf("preset %q: %w", *opts.Preset, recipe.ErrUnknownPreset)
		}
		st, found = p.State(reg, ids), true
	default:
		st = recipe.InitialState(reg, ids)
	}
	applyOverrides(opts, &st)
	return st, found, nil
}

// readDocument accepts a URL, a file path or a share string.
func readDocument(ctx context.Context, source string, reg *effects.Registry) (recipe.Document, error) {
	if api.IsURL(source) {
		log.Printf("Fetching recipe from %s", source)
		return api.Fetch(ctx, nil, source, reg)
	}
	data, err := os.ReadFile(source)
	if err == nil {
		doc, err := api.Decode(data, reg)
		if err != nil {
			return doc, fmt.Errorf("%s: %w", source, err)
		}
		return doc, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return recipe.Document{}, err
	}
	return recipe.DecodeShare(source, reg)
}

func applyOverrides(opts *options.Options, st *recipe.State) {
	if *opts.Name != "" && *opts.Mode != "library" {
		st.Name = *opts.Name
	}
	if *opts.FunctionName != "" {
		st.Export.FunctionName = *opts.FunctionName
	}
	if *opts.Texture {
		st.Export.UsesTexture = true
	}
	if *opts.Async {
		st.Export.Async = true
	}
}

// runOffline handles the modes that need neither a window nor a server.
func runOffline(opts *options.Options, reg *effects.Registry, st recipe.State) error {
	out := *opts.Out
	switch *opts.Mode {
	case "glsl":
		return writeOutput(out, []byte(st.Compose(reg).GLSL))
	case "bake":
		return writeOutput(out, []byte(export.Bake(st, reg)))
	case "check":
		res := st.Compose(reg)
		diags := translator.Validate(shader.VertexSource, res.GLSL)
		if len(diags) == 0 {
			log.Printf("%q compiles: %d effects, %d uniforms", st.Name, len(st.Effects), len(st.Uniforms(res)))
			return nil
		}
		for _, d := range diags {
			fmt.Fprintln(os.Stderr, d)
		}
		return fmt.Errorf("%d shader diagnostics", len(diags))
	case "export":
		return writeExport(opts, reg, st)
	case "swatch":
		var buf bytes.Buffer
		if err := export.WriteSwatchPNG(&buf, st.Colors, st.Stops, *opts.Width, *opts.Height); err != nil {
			return err
		}
		return writeOutput(out, buf.Bytes())
	case "share":
		enc, err := recipe.EncodeShare(recipe.NewDocument(st))
		if err != nil {
			return err
		}
		return writeOutput(out, []byte(recipe.SharePrefix+enc+"\n"))
	case "save":
		lib := recipe.OpenLibrary(recipe.LibraryConfig{Path: libraryPath(opts), Registry: reg})
		saved, err := lib.Save(recipe.NewDocument(st))
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", saved.ID, saved.Name)
		return nil
	}
	return fmt.Errorf("unhandled mode %q", *opts.Mode)
}

func writeExport(opts *options.Options, reg *effects.Registry, st recipe.State) error {
	cfg := export.FromState(st, reg)
	format := strings.ToLower(*opts.Format)
	if format == "" {
		format = "ts"
		if ext := strings.ToLower(filepath.Ext(*opts.Out)); ext == ".html" || ext == ".htm" {
			format = "html"
		}
	}

	var (
		text string
		err  error
		name string
	)
	switch format {
	case "ts":
		text, err = export.Module(cfg)
		name = export.ModuleFilename(cfg)
	case "html":
		text, err = export.HTML(cfg)
		name = export.HTMLFilename(cfg)
	default:
		return fmt.Errorf("unknown export format %q, expected ts or html", format)
	}
	if err != nil {
		return err
	}
	out := *opts.Out
	if out == "" {
		log.Printf("Suggested file name: %s", name)
	}
	return writeOutput(out, []byte(text))
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	log.Printf("Wrote %s (%d bytes)", path, len(data))
	return nil
}

func writeSchema(out string) error {
	if out == "" || out == "-" {
		data, err := json.MarshalIndent(recipe.Schema(), "", "  ")
		if err != nil {
			return err
		}
		return writeOutput("", append(data, '\n'))
	}
	if err := recipe.WriteSchema(out); err != nil {
		return err
	}
	log.Printf("Wrote schema to %s", out)
	return nil
}

func listEffects(reg *effects.Registry) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	byCat := reg.ByCategory()
	for _, cat := range effects.Categories {
		for _, b := range byCat[cat] {
			params := make([]string, len(b.Params))
			for i, p := range b.Params {
				params[i] = p.ID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cat, b.ID, b.Name, strings.Join(params, ","))
		}
	}
	return w.Flush()
}

func listPresets() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, p := range recipe.Presets() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, p.Description)
	}
	return w.Flush()
}

func libraryPath(opts *options.Options) string {
	if *opts.Library != "" {
		return *opts.Library
	}
	return recipe.DefaultLibraryPath()
}

// showLibrary lists saved shaders, or prints one as JSON when -name is an
// entry id.
func showLibrary(opts *options.Options, reg *effects.Registry) error {
	lib := recipe.OpenLibrary(recipe.LibraryConfig{Path: libraryPath(opts), Registry: reg})
	if id := *opts.Name; id != "" {
		saved, err := lib.Get(id)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(saved.Document, "", "  ")
		if err != nil {
			return err
		}
		return writeOutput(*opts.Out, append(data, '\n'))
	}
	all, err := lib.List()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, s := range all {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.SavedAt.Local().Format("2006-01-02 15:04"), s.Name)
	}
	return w.Flush()
}
