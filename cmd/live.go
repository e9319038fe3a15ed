package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/olzn/glint-studio/api"
	"github.com/olzn/glint-studio/effects"
	"github.com/olzn/glint-studio/glfwcontext"
	"github.com/olzn/glint-studio/graphics"
	"github.com/olzn/glint-studio/headless"
	"github.com/olzn/glint-studio/live"
	"github.com/olzn/glint-studio/options"
	"github.com/olzn/glint-studio/recipe"
	"github.com/olzn/glint-studio/renderer"
)

// newStore loads the recipe named by the flags, falling back to the last
// autosave when neither -recipe nor -preset is given.
func newStore(ctx context.Context, opts *options.Options, reg *effects.Registry, autosavePath string) (*recipe.Store, error) {
	st, found, err := loadState(ctx, opts, reg)
	if err != nil {
		return nil, err
	}
	if !found {
		if doc, ok := recipe.LoadAutosave(autosavePath, reg); ok {
			log.Printf("Restoring autosaved recipe %q", doc.Name)
			st = doc.State
			applyOverrides(opts, &st)
		}
	}
	return recipe.NewStore(recipe.Config{Registry: reg, Initial: &st}), nil
}

// watchRecipe reloads -recipe into deliver whenever the file changes. The
// initial read is skipped since the store already holds it.
func watchRecipe(ctx context.Context, opts *options.Options, reg *effects.Registry, deliver func(recipe.Document)) {
	path := *opts.Recipe
	if !*opts.Watch {
		return
	}
	if path == "" || api.IsURL(path) {
		log.Printf("-watch needs -recipe to be a file, not watching")
		return
	}
	if _, err := os.Stat(path); err != nil {
		log.Printf("not watching %s: %v", path, err)
		return
	}
	go func() {
		first := true
		err := live.WatchFile(ctx, path, 0, nil, func(data []byte) {
			if first {
				first = false
				return
			}
			doc, err := api.Decode(data, reg)
			if err != nil {
				log.Printf("ignoring change to %s: %v", path, err)
				return
			}
			deliver(doc)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("watch %s: %v", path, err)
		}
	}()
	log.Printf("Watching %s for changes", path)
}

func windowTitle(st recipe.State) string {
	if st.Name == "" {
		return "glint studio"
	}
	return st.Name + " - glint studio"
}

func runPreview(ctx context.Context, opts *options.Options, reg *effects.Registry) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	autosavePath := recipe.DefaultAutosavePath()
	store, err := newStore(ctx, opts, reg, autosavePath)
	if err != nil {
		return err
	}
	autosaver := recipe.StartAutosave(store, recipe.AutosaveConfig{Path: autosavePath})
	defer autosaver.Close()

	if err := glfwcontext.InitGraphics(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	defer glfwcontext.TerminateGraphics()

	win, err := glfwcontext.New(glfwcontext.Config{
		Width:   *opts.Width,
		Height:  *opts.Height,
		Title:   windowTitle(store.State()),
		Visible: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Shutdown()

	r, err := renderer.NewRenderer(renderer.Config{Context: win})
	if err != nil {
		return err
	}
	defer r.Shutdown()
	r.SetTimeScale(*opts.Scale)

	syncer := live.NewSyncer(r, live.SyncerConfig{Registry: reg})
	detach := syncer.Attach(store)
	defer detach()
	unsubscribe := store.Subscribe(func(cur, prev recipe.State) {
		if cur.Name != prev.Name {
			win.SetTitle(windowTitle(cur))
		}
	})
	defer unsubscribe()

	bindPreviewKeys(win, r, store, opts, reg)

	// watcher results are applied on the render thread, which owns the GL
	// context the syncer compiles into
	reloads := make(chan recipe.Document, 1)
	watchRecipe(ctx, opts, reg, func(doc recipe.Document) {
		select {
		case <-reloads:
		default:
		}
		reloads <- doc
	})

	log.Println("Starting interactive render loop...")
	log.Println("space: play/pause  r: reset  up/down: speed  left/right: preset  ctrl+z/y: undo/redo  ctrl+s: save")
	r.Run(func() {
		select {
		case doc := <-reloads:
			if err := store.Load(doc); err != nil {
				log.Printf("reload failed: %v", err)
			}
		default:
		}
	})
	return nil
}

func bindPreviewKeys(win *glfwcontext.Context, r *renderer.Renderer, store *recipe.Store, opts *options.Options, reg *effects.Registry) {
	clock := r.Clock()
	win.RegisterKeyCallback(glfw.KeySpace, 0, func() {
		if clock.Toggle() {
			log.Println("playing")
		} else {
			log.Println("paused")
		}
	})
	win.RegisterKeyCallback(glfw.KeyR, 0, r.Reset)
	win.RegisterKeyCallback(glfw.KeyUp, 0, func() {
		log.Printf("speed %gx", clock.Faster())
	})
	win.RegisterKeyCallback(glfw.KeyDown, 0, func() {
		log.Printf("speed %gx", clock.Slower())
	})

	cyclePreset := func(dir int) func() {
		return func() {
			presets := recipe.Presets()
			cur := store.State().PresetID
			next := 0
			for i, p := range presets {
				if p.ID == cur {
					next = (i + dir + len(presets)) % len(presets)
				}
			}
			if err := store.LoadPreset(presets[next].ID); err != nil {
				log.Printf("load preset: %v", err)
				return
			}
			log.Printf("preset %s", presets[next].Name)
		}
	}
	win.RegisterKeyCallback(glfw.KeyRight, 0, cyclePreset(1))
	win.RegisterKeyCallback(glfw.KeyLeft, 0, cyclePreset(-1))

	undo := func() {
		if !store.Undo() {
			log.Println("nothing to undo")
		}
	}
	redo := func() {
		if !store.Redo() {
			log.Println("nothing to redo")
		}
	}
	save := func() {
		lib := recipe.OpenLibrary(recipe.LibraryConfig{Path: libraryPath(opts), Registry: reg})
		if _, err := lib.Save(store.Document()); err != nil {
			log.Printf("save failed: %v", err)
		}
	}
	for _, mod := range []glfw.ModifierKey{glfw.ModControl, glfw.ModSuper} {
		win.RegisterKeyCallback(glfw.KeyZ, mod, undo)
		win.RegisterKeyCallback(glfw.KeyZ, mod|glfw.ModShift, redo)
		win.RegisterKeyCallback(glfw.KeyY, mod, redo)
		win.RegisterKeyCallback(glfw.KeyS, mod, save)
	}
}

func runRecord(ctx context.Context, opts *options.Options, reg *effects.Registry) error {
	st, _, err := loadState(ctx, opts, reg)
	if err != nil {
		return err
	}

	var gctx graphics.Context
	if *opts.Headless {
		h, err := headless.New(*opts.Width, *opts.Height)
		if err != nil {
			return fmt.Errorf("failed to create headless context: %w", err)
		}
		gctx = h
	} else {
		if err := glfwcontext.InitGraphics(); err != nil {
			return fmt.Errorf("failed to initialize GLFW: %w", err)
		}
		defer glfwcontext.TerminateGraphics()

		// hidden window, only its context is used
		win, err := glfwcontext.New(glfwcontext.Config{Width: *opts.Width, Height: *opts.Height})
		if err != nil {
			return fmt.Errorf("failed to create window: %w", err)
		}
		gctx = win
	}
	defer gctx.Shutdown()

	r, err := renderer.NewRenderer(renderer.Config{Context: gctx, Width: *opts.Width, Height: *opts.Height})
	if err != nil {
		return err
	}
	defer r.Shutdown()
	r.SetTimeScale(*opts.Scale)

	syncer := live.NewSyncer(r, live.SyncerConfig{Registry: reg})
	syncer.Sync(st)
	if diags := syncer.Diagnostics(); len(diags) > 0 {
		return fmt.Errorf("shader does not compile: %s", diags[0])
	}

	out := *opts.Out
	if out == "" {
		out = "output.mp4"
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Starting offscreen render loop...")
	err = r.Record(ctx, renderer.RecordOptions{
		Out:        out,
		FPS:        *opts.FPS,
		Duration:   *opts.Duration,
		Codec:      *opts.Codec,
		Format:     *opts.Format,
		Software:   *opts.Software,
		FFmpegPath: *opts.FFmpeg,
	})
	if err != nil {
		return err
	}
	log.Printf("Successfully rendered to %s", out)
	return nil
}

func runServe(ctx context.Context, opts *options.Options, reg *effects.Registry) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	autosavePath := recipe.DefaultAutosavePath()
	store, err := newStore(ctx, opts, reg, autosavePath)
	if err != nil {
		return err
	}
	autosaver := recipe.StartAutosave(store, recipe.AutosaveConfig{Path: autosavePath})
	defer autosaver.Close()

	hub := live.NewHub(live.HubConfig{
		OnMessage: func(m live.ClientMessage) {
			if err := live.Apply(store, m); err != nil {
				log.Printf("client message %s: %v", m.Type, err)
			}
		},
	})
	syncer := live.NewSyncer(hub, live.SyncerConfig{Registry: reg})
	detach := syncer.Attach(store)
	defer detach()

	watchRecipe(ctx, opts, reg, func(doc recipe.Document) {
		if err := store.Load(doc); err != nil {
			log.Printf("reload failed: %v", err)
		}
	})

	srv := &http.Server{
		Addr:              *opts.Addr,
		Handler:           hub.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Serving live preview on http://%s", *opts.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
