package live

import (
	"log"
	"slices"
	"sync"

	"github.com/olzn/glint-studio/effects"
	"github.com/olzn/glint-studio/recipe"
	"github.com/olzn/glint-studio/shader"
	"github.com/olzn/glint-studio/translator"
)

// Target is anything that can run a composed shader: the desktop renderer
// or the browser preview hub.
type Target interface {
	Compile(vs, fs string) []translator.Diagnostic
	SetUniform(name string, typ effects.ParamType, v effects.Value)
}

type SyncerConfig struct {
	Registry *effects.Registry
	Logger   *log.Logger
}

// Syncer keeps a Target in step with recipe snapshots. It recompiles only
// when the effect list or the number of colors changes; any other edit only
// pushes the uniforms whose value changed.
type Syncer struct {
	mu       sync.Mutex
	target   Target
	composer *shader.Composer
	logger   *log.Logger

	synced     bool
	effects    []effects.ActiveEffect
	colorCount int
	result     shader.ComposeResult
	diags      []translator.Diagnostic
	pushed     map[string]effects.Value
}

func NewSyncer(target Target, cfg SyncerConfig) *Syncer {
	reg := cfg.Registry
	if reg == nil {
		reg = effects.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Syncer{
		target:   target,
		composer: shader.NewComposer(reg),
		logger:   logger,
		pushed:   map[string]effects.Value{},
	}
}

// Sync brings the target up to date with st and reports whether it had to
// recompile.
func (s *Syncer) Sync(st recipe.State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	recompile := !s.synced || len(st.Colors) != s.colorCount || !slices.Equal(st.Effects, s.effects)
	if recompile {
		s.result = s.composer.Compose(st.Effects, len(st.Colors))
		s.diags = s.target.Compile(shader.VertexSource, s.result.GLSL)
		for _, d := range s.diags {
			s.logger.Printf("shader: %s", d)
		}
		s.effects = slices.Clone(st.Effects)
		s.colorCount = len(st.Colors)
		s.synced = true
		clear(s.pushed)
	}

	for _, u := range st.Uniforms(s.result) {
		if prev, ok := s.pushed[u.Name]; ok && prev == u.Value {
			continue
		}
		s.target.SetUniform(u.Name, u.Type, u.Value)
		s.pushed[u.Name] = u.Value
	}
	return recompile
}

// Attach syncs the current state of store and every later change. The
// returned func detaches.
func (s *Syncer) Attach(store *recipe.Store) (detach func()) {
	s.Sync(store.State())
	return store.Subscribe(func(cur, _ recipe.State) {
		s.Sync(cur)
	})
}

// Result is the last composed shader.
func (s *Syncer) Result() shader.ComposeResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Diagnostics returns the errors of the last compile, empty when it
// succeeded.
func (s *Syncer) Diagnostics() []translator.Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.diags)
}
