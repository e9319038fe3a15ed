package effects

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is a read-only catalog of effect blocks. Blocks handed out by
// a Registry must not be modified.
type Registry struct {
	blocks []*EffectBlock
	byID   map[string]*EffectBlock
}

// NewRegistry builds a registry keeping the given order for All.
func NewRegistry(blocks ...*EffectBlock) (*Registry, error) {
	r := &Registry{
		blocks: make([]*EffectBlock, 0, len(blocks)),
		byID:   make(map[string]*EffectBlock, len(blocks)),
	}
	for _, b := range blocks {
		if b == nil || b.ID == "" {
			return nil, fmt.Errorf("effects: block without id")
		}
		if _, dup := r.byID[b.ID]; dup {
			return nil, fmt.Errorf("effects: duplicate block id %q", b.ID)
		}
		if !b.Category.Valid() {
			return nil, fmt.Errorf("effects: block %q has unknown category %q", b.ID, b.Category)
		}
		if b.PostMixGLSL != "" && b.Category != Generator {
			return nil, fmt.Errorf("effects: block %q has post-mix code but is not a generator", b.ID)
		}
		r.blocks = append(r.blocks, b)
		r.byID[b.ID] = b
	}
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the built-in catalog.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(
			// uv transforms
			pixelateBlock,
			diffuseBlurBlock,
			kaleidoscopeBlock,
			polarBlock,
			// generators
			gradientBlock,
			noiseBlock,
			voronoiBlock,
			causticsBlock,
			chladniBlock,
			domainWarpBlock,
			waveBlock,
			glowWavesBlock,
			spiralBlock,
			ledBarsBlock,
			dotLattice3dBlock,
			moireFieldsBlock,
			starfieldBlock,
			waveMeshBlock,
			interferenceRingsBlock,
			hexLatticeBlock,
			// post
			brightnessBlock,
			vignetteBlock,
			filmGrainBlock,
			crtScanlinesBlock,
			chromaticAberrationBlock,
			dotGridBlock,
			asciiBlock,
			ditherBlock,
		)
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Get returns the block with the given id. A miss is reported through ok
// and callers skip the instance.
func (r *Registry) Get(id string) (block *EffectBlock, ok bool) {
	block, ok = r.byID[id]
	return block, ok
}

// All returns every block in registration order.
func (r *Registry) All() []*EffectBlock {
	out := make([]*EffectBlock, len(r.blocks))
	copy(out, r.blocks)
	return out
}

// ByCategory groups blocks by category, each group sorted by catalog order.
// Every category has an entry, possibly empty.
func (r *Registry) ByCategory() map[Category][]*EffectBlock {
	out := make(map[Category][]*EffectBlock, len(Categories))
	for _, c := range Categories {
		out[c] = []*EffectBlock{}
	}
	for _, b := range r.blocks {
		out[b.Category] = append(out[b.Category], b)
	}
	for _, group := range out {
		sort.SliceStable(group, func(i, j int) bool { return group[i].Order < group[j].Order })
	}
	return out
}
