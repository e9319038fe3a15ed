package recipe

import (
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/olzn/glint-studio/effects"
	"github.com/olzn/glint-studio/shader"
)

// Config configures a Store. Zero fields take package defaults.
type Config struct {
	Registry *effects.Registry
	IDs      *IDSource
	Logger   *log.Logger
	Now      func() time.Time
	// Initial replaces the default preset as the starting state.
	Initial *State
}

// Store owns the current recipe and its undo history. All methods are safe
// for concurrent use. Subscribers run after the lock is released, in
// registration order.
type Store struct {
	mu      sync.Mutex
	reg     *effects.Registry
	ids     *IDSource
	logger  *log.Logger
	now     func() time.Time
	state   State
	hist    history
	subs    map[int]func(cur, prev State)
	subKeys []int
	nextSub int
}

func NewStore(cfg Config) *Store {
	s := &Store{
		reg:    cfg.Registry,
		ids:    cfg.IDs,
		logger: cfg.Logger,
		now:    cfg.Now,
		subs:   make(map[int]func(cur, prev State)),
	}
	if s.reg == nil {
		s.reg = effects.Default()
	}
	if s.ids == nil {
		s.ids = processIDs
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if cfg.Initial != nil {
		s.state = cfg.Initial.Clone()
		s.state.repairStops()
		s.ids.Reserve(instanceIDs(s.state.Effects)...)
	} else {
		s.state = InitialState(s.reg, s.ids)
	}
	return s
}

func (s *Store) Registry() *effects.Registry { return s.reg }

// State returns a deep copy of the current recipe.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Document returns the current recipe in its persisted form.
func (s *Store) Document() Document {
	return NewDocument(s.State())
}

// Subscribe registers fn to be called with the new and previous state after
// every change. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(cur, prev State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := s.nextSub
	s.nextSub++
	s.subs[key] = fn
	s.subKeys = append(s.subKeys, key)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, key)
		s.subKeys = slices.DeleteFunc(s.subKeys, func(k int) bool { return k == key })
	}
}

type editKind int

const (
	discreteEdit editKind = iota
	paramEdit
	structuralEdit
)

// apply runs fn on a copy of the state and commits it when fn succeeds.
func (s *Store) apply(kind editKind, fn func(st *State) error) error {
	s.mu.Lock()
	prev := s.state.Clone()
	next := s.state.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	switch kind {
	case paramEdit:
		s.hist.recordParam(prev, s.now())
	case structuralEdit:
		next.PresetID = ""
		s.hist.record(prev)
	default:
		s.hist.record(prev)
	}
	next.repairStops()
	s.state = next
	subs := s.subscribers()
	cur := next.Clone()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(cur, prev)
	}
	return nil
}

func (s *Store) subscribers() []func(cur, prev State) {
	out := make([]func(cur, prev State), 0, len(s.subKeys))
	for _, k := range s.subKeys {
		out = append(out, s.subs[k])
	}
	return out
}

// AddEffect instantiates blockID with default values and places it after
// the last instance of its category, or before the first instance of a
// later category. It returns the new instance id.
func (s *Store) AddEffect(blockID string) (string, error) {
	block, ok := s.reg.Get(blockID)
	if !ok {
		return "", fmt.Errorf("add %q: %w", blockID, ErrUnknownEffect)
	}
	id := s.ids.Next()
	err := s.apply(structuralEdit, func(st *State) error {
		ae := effects.ActiveEffect{InstanceID: id, BlockID: blockID, Enabled: true}
		st.Effects = slices.Insert(st.Effects, s.insertIndex(st.Effects, block.Category), ae)
		for _, p := range block.Params {
			st.Values[shader.ScopedID(id, p.ID)] = p.Default
		}
		return nil
	})
	return id, err
}

func (s *Store) insertIndex(list []effects.ActiveEffect, cat effects.Category) int {
	prio := cat.Priority()
	lastSame, firstLater := -1, -1
	for i, ae := range list {
		b, ok := s.reg.Get(ae.BlockID)
		if !ok {
			continue
		}
		switch p := b.Category.Priority(); {
		case p == prio:
			lastSame = i
		case p > prio && firstLater < 0:
			firstLater = i
		}
	}
	switch {
	case lastSame >= 0:
		return lastSame + 1
	case firstLater >= 0:
		return firstLater
	}
	return len(list)
}

// RemoveEffect drops the instance and every value scoped to it.
func (s *Store) RemoveEffect(id string) error {
	return s.apply(structuralEdit, func(st *State) error {
		i := st.Instance(id)
		if i < 0 {
			return fmt.Errorf("remove %q: %w", id, ErrUnknownInstance)
		}
		st.Effects = slices.Delete(st.Effects, i, i+1)
		prefix := id + "_"
		for k := range st.Values {
			if strings.HasPrefix(k, prefix) {
				delete(st.Values, k)
			}
		}
		return nil
	})
}

func (s *Store) ToggleEffect(id string, enabled bool) error {
	return s.apply(structuralEdit, func(st *State) error {
		i := st.Instance(id)
		if i < 0 {
			return fmt.Errorf("toggle %q: %w", id, ErrUnknownInstance)
		}
		st.Effects[i].Enabled = enabled
		return nil
	})
}

// SetParam updates one scoped parameter. Rapid successive calls collapse
// into a single undo step.
func (s *Store) SetParam(key string, v effects.Value) error {
	return s.apply(paramEdit, func(st *State) error {
		i, param := st.OwnerOf(key)
		if i < 0 {
			return fmt.Errorf("set %q: %w", key, ErrUnknownInstance)
		}
		block, ok := s.reg.Get(st.Effects[i].BlockID)
		if !ok {
			return fmt.Errorf("set %q: %w", key, ErrUnknownEffect)
		}
		spec, ok := block.Param(param)
		if !ok {
			return fmt.Errorf("set %q: %w", key, ErrUnknownParam)
		}
		if err := checkValue(spec, v); err != nil {
			return fmt.Errorf("set %q: %w", key, err)
		}
		st.Values[key] = v
		return nil
	})
}

func checkValue(spec effects.ParamSpec, v effects.Value) error {
	if !v.Matches(spec.Type) {
		return fmt.Errorf("%w: %s param needs a different value shape, got %v", ErrInvalidValue, spec.Type, v)
	}
	if !v.Finite() {
		return fmt.Errorf("%w: non-finite %v", ErrInvalidValue, v)
	}
	if spec.Type == effects.Color {
		if str, _ := v.Str(); !shader.HexColor.MatchString(str) {
			return fmt.Errorf("%w: color %q", ErrInvalidValue, str)
		}
	}
	return nil
}

// ReorderCategory sets the order of one category's instances. ids must be a
// permutation of exactly the instances currently in that category.
func (s *Store) ReorderCategory(cat effects.Category, ids []string) error {
	return s.apply(structuralEdit, func(st *State) error {
		var slots []int
		current := map[string]effects.ActiveEffect{}
		for i, ae := range st.Effects {
			if b, ok := s.reg.Get(ae.BlockID); ok && b.Category == cat {
				slots = append(slots, i)
				current[ae.InstanceID] = ae
			}
		}
		if len(ids) != len(slots) {
			return fmt.Errorf("reorder %s: %w", cat, ErrCrossCategory)
		}
		seen := map[string]bool{}
		for _, id := range ids {
			if _, ok := current[id]; !ok || seen[id] {
				return fmt.Errorf("reorder %s: %q: %w", cat, id, ErrCrossCategory)
			}
			seen[id] = true
		}
		for n, slot := range slots {
			st.Effects[slot] = current[ids[n]]
		}
		return nil
	})
}

// AddColor appends a gradient color and re-spaces the stops.
func (s *Store) AddColor(hex string) error {
	return s.apply(structuralEdit, func(st *State) error {
		if len(st.Colors) >= MaxColors {
			return fmt.Errorf("add color: %w (max %d)", ErrTooManyColors, MaxColors)
		}
		if !shader.HexColor.MatchString(hex) {
			return fmt.Errorf("add color %q: %w", hex, ErrInvalidValue)
		}
		st.Colors = append(st.Colors, hex)
		st.Stops = shader.EqualStops(len(st.Colors))
		return nil
	})
}

func (s *Store) RemoveColor(i int) error {
	return s.apply(structuralEdit, func(st *State) error {
		if i < 0 || i >= len(st.Colors) {
			return fmt.Errorf("remove color %d: %w", i, ErrInvalidValue)
		}
		st.Colors = slices.Delete(st.Colors, i, i+1)
		st.Stops = shader.EqualStops(len(st.Colors))
		return nil
	})
}

// SetColor changes one color in place. Like SetParam it coalesces.
func (s *Store) SetColor(i int, hex string) error {
	return s.apply(paramEdit, func(st *State) error {
		if i < 0 || i >= len(st.Colors) {
			return fmt.Errorf("set color %d: %w", i, ErrInvalidValue)
		}
		if !shader.HexColor.MatchString(hex) {
			return fmt.Errorf("set color %q: %w", hex, ErrInvalidValue)
		}
		st.Colors[i] = hex
		return nil
	})
}

// MoveColor moves the color at from so that it lands before the color
// currently at to. Its stop moves with it.
func (s *Store) MoveColor(from, to int) error {
	return s.apply(structuralEdit, func(st *State) error {
		n := len(st.Colors)
		if from < 0 || from >= n || to < 0 || to > n {
			return fmt.Errorf("move color %d to %d: %w", from, to, ErrInvalidValue)
		}
		st.repairStops()
		c, stop := st.Colors[from], st.Stops[from]
		st.Colors = slices.Delete(st.Colors, from, from+1)
		st.Stops = slices.Delete(st.Stops, from, from+1)
		if from < to {
			to--
		}
		st.Colors = slices.Insert(st.Colors, to, c)
		st.Stops = slices.Insert(st.Stops, to, stop)
		return nil
	})
}

func (s *Store) SetStop(i int, v float64) error {
	return s.apply(paramEdit, func(st *State) error {
		st.repairStops()
		if i < 0 || i >= len(st.Stops) {
			return fmt.Errorf("set stop %d: %w", i, ErrInvalidValue)
		}
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("set stop %d to %v: %w", i, v, ErrInvalidValue)
		}
		st.Stops[i] = v
		return nil
	})
}

// LoadPreset replaces the recipe with a fresh instantiation of a preset.
func (s *Store) LoadPreset(id string) error {
	p, ok := GetPreset(id)
	if !ok {
		return fmt.Errorf("load preset %q: %w", id, ErrUnknownPreset)
	}
	return s.apply(discreteEdit, func(st *State) error {
		*st = p.State(s.reg, s.ids)
		return nil
	})
}

// Load replaces the recipe with a validated document.
func (s *Store) Load(doc Document) error {
	doc.Normalize()
	if err := doc.Validate(s.reg); err != nil {
		return err
	}
	s.ids.Reserve(instanceIDs(doc.Effects)...)
	s.logger.Printf("recipe: loaded %q (%d effects)", doc.Name, len(doc.Effects))
	return s.apply(discreteEdit, func(st *State) error {
		*st = doc.State.Clone()
		return nil
	})
}

func (s *Store) Rename(name string) error {
	return s.apply(discreteEdit, func(st *State) error {
		if msg := nameProblem(name); msg != "" {
			return fmt.Errorf("rename: %w: name %s", ErrInvalidValue, msg)
		}
		st.Name = name
		return nil
	})
}

func (s *Store) SetExport(e ExportSettings) error {
	return s.apply(discreteEdit, func(st *State) error {
		if e.FunctionName == "" {
			e.FunctionName = DefaultFunctionName
		}
		if !jsIdent.MatchString(e.FunctionName) {
			return fmt.Errorf("export function %q: %w", e.FunctionName, ErrInvalidValue)
		}
		st.Export = e
		return nil
	})
}

// Undo restores the previous snapshot. It reports false when there is
// nothing to undo.
func (s *Store) Undo() bool {
	return s.travel(s.hist.undoTo)
}

func (s *Store) Redo() bool {
	return s.travel(s.hist.redoTo)
}

func (s *Store) travel(step func(State) (State, bool)) bool {
	s.mu.Lock()
	prev := s.state.Clone()
	next, ok := step(prev)
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.state = next.Clone()
	subs := s.subscribers()
	cur := next.Clone()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(cur, prev)
	}
	return true
}

func (s *Store) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.canUndo()
}

func (s *Store) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.canRedo()
}

func instanceIDs(list []effects.ActiveEffect) []string {
	ids := make([]string, len(list))
	for i, ae := range list {
		ids[i] = ae.InstanceID
	}
	return ids
}
