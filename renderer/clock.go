package renderer

import (
	"slices"
	"sync"
)

// SpeedSteps are the playback speeds offered by Faster and Slower.
var SpeedSteps = []float64{0.25, 0.5, 1, 2, 4}

// Clock is the shader time source. Tick is fed wall-clock seconds; shader
// time advances by the scaled delta while playing. Observers are notified
// after every Tick and Reset.
type Clock struct {
	mu      sync.Mutex
	playing bool
	scale   float64
	t       float64
	last    float64
	primed  bool

	observers map[int]func(t float64)
	order     []int
	nextKey   int
}

func NewClock() *Clock {
	return &Clock{playing: true, scale: 1, observers: map[int]func(float64){}}
}

// Tick advances the clock to the wall time now and returns shader time.
func (c *Clock) Tick(now float64) float64 {
	c.mu.Lock()
	if c.primed && c.playing && now > c.last {
		c.t += (now - c.last) * c.scale
	}
	c.last, c.primed = now, true
	t, obs := c.t, c.snapshot()
	c.mu.Unlock()

	for _, fn := range obs {
		fn(t)
	}
	return t
}

// Step advances shader time by a fixed amount regardless of play state.
// Offline rendering uses it to produce frame-exact times.
func (c *Clock) Step(dt float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t += dt
	return c.t
}

func (c *Clock) Time() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *Clock) Play() {
	c.mu.Lock()
	c.playing = true
	c.mu.Unlock()
}

func (c *Clock) Pause() {
	c.mu.Lock()
	c.playing = false
	c.mu.Unlock()
}

// Toggle flips play state and reports whether the clock is now playing.
func (c *Clock) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playing = !c.playing
	return c.playing
}

func (c *Clock) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Reset rewinds shader time to zero without changing play state.
func (c *Clock) Reset() {
	c.mu.Lock()
	c.t = 0
	obs := c.snapshot()
	c.mu.Unlock()

	for _, fn := range obs {
		fn(0)
	}
}

// SetTimeScale sets the playback speed. Negative scales are ignored.
func (c *Clock) SetTimeScale(s float64) {
	if !(s >= 0) {
		return
	}
	c.mu.Lock()
	c.scale = s
	c.mu.Unlock()
}

func (c *Clock) TimeScale() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scale
}

// Faster moves to the next entry of SpeedSteps and returns the new scale.
func (c *Clock) Faster() float64 { return c.stepSpeed(1) }

// Slower moves to the previous entry of SpeedSteps.
func (c *Clock) Slower() float64 { return c.stepSpeed(-1) }

func (c *Clock) stepSpeed(dir int) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, found := slices.BinarySearch(SpeedSteps, c.scale)
	switch {
	case dir > 0 && found:
		i++
	case dir < 0:
		i--
	}
	i = max(0, min(i, len(SpeedSteps)-1))
	c.scale = SpeedSteps[i]
	return c.scale
}

// Subscribe registers fn to receive the shader time. The returned func
// removes it.
func (c *Clock) Subscribe(fn func(t float64)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.nextKey
	c.nextKey++
	c.observers[key] = fn
	c.order = append(c.order, key)
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.observers, key)
		c.order = slices.DeleteFunc(c.order, func(k int) bool { return k == key })
	}
}

func (c *Clock) snapshot() []func(float64) {
	out := make([]func(float64), 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.observers[k])
	}
	return out
}
