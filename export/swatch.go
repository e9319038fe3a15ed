package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sort"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
	"golang.org/x/image/draw"

	"github.com/olzn/glint-studio/shader"
)

// rampSamples is the resolution of the gradient before it is scaled to the
// requested size.
const rampSamples = 256

type rampStop struct {
	pos float32
	col ms3.Vec
}

// Ramp evaluates a gradient the same way the composed colorRamp does:
// stops sorted by position, clamped at both ends, linear in between.
type Ramp struct {
	stops []rampStop
}

// NewRamp parses colors and pairs them with stops. Stops of the wrong
// length are replaced by evenly spaced ones.
func NewRamp(colors []string, stops []float64) (*Ramp, error) {
	if len(stops) != len(colors) {
		stops = shader.EqualStops(len(colors))
	}
	r := &Ramp{stops: make([]rampStop, len(colors))}
	for i, c := range colors {
		v, err := shader.ParseHex(c)
		if err != nil {
			return nil, err
		}
		r.stops[i] = rampStop{pos: float32(stops[i]), col: v}
	}
	sort.SliceStable(r.stops, func(i, j int) bool { return r.stops[i].pos < r.stops[j].pos })
	return r, nil
}

// At returns the color at t.
func (r *Ramp) At(t float32) ms3.Vec {
	switch len(r.stops) {
	case 0:
		g := math32.Min(math32.Max(t, 0), 1)
		return ms3.Vec{X: g, Y: g, Z: g}
	case 1:
		return r.stops[0].col
	}
	if t <= r.stops[0].pos {
		return r.stops[0].col
	}
	for i := 1; i < len(r.stops); i++ {
		a, b := r.stops[i-1], r.stops[i]
		if t <= b.pos {
			span := math32.Max(b.pos-a.pos, 1e-5)
			f := math32.Min(math32.Max((t-a.pos)/span, 0), 1)
			return ms3.Add(ms3.Scale(1-f, a.col), ms3.Scale(f, b.col))
		}
	}
	return r.stops[len(r.stops)-1].col
}

func toRGBA(c ms3.Vec) color.RGBA {
	ch := func(f float32) uint8 {
		return uint8(math32.Floor(math32.Min(math32.Max(f, 0), 1)*255 + 0.5))
	}
	return color.RGBA{R: ch(c.X), G: ch(c.Y), B: ch(c.Z), A: 255}
}

// Swatch renders the gradient left to right into a width x height image.
func Swatch(colors []string, stops []float64, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid swatch size %dx%d", width, height)
	}
	ramp, err := NewRamp(colors, stops)
	if err != nil {
		return nil, err
	}
	strip := image.NewRGBA(image.Rect(0, 0, rampSamples, 1))
	for x := 0; x < rampSamples; x++ {
		t := float32(x) / float32(rampSamples-1)
		strip.SetRGBA(x, 0, toRGBA(ramp.At(t)))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(img, img.Bounds(), strip, strip.Bounds(), draw.Src, nil)
	return img, nil
}

// WriteSwatchPNG encodes Swatch as PNG.
func WriteSwatchPNG(w io.Writer, colors []string, stops []float64, width, height int) error {
	img, err := Swatch(colors, stops, width, height)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
