package recipe

import (
	"strings"

	"github.com/olzn/glint-studio/effects"
	"github.com/olzn/glint-studio/shader"
)

var genericNames = map[string]bool{
	"untitled": true,
	"blank":    true,
	"glow":     true,
	"swirl":    true,
	"retro":    true,
	"cosmic":   true,
	"ocean":    true,
	"halftone": true,
	"led bars": true,
	"plasma":   true,
}

// IsGenericName reports whether name is empty or one of the placeholder
// names that get replaced on save.
func IsGenericName(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	return name == "" || genericNames[name]
}

var hueWords = []string{"Ember", "Amber", "Citrus", "Verdant", "Lagoon", "Azure", "Indigo", "Violet", "Rose"}

// AutoName derives a descriptive name from the first color's hue and the
// first enabled generator (or any effect when there is none).
func AutoName(st State, reg *effects.Registry) string {
	mood := "Mono"
	if len(st.Colors) > 0 {
		if c, err := shader.ParseHex(st.Colors[0]); err == nil {
			mood = hueWord(c.X, c.Y, c.Z)
		}
	}
	subject := "Canvas"
	for _, ae := range st.Effects {
		b, ok := reg.Get(ae.BlockID)
		if !ok || !ae.Enabled {
			continue
		}
		if b.Category == effects.Generator {
			subject = b.Name
			break
		}
		if subject == "Canvas" {
			subject = b.Name
		}
	}
	return mood + " " + subject
}

func hueWord(r, g, b float32) string {
	hi := max(r, g, b)
	lo := min(r, g, b)
	delta := hi - lo
	switch {
	case hi < 0.08:
		return "Midnight"
	case delta < 0.08:
		return "Mono"
	}
	var h float32
	switch hi {
	case r:
		h = (g - b) / delta
	case g:
		h = 2 + (b-r)/delta
	default:
		h = 4 + (r-g)/delta
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return hueWords[int(h/40)%len(hueWords)]
}
