package shader

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/soypat/geometry/ms3"
)

// HexColor matches the only color notation accepted in recipes.
var HexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ParseHex converts "#rrggbb" into components in [0,1].
func ParseHex(s string) (ms3.Vec, error) {
	if !HexColor.MatchString(s) {
		return ms3.Vec{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return ms3.Vec{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return ms3.Vec{
		X: float32((v>>16)&0xff) / 255,
		Y: float32((v>>8)&0xff) / 255,
		Z: float32(v&0xff) / 255,
	}, nil
}

// FormatHex is the inverse of ParseHex, rounding each channel.
func FormatHex(c ms3.Vec) string {
	ch := func(f float32) uint8 {
		if f <= 0 {
			return 0
		}
		if f >= 1 {
			return 255
		}
		return uint8(f*255 + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", ch(c.X), ch(c.Y), ch(c.Z))
}
