//go:build !linux

package headless

import (
	"fmt"

	"github.com/olzn/glint-studio/graphics"
)

// Context is unavailable outside linux; New always fails.
type Context struct {
	graphics.Context
}

func New(width, height int) (*Context, error) {
	return nil, fmt.Errorf("egl headless rendering is not supported on this platform")
}
