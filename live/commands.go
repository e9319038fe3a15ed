package live

import (
	"errors"
	"fmt"

	"github.com/olzn/glint-studio/recipe"
)

var ErrUnknownMessage = errors.New("unknown client message")

// Apply performs a client message against store. Undo and redo with no
// history are not errors.
func Apply(store *recipe.Store, m ClientMessage) error {
	switch m.Type {
	case "setParam":
		if m.Value == nil {
			return fmt.Errorf("setParam %s: missing value", m.Key)
		}
		return store.SetParam(m.Key, *m.Value)
	case "undo":
		store.Undo()
	case "redo":
		store.Redo()
	case "preset":
		return store.LoadPreset(m.Preset)
	default:
		return fmt.Errorf("%w %q", ErrUnknownMessage, m.Type)
	}
	return nil
}
