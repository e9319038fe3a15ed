package recipe

import "time"

const (
	MaxHistory     = 50
	ParamCoalesce  = 600 * time.Millisecond
	AutosavePeriod = 10 * time.Second
)

// history is a bounded undo/redo stack of state snapshots. Parameter edits
// arriving within ParamCoalesce of each other share one pending snapshot
// that is committed when the burst ends or any other edit happens.
type history struct {
	undo, redo []State
	pending    *State
	lastParam  time.Time
}

func (h *history) push(s State) {
	h.undo = append(h.undo, s)
	if len(h.undo) > MaxHistory {
		h.undo = h.undo[len(h.undo)-MaxHistory:]
	}
}

func (h *history) flush() {
	if h.pending != nil {
		h.push(*h.pending)
		h.pending = nil
	}
}

// record stores prev before a discrete edit.
func (h *history) record(prev State) {
	h.flush()
	h.push(prev)
	h.redo = nil
}

// recordParam stores prev before a parameter edit unless a burst is
// already in progress.
func (h *history) recordParam(prev State, now time.Time) {
	if h.pending == nil || now.Sub(h.lastParam) >= ParamCoalesce {
		h.flush()
		h.pending = &prev
	}
	h.lastParam = now
	h.redo = nil
}

func (h *history) undoTo(cur State) (State, bool) {
	h.flush()
	if len(h.undo) == 0 {
		return State{}, false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, cur)
	return prev, true
}

func (h *history) redoTo(cur State) (State, bool) {
	if len(h.redo) == 0 {
		return State{}, false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.push(cur)
	return next, true
}

func (h *history) canUndo() bool { return len(h.undo) > 0 || h.pending != nil }

func (h *history) canRedo() bool { return len(h.redo) > 0 }
