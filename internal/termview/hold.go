package termview

import "time"

// DefaultHoldWindow covers the gap before terminal key repeat starts.
const DefaultHoldWindow = 550 * time.Millisecond

// HoldTracker turns key-press events into a held state. Terminals report no
// key releases, so a key counts as held until the window after its last
// press elapses.
type HoldTracker struct {
	window time.Duration
	last   time.Time
}

func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{window: window}
}

// Press records a key press (or repeat) at now.
func (h *HoldTracker) Press(now time.Time) {
	h.last = now
}

// Release forgets the last press.
func (h *HoldTracker) Release() {
	h.last = time.Time{}
}

// Held reports whether the key is still considered down at now.
func (h *HoldTracker) Held(now time.Time) bool {
	if h.last.IsZero() {
		return false
	}
	return now.Sub(h.last) < h.window
}
