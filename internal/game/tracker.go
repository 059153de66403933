package game

import (
	"time"

	"github.com/fweiss/armclash/internal/hw"
)

// Events are the input edges observed in one poll.
type Events struct {
	Start   bool
	Player1 bool
	Player2 bool
}

// tracker edge-detects the three switches. Only the start button is
// debounced; the player buttons deliberately are not, because rapid
// intentional clicking is the whole game and a dropped hit hurts more
// than an occasional bounce double-count.
type tracker struct {
	prev          hw.InputState
	lastStartEdge time.Time
}

func newTracker() *tracker {
	return &tracker{}
}

// Poll samples the inputs once and reports which pressed-edges fired.
// The caller decides what the edges mean; edges it ignores are gone, not
// queued.
func (t *tracker) Poll(now time.Time, in hw.Inputs) Events {
	cur := in.Read()
	var ev Events

	if cur.Start && !t.prev.Start {
		if t.lastStartEdge.IsZero() || now.Sub(t.lastStartEdge) >= StartDebounce {
			t.lastStartEdge = now
			ev.Start = true
		}
	}
	ev.Player1 = cur.Player1 && !t.prev.Player1
	ev.Player2 = cur.Player2 && !t.prev.Player2

	t.prev = cur
	return ev
}
