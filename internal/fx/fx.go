// Package fx is the idle-light animation engine: twelve interchangeable
// generators that paint the strip from beat-clock state. Exactly one is
// active at a time; the machine swaps them pseudo-randomly between games
// and periodically while nobody is playing.
package fx

import (
	"math/rand"
	"time"

	"github.com/fweiss/armclash/internal/beat"
	"github.com/fweiss/armclash/internal/hw"
)

const (
	// EffectCount is the number of generator variants.
	EffectCount = 12

	// Tuning values, not invariants. Chosen by eye.
	rotateEveryBeats = 8           // swap effects every N beats while idle
	rotateMinGap     = time.Second // but never twice within this window
	strongBeatWindow = 0.2         // accent window at the top of every 4th beat
	trailFade        = 0.85        // per-poll decay of the comet trail
	sparkleFade      = 0.9         // per-poll decay under the sparkles
	sparkleWindow    = 0.01        // phase tolerance around quarter-beat boundaries
)

// continuation is the per-effect scratch state that survives between
// polls. Select zeroes the whole struct (plus the non-zero defaults set
// in reset) so no effect ever inherits another's leftovers.
type continuation struct {
	hueBase  float64 // slowly drifting base hue
	color    hw.RGB  // the effect's chosen color, once picked
	hasColor bool
	lastMark int64 // last beat/half-beat/cycle index already handled, reset to -1
}

func (c *continuation) reset() {
	*c = continuation{lastMark: -1}
}

// Engine owns effect selection and rendering. Not safe for concurrent
// use; the poll loop is its only caller.
type Engine struct {
	strip      hw.Strip
	rng        *rand.Rand
	current    int
	cont       continuation
	lastSwitch time.Time
}

// New returns an engine with a randomly selected initial effect.
func New(strip hw.Strip, rng *rand.Rand, now time.Time) *Engine {
	e := &Engine{strip: strip, rng: rng}
	e.Select(now)
	return e
}

// Current reports the active effect index.
func (e *Engine) Current() int {
	return e.current
}

// Select draws a fresh effect uniformly at random and resets all
// continuation state.
func (e *Engine) Select(now time.Time) {
	e.current = e.rng.Intn(EffectCount)
	e.cont.reset()
	e.lastSwitch = now
}

// ResetContinuation clears the scratch state without changing the active
// effect. Called when a new game starts so gameplay rendering never
// inherits animation leftovers.
func (e *Engine) ResetContinuation() {
	e.cont.reset()
}

// MaybeRotate swaps the effect on every rotateEveryBeats-th beat, gated
// so polling granularity can't retrigger it within rotateMinGap. Called
// only while the machine is idle.
func (e *Engine) MaybeRotate(now time.Time, b beat.State) {
	if b.Count%rotateEveryBeats != 0 {
		return
	}
	if now.Sub(e.lastSwitch) < rotateMinGap {
		return
	}
	e.Select(now)
}

// Render paints the whole strip with the active effect. The caller
// commits the frame.
func (e *Engine) Render(b beat.State) {
	generators[e.current](e, b)
}

// pickColor returns the effect's color, choosing a random hue on first
// use after a reset.
func (e *Engine) pickColor() hw.RGB {
	if !e.cont.hasColor {
		e.cont.color = hw.HSV(e.rng.Float64(), 1, 1)
		e.cont.hasColor = true
	}
	return e.cont.color
}

// fadeAll decays every pixel toward black by the given factor.
func (e *Engine) fadeAll(factor float64) {
	n := e.strip.PixelCount()
	for i := 0; i < n; i++ {
		e.strip.SetPixel(i, e.strip.ColorAt(i).Scale(factor))
	}
}

// fill sets every pixel to the same color.
func (e *Engine) fill(c hw.RGB) {
	n := e.strip.PixelCount()
	for i := 0; i < n; i++ {
		e.strip.SetPixel(i, c)
	}
}
