package fx

import (
	"math"

	"github.com/fweiss/armclash/internal/beat"
	"github.com/fweiss/armclash/internal/hw"
)

// generators is the dispatch table for the twelve effects. All of them
// derive timing purely from the beat state and the engine's continuation
// scratch, clamp brightness before output, and treat the strip length as
// a runtime value.
var generators = [EffectCount]func(*Engine, beat.State){
	hueSweep,
	cometTrail,
	breathing,
	emberFlicker,
	travelingWave,
	pendulumSweep,
	sparkleField,
	steppedRainbow,
	fillAndClear,
	chase,
	centerPulse,
	colorStrobe,
}

// progress maps the beat state onto [0,1) over a cycle of the given
// number of beats.
func progress(b beat.State, beats int64) float64 {
	return (float64(b.Count%beats) + b.Phase) / float64(beats)
}

// quarterIndex numbers quarter beats monotonically.
func quarterIndex(b beat.State) int64 {
	return b.Count*4 + int64(b.Phase*4)
}

// hueSweep cycles a rainbow across the strip once per two beats.
func hueSweep(e *Engine, b beat.State) {
	n := e.strip.PixelCount()
	cycle := progress(b, 2)
	for i := 0; i < n; i++ {
		h := cycle + float64(i)/float64(n)
		e.strip.SetPixel(i, hw.HSV(h, 1, 1))
	}
}

// cometTrail runs a bright head across the strip over two beats, leaving
// an exponentially decaying tail behind it. Head brightness dips toward
// the end of each beat.
func cometTrail(e *Engine, b beat.State) {
	e.fadeAll(trailFade)
	n := e.strip.PixelCount()
	head := int(progress(b, 2) * float64(n))
	if head >= n {
		head = n - 1
	}
	c := e.pickColor()
	e.strip.SetPixel(head, c.Scale(1-0.5*b.Phase))
}

// breathing pulses the whole strip with a sine over two beats and drifts
// the hue a notch every four beats.
func breathing(e *Engine, b beat.State) {
	mark := b.Count / 4
	if mark != e.cont.lastMark {
		e.cont.lastMark = mark
		e.cont.hueBase += 0.11
	}
	v := 0.5 + 0.5*math.Sin(2*math.Pi*progress(b, 2))
	e.fill(hw.HSV(e.cont.hueBase, 1, v))
}

// emberFlicker gives every pixel a random ember intensity, biased bright
// inside the accent window at the top of every fourth beat.
func emberFlicker(e *Engine, b beat.State) {
	n := e.strip.PixelCount()
	strong := b.Count%4 == 0 && b.Phase < strongBeatWindow
	for i := 0; i < n; i++ {
		v := 0.15 + 0.45*e.rng.Float64()
		if strong {
			v += 0.4
		}
		h := 0.01 + 0.05*e.rng.Float64() // red through orange
		e.strip.SetPixel(i, hw.HSV(h, 1, v))
	}
}

// travelingWave moves a sine of brightness along the strip.
func travelingWave(e *Engine, b beat.State) {
	n := e.strip.PixelCount()
	t := float64(b.Count) + b.Phase
	h := e.cont.hueBase + 0.55
	for i := 0; i < n; i++ {
		v := 0.5 + 0.5*math.Sin(0.6*float64(i)+2*math.Pi*t)
		e.strip.SetPixel(i, hw.HSV(h, 1, v))
	}
}

// pendulumSweep bounces a head back and forth once per two beats with a
// three-pixel tail at full, half and quarter intensity.
func pendulumSweep(e *Engine, b beat.State) {
	n := e.strip.PixelCount()
	e.fill(hw.Black)
	tri := 2 * progress(b, 2)
	dir := 1
	if tri > 1 {
		tri = 2 - tri
		dir = -1
	}
	head := int(tri * float64(n-1))
	c := e.pickColor()
	for k := 0; k < 3; k++ {
		i := head - dir*k
		if i < 0 || i >= n {
			continue
		}
		e.strip.SetPixel(i, c.Scale(1/math.Pow(2, float64(k))))
	}
}

// sparkleField lets the strip decay while injecting full-brightness
// random-hue sparkles at each quarter-beat boundary.
func sparkleField(e *Engine, b beat.State) {
	e.fadeAll(sparkleFade)
	q := b.Phase * 4
	nearest := math.Round(q)
	if math.Abs(q-nearest) >= sparkleWindow*4 {
		return
	}
	// Number the boundary itself, not the quarter the poll landed in, so
	// polls straddling a boundary dedup to the same mark. A phase just
	// under 1 rounds to the next beat's first boundary.
	mark := b.Count*4 + int64(nearest)
	if mark == e.cont.lastMark {
		return
	}
	e.cont.lastMark = mark
	n := e.strip.PixelCount()
	for k := 0; k < 1+n/20; k++ {
		e.strip.SetPixel(e.rng.Intn(n), hw.HSV(e.rng.Float64(), 1, 1))
	}
}

// steppedRainbow offsets each pixel's hue and advances the whole pattern
// one discrete step every half beat, pulsing brightness with the beat.
func steppedRainbow(e *Engine, b beat.State) {
	n := e.strip.PixelCount()
	half := b.Count * 2
	if b.Phase >= 0.5 {
		half++
	}
	v := 1 - 0.6*b.Phase
	for i := 0; i < n; i++ {
		h := float64(i)/float64(n) + 0.1*float64(half)
		e.strip.SetPixel(i, hw.HSV(h, 1, v))
	}
}

// fillAndClear sweeps a fill across the strip and then a clear, covering
// twice the strip length over four beats, with a fresh random hue at the
// start of each cycle.
func fillAndClear(e *Engine, b beat.State) {
	n := e.strip.PixelCount()
	mark := b.Count / 4
	if mark != e.cont.lastMark {
		e.cont.lastMark = mark
		e.cont.hasColor = false
	}
	c := e.pickColor()
	pos := int(progress(b, 4) * float64(2*n))
	for i := 0; i < n; i++ {
		lit := false
		if pos < n {
			lit = i < pos
		} else {
			lit = i >= pos-n
		}
		if lit {
			e.strip.SetPixel(i, c)
		} else {
			e.strip.SetPixel(i, hw.Black)
		}
	}
}

// chase lights one of every three pixels, advancing the offset each
// quarter beat and drifting the hue every two beats.
func chase(e *Engine, b beat.State) {
	n := e.strip.PixelCount()
	mark := b.Count / 2
	if mark != e.cont.lastMark {
		e.cont.lastMark = mark
		e.cont.hueBase += 0.07
	}
	offset := int(quarterIndex(b) % 3)
	c := hw.HSV(e.cont.hueBase, 1, 1)
	for i := 0; i < n; i++ {
		if (i+offset)%3 == 0 {
			e.strip.SetPixel(i, c)
		} else {
			e.strip.SetPixel(i, hw.Black)
		}
	}
}

// centerPulse beats a pulse out from the strip's center, attenuating
// brightness with distance and offsetting hue per pixel.
func centerPulse(e *Engine, b beat.State) {
	n := e.strip.PixelCount()
	mark := b.Count / 2
	if mark != e.cont.lastMark {
		e.cont.lastMark = mark
		e.cont.hueBase += 0.13
	}
	center := float64(n-1) / 2
	pulse := 1 - b.Phase
	for i := 0; i < n; i++ {
		dist := math.Abs(float64(i)-center) / (center + 1)
		v := pulse * (1 - dist)
		h := e.cont.hueBase + 0.02*float64(i)
		e.strip.SetPixel(i, hw.HSV(h, 1, v))
	}
}

// strobePalette are the four colors colorStrobe cycles through, keyed to
// beatCount mod 4.
var strobePalette = [4]hw.RGB{
	hw.Red,
	{R: 0, G: 255, B: 0},
	hw.Blue,
	hw.White,
}

// colorStrobe hard-flashes the strip on alternating quarter beats.
func colorStrobe(e *Engine, b beat.State) {
	if quarterIndex(b)%2 == 0 {
		e.fill(strobePalette[b.Count%4])
	} else {
		e.fill(hw.Black)
	}
}
