package game

import (
	"time"

	"github.com/fweiss/armclash/internal/beat"
	"github.com/fweiss/armclash/internal/hw"
)

// Strip layout: pixel 0 sits on player 1's side, the last pixel on
// player 2's. The renders below are the non-idle visuals; the idle
// animations live in the fx package.

var (
	colorPurple = hw.RGB{R: 128, B: 128}
	colorGreen  = hw.RGB{G: 255}
)

// renderCountdown draws the pre-round gauge: each of the four seconds
// fills the strip from the center outward, red for the first three and
// green for the last. Past the window it holds a full green fill until
// the state machine fires.
func renderCountdown(strip hw.Strip, elapsed time.Duration) {
	n := strip.PixelCount()
	sec := int(elapsed / time.Second)
	if sec >= 4 {
		for i := 0; i < n; i++ {
			strip.SetPixel(i, colorGreen)
		}
		return
	}
	c := hw.Red
	if sec == 3 {
		c = colorGreen
	}
	frac := float64(elapsed%time.Second) / float64(time.Second)
	center := float64(n-1) / 2
	span := frac * (center + 1)
	for i := 0; i < n; i++ {
		d := float64(i) - center
		if d < 0 {
			d = -d
		}
		if d <= span {
			strip.SetPixel(i, c)
		} else {
			strip.SetPixel(i, hw.Black)
		}
	}
}

// renderScoreBar draws the in-round bar: solid purple while the arm is
// near center, otherwise a purple-to-red (player 1 leading) or
// purple-to-blue (player 2 leading) gradient wedge growing from the
// losing side's edge, sized by the displacement ratio.
func renderScoreBar(strip hw.Strip, position int) {
	n := strip.PixelCount()
	disp := position - ArmCenter
	for i := 0; i < n; i++ {
		strip.SetPixel(i, colorPurple)
	}
	if abs(disp) <= NearTieBand {
		return
	}

	ratio := float64(abs(disp)) / float64(ArmMax-ArmCenter)
	if ratio > 1 {
		ratio = 1
	}
	wedge := int(ratio * float64(n))
	lead := hw.Red
	fromEnd := true // player 1 leading: wedge grows from player 2's edge
	if disp < 0 {
		lead = hw.Blue
		fromEnd = false
	}
	for k := 0; k < wedge; k++ {
		// Full lead color at the edge, blending back toward purple.
		t := 1.0
		if wedge > 1 {
			t = 1 - float64(k)/float64(wedge)
		}
		c := lerpRGB(colorPurple, lead, t)
		if fromEnd {
			strip.SetPixel(n-1-k, c)
		} else {
			strip.SetPixel(k, c)
		}
	}
}

// renderWinnerBlink flashes the winner's color at a half-beat period:
// red for player 1, blue for player 2, white if somehow neither.
func renderWinnerBlink(strip hw.Strip, b beat.State, w Winner) {
	half := b.Count * 2
	if b.Phase >= 0.5 {
		half++
	}
	c := hw.Black
	if half%2 == 0 {
		switch w {
		case Player1:
			c = hw.Red
		case Player2:
			c = hw.Blue
		default:
			c = hw.White
		}
	}
	n := strip.PixelCount()
	for i := 0; i < n; i++ {
		strip.SetPixel(i, c)
	}
}

func lerpRGB(a, b hw.RGB, t float64) hw.RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return hw.RGB{
		R: uint8(float64(a.R) + t*(float64(b.R)-float64(a.R))),
		G: uint8(float64(a.G) + t*(float64(b.G)-float64(a.G))),
		B: uint8(float64(a.B) + t*(float64(b.B)-float64(a.B))),
	}
}
