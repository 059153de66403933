package game

import (
	"testing"
	"time"

	"github.com/fweiss/armclash/internal/beat"
	"github.com/fweiss/armclash/internal/hw"
	"github.com/fweiss/armclash/internal/hw/sim"
)

func litCount(s *sim.Strip) int {
	n := 0
	for i := 0; i < s.PixelCount(); i++ {
		if s.ColorAt(i) != hw.Black {
			n++
		}
	}
	return n
}

func TestCountdownColors(t *testing.T) {
	strip := sim.NewStrip(30)

	renderCountdown(strip, 500*time.Millisecond)
	for i := 0; i < 30; i++ {
		if c := strip.ColorAt(i); c != hw.Black && c != hw.Red {
			t.Fatalf("first seconds should be red, pixel %d is %v", i, c)
		}
	}

	renderCountdown(strip, 3500*time.Millisecond)
	sawGreen := false
	for i := 0; i < 30; i++ {
		switch strip.ColorAt(i) {
		case colorGreen:
			sawGreen = true
		case hw.Black:
		default:
			t.Fatalf("fourth second should be green, pixel %d is %v", i, strip.ColorAt(i))
		}
	}
	if !sawGreen {
		t.Fatal("expected a green fill in the fourth second")
	}
}

func TestCountdownGrowsFromCenter(t *testing.T) {
	strip := sim.NewStrip(30)

	renderCountdown(strip, 100*time.Millisecond)
	early := litCount(strip)
	if strip.ColorAt(0) != hw.Black {
		t.Fatal("fill starts at the center, not the edges")
	}
	if strip.ColorAt(14) == hw.Black && strip.ColorAt(15) == hw.Black {
		t.Fatal("center pixels should light first")
	}

	renderCountdown(strip, 900*time.Millisecond)
	if litCount(strip) <= early {
		t.Fatal("fill should grow across the second")
	}
}

func TestCountdownHoldsFullGreenPastWindow(t *testing.T) {
	strip := sim.NewStrip(30)
	renderCountdown(strip, 4200*time.Millisecond)
	for i := 0; i < 30; i++ {
		if strip.ColorAt(i) != colorGreen {
			t.Fatalf("expected a full green fill past the window, pixel %d is %v", i, strip.ColorAt(i))
		}
	}
}

func TestScoreBarNearTieIsPurple(t *testing.T) {
	strip := sim.NewStrip(30)
	for _, pos := range []int{ArmCenter, ArmCenter + NearTieBand, ArmCenter - NearTieBand} {
		renderScoreBar(strip, pos)
		for i := 0; i < 30; i++ {
			if strip.ColorAt(i) != colorPurple {
				t.Fatalf("position %d: expected solid purple, pixel %d is %v", pos, i, strip.ColorAt(i))
			}
		}
	}
}

func TestScoreBarWedgeSides(t *testing.T) {
	strip := sim.NewStrip(30)

	// Player 1 leading: red wedge at player 2's edge.
	renderScoreBar(strip, ArmCenter+10)
	if strip.ColorAt(29) != hw.Red {
		t.Fatalf("expected red at player 2's edge, got %v", strip.ColorAt(29))
	}
	if strip.ColorAt(0) != colorPurple {
		t.Fatalf("expected purple on player 1's side, got %v", strip.ColorAt(0))
	}

	// Player 2 leading: blue wedge on the other edge.
	renderScoreBar(strip, ArmCenter-10)
	if strip.ColorAt(0) != hw.Blue {
		t.Fatalf("expected blue at player 1's edge, got %v", strip.ColorAt(0))
	}
	if strip.ColorAt(29) != colorPurple {
		t.Fatalf("expected purple on player 2's side, got %v", strip.ColorAt(29))
	}
}

func TestScoreBarFullDisplacement(t *testing.T) {
	strip := sim.NewStrip(30)
	renderScoreBar(strip, ArmMax)
	// The wedge spans the whole strip at full displacement.
	if strip.ColorAt(0) == colorPurple {
		t.Fatal("expected the gradient to reach player 1's edge at full displacement")
	}
}

func TestWinnerBlink(t *testing.T) {
	strip := sim.NewStrip(30)

	renderWinnerBlink(strip, beat.State{Count: 0, Phase: 0.1}, Player1)
	if strip.ColorAt(5) != hw.Red {
		t.Fatalf("expected red on the on-window, got %v", strip.ColorAt(5))
	}

	renderWinnerBlink(strip, beat.State{Count: 0, Phase: 0.6}, Player1)
	if strip.ColorAt(5) != hw.Black {
		t.Fatalf("expected blackout on the off-window, got %v", strip.ColorAt(5))
	}

	renderWinnerBlink(strip, beat.State{Count: 2, Phase: 0.1}, Player2)
	if strip.ColorAt(5) != hw.Blue {
		t.Fatalf("expected blue for player 2, got %v", strip.ColorAt(5))
	}

	renderWinnerBlink(strip, beat.State{Count: 2, Phase: 0.1}, NoWinner)
	if strip.ColorAt(5) != hw.White {
		t.Fatalf("expected white for no winner, got %v", strip.ColorAt(5))
	}
}
