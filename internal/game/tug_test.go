package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/fweiss/armclash/internal/hw/sim"
)

func TestTugTargetFormula(t *testing.T) {
	cases := []struct {
		score Score
		want  int
	}{
		{Score{0, 0}, ArmCenter},
		{Score{1, 0}, ArmCenter + ScoreStep},
		{Score{0, 3}, ArmCenter - 3*ScoreStep},
		{Score{5, 2}, ArmCenter + 3*ScoreStep},
		{Score{50, 0}, ArmMax}, // clamped
		{Score{0, 50}, ArmMin}, // clamped
	}

	for _, tc := range cases {
		g := newTug(rand.New(rand.NewSource(1)))
		act := sim.NewActuator(ArmCenter)
		g.Advance(time.Unix(0, 0), tc.score, act)
		if g.Target() != tc.want {
			t.Fatalf("score %+v: expected target %d, got %d", tc.score, tc.want, g.Target())
		}
	}
}

func TestJitterBoundedAndCosmetic(t *testing.T) {
	g := newTug(rand.New(rand.NewSource(42)))
	act := sim.NewActuator(ArmCenter)
	now := time.Unix(0, 0)

	for i := 0; i < 200; i++ {
		g.Advance(now.Add(time.Duration(i)*TugInterval), Score{2, 1}, act)
	}

	want := ArmCenter + ScoreStep
	if g.Target() != want {
		t.Fatalf("jitter must not move the authoritative target: expected %d, got %d", want, g.Target())
	}
	for _, cmd := range act.Moves {
		if d := abs(cmd - want); d > JitterAmp {
			t.Fatalf("commanded angle %d is more than %d from target %d", cmd, JitterAmp, want)
		}
		if cmd < ArmMin || cmd > ArmMax {
			t.Fatalf("commanded angle %d out of bounds", cmd)
		}
	}
}

func TestJitterNeverTriggersWin(t *testing.T) {
	g := newTug(rand.New(rand.NewSource(7)))
	act := sim.NewActuator(ArmCenter)
	now := time.Unix(0, 0)

	// One step short of the extreme: jitter may command ArmMax but the
	// win check must stay quiet.
	score := Score{(ArmMax - ArmCenter - ScoreStep) / ScoreStep, 0}
	for i := 0; i < 100; i++ {
		g.Advance(now.Add(time.Duration(i)*TugInterval), score, act)
		if g.Winner() != NoWinner {
			t.Fatalf("win flagged at target %d below the extreme", g.Target())
		}
	}
}

func TestWinDetection(t *testing.T) {
	g := newTug(rand.New(rand.NewSource(1)))
	act := sim.NewActuator(ArmCenter)

	g.Advance(time.Unix(0, 0), Score{10, 0}, act)
	if g.Target() != ArmMax {
		t.Fatalf("expected target at ArmMax, got %d", g.Target())
	}
	if g.Winner() != Player1 {
		t.Fatalf("expected player1 win at ArmMax, got %v", g.Winner())
	}

	g.Reset()
	if g.Winner() != NoWinner {
		t.Fatal("reset should clear the win condition")
	}
	g.Advance(time.Unix(10, 0), Score{0, 10}, act)
	if g.Winner() != Player2 {
		t.Fatalf("expected player2 win at ArmMin, got %v", g.Winner())
	}
}

func TestTugCadence(t *testing.T) {
	g := newTug(rand.New(rand.NewSource(1)))
	act := sim.NewActuator(ArmCenter)
	now := time.Unix(0, 0)

	g.Advance(now, Score{1, 0}, act)
	g.Advance(now.Add(10*time.Millisecond), Score{1, 0}, act)
	g.Advance(now.Add(30*time.Millisecond), Score{1, 0}, act)
	if len(act.Moves) != 1 {
		t.Fatalf("expected a single command inside one interval, got %d", len(act.Moves))
	}

	g.Advance(now.Add(TugInterval), Score{1, 0}, act)
	if len(act.Moves) != 2 {
		t.Fatalf("expected a second command after the interval, got %d", len(act.Moves))
	}
}
