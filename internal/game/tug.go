package game

import (
	"math/rand"
	"time"

	"github.com/fweiss/armclash/internal/hw"
)

// tug converts the score differential into arm motion. The unjittered
// target is the single source of truth for win detection and volume; the
// jitter only ever reaches the outgoing motion command, so noise cannot
// fake a victory.
type tug struct {
	rng      *rand.Rand
	target   int
	lastTick time.Time
}

func newTug(rng *rand.Rand) *tug {
	return &tug{rng: rng, target: ArmCenter}
}

// Reset recenters the authoritative position for a new round.
func (g *tug) Reset() {
	g.target = ArmCenter
	g.lastTick = time.Time{}
}

// Target is the authoritative, unjittered arm position.
func (g *tug) Target() int {
	return g.target
}

// Advance recomputes the target from the score and commands the actuator,
// at most once per TugInterval. The commanded angle carries a small
// random shake so the arm looks alive under strain.
func (g *tug) Advance(now time.Time, score Score, act hw.Actuator) {
	if !g.lastTick.IsZero() && now.Sub(g.lastTick) < TugInterval {
		return
	}
	g.lastTick = now

	g.target = clampAngle(ArmCenter + score.Diff()*ScoreStep)
	jitter := g.rng.Intn(2*JitterAmp+1) - JitterAmp
	act.MoveTo(clampAngle(g.target + jitter))
}

// Winner checks the authoritative position against the extremes. Player 1
// pushes the arm toward ArmMax, player 2 toward ArmMin. Evaluated every
// poll, not just on tug ticks.
func (g *tug) Winner() Winner {
	switch {
	case g.target >= ArmMax:
		return Player1
	case g.target <= ArmMin:
		return Player2
	default:
		return NoWinner
	}
}
