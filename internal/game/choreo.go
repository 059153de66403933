package game

import (
	"time"

	"github.com/fweiss/armclash/internal/hw"
)

// choreoStep is one timed motion command of the knockout sequence.
type choreoStep struct {
	angle int
	wait  time.Duration
}

// knockoutScript builds the victory motion sequence for the given winner
// starting from the current arm position: pull back toward center, pause,
// strike to the winner's extreme, then tremor around it. Keeping it as a
// plain step list means tests can check the script without real time.
func knockoutScript(winner Winner, from int) []choreoStep {
	var steps []choreoStep
	pos := clampAngle(from)

	// The strike target is the extreme the winner was pushing toward.
	target := ArmMax
	if winner == Player2 {
		target = ArmMin
	}

	// Pull back toward center.
	toward := 1
	if pos > ArmCenter {
		toward = -1
	}
	for moved := 0; moved < pullbackDistance; moved += pullbackStep {
		next := clampAngle(pos + toward*pullbackStep)
		if next == pos {
			break
		}
		pos = next
		steps = append(steps, choreoStep{pos, pullbackStepTime})
	}

	steps = append(steps, choreoStep{pos, strikePause})

	// Strike: rush the target, snap when close.
	dir := 1
	if target < pos {
		dir = -1
	}
	for abs(target-pos) > strikeSnapBand {
		pos = clampAngle(pos + dir*strikeStep)
		steps = append(steps, choreoStep{pos, strikeStepTime})
	}
	if pos != target {
		pos = target
		steps = append(steps, choreoStep{pos, strikeStepTime})
	}

	// Tremor: alternating swings, ending snapped on the target.
	for i := 0; i < tremorSwings; i++ {
		off := tremorAmp
		if i%2 == 1 {
			off = -tremorAmp
		}
		steps = append(steps, choreoStep{clampAngle(target + off), tremorStepTime})
	}
	steps = append(steps, choreoStep{target, tremorStepTime})

	return steps
}

// runKnockout plays the script synchronously and reports how long it
// blocked for. This is the one place the machine is allowed to block:
// the round is already decided and the ~1 second cutscene is atomic on
// purpose. Never call it without a winner. The returned duration lets
// the caller credit the blocked time against its own timers even when
// the sleep is virtual.
func runKnockout(winner Winner, from int, act hw.Actuator, sleep func(time.Duration)) time.Duration {
	var blocked time.Duration
	for _, s := range knockoutScript(winner, from) {
		act.MoveTo(s.angle)
		sleep(s.wait)
		blocked += s.wait
	}
	return blocked
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
