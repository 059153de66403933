package game

import (
	"time"

	"github.com/fweiss/armclash/internal/hw"
)

// volumeRamp maps arm displacement to gameplay volume: the further the
// arm is from center, in either direction, the louder the track. Updates
// are rate-limited and deduplicated because the player module sits on a
// slow serial link that cannot absorb a command per poll.
type volumeRamp struct {
	last     int
	lastSent time.Time
	primed   bool
}

func newVolumeRamp() *volumeRamp {
	return &volumeRamp{}
}

// Reset forgets the previous round; the next Update always sends.
func (v *volumeRamp) Reset() {
	v.last = 0
	v.lastSent = time.Time{}
	v.primed = false
}

// Level maps an arm position to an output level in
// [GameplayMinVolume, GameplayMaxVolume].
func (v *volumeRamp) Level(position int) int {
	disp := position - ArmCenter
	if disp < 0 {
		disp = -disp
	}
	intensity := float64(disp) / float64(ArmMax-ArmCenter)
	if intensity > 1 {
		intensity = 1
	}
	return GameplayMinVolume + int(intensity*float64(GameplayMaxVolume-GameplayMinVolume))
}

// Update sends the mapped level at most once per VolumeInterval, and only
// when it moved by at least one unit since the last send (or on the first
// call of a round).
func (v *volumeRamp) Update(now time.Time, position int, audio hw.Audio) {
	if v.primed && now.Sub(v.lastSent) < VolumeInterval {
		return
	}
	level := v.Level(position)
	if v.primed && level == v.last {
		return
	}
	audio.SetOutputLevel(level)
	v.last = level
	v.lastSent = now
	v.primed = true
}
