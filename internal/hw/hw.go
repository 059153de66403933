// Package hw defines the interfaces to the machine peripherals: the arm
// actuator, the addressable LED strip, the audio playback module and the
// three momentary switches. The game core only ever talks to these
// interfaces; real GPIO/serial bindings and the in-memory simulator both
// live behind them.
package hw

// InputState is one raw sample of the three switches, already normalized
// so that true means pressed (the physical switches are active-low).
type InputState struct {
	Start   bool
	Player1 bool
	Player2 bool
}

// Inputs samples the switch levels. A single Read per poll cycle.
type Inputs interface {
	Read() InputState
}

// Actuator is the single-axis arm. Angles are servo degrees; callers are
// expected to stay within the geometry they configured, but drivers should
// clamp defensively anyway.
type Actuator interface {
	Engage()
	Disengage()
	MoveTo(angle int)
}

// Strip is the addressable RGB strip. SetPixel writes into the driver's
// buffer, Commit transmits it. ColorAt reads the buffered color back,
// which the fade-based animations rely on.
type Strip interface {
	SetPixel(i int, c RGB)
	ColorAt(i int) RGB
	Commit()
	PixelCount() int
}

// Audio is the playback module (DFPlayer-style: numbered tracks, volume
// 0..30). Ready reports whether the module answered its startup
// handshake; when it did not, use NopAudio instead and play on.
type Audio interface {
	Ready() bool
	PlayOnce(track int)
	Loop(track int)
	Stop()
	SetOutputLevel(level int)
}

// NopAudio is the degrade path for a missing or unresponsive audio
// module: every command is a no-op and the rest of the machine proceeds.
type NopAudio struct{}

func (NopAudio) Ready() bool        { return false }
func (NopAudio) PlayOnce(int)       {}
func (NopAudio) Loop(int)           {}
func (NopAudio) Stop()              {}
func (NopAudio) SetOutputLevel(int) {}
