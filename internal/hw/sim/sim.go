// Package sim provides in-memory implementations of the hw interfaces.
// The panel server reads their state back to draw the browser simulator,
// and the tests use them as recording fakes. All types are safe to read
// from the HTTP goroutines while the poll loop writes them.
package sim

import (
	"sync"

	"github.com/fweiss/armclash/internal/hw"
)

// Strip buffers pixels and keeps the last committed frame for readers.
type Strip struct {
	mu        sync.Mutex
	pixels    []hw.RGB
	committed []hw.RGB
	Commits   int
}

func NewStrip(n int) *Strip {
	return &Strip{pixels: make([]hw.RGB, n), committed: make([]hw.RGB, n)}
}

func (s *Strip) PixelCount() int {
	return len(s.pixels)
}

func (s *Strip) SetPixel(i int, c hw.RGB) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.pixels) {
		return
	}
	s.pixels[i] = c
}

func (s *Strip) ColorAt(i int) hw.RGB {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.pixels) {
		return hw.RGB{}
	}
	return s.pixels[i]
}

func (s *Strip) Commit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.committed, s.pixels)
	s.Commits++
}

// Frame returns a copy of the last committed frame.
func (s *Strip) Frame() []hw.RGB {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]hw.RGB, len(s.committed))
	copy(out, s.committed)
	return out
}

// Actuator records the commanded angle and power state and keeps a move
// history so tests can assert on motion scripts.
type Actuator struct {
	mu      sync.Mutex
	angle   int
	engaged bool
	Moves   []int
}

func NewActuator(center int) *Actuator {
	return &Actuator{angle: center}
}

func (a *Actuator) Engage() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.engaged = true
}

func (a *Actuator) Disengage() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.engaged = false
}

func (a *Actuator) MoveTo(angle int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.angle = angle
	a.Moves = append(a.Moves, angle)
}

func (a *Actuator) Angle() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.angle
}

func (a *Actuator) Engaged() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engaged
}

// Audio records playback commands.
type Audio struct {
	mu      sync.Mutex
	Looping int // track id, 0 when none
	Played  []int
	Level   int
	Levels  []int
}

func NewAudio() *Audio {
	return &Audio{}
}

func (a *Audio) Ready() bool { return true }

func (a *Audio) PlayOnce(track int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Played = append(a.Played, track)
}

func (a *Audio) Loop(track int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Looping = track
}

func (a *Audio) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Looping = 0
}

func (a *Audio) SetOutputLevel(level int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Level = level
	a.Levels = append(a.Levels, level)
}

func (a *Audio) CurrentLevel() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Level
}

func (a *Audio) LoopingTrack() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Looping
}

// Inputs holds virtual switch levels, set by the panel server (or tests)
// and sampled by the poll loop.
type Inputs struct {
	mu    sync.Mutex
	state hw.InputState
}

func NewInputs() *Inputs {
	return &Inputs{}
}

func (in *Inputs) Read() hw.InputState {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.state
}

func (in *Inputs) SetStart(down bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.state.Start = down
}

func (in *Inputs) SetPlayer1(down bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.state.Player1 = down
}

func (in *Inputs) SetPlayer2(down bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.state.Player2 = down
}
