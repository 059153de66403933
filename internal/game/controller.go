package game

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fweiss/armclash/internal/beat"
	"github.com/fweiss/armclash/internal/fx"
	"github.com/fweiss/armclash/internal/hw"
)

// Deps are the collaborators the controller drives. Rand must be set;
// Sleep defaults to time.Sleep and exists so the knockout cutscene can be
// tested on virtual time.
type Deps struct {
	Strip    hw.Strip
	Actuator hw.Actuator
	Audio    hw.Audio
	Inputs   hw.Inputs
	Rand     *rand.Rand
	Sleep    func(time.Duration)
	Log      zerolog.Logger
}

// Controller is the machine's single-threaded control core. Poll is the
// only mutator and runs on one goroutine; the mutex exists so the HTTP
// and socket goroutines can take consistent snapshots.
type Controller struct {
	mu sync.Mutex

	log   zerolog.Logger
	strip hw.Strip
	act   hw.Actuator
	audio hw.Audio
	in    hw.Inputs
	sleep func(time.Duration)

	clock   *beat.Clock
	effects *fx.Engine
	tracker *tracker
	tug     *tug
	vol     *volumeRamp

	state     State
	enteredAt time.Time
	score     Score
	winner    Winner
	roundID   string
}

// Snapshot is the read-only view served to the panel and the API.
type Snapshot struct {
	State    State   `json:"state"`
	Score    Score   `json:"score"`
	Winner   string  `json:"winner"`
	Position int     `json:"position"`
	RoundID  string  `json:"roundId"`
	Beat     int64   `json:"beat"`
	Phase    float64 `json:"phase"`
	Effect   int     `json:"effect"`
}

// New wires up the controller, starts the idle soundtrack and leaves the
// machine in Idle with the actuator unpowered. An audio module that
// failed its readiness handshake is replaced by the no-op driver; the
// game is fully playable without sound.
func New(d Deps, now time.Time) *Controller {
	audio := d.Audio
	if !audio.Ready() {
		d.Log.Warn().Msg("audio module not ready, running silent")
		audio = hw.NopAudio{}
	}
	sleep := d.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	c := &Controller{
		log:     d.Log,
		strip:   d.Strip,
		act:     d.Actuator,
		audio:   audio,
		in:      d.Inputs,
		sleep:   sleep,
		clock:   beat.New(TempoBPM, now),
		effects: fx.New(d.Strip, d.Rand, now),
		tracker: newTracker(),
		tug:     newTug(d.Rand),
		vol:     newVolumeRamp(),
		state:   StateIdle,
	}
	c.enteredAt = now
	c.audio.SetOutputLevel(IdleVolume)
	c.audio.Loop(TrackIdle)
	return c
}

// Run drives Poll from a ticker until the context ends.
func (c *Controller) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			c.Poll(now)
		}
	}
}

// Poll is one pass of the cooperative loop: refresh the beat clock,
// sample inputs, dispatch on state, render, transmit. Everything here is
// non-blocking except the knockout cutscene inside the Playing branch.
func (c *Controller) Poll(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := c.clock.Update(now)
	ev := c.tracker.Poll(now, c.in)

	switch c.state {
	case StateIdle:
		if ev.Start {
			c.enterStarting(now)
		} else {
			c.effects.MaybeRotate(now, b)
		}

	case StateStarting:
		if now.Sub(c.enteredAt) >= CountdownDuration {
			c.enterPlaying(now)
		}

	case StatePlaying:
		if ev.Player1 {
			c.score.Player1++
		}
		if ev.Player2 {
			c.score.Player2++
		}
		c.tug.Advance(now, c.score, c.act)
		c.vol.Update(now, c.tug.Target(), c.audio)
		if w := c.tug.Winner(); w != NoWinner {
			c.winner = w
			c.enterGameOver(now)
		}

	case StateGameOver:
		if ev.Start {
			c.enterIdle(now)
			c.enterStarting(now)
		} else if now.Sub(c.enteredAt) >= GameOverDuration {
			c.enterIdle(now)
		}
	}

	c.render(now)
	c.strip.Commit()
}

func (c *Controller) render(now time.Time) {
	switch c.state {
	case StateIdle:
		c.effects.Render(c.clock.Update(now))
	case StateStarting:
		renderCountdown(c.strip, now.Sub(c.enteredAt))
	case StatePlaying:
		renderScoreBar(c.strip, c.tug.Target())
	case StateGameOver:
		renderWinnerBlink(c.strip, c.clock.Update(now), c.winner)
	}
}

func (c *Controller) enterStarting(now time.Time) {
	c.state = StateStarting
	c.enteredAt = now
	c.score = Score{}
	c.winner = NoWinner
	c.roundID = uuid.NewString()
	c.tug.Reset()
	c.vol.Reset()
	c.effects.ResetContinuation()
	c.act.Engage()
	c.act.MoveTo(ArmCenter)
	c.audio.PlayOnce(TrackStartCue)
	c.log.Info().Str("round", c.roundID).Msg("round starting")
}

func (c *Controller) enterPlaying(now time.Time) {
	c.state = StatePlaying
	c.enteredAt = now
	c.audio.Loop(TrackGameplay)
	c.vol.Update(now, ArmCenter, c.audio) // force the floor level immediately
	c.log.Info().Str("round", c.roundID).Msg("round live")
}

// enterGameOver runs the knockout cutscene synchronously, then parks the
// machine in GameOver. Blocking here is deliberate: the round is decided
// and no input is serviced during the strike.
func (c *Controller) enterGameOver(now time.Time) {
	c.audio.Stop()
	blocked := runKnockout(c.winner, c.tug.Target(), c.act, c.sleep)
	c.sleep(GameOverPause)
	c.audio.SetOutputLevel(IdleVolume)
	c.audio.PlayOnce(TrackVictory)
	c.state = StateGameOver
	// now was captured before the cutscene blocked the loop. Stamp the
	// entry past that blocked stretch so the winner blink holds for the
	// full GameOver window once the loop resumes.
	c.enteredAt = now.Add(blocked + GameOverPause)
	c.log.Info().
		Str("round", c.roundID).
		Str("winner", c.winner.String()).
		Int("p1", c.score.Player1).
		Int("p2", c.score.Player2).
		Msg("round over")
}

func (c *Controller) enterIdle(now time.Time) {
	c.state = StateIdle
	c.enteredAt = now
	c.winner = NoWinner
	c.act.MoveTo(ArmCenter)
	c.act.Disengage()
	c.audio.Loop(TrackIdle)
	c.clock.ResetEpoch(now)
	c.effects.Select(now)
}

// Snapshot returns a consistent view of the machine for readers outside
// the poll loop.
func (c *Controller) Snapshot(now time.Time) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	b := c.clock.Update(now)
	return Snapshot{
		State:    c.state,
		Score:    c.score,
		Winner:   c.winner.String(),
		Position: c.tug.Target(),
		RoundID:  c.roundID,
		Beat:     b.Count,
		Phase:    b.Phase,
		Effect:   c.effects.Current(),
	}
}
