package game

import "time"

// Machine geometry and feel. These are tuned-by-hand values, kept in one
// place so rebuilds of the rig only need to touch this file.
const (
	// Arm actuator geometry, servo degrees.
	ArmMin    = 70
	ArmCenter = 90
	ArmMax    = 110

	// ScoreStep is how many degrees one click is worth.
	ScoreStep = 2

	// JitterAmp is the cosmetic shake applied to outgoing arm commands,
	// uniform in [-JitterAmp, +JitterAmp]. Never part of win detection.
	JitterAmp = 2

	// Input handling.
	StartDebounce = 50 * time.Millisecond // start button only; player buttons are raw

	// Cadences.
	TugInterval    = 50 * time.Millisecond  // arm position updates while playing
	VolumeInterval = 200 * time.Millisecond // max rate of volume commands

	// State timing.
	CountdownDuration = 4 * time.Second // Starting -> Playing
	GameOverDuration  = 3 * time.Second // GameOver -> Idle
	GameOverPause     = 150 * time.Millisecond

	// Audio. Track numbers follow the SD card layout of the player
	// module; output level range is 0..30.
	TrackIdle     = 1
	TrackStartCue = 2
	TrackGameplay = 3
	TrackVictory  = 4

	IdleVolume        = 15
	GameplayMinVolume = 12
	GameplayMaxVolume = 30

	// TempoBPM must match the gameplay track or nothing will look
	// synchronized.
	TempoBPM = 120

	// NearTieBand is the displacement (degrees from center) within which
	// the score bar renders as an even purple.
	NearTieBand = 2
)

// Victory choreography script values.
const (
	pullbackDistance = 30
	pullbackStep     = 2
	pullbackStepTime = 15 * time.Millisecond
	strikePause      = 150 * time.Millisecond
	strikeStep       = 5
	strikeStepTime   = 8 * time.Millisecond
	strikeSnapBand   = 4
	tremorSwings     = 6
	tremorAmp        = 3
	tremorStepTime   = 40 * time.Millisecond
)
