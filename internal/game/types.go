package game

// State is the machine's top-level mode. Exactly one is live at a time
// and transitions follow the fixed cycle Idle -> Starting -> Playing ->
// GameOver -> Idle.
type State string

const (
	StateIdle     State = "Idle"
	StateStarting State = "Starting"
	StatePlaying  State = "Playing"
	StateGameOver State = "GameOver"
)

// Winner identifies who took the round, if anyone.
type Winner int

const (
	NoWinner Winner = iota
	Player1
	Player2
)

func (w Winner) String() string {
	switch w {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "none"
	}
}

// Score is the two players' click tallies for the current round.
type Score struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
}

// Diff is the signed differential, positive when player 1 leads.
func (s Score) Diff() int {
	return s.Player1 - s.Player2
}

// clampAngle bounds an arm angle to the actuator geometry.
func clampAngle(a int) int {
	if a < ArmMin {
		return ArmMin
	}
	if a > ArmMax {
		return ArmMax
	}
	return a
}
