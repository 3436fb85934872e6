package entity

// Player is the stone color. It doubles as the occupant value of a board
// cell, where the empty string means an empty cell.
type Player string

const (
	PlayerRed  Player = "red"
	PlayerBlue Player = "blue"

	EmptyCell Player = ""
)

const (
	KindHuman  = "human"
	KindEngine = "engine"
)

// Participant binds a seat in a session to a color. Kind distinguishes a
// human seat from a (future) engine-driven one.
type Participant struct {
	ID    string `json:"id"`
	Color Player `json:"color"`
	Kind  string `json:"kind"`
}

func (that Player) Opponent() Player {
	if that == PlayerRed {
		return PlayerBlue
	}
	return PlayerRed
}

func (that Player) IsValid() bool {
	return that == PlayerRed || that == PlayerBlue
}
