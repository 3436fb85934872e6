package entity

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
)

// Coordinate addresses a cell in axial hex coordinates. Both components run
// from 0 to boardSize-1 on the rhombic board.
type Coordinate struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Move is a single accepted placement.
type Move struct {
	Player Player     `json:"player"`
	Coord  Coordinate `json:"coord"`
}

// Snapshot is the serializable view of a session: everything a caller (or
// the session repository) needs, and nothing derived. The board is stored
// row-major, index r*Size+q. Connectivity state is intentionally absent; it
// is rebuilt by replaying Moves.
type Snapshot struct {
	ID      string         `json:"id"`
	Size    int            `json:"size"`
	Board   []Player       `json:"board"`
	Turn    Player         `json:"turn,omitempty"`
	Winner  Player         `json:"winner,omitempty"`
	Status  string         `json:"status"`
	Moves   []Move         `json:"moves"`
	Players []*Participant `json:"players,omitempty"`
}

func (that *Snapshot) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Snapshot) IsFinished() bool {
	return that.Status == StatusWon
}

// OccupiedCells counts non-empty cells on the board view.
func (that *Snapshot) OccupiedCells() int {
	count := 0
	for _, cell := range that.Board {
		if cell != EmptyCell {
			count++
		}
	}

	return count
}
