package hex

import "github.com/rocketscienceinc/hexconnect-backend/internal/entity"

// State is the turn/status machine. It starts waiting for red and has a
// single terminal transition to a winner; the rule set is identical for
// both players. Only Advance mutates it, and only the controller calls
// Advance, so a session can never observe a half-applied transition.
type State struct {
	Turn   entity.Player
	Status string
	Winner entity.Player
}

func NewState() State {
	return State{
		Turn:   entity.PlayerRed,
		Status: entity.StatusInProgress,
	}
}

func (that *State) IsFinished() bool {
	return that.Status == entity.StatusWon
}

// Advance applies the post-commit transition for a move by mover: terminal
// if the move won, otherwise the turn flips.
func (that *State) Advance(mover entity.Player, won bool) {
	if won {
		that.Status = entity.StatusWon
		that.Winner = mover
		that.Turn = entity.EmptyCell

		return
	}

	that.Turn = mover.Opponent()
}
