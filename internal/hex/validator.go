package hex

import (
	"fmt"

	"github.com/rocketscienceinc/hexconnect-backend/internal/apperror"
	"github.com/rocketscienceinc/hexconnect-backend/internal/entity"
)

// ValidateMove decides whether a proposed move is legal. It is a pure read:
// neither state nor board is touched. The checks run in a fixed order so the
// reported reason is deterministic; all must pass before anything commits.
func ValidateMove(state *State, board *Board, move entity.Move) error {
	if state.IsFinished() {
		return apperror.ErrGameFinished
	}

	if move.Player != state.Turn {
		return apperror.ErrNotYourTurn
	}

	if !board.Contains(move.Coord) {
		return fmt.Errorf("%w: q=%d r=%d", apperror.ErrInvalidCoordinate, move.Coord.Q, move.Coord.R)
	}

	occupant, err := board.CellAt(move.Coord)
	if err != nil {
		return err
	}

	if occupant != entity.EmptyCell {
		return fmt.Errorf("%w: q=%d r=%d", apperror.ErrCellOccupied, move.Coord.Q, move.Coord.R)
	}

	return nil
}
