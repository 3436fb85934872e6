package hex

import (
	"fmt"

	"github.com/rocketscienceinc/hexconnect-backend/internal/entity"
)

// Game is one session of the connection game: a board, its connectivity
// tracker, the turn/status state and the accepted-move history. It is not
// safe for concurrent use; callers serialize moves per session.
type Game struct {
	board   *Board
	tracker *ConnectivityTracker
	state   State
	moves   []entity.Move
}

func NewGame(size int) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Game{
		board:   board,
		tracker: NewConnectivityTracker(board),
		state:   NewState(),
	}, nil
}

// ApplyMove runs validation and, only if every check passes, commits the
// move: board write, connectivity update, state transition, history append.
// On any error the game is left exactly as it was.
func (that *Game) ApplyMove(player entity.Player, coord entity.Coordinate) (entity.Snapshot, error) {
	move := entity.Move{Player: player, Coord: coord}

	if err := ValidateMove(&that.state, that.board, move); err != nil {
		return that.Snapshot(), err
	}

	that.board.SetOccupant(coord, player)
	that.tracker.OnPlacement(coord, player)
	that.state.Advance(player, that.tracker.HasWon(player))
	that.moves = append(that.moves, move)

	return that.Snapshot(), nil
}

// Snapshot is a pure read; two consecutive calls with no intervening move
// return identical values.
func (that *Game) Snapshot() entity.Snapshot {
	moves := make([]entity.Move, len(that.moves))
	copy(moves, that.moves)

	return entity.Snapshot{
		Size:   that.board.Size(),
		Board:  that.board.Cells(),
		Turn:   that.state.Turn,
		Winner: that.state.Winner,
		Status: that.state.Status,
		Moves:  moves,
	}
}

func (that *Game) Board() *Board {
	return that.board
}

func (that *Game) State() State {
	return that.state
}

// Replay rebuilds a game from an accepted-move history, re-validating every
// move. This is how persisted sessions come back to life: the snapshot
// stores only the history, never the union-find internals.
func Replay(size int, moves []entity.Move) (*Game, error) {
	game, err := NewGame(size)
	if err != nil {
		return nil, err
	}

	for i, move := range moves {
		if _, err = game.ApplyMove(move.Player, move.Coord); err != nil {
			return nil, fmt.Errorf("failed to replay move %d: %w", i, err)
		}
	}

	return game, nil
}
