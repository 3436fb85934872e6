package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrInvalidCoordinate = errors.New("coordinate is outside the board")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidBoardSize  = errors.New("invalid board size")
	ErrSessionNotFound   = errors.New("session not found")
)
