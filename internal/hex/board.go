// Package hex implements the connection-game engine: a rhombic board of
// axial hex coordinates, move validation, and incremental win detection.
//
// Red plays between the west (q=0) and east (q=size-1) edges, blue between
// the north (r=0) and south (r=size-1) edges, matching the original game's
// color and edge assignment.
package hex

import (
	"fmt"

	"github.com/rocketscienceinc/hexconnect-backend/internal/apperror"
	"github.com/rocketscienceinc/hexconnect-backend/internal/entity"
)

const MinBoardSize = 2

// directions lists the six axial neighbor offsets. The order is fixed so
// neighbor enumeration is reproducible.
var directions = [6]entity.Coordinate{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Board owns cell storage and adjacency geometry for one session. Size is
// fixed at creation.
type Board struct {
	size  int
	cells []entity.Player
}

func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	return &Board{
		size:  size,
		cells: make([]entity.Player, size*size),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) Contains(coord entity.Coordinate) bool {
	return coord.Q >= 0 && coord.Q < that.size && coord.R >= 0 && coord.R < that.size
}

// CellAt returns the occupant of the cell, or EmptyCell if nobody owns it.
func (that *Board) CellAt(coord entity.Coordinate) (entity.Player, error) {
	if !that.Contains(coord) {
		return entity.EmptyCell, fmt.Errorf("%w: q=%d r=%d", apperror.ErrInvalidCoordinate, coord.Q, coord.R)
	}

	return that.cells[that.index(coord)], nil
}

// SetOccupant writes the owner of a cell. Bounds and emptiness are the
// validator's responsibility; this is a pure write.
func (that *Board) SetOccupant(coord entity.Coordinate, player entity.Player) {
	that.cells[that.index(coord)] = player
}

// Neighbors returns the in-bounds adjacent coordinates in a stable order.
// Interior cells have six, edge and corner cells fewer.
func (that *Board) Neighbors(coord entity.Coordinate) []entity.Coordinate {
	neighbors := make([]entity.Coordinate, 0, len(directions))

	for _, dir := range directions {
		next := entity.Coordinate{Q: coord.Q + dir.Q, R: coord.R + dir.R}
		if that.Contains(next) {
			neighbors = append(neighbors, next)
		}
	}

	return neighbors
}

// OnFirstEdge reports whether the coordinate lies on the player's first
// target edge: west for red, north for blue.
func (that *Board) OnFirstEdge(coord entity.Coordinate, player entity.Player) bool {
	if player == entity.PlayerRed {
		return coord.Q == 0
	}
	return coord.R == 0
}

// OnSecondEdge reports whether the coordinate lies on the player's second
// target edge: east for red, south for blue.
func (that *Board) OnSecondEdge(coord entity.Coordinate, player entity.Player) bool {
	if player == entity.PlayerRed {
		return coord.Q == that.size-1
	}
	return coord.R == that.size-1
}

// Occupied counts non-empty cells.
func (that *Board) Occupied() int {
	count := 0
	for _, cell := range that.cells {
		if cell != entity.EmptyCell {
			count++
		}
	}

	return count
}

// Cells returns a copy of the row-major occupancy slice.
func (that *Board) Cells() []entity.Player {
	cells := make([]entity.Player, len(that.cells))
	copy(cells, that.cells)

	return cells
}

func (that *Board) index(coord entity.Coordinate) int {
	return coord.R*that.size + coord.Q
}
