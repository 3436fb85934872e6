package hex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/hexconnect-backend/internal/apperror"
	"github.com/rocketscienceinc/hexconnect-backend/internal/entity"
)

func TestNewBoard(t *testing.T) {
	t.Run("Creates an empty board", func(t *testing.T) {
		// When: creating a board of size 5
		board, err := NewBoard(5)

		// Then: the board is empty and reports its size
		require.NoError(t, err)
		require.NotNil(t, board)
		assert.Equal(t, 5, board.Size())
		assert.Equal(t, 0, board.Occupied())
	})

	t.Run("Rejects a too small board", func(t *testing.T) {
		// When: creating a board below the minimum size
		board, err := NewBoard(1)

		// Then: ErrInvalidBoardSize should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
		assert.Nil(t, board)
	})
}

func TestBoard_CellAt(t *testing.T) {
	board, err := NewBoard(5)
	require.NoError(t, err)

	t.Run("Empty cell inside the board", func(t *testing.T) {
		// When: reading an untouched cell
		occupant, err := board.CellAt(entity.Coordinate{Q: 2, R: 2})

		// Then: the cell is empty
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, occupant)
	})

	t.Run("Occupied cell after a write", func(t *testing.T) {
		// Given: a red stone at (1,1)
		board.SetOccupant(entity.Coordinate{Q: 1, R: 1}, entity.PlayerRed)

		// When: reading the cell back
		occupant, err := board.CellAt(entity.Coordinate{Q: 1, R: 1})

		// Then: the occupant is red
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerRed, occupant)
	})

	t.Run("Out of bounds coordinates", func(t *testing.T) {
		for _, coord := range []entity.Coordinate{
			{Q: 5, R: 0},
			{Q: 0, R: 5},
			{Q: -1, R: 0},
			{Q: 0, R: -1},
		} {
			// When: reading a coordinate outside the board
			_, err := board.CellAt(coord)

			// Then: ErrInvalidCoordinate should be returned
			assert.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
		}
	})
}

func TestBoard_Neighbors(t *testing.T) {
	board, err := NewBoard(5)
	require.NoError(t, err)

	t.Run("Interior cell has six neighbors in stable order", func(t *testing.T) {
		// When: enumerating neighbors of an interior cell
		neighbors := board.Neighbors(entity.Coordinate{Q: 2, R: 2})

		// Then: all six axial neighbors appear, in the fixed direction order
		expected := []entity.Coordinate{
			{Q: 3, R: 2},
			{Q: 3, R: 1},
			{Q: 2, R: 1},
			{Q: 1, R: 2},
			{Q: 1, R: 3},
			{Q: 2, R: 3},
		}
		require.Equal(t, expected, neighbors)
	})

	t.Run("Acute corner has two neighbors", func(t *testing.T) {
		// When: enumerating neighbors of the (0,0) corner
		neighbors := board.Neighbors(entity.Coordinate{Q: 0, R: 0})

		// Then: only the in-bounds neighbors remain
		expected := []entity.Coordinate{
			{Q: 1, R: 0},
			{Q: 0, R: 1},
		}
		require.Equal(t, expected, neighbors)
	})

	t.Run("Obtuse corner has three neighbors", func(t *testing.T) {
		// When: enumerating neighbors of the (4,0) corner
		neighbors := board.Neighbors(entity.Coordinate{Q: 4, R: 0})

		// Then: only the in-bounds neighbors remain
		expected := []entity.Coordinate{
			{Q: 3, R: 0},
			{Q: 3, R: 1},
			{Q: 4, R: 1},
		}
		require.Equal(t, expected, neighbors)
	})
}

func TestBoard_EdgePredicates(t *testing.T) {
	board, err := NewBoard(5)
	require.NoError(t, err)

	t.Run("Red edges run west to east", func(t *testing.T) {
		assert.True(t, board.OnFirstEdge(entity.Coordinate{Q: 0, R: 3}, entity.PlayerRed))
		assert.True(t, board.OnSecondEdge(entity.Coordinate{Q: 4, R: 1}, entity.PlayerRed))
		assert.False(t, board.OnFirstEdge(entity.Coordinate{Q: 2, R: 0}, entity.PlayerRed))
		assert.False(t, board.OnSecondEdge(entity.Coordinate{Q: 2, R: 4}, entity.PlayerRed))
	})

	t.Run("Blue edges run north to south", func(t *testing.T) {
		assert.True(t, board.OnFirstEdge(entity.Coordinate{Q: 3, R: 0}, entity.PlayerBlue))
		assert.True(t, board.OnSecondEdge(entity.Coordinate{Q: 1, R: 4}, entity.PlayerBlue))
		assert.False(t, board.OnFirstEdge(entity.Coordinate{Q: 0, R: 2}, entity.PlayerBlue))
		assert.False(t, board.OnSecondEdge(entity.Coordinate{Q: 4, R: 2}, entity.PlayerBlue))
	})

	t.Run("Corner cell lies on one edge of each player", func(t *testing.T) {
		corner := entity.Coordinate{Q: 0, R: 0}

		assert.True(t, board.OnFirstEdge(corner, entity.PlayerRed))
		assert.False(t, board.OnSecondEdge(corner, entity.PlayerRed))
		assert.True(t, board.OnFirstEdge(corner, entity.PlayerBlue))
		assert.False(t, board.OnSecondEdge(corner, entity.PlayerBlue))
	})
}

func TestBoard_Cells(t *testing.T) {
	// Given: a board with one stone
	board, err := NewBoard(3)
	require.NoError(t, err)
	board.SetOccupant(entity.Coordinate{Q: 1, R: 2}, entity.PlayerBlue)

	// When: copying the cells
	cells := board.Cells()

	// Then: the copy is row-major and detached from the board
	require.Len(t, cells, 9)
	assert.Equal(t, entity.PlayerBlue, cells[2*3+1])

	cells[0] = entity.PlayerRed
	occupant, err := board.CellAt(entity.Coordinate{Q: 0, R: 0})
	require.NoError(t, err)
	assert.Equal(t, entity.EmptyCell, occupant)
}
