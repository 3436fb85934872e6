package hex

import "github.com/rocketscienceinc/hexconnect-backend/internal/entity"

// ConnectivityTracker answers "did this placement win the game" in amortized
// near-constant time. It maintains a union-find over all board cells plus
// four sentinel nodes, one per target edge; a player has won exactly when
// their two sentinels share a set. Recomputing reachability by graph search
// on every move would also be correct, but degrades as the board fills.
type ConnectivityTracker struct {
	board  *Board
	parent []int
	rank   []uint8

	redWest, redEast     int
	blueNorth, blueSouth int
}

func NewConnectivityTracker(board *Board) *ConnectivityTracker {
	cells := board.Size() * board.Size()
	nodes := cells + 4

	tracker := &ConnectivityTracker{
		board:     board,
		parent:    make([]int, nodes),
		rank:      make([]uint8, nodes),
		redWest:   cells,
		redEast:   cells + 1,
		blueNorth: cells + 2,
		blueSouth: cells + 3,
	}

	for i := range tracker.parent {
		tracker.parent[i] = i
	}

	return tracker
}

// OnPlacement must be called exactly once per committed move, after the
// board cell has been marked owned. It unions the placed cell with every
// same-owner neighbor and with the player's sentinels for any target edge
// the coordinate lies on.
func (that *ConnectivityTracker) OnPlacement(coord entity.Coordinate, player entity.Player) {
	cell := that.board.index(coord)

	for _, neighbor := range that.board.Neighbors(coord) {
		owner, _ := that.board.CellAt(neighbor)
		if owner == player {
			that.union(cell, that.board.index(neighbor))
		}
	}

	if that.board.OnFirstEdge(coord, player) {
		that.union(cell, that.firstSentinel(player))
	}

	if that.board.OnSecondEdge(coord, player) {
		that.union(cell, that.secondSentinel(player))
	}
}

// HasWon reports whether the player's two target edges are connected through
// that player's stones. It is the sole win-detection authority.
func (that *ConnectivityTracker) HasWon(player entity.Player) bool {
	return that.find(that.firstSentinel(player)) == that.find(that.secondSentinel(player))
}

func (that *ConnectivityTracker) firstSentinel(player entity.Player) int {
	if player == entity.PlayerRed {
		return that.redWest
	}
	return that.blueNorth
}

func (that *ConnectivityTracker) secondSentinel(player entity.Player) int {
	if player == entity.PlayerRed {
		return that.redEast
	}
	return that.blueSouth
}

// find uses path halving; union is by rank.
func (that *ConnectivityTracker) find(node int) int {
	for that.parent[node] != node {
		that.parent[node] = that.parent[that.parent[node]]
		node = that.parent[node]
	}

	return node
}

func (that *ConnectivityTracker) union(a, b int) {
	rootA, rootB := that.find(a), that.find(b)
	if rootA == rootB {
		return
	}

	if that.rank[rootA] < that.rank[rootB] {
		rootA, rootB = rootB, rootA
	}

	that.parent[rootB] = rootA
	if that.rank[rootA] == that.rank[rootB] {
		that.rank[rootA]++
	}
}
