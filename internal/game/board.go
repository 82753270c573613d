// Package game implements the 2048 board and its transition rules.
// Boards are plain values: cloning is assignment, equality is ==, and every
// randomized operation takes an explicit rand source so callers control
// determinism. All search code clones boards instead of sharing them.
package game

import "math/rand"

// Move is one of the four swipe directions. The declaration order doubles as
// the tie-break order when two moves score equally.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
)

// Moves lists all directions in tie-break order.
var Moves = [4]Move{MoveUp, MoveDown, MoveLeft, MoveRight}

// String returns a human-readable name for the move.
func (m Move) String() string {
	switch m {
	case MoveUp:
		return "Up"
	case MoveDown:
		return "Down"
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// BoardSize is the board dimension.
const BoardSize = 4

// Tiles are stored as log2 exponents: 0 is empty, 1 is the tile "2",
// 2 is "4", and so on. Merging two equal tiles is a single increment.
const (
	spawnExpSmall = 1 // tile value 2
	spawnExpBig   = 2 // tile value 4
)

// SpawnBigProb is the chance a spawned tile is a 4 rather than a 2.
// A fixed rule of the game, shared with the expectimax chance layer.
const SpawnBigProb = 0.1

// Board holds a 4x4 grid of tile exponents plus the running score and the
// count of effective moves. Row-major: index = x + y*4.
type Board struct {
	cells [16]uint8
	score int
	moves int
}

// Empty returns a board with no tiles, score 0, and no moves made.
func Empty() Board {
	return Board{}
}

// New returns a board with the two opening tiles spawned from rng.
func New(rng *rand.Rand) Board {
	b := Empty()
	b.spawnTile(rng)
	b.spawnTile(rng)
	return b
}

func cellIndex(x, y int) int {
	return x + y*BoardSize
}

// Tile returns the exponent at column x, row y. Coordinates must be in 0..3.
func (b Board) Tile(x, y int) uint8 {
	return b.cells[cellIndex(x, y)]
}

// SetTile overwrites the exponent at column x, row y.
func (b *Board) SetTile(x, y int, v uint8) {
	b.cells[cellIndex(x, y)] = v
}

// Score returns the accumulated merge score.
func (b Board) Score() int {
	return b.score
}

// NumMoves returns how many effective moves have been applied.
func (b Board) NumMoves() int {
	return b.moves
}

// MaxTile returns the largest tile value on the board (0 for an empty board).
func (b Board) MaxTile() int {
	var maxExp uint8
	for _, c := range b.cells {
		if c > maxExp {
			maxExp = c
		}
	}
	if maxExp == 0 {
		return 0
	}
	return 1 << maxExp
}

// Values returns the board as displayed tile values, rows first.
func (b Board) Values() [BoardSize][BoardSize]int {
	var out [BoardSize][BoardSize]int
	for y := range BoardSize {
		for x := range BoardSize {
			if exp := b.Tile(x, y); exp != 0 {
				out[y][x] = 1 << exp
			}
		}
	}
	return out
}

// EmptyCells returns the flat indexes of all empty cells.
func (b Board) EmptyCells() []int {
	var cells []int
	for i, c := range b.cells {
		if c == 0 {
			cells = append(cells, i)
		}
	}
	return cells
}

// SameCells reports whether two boards hold identical tiles, ignoring
// score and move count.
func (b Board) SameCells(o Board) bool {
	return b.cells == o.cells
}

// slideLine condenses and merges a single line toward index 0.
// Only one merge pass: a tile produced by a merge never merges again
// within the same move. Returns the new line and the score gained.
func slideLine(line [BoardSize]uint8) (result [BoardSize]uint8, score int) {
	writePos := 0
	merged := false

	for i := range BoardSize {
		if line[i] == 0 {
			continue
		}

		if writePos > 0 && !merged && result[writePos-1] == line[i] {
			result[writePos-1]++
			score += 1 << result[writePos-1]
			merged = true
		} else {
			result[writePos] = line[i]
			writePos++
			merged = false
		}
	}

	return result, score
}

func reverseLine(line [BoardSize]uint8) [BoardSize]uint8 {
	var result [BoardSize]uint8
	for i := range BoardSize {
		result[i] = line[BoardSize-1-i]
	}
	return result
}

func (b Board) row(y int) [BoardSize]uint8 {
	var line [BoardSize]uint8
	for x := range BoardSize {
		line[x] = b.Tile(x, y)
	}
	return line
}

func (b *Board) setRow(y int, line [BoardSize]uint8) {
	for x := range BoardSize {
		b.SetTile(x, y, line[x])
	}
}

func (b Board) col(x int) [BoardSize]uint8 {
	var line [BoardSize]uint8
	for y := range BoardSize {
		line[y] = b.Tile(x, y)
	}
	return line
}

func (b *Board) setCol(x int, line [BoardSize]uint8) {
	for y := range BoardSize {
		b.SetTile(x, y, line[y])
	}
}

// Shift applies the pure geometry of a move: condense, merge once, re-pad.
// It updates the score for any merges but never spawns a tile and never
// touches the move counter, so search code can explore hypothetical states.
func (b Board) Shift(m Move) Board {
	out := b

	for i := range BoardSize {
		var line [BoardSize]uint8
		switch m {
		case MoveLeft, MoveRight:
			line = b.row(i)
		case MoveUp, MoveDown:
			line = b.col(i)
		}

		// Right and Down slide toward the high index: reverse, slide
		// toward 0, reverse back.
		if m == MoveRight || m == MoveDown {
			line = reverseLine(line)
		}

		slid, score := slideLine(line)
		out.score += score

		if m == MoveRight || m == MoveDown {
			slid = reverseLine(slid)
		}

		switch m {
		case MoveLeft, MoveRight:
			out.setRow(i, slid)
		case MoveUp, MoveDown:
			out.setCol(i, slid)
		}
	}

	return out
}

// AvailableMoves returns the directions that would change the board,
// determined by speculatively shifting a copy.
func (b Board) AvailableMoves() []Move {
	var avail []Move
	for _, m := range Moves {
		if !b.Shift(m).SameCells(b) {
			avail = append(avail, m)
		}
	}
	return avail
}

// MakeMove applies a move for real: shift, and if any tile moved, spawn a
// new tile and count the move. A move that changes nothing is a no-op and
// returns false, leaving score, tiles, and move count untouched.
func (b *Board) MakeMove(m Move, rng *rand.Rand) bool {
	shifted := b.Shift(m)
	if shifted.SameCells(*b) {
		return false
	}

	*b = shifted
	b.spawnTile(rng)
	b.moves++
	return true
}

// spawnTile places a new tile in a uniformly chosen empty cell:
// exponent 1 with probability 0.9, exponent 2 with probability 0.1.
func (b *Board) spawnTile(rng *rand.Rand) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return
	}

	exp := uint8(spawnExpSmall)
	if rng.Float64() < SpawnBigProb {
		exp = spawnExpBig
	}
	b.cells[empty[rng.Intn(len(empty))]] = exp
}

// GameOver reports whether no move can change the board: every cell is
// occupied and no condensed row or column holds two adjacent equal tiles.
// With a full board, condensing is the identity, so plain neighbor checks
// suffice.
func (b Board) GameOver() bool {
	for _, c := range b.cells {
		if c == 0 {
			return false
		}
	}

	for y := range BoardSize {
		for x := range BoardSize {
			v := b.Tile(x, y)
			if x < BoardSize-1 && b.Tile(x+1, y) == v {
				return false
			}
			if y < BoardSize-1 && b.Tile(x, y+1) == v {
				return false
			}
		}
	}

	return true
}
