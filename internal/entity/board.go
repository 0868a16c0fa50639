package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
)

const BoardSize = 8

var ErrInvalidBoardLayout = errors.New("invalid board layout")

type Cell uint8

const (
	EmptyCell Cell = iota
	BlackCell
	WhiteCell
)

func (that Cell) String() string {
	switch that {
	case BlackCell:
		return "B"
	case WhiteCell:
		return "W"
	default:
		return "."
	}
}

// Player is a side of the game. PlayerBlack moves first.
type Player uint8

const (
	NoPlayer Player = iota
	PlayerBlack
	PlayerWhite
)

func (that Player) Opponent() Player {
	switch that {
	case PlayerBlack:
		return PlayerWhite
	case PlayerWhite:
		return PlayerBlack
	default:
		return NoPlayer
	}
}

func (that Player) Cell() Cell {
	switch that {
	case PlayerBlack:
		return BlackCell
	case PlayerWhite:
		return WhiteCell
	default:
		return EmptyCell
	}
}

func (that Player) IsValid() bool {
	return that == PlayerBlack || that == PlayerWhite
}

func (that Player) String() string {
	switch that {
	case PlayerBlack:
		return "Black"
	case PlayerWhite:
		return "White"
	default:
		return "None"
	}
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) InBounds() bool {
	return that.Row >= 0 && that.Col >= 0 && that.Row < BoardSize && that.Col < BoardSize
}

func (that Position) Add(dir Direction) Position {
	return Position{Row: that.Row + dir.DRow, Col: that.Col + dir.DCol}
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

type Direction struct {
	DRow int
	DCol int
}

// Directions lists the 8 compass directions, clockwise from north.
var Directions = [8]Direction{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// Run is a contiguous line of opponent discs next to a position.
type Run struct {
	Discs      []Position
	Capturable bool
}

// Board is an 8x8 grid. It is a plain value: assigning it makes an independent copy.
type Board struct {
	grid [BoardSize][BoardSize]Cell
}

// NewBoard returns the standard start position.
func NewBoard() Board {
	var board Board

	board.grid[3][3] = WhiteCell
	board.grid[4][4] = WhiteCell
	board.grid[3][4] = BlackCell
	board.grid[4][3] = BlackCell

	return board
}

func (that Board) CellAt(pos Position) (Cell, error) {
	if !pos.InBounds() {
		return EmptyCell, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, pos)
	}

	return that.grid[pos.Row][pos.Col], nil
}

// At is CellAt for callers that iterate the grid themselves; off-board positions read as empty.
func (that Board) At(pos Position) Cell {
	if !pos.InBounds() {
		return EmptyCell
	}

	return that.grid[pos.Row][pos.Col]
}

// IsEmpty reports whether pos is on the board and unoccupied.
func (that Board) IsEmpty(pos Position) bool {
	return pos.InBounds() && that.grid[pos.Row][pos.Col] == EmptyCell
}

func (that *Board) SetCell(pos Position, cell Cell) error {
	if !pos.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, pos)
	}

	that.grid[pos.Row][pos.Col] = cell

	return nil
}

// Walk steps from pos in dir over opponent discs. It returns how many were crossed and
// whether the line ends on one of player's discs.
func (that Board) Walk(pos Position, player Player, dir Direction) (int, bool) {
	own, opp := player.Cell(), player.Opponent().Cell()

	n := 0
	cur := pos.Add(dir)
	for cur.InBounds() && that.grid[cur.Row][cur.Col] == opp {
		n++
		cur = cur.Add(dir)
	}

	capturable := n > 0 && cur.InBounds() && that.grid[cur.Row][cur.Col] == own

	return n, capturable
}

func (that Board) DiscsInDirection(pos Position, player Player, dir Direction) Run {
	n, capturable := that.Walk(pos, player, dir)

	run := Run{Discs: make([]Position, 0, n), Capturable: capturable}
	cur := pos
	for range n {
		cur = cur.Add(dir)
		run.Discs = append(run.Discs, cur)
	}

	return run
}

func (that Board) Count(cell Cell) int {
	count := 0
	for row := range BoardSize {
		for col := range BoardSize {
			if that.grid[row][col] == cell {
				count++
			}
		}
	}

	return count
}

// Score returns the disc counts of Black and White.
func (that Board) Score() (int, int) {
	return that.Count(BlackCell), that.Count(WhiteCell)
}

// Discs returns the number of occupied cells.
func (that Board) Discs() int {
	return BoardSize*BoardSize - that.Count(EmptyCell)
}

func (that Board) String() string {
	var b strings.Builder
	for row := range BoardSize {
		for col := range BoardSize {
			b.WriteString(that.grid[row][col].String())
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// ParseBoard reads the notation produced by String. Whitespace is ignored, "B"/"X" mark Black
// and "W"/"O" mark White.
func ParseBoard(layout string) (Board, error) {
	var board Board

	i := 0
	for _, r := range layout {
		var cell Cell
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		case '.', '-':
			cell = EmptyCell
		case 'B', 'X', 'b', 'x':
			cell = BlackCell
		case 'W', 'O', 'w', 'o':
			cell = WhiteCell
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q", ErrInvalidBoardLayout, r)
		}

		if i >= BoardSize*BoardSize {
			return Board{}, fmt.Errorf("%w: more than %d cells", ErrInvalidBoardLayout, BoardSize*BoardSize)
		}

		board.grid[i/BoardSize][i%BoardSize] = cell
		i++
	}

	if i != BoardSize*BoardSize {
		return Board{}, fmt.Errorf("%w: got %d cells", ErrInvalidBoardLayout, i)
	}

	return board, nil
}

// MustParseBoard is ParseBoard for fixed layouts; it panics on error.
func MustParseBoard(layout string) Board {
	board, err := ParseBoard(layout)
	if err != nil {
		panic(err)
	}

	return board
}
