package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/apperror"
)

// Size is the length of a board side.
const Size = 3

// Cell is the state of a single square. X and O double as the player symbols.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

var (
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrInvalidSymbol = errors.New("invalid symbol")
)

func (that Cell) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other symbol. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// IsSymbol reports whether the cell holds a player symbol.
func (that Cell) IsSymbol() bool {
	return that == X || that == O
}

// Move is a 0-indexed (row, column) coordinate on the internal board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) IsValid() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

func (that Move) index() int {
	return that.Row*Size + that.Col
}

// Board is a 3x3 grid stored row-major. It is a value type: every
// transformation returns a new Board and leaves the receiver untouched.
type Board [Size * Size]Cell

// NewBoard returns the all-empty starting board.
func NewBoard() Board {
	return Board{}
}

// BoardFromRows builds a board from three rows, top row first.
func BoardFromRows(rows [Size][Size]Cell) Board {
	var board Board
	for row := range rows {
		for col, cell := range rows[row] {
			board[row*Size+col] = cell
		}
	}

	return board
}

// At returns the cell at move. The move must be valid.
func (that Board) At(move Move) Cell {
	return that[move.index()]
}

// Apply places symbol at move and returns the successor board.
func (that Board) Apply(move Move, symbol Cell) (Board, error) {
	if !move.IsValid() {
		return that, fmt.Errorf("%w: %s", ErrInvalidCell, move)
	}

	if !symbol.IsSymbol() {
		return that, fmt.Errorf("%w: %d", ErrInvalidSymbol, symbol)
	}

	if that.At(move) != Empty {
		return that, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	next := that
	next[move.index()] = symbol

	return next, nil
}

// LegalMoves lists every empty cell in row-major order, top row first.
func (that Board) LegalMoves() []Move {
	moves := make([]Move, 0, len(that))
	for i, cell := range that {
		if cell == Empty {
			moves = append(moves, Move{Row: i / Size, Col: i % Size})
		}
	}

	return moves
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

// Rows returns the board as a grid, top row first.
func (that Board) Rows() [Size][Size]Cell {
	var rows [Size][Size]Cell
	for i, cell := range that {
		rows[i/Size][i%Size] = cell
	}

	return rows
}

// Successors returns the board after each legal move by mark, in LegalMoves order.
// The mark must be X or O.
func (that Board) Successors(mark Cell) []Board {
	boards := make([]Board, 0, len(that))
	for i, cell := range that {
		if cell == Empty {
			next := that
			next[i] = mark
			boards = append(boards, next)
		}
	}

	return boards
}
