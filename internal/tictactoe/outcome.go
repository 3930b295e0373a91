package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/entity"
)

type Status uint8

const (
	StatusOngoing Status = iota
	StatusWon
	StatusDraw
)

// WinCombos lists every line as board indexes: rows, columns, main diagonal, anti-diagonal.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Outcome classifies a board. Winner is only set when Status is StatusWon.
type Outcome struct {
	Status Status
	Winner entity.Cell
}

var (
	Ongoing = Outcome{Status: StatusOngoing}
	Draw    = Outcome{Status: StatusDraw}
)

func Won(mark entity.Cell) Outcome {
	return Outcome{Status: StatusWon, Winner: mark}
}

func (that Outcome) IsFinished() bool {
	return that.Status != StatusOngoing
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWon:
		return fmt.Sprintf("won by %s", that.Winner)
	case StatusDraw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Evaluate returns the first winning line found, then Draw for a full board, otherwise Ongoing.
func Evaluate(board entity.Board) Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.Empty && a == b && b == c {
			return Won(a)
		}
	}

	// the game will continue until all the squares are full
	if board.IsFull() {
		return Draw
	}

	return Ongoing
}
