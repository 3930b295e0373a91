package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/apperror"
)

// Keypad numbers follow the numeric keypad layout:
//
//	7 | 8 | 9
//	4 | 5 | 6
//	1 | 2 | 3
const (
	minKey = 1
	maxKey = Size * Size
)

// MoveFromKeypad converts a keypad number into a board coordinate.
func MoveFromKeypad(key int) (Move, error) {
	if key < minKey || key > maxKey {
		return Move{}, fmt.Errorf("%w: %d is out of range", apperror.ErrInvalidInputToken, key)
	}

	// row = 3 - ceil(key/3), col = ((key mod 3) - 1) mod 3
	row := Size - (key+Size-1)/Size
	col := (key%Size - 1 + Size) % Size

	return Move{Row: row, Col: col}, nil
}

// ParseKeypad parses a raw user token into a board coordinate.
func ParseKeypad(token string) (Move, error) {
	key, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", apperror.ErrInvalidInputToken, token)
	}

	return MoveFromKeypad(key)
}

// Keypad returns the keypad number for the move.
func (that Move) Keypad() int {
	return (Size-1-that.Row)*Size + that.Col + 1
}
