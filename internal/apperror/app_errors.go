package apperror

import "errors"

var (
	ErrInvalidInputToken    = errors.New("invalid input token")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrSearchProducedNoMove = errors.New("search produced no move")
	ErrInvalidGameType      = errors.New("invalid game type")
	ErrInputClosed          = errors.New("input is closed")
)
