package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/entity"
)

// GameType selects which seats are played by the computer.
type GameType int

const (
	HumanVsHuman GameType = iota
	HumanVsComputer
	ComputerVsComputer
)

// ParseGameType parses the number entered at the game type menu.
func ParseGameType(token string) (GameType, error) {
	value, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidGameType, token)
	}

	gameType := GameType(value)
	if !gameType.IsValid() {
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidGameType, value)
	}

	return gameType, nil
}

func (that GameType) IsValid() bool {
	return that >= HumanVsHuman && that <= ComputerVsComputer
}

// Players returns who sits in the first (X) and second (O) seat.
func (that GameType) Players() [2]entity.Player {
	switch that {
	case HumanVsComputer:
		return [2]entity.Player{entity.Human, entity.Computer}
	case ComputerVsComputer:
		return [2]entity.Player{entity.Computer, entity.Computer}
	default:
		return [2]entity.Player{entity.Human, entity.Human}
	}
}

func (that GameType) String() string {
	switch that {
	case HumanVsHuman:
		return "human-vs-human"
	case HumanVsComputer:
		return "human-vs-computer"
	case ComputerVsComputer:
		return "computer-vs-computer"
	default:
		return "unknown"
	}
}
