package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/entity"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/tictactoe"
)

type consoleDep interface {
	ReadGameType(ctx context.Context) (string, error)
	ReadMove(ctx context.Context, seat entity.Seat) (string, error)

	ShowBoard(board entity.Board)
	ShowDecision(player entity.Player)
	ShowRejectedMove(board entity.Board, err error)
	ShowResult(board entity.Board, outcome tictactoe.Outcome, seat entity.Seat)
}

type botServiceDep interface {
	BestMove(board entity.Board, mark entity.Cell) (entity.Board, error)
}

// Result is the final state of a finished game. Seat is the seat that made the last move.
type Result struct {
	GameID  string
	Board   entity.Board
	Outcome tictactoe.Outcome
	Seat    entity.Seat
	Turns   int
}

type GameManager struct {
	logger  *slog.Logger
	console consoleDep
	bot     botServiceDep
}

func NewGameManager(logger *slog.Logger, console consoleDep, bot botServiceDep) *GameManager {
	return &GameManager{
		logger:  logger.With("component", "game_manager"),
		console: console,
		bot:     bot,
	}
}

// SelectGameType asks until a valid game type is entered.
func (that *GameManager) SelectGameType(ctx context.Context) (GameType, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("game type selection aborted: %w", err)
		}

		token, err := that.console.ReadGameType(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to read game type: %w", err)
		}

		gameType, err := ParseGameType(token)
		if err == nil {
			return gameType, nil
		}

		that.logger.Debug("rejected game type", "token", token, "error", err)
	}
}

// Play runs one game to completion: seats alternate, starting with X, until
// the board is won or drawn.
func (that *GameManager) Play(ctx context.Context, gameType GameType) (*Result, error) {
	if !gameType.IsValid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidGameType, gameType)
	}

	gameID := uuid.NewString()
	log := that.logger.With("method", "Play", "gameID", gameID)
	log.Info("game started", "gameType", gameType.String())

	players := gameType.Players()
	board := entity.NewBoard()
	seat := entity.FirstSeat

	for turn := 1; ; turn++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("game aborted: %w", err)
		}

		that.console.ShowBoard(board)

		next, err := that.nextBoard(ctx, board, seat, players[seat])
		if err != nil {
			log.Error("failed to make turn", "turn", turn, "seat", seat.Number(), "error", err)
			return nil, fmt.Errorf("failed to make turn: %w", err)
		}
		board = next

		outcome := tictactoe.Evaluate(board)
		log.Debug("turn played", "turn", turn, "seat", seat.Number(), "player", players[seat].String(), "outcome", outcome.String())

		if outcome.IsFinished() {
			that.console.ShowResult(board, outcome, seat)
			log.Info("game finished", "outcome", outcome.String(), "turns", turn)

			return &Result{
				GameID:  gameID,
				Board:   board,
				Outcome: outcome,
				Seat:    seat,
				Turns:   turn,
			}, nil
		}

		seat = seat.Next()
	}
}

func (that *GameManager) nextBoard(ctx context.Context, board entity.Board, seat entity.Seat, player entity.Player) (entity.Board, error) {
	if player == entity.Computer {
		next, err := that.bot.BestMove(board, seat.Mark())
		if err != nil {
			return board, fmt.Errorf("computer failed to move: %w", err)
		}

		if next == board {
			return board, fmt.Errorf("%w: board is unchanged", apperror.ErrSearchProducedNoMove)
		}

		that.console.ShowDecision(player)

		return next, nil
	}

	move, err := that.readHumanMove(ctx, board, seat)
	if err != nil {
		return board, err
	}

	next, err := board.Apply(move, seat.Mark())
	if err != nil {
		return board, fmt.Errorf("failed to apply move: %w", err)
	}

	that.console.ShowDecision(player)

	return next, nil
}

// readHumanMove prompts the same seat until it names an empty square.
func (that *GameManager) readHumanMove(ctx context.Context, board entity.Board, seat entity.Seat) (entity.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entity.Move{}, fmt.Errorf("move input aborted: %w", err)
		}

		token, err := that.console.ReadMove(ctx, seat)
		if err != nil {
			return entity.Move{}, fmt.Errorf("failed to read move: %w", err)
		}

		move, err := validateMove(board, token)
		if err == nil {
			return move, nil
		}

		if !errors.Is(err, apperror.ErrInvalidInputToken) && !errors.Is(err, apperror.ErrCellOccupied) {
			return entity.Move{}, err
		}

		that.logger.Debug("rejected move", "seat", seat.Number(), "token", token, "error", err)
		that.console.ShowRejectedMove(board, err)
	}
}

func validateMove(board entity.Board, token string) (entity.Move, error) {
	move, err := entity.ParseKeypad(token)
	if err != nil {
		return entity.Move{}, err
	}

	if board.At(move) != entity.Empty {
		return entity.Move{}, fmt.Errorf("%w: square %d", apperror.ErrCellOccupied, move.Keypad())
	}

	return move, nil
}
