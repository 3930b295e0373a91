package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/entity"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/tictactoe"
)

const (
	scoreWin  = 1
	scoreDraw = 0
	scoreLoss = -1

	// deeper than any reachable ply
	unreachableDepth = entity.Size*entity.Size + 1
)

// SearchOptions switches on behaviour from older versions of the engine.
type SearchOptions struct {
	// DepthTieBreak prefers the shallowest terminal among equally scored moves.
	DepthTieBreak bool
	// PreferCenter takes a free center square without searching.
	PreferCenter bool
}

type BotService interface {
	// BestMove returns the successor board chosen for mark by exhaustive minimax.
	BestMove(board entity.Board, mark entity.Cell) (entity.Board, error)
}

type botService struct {
	logger  *slog.Logger
	options SearchOptions
}

func NewBotService(logger *slog.Logger, options SearchOptions) BotService {
	return &botService{
		logger:  logger.With("component", "bot"),
		options: options,
	}
}

func (that *botService) BestMove(board entity.Board, mark entity.Cell) (entity.Board, error) {
	if !mark.IsSymbol() {
		return board, fmt.Errorf("%w: %d", entity.ErrInvalidSymbol, mark)
	}

	if outcome := tictactoe.Evaluate(board); outcome.IsFinished() {
		return board, fmt.Errorf("%w: game is already %s", apperror.ErrSearchProducedNoMove, outcome)
	}

	if that.options.PreferCenter {
		center := entity.Move{Row: entity.Size / 2, Col: entity.Size / 2}
		if board.At(center) == entity.Empty {
			return board.Apply(center, mark)
		}
	}

	start := time.Now()
	s := &search{
		initiator:     mark,
		depthTieBreak: that.options.DepthTieBreak,
	}

	depth := len(board) - len(board.LegalMoves())
	candidates := board.Successors(mark)
	scores := make([]score, 0, len(candidates))
	for _, candidate := range candidates {
		scores = append(scores, s.minimax(candidate, mark.Opponent(), depth+1))
	}

	best := s.best(scores, true)
	for i, candidate := range candidates {
		if s.same(scores[i], best) {
			that.logger.Debug("search finished",
				"mark", mark.String(),
				"score", best.value,
				"nodes", s.nodes,
				"duration", time.Since(start),
			)

			return candidate, nil
		}
	}

	return board, apperror.ErrSearchProducedNoMove
}

// score is a minimax value plus the ply at which it was decided.
type score struct {
	value int
	depth int
}

// search holds the state of one BestMove call.
type search struct {
	initiator     entity.Cell
	depthTieBreak bool
	nodes         int
}

func (that *search) minimax(board entity.Board, toMove entity.Cell, depth int) score {
	that.nodes++

	switch outcome := tictactoe.Evaluate(board); outcome.Status {
	case tictactoe.StatusWon:
		if outcome.Winner == that.initiator {
			return score{value: scoreWin, depth: depth}
		}
		return score{value: scoreLoss, depth: depth}
	case tictactoe.StatusDraw:
		return score{value: scoreDraw, depth: depth}
	}

	successors := board.Successors(toMove)
	scores := make([]score, 0, len(successors))
	for _, next := range successors {
		scores = append(scores, that.minimax(next, toMove.Opponent(), depth+1))
	}

	return that.best(scores, toMove == that.initiator)
}

// best returns the maximum (or minimum) score. Without the depth tie-break the
// first score found wins ties.
func (that *search) best(scores []score, maximize bool) score {
	best := score{value: scoreWin + 1, depth: unreachableDepth}
	if maximize {
		best.value = scoreLoss - 1
	}

	for _, candidate := range scores {
		if that.better(candidate, best, maximize) {
			best = candidate
		}
	}

	return best
}

func (that *search) better(candidate, best score, maximize bool) bool {
	if candidate.value != best.value {
		if maximize {
			return candidate.value > best.value
		}
		return candidate.value < best.value
	}

	return that.depthTieBreak && candidate.depth <= best.depth
}

func (that *search) same(a, b score) bool {
	if that.depthTieBreak {
		return a == b
	}
	return a.value == b.value
}
