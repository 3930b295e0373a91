package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/config"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/service"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/transport/console"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/usecase"
)

// RunApp - runs a single game on the given terminal streams.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return run(ctx, logger, conf, in, out)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	term := console.New(in, out)
	bot := service.NewBotService(logger, service.SearchOptions{
		DepthTieBreak: conf.Search.DepthTieBreak,
		PreferCenter:  conf.Search.PreferCenter,
	})
	gameManager := usecase.NewGameManager(logger, term, bot)

	term.ShowIntro()

	gameType, err := selectGameType(ctx, conf, gameManager)
	if err != nil {
		return err
	}

	result, err := gameManager.Play(ctx, gameType)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			term.ShowFailure(err)
		}

		return fmt.Errorf("game failed: %w", err)
	}

	log.Info("Game over", "gameID", result.GameID, "outcome", result.Outcome.String())

	return nil
}

func selectGameType(ctx context.Context, conf *config.Config, gameManager *usecase.GameManager) (usecase.GameType, error) {
	if token, ok := conf.PinnedGameType(); ok {
		gameType, err := usecase.ParseGameType(token)
		if err != nil {
			return 0, fmt.Errorf("invalid game type in config: %w", err)
		}

		return gameType, nil
	}

	gameType, err := gameManager.SelectGameType(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to select game type: %w", err)
	}

	return gameType, nil
}
