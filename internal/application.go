package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var ErrNoRounds = errors.New("match rounds must be positive")

// RunApp - runs the configured self-play rounds.
func RunApp(logger *slog.Logger, conf *config.Config) error {
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

	if conf.Match.Rounds <= 0 {
		return fmt.Errorf("%w: %d", ErrNoRounds, conf.Match.Rounds)
	}

	openings, err := parseOpenings(conf.Match.Openings)
	if err != nil {
		return fmt.Errorf("failed to parse openings: %w", err)
	}

	botService := service.NewBotService(logger)
	matchManager := usecase.NewMatchManager(logger, botService)

	tally, err := runMatches(ctx, matchManager, openings, conf.Match.Rounds)
	if err != nil {
		return fmt.Errorf("self-play failed: %w", err)
	}

	log.Info("Self-play finished",
		"x_wins", tally[entity.XWins],
		"o_wins", tally[entity.OWins],
		"draws", tally[entity.Draw],
	)

	return nil
}

// runMatches plays rounds matches and counts their outcomes. Cancellation is checked between rounds.
func runMatches(ctx context.Context, manager *usecase.MatchManager, openings []entity.Move, rounds int) (map[entity.Outcome]int, error) {
	tally := make(map[entity.Outcome]int)

	for i := 0; i < rounds; i++ {
		if ctx.Err() != nil {
			return tally, nil
		}

		match := manager.StartMatch()

		for _, move := range openings {
			if match.IsFinished() {
				break
			}

			if err := manager.MakeTurn(match, move); err != nil {
				return tally, fmt.Errorf("failed to play opening %s: %w", move, err)
			}
		}

		if err := manager.PlayOut(match); err != nil {
			return tally, fmt.Errorf("failed to play out match %s: %w", match.ID, err)
		}

		tally[match.Outcome]++
	}

	return tally, nil
}

func parseOpenings(raw []string) ([]entity.Move, error) {
	moves := make([]entity.Move, 0, len(raw))
	for _, item := range raw {
		move, err := tictactoe.ParseMove(item)
		if err != nil {
			return nil, err
		}

		moves = append(moves, move)
	}

	return moves, nil
}
