package usecase

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type botService interface {
	NextMove(board entity.Board) (entity.Move, error)
}

// MatchManager drives matches: it validates turns, lets the bot answer and records the history.
type MatchManager struct {
	logger *slog.Logger
	bot    botService
}

func NewMatchManager(logger *slog.Logger, bot botService) *MatchManager {
	return &MatchManager{
		logger: logger.With("component", "match_manager"),
		bot:    bot,
	}
}

func (that *MatchManager) StartMatch() *entity.Match {
	match := entity.NewMatch(uuid.NewString())

	that.logger.Info("match started", "match_id", match.ID)

	return match
}

// MakeTurn plays move for whichever player is active on the current board.
func (that *MatchManager) MakeTurn(match *entity.Match, move entity.Move) error {
	log := that.logger.With("method", "MakeTurn", "match_id", match.ID)

	board := match.Current()

	player, ok := tictactoe.ActivePlayer(board)
	if !ok {
		return apperror.ErrGameFinished
	}

	next, err := tictactoe.Apply(board, move)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	if !slices.Contains(tictactoe.LegalActions(board), move) {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	match.Record(move, next, tictactoe.Result(next))

	log.Debug("turn played", "player", player.String(), "move", move.String(), "outcome", match.Outcome.String())

	if match.IsFinished() {
		that.finish(match)
	}

	return nil
}

// BotTurn asks the bot for the active player's move and plays it.
func (that *MatchManager) BotTurn(match *entity.Match) (entity.Move, error) {
	if match.IsFinished() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	move, err := that.bot.NextMove(match.Current())
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to choose move: %w", err)
	}

	if err = that.MakeTurn(match, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}

// PlayOut lets the bot play both sides until the match is over.
func (that *MatchManager) PlayOut(match *entity.Match) error {
	for !match.IsFinished() {
		if _, err := that.BotTurn(match); err != nil {
			return err
		}
	}

	return nil
}

func (that *MatchManager) finish(match *entity.Match) {
	that.logger.Info("match finished",
		"match_id", match.ID,
		"outcome", match.Outcome.String(),
		"moves", len(match.Moves),
		"board", match.Current().String(),
	)
}
