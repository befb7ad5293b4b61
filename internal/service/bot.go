package service

import (
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	NextMove(board entity.Board) (entity.Move, error)
}

// botService plays perfectly by running a full minimax search for every move.
type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger,
	}
}

func (that *botService) NextMove(board entity.Board) (entity.Move, error) {
	move, ok := tictactoe.BestMove(board)
	if !ok {
		return entity.Move{}, ErrNoAvailableMoves
	}

	that.logger.Debug("bot chose move", "move", move.String())

	return move, nil
}
