package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// lines lists every winning line as cell coordinates, checked in order: columns, rows, diagonals.
var lines = [8][3]entity.Move{
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// InitialState returns an empty board.
func InitialState() entity.Board {
	return entity.Board{}
}

// ActivePlayer returns the mark to move next. X moves first and players alternate, so the
// turn is derived from the mark counts. ok is false when the board is terminal.
func ActivePlayer(board entity.Board) (entity.Cell, bool) {
	if IsTerminal(board) {
		return entity.Empty, false
	}

	var countX, countO int
	for _, row := range board {
		for _, cell := range row {
			switch cell {
			case entity.MarkX:
				countX++
			case entity.MarkO:
				countO++
			case entity.Empty:
			}
		}
	}

	if countO >= countX {
		return entity.MarkX, true
	}

	return entity.MarkO, true
}

// LegalActions returns every empty cell in row-major order. Terminal boards are not
// special-cased: a won board that still has empty cells reports them, so callers
// generating moves must check IsTerminal first.
func LegalActions(board entity.Board) []entity.Move {
	actions := make([]entity.Move, 0, entity.BoardSize*entity.BoardSize)
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if board[row][col] == entity.Empty {
				actions = append(actions, entity.Move{Row: row, Col: col})
			}
		}
	}

	return actions
}

// Winner returns the mark that completed a line, if any.
func Winner(board entity.Board) (entity.Cell, bool) {
	for _, line := range lines {
		a := board[line[0].Row][line[0].Col]
		b := board[line[1].Row][line[1].Col]
		c := board[line[2].Row][line[2].Col]
		if a != entity.Empty && a == b && b == c {
			return a, true
		}
	}

	return entity.Empty, false
}

// IsTerminal reports whether the game on the board is over.
func IsTerminal(board entity.Board) bool {
	if _, ok := Winner(board); ok {
		return true
	}

	return isFull(board)
}

// Utility is +1 when X has won, -1 when O has won and 0 otherwise.
// It is meaningful on terminal boards only.
func Utility(board entity.Board) int {
	winner, _ := Winner(board)
	switch winner {
	case entity.MarkX:
		return 1
	case entity.MarkO:
		return -1
	default:
		return 0
	}
}

// Result classifies the board.
func Result(board entity.Board) entity.Outcome {
	winner, ok := Winner(board)
	switch {
	case ok && winner == entity.MarkX:
		return entity.XWins
	case ok && winner == entity.MarkO:
		return entity.OWins
	case isFull(board):
		return entity.Draw
	default:
		return entity.InProgress
	}
}

// Apply returns the board that results from the active player marking move.
//
// The source board is never modified. On a terminal board the copy is returned
// unchanged. Apply does not reject occupied cells; legality is checked against
// LegalActions by the caller.
func Apply(board entity.Board, move entity.Move) (entity.Board, error) {
	if !move.InBounds() {
		return entity.Board{}, fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidMove, move.Row, move.Col)
	}

	next := board

	player, ok := ActivePlayer(board)
	if !ok {
		return next, nil
	}

	next[move.Row][move.Col] = player

	return next, nil
}

// ParseMove reads a move written as "row,col".
func ParseMove(raw string) (entity.Move, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return entity.Move{}, fmt.Errorf("%w: %q is not a row,col pair", apperror.ErrInvalidMove, raw)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: row in %q: %w", apperror.ErrInvalidMove, raw, err)
	}

	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: col in %q: %w", apperror.ErrInvalidMove, raw, err)
	}

	move := entity.Move{Row: row, Col: col}
	if !move.InBounds() {
		return entity.Move{}, fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidMove, row, col)
	}

	return move, nil
}

func isFull(board entity.Board) bool {
	for _, row := range board {
		for _, cell := range row {
			if cell == entity.Empty {
				return false
			}
		}
	}

	return true
}
