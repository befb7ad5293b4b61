package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Accumulator seeds sit just outside the utility range [-1, 1].
const (
	belowUtility = -2
	aboveUtility = 2
)

type searchFunc func(board *entity.Board) (value, row, col int)

// BestMove returns the optimal move for the player to act. ok is false on a terminal board.
//
// The search is exhaustive and unpruned. Among equally good moves the first one in
// row-major order is returned.
func BestMove(board entity.Board) (entity.Move, bool) {
	player, ok := ActivePlayer(board)
	if !ok {
		return entity.Move{}, false
	}

	scratch := board

	var row, col int
	if player == entity.MarkX {
		_, row, col = maximize(&scratch)
	} else {
		_, row, col = minimize(&scratch)
	}

	return entity.Move{Row: row, Col: col}, true
}

// Evaluate returns the utility reached from board when both sides play perfectly.
func Evaluate(board entity.Board) int {
	player, ok := ActivePlayer(board)
	if !ok {
		return Utility(board)
	}

	scratch := board

	var value int
	if player == entity.MarkX {
		value, _, _ = maximize(&scratch)
	} else {
		value, _, _ = minimize(&scratch)
	}

	return value
}

// maximize plays X. Leaves report (utility, 0, 0).
func maximize(board *entity.Board) (int, int, int) {
	if IsTerminal(*board) {
		return Utility(*board), 0, 0
	}

	bestValue, bestRow, bestCol := belowUtility, 0, 0
	for _, move := range LegalActions(*board) {
		if value := explore(board, move, entity.MarkX, minimize); value > bestValue {
			bestValue, bestRow, bestCol = value, move.Row, move.Col
		}
	}

	return bestValue, bestRow, bestCol
}

// minimize plays O. Leaves report (utility, 0, 0).
func minimize(board *entity.Board) (int, int, int) {
	if IsTerminal(*board) {
		return Utility(*board), 0, 0
	}

	bestValue, bestRow, bestCol := aboveUtility, 0, 0
	for _, move := range LegalActions(*board) {
		if value := explore(board, move, entity.MarkO, maximize); value < bestValue {
			bestValue, bestRow, bestCol = value, move.Row, move.Col
		}
	}

	return bestValue, bestRow, bestCol
}

// explore marks move on the scratch board, lets the opponent search the child and
// restores the cell before returning, whatever path the search takes out.
func explore(board *entity.Board, move entity.Move, mark entity.Cell, opponent searchFunc) int {
	defer place(board, move, mark)()

	value, _, _ := opponent(board)

	return value
}

// place writes mark and returns the func that clears it again.
func place(board *entity.Board, move entity.Move, mark entity.Cell) func() {
	board[move.Row][move.Col] = mark

	return func() {
		board[move.Row][move.Col] = entity.Empty
	}
}
