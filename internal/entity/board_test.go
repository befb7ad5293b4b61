package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_Opponent(t *testing.T) {
	t.Run("X and O swap", func(t *testing.T) {
		// Then: each mark maps to the other one
		assert.Equal(t, MarkO, MarkX.Opponent())
		assert.Equal(t, MarkX, MarkO.Opponent())
	})

	t.Run("Empty has no opponent", func(t *testing.T) {
		// Then: Empty maps to Empty
		assert.Equal(t, Empty, Empty.Opponent())
	})
}

func TestBoard_IsValue(t *testing.T) {
	// Given: a board with one mark
	var board Board
	board[1][1] = MarkX

	// When: a copy is modified
	copied := board
	copied[0][0] = MarkO

	// Then: the original board is untouched
	assert.Equal(t, Empty, board[0][0])
	assert.Equal(t, MarkX, copied[1][1])
}

func TestBoard_String(t *testing.T) {
	// Given: a partially filled board
	board := Board{
		{MarkX, MarkO, Empty},
		{Empty, MarkX, Empty},
		{Empty, Empty, MarkO},
	}

	// When: rendering the board
	rendered := board.String()

	// Then: every row is rendered with separators
	require.Equal(t, "X|O| \n |X| \n | |O", rendered)
}

func TestMove_InBounds(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want bool
	}{
		{name: "top left", move: Move{Row: 0, Col: 0}, want: true},
		{name: "bottom right", move: Move{Row: 2, Col: 2}, want: true},
		{name: "row too large", move: Move{Row: 3, Col: 0}, want: false},
		{name: "negative row", move: Move{Row: -1, Col: 1}, want: false},
		{name: "col too large", move: Move{Row: 1, Col: 3}, want: false},
		{name: "negative col", move: Move{Row: 0, Col: -1}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.move.InBounds())
		})
	}
}

func TestMatch_Record(t *testing.T) {
	// Given: a fresh match
	match := NewMatch("123")
	require.Len(t, match.History, 1)
	require.Equal(t, Board{}, match.Current())

	// When: a move is recorded
	var next Board
	next[1][1] = MarkX
	match.Record(Move{Row: 1, Col: 1}, next, InProgress)

	// Then: history grows and the current board is the new one
	assert.Len(t, match.History, 2)
	assert.Equal(t, []Move{{Row: 1, Col: 1}}, match.Moves)
	assert.Equal(t, next, match.Current())
	assert.False(t, match.IsFinished())

	// When: a finishing outcome is recorded
	match.Record(Move{Row: 0, Col: 0}, next, Draw)

	// Then: the match is finished
	assert.True(t, match.IsFinished())
	assert.Equal(t, "draw", match.Outcome.String())
}
