package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func newManager(st *suite.Suite) *usecase.MatchManager {
	return usecase.NewMatchManager(st.Logger, service.NewBotService(st.Logger))
}

func TestRunMatches(t *testing.T) {
	t.Run("Perfect self-play always draws", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: two rounds are played from the empty board
		tally, err := runMatches(ctx, newManager(st), nil, 2)

		// Then: both are draws
		require.NoError(t, err)
		assert.Equal(t, map[entity.Outcome]int{entity.Draw: 2}, tally)
	})

	t.Run("Losing opening is punished", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: an opening where O answers a corner with an adjacent edge
		openings := []entity.Move{{Row: 0, Col: 0}, {Row: 0, Col: 1}}

		// When: the bot plays on
		tally, err := runMatches(ctx, newManager(st), openings, 1)

		// Then: X wins
		require.NoError(t, err)
		assert.Equal(t, map[entity.Outcome]int{entity.XWins: 1}, tally)
	})

	t.Run("Illegal opening fails", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: an opening that plays the same cell twice
		openings := []entity.Move{{Row: 1, Col: 1}, {Row: 1, Col: 1}}

		// When: running the round
		_, err := runMatches(ctx, newManager(st), openings, 1)

		// Then: the occupied cell is reported
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		ctx, st := suite.New(t)
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		// When: running with a canceled context
		tally, err := runMatches(ctx, newManager(st), nil, 3)

		// Then: no round is played
		require.NoError(t, err)
		assert.Empty(t, tally)
	})
}

func TestParseOpenings(t *testing.T) {
	moves, err := parseOpenings([]string{"1,1", "0,2"})
	require.NoError(t, err)
	assert.Equal(t, []entity.Move{{Row: 1, Col: 1}, {Row: 0, Col: 2}}, moves)

	_, err = parseOpenings([]string{"1;1"})
	require.ErrorIs(t, err, apperror.ErrInvalidMove)
}

func TestRunApp(t *testing.T) {
	t.Run("Runs configured rounds", func(t *testing.T) {
		_, st := suite.New(t)

		conf := &config.Config{Match: config.Match{Rounds: 1, Openings: []string{"1,1"}}}

		require.NoError(t, RunApp(st.Logger, conf))
	})

	t.Run("Rejects non-positive rounds", func(t *testing.T) {
		_, st := suite.New(t)

		err := RunApp(st.Logger, &config.Config{})

		require.ErrorIs(t, err, ErrNoRounds)
	})

	t.Run("Rejects malformed openings", func(t *testing.T) {
		_, st := suite.New(t)

		conf := &config.Config{Match: config.Match{Rounds: 1, Openings: []string{"center"}}}

		require.ErrorIs(t, RunApp(st.Logger, conf), apperror.ErrInvalidMove)
	})
}
