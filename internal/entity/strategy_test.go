package entity

import (
	"testing"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategy_Validate(t *testing.T) {
	t.Run("Accepts depths from 1 to 10", func(t *testing.T) {
		for depth := MinSearchDepth; depth <= MaxSearchDepth; depth++ {
			require.NoError(t, NegamaxStrategy(depth).Validate())
			require.NoError(t, NegamaxAlphaBetaStrategy(depth).Validate())
		}
	})

	t.Run("Rejects non-positive and too deep searches", func(t *testing.T) {
		for _, depth := range []int{-1, 0, 11} {
			assert.ErrorIs(t, NegamaxStrategy(depth).Validate(), apperror.ErrInvalidDepth)
			assert.ErrorIs(t, NegamaxAlphaBetaStrategy(depth).Validate(), apperror.ErrInvalidDepth)
		}
	})

	t.Run("Random ignores depth", func(t *testing.T) {
		assert.NoError(t, Strategy{Kind: StrategyRandom, Depth: -5}.Validate())
	})

	t.Run("Rejects unknown kinds", func(t *testing.T) {
		assert.ErrorIs(t, Strategy{Kind: "mcts", Depth: 3}.Validate(), apperror.ErrUnknownStrategy)
	})
}

func TestParseStrategy(t *testing.T) {
	strategy, err := ParseStrategy("negamax-alpha-beta", 6)
	require.NoError(t, err)
	assert.Equal(t, NegamaxAlphaBetaStrategy(6), strategy)

	strategy, err = ParseStrategy("random", 3)
	require.NoError(t, err)
	assert.Equal(t, RandomStrategy(), strategy)

	_, err = ParseStrategy("negamax", 0)
	assert.ErrorIs(t, err, apperror.ErrInvalidDepth)
}

func TestSeat_Descriptor(t *testing.T) {
	assert.Equal(t, "Human", HumanSeat().Descriptor())
	assert.Equal(t, "Random", AISeat(RandomStrategy()).Descriptor())
	assert.Equal(t, "Negamax(4)", AISeat(NegamaxStrategy(4)).Descriptor())
	assert.Equal(t, "AlphaBeta(6)", AISeat(NegamaxAlphaBetaStrategy(6)).Descriptor())
}
