package repository

import (
	"testing"

	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/statistics"
	"github.com/rocketscienceinc/othello-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = statistics.MatchupKey{Black: "AlphaBeta(6)", White: "Negamax(4)"}

func TestStatisticsRepository_Record(t *testing.T) {
	t.Run("Record_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatisticsRepository(st.Storage)

		// Given: two Black wins and a tie for one matchup
		for _, outcome := range []entity.Outcome{
			entity.WinFor(entity.PlayerBlack),
			entity.WinFor(entity.PlayerBlack),
			entity.Tie(),
		} {
			// When: Record is called
			err := statsRepo.Record(ctx, testKey, outcome)
			require.NoError(t, err)
		}

		// Then: the stored counters match
		entry, err := statsRepo.GetByKey(ctx, testKey)
		require.NoError(t, err)
		assert.Equal(t, statistics.Entry{WinsA: 2, WinsB: 0, Ties: 1}, entry)
	})

	t.Run("Record_InProgressIsIgnored", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatisticsRepository(st.Storage)

		err := statsRepo.Record(ctx, testKey, entity.InProgress())
		require.NoError(t, err)

		_, err = statsRepo.GetByKey(ctx, testKey)
		assert.ErrorIs(t, err, ErrStatisticsNotFound)
	})
}

func TestStatisticsRepository_GetByKey(t *testing.T) {
	t.Run("GetByKey_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatisticsRepository(st.Storage)

		// When: GetByKey is called for an unknown matchup
		entry, err := statsRepo.GetByKey(ctx, testKey)

		// Then: an ErrStatisticsNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrStatisticsNotFound, err)
		assert.Equal(t, statistics.Entry{}, entry)
	})
}

func TestStatisticsRepository_DeleteByKey(t *testing.T) {
	t.Run("DeleteByKey_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatisticsRepository(st.Storage)
		require.NoError(t, statsRepo.Record(ctx, testKey, entity.WinFor(entity.PlayerWhite)))

		// When: DeleteByKey is called with an existing key
		err := statsRepo.DeleteByKey(ctx, testKey)

		// Then: the counters are gone
		require.NoError(t, err)

		_, err = statsRepo.GetByKey(ctx, testKey)
		assert.Equal(t, ErrStatisticsNotFound, err)
	})

	t.Run("DeleteByKey_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatisticsRepository(st.Storage)

		err := statsRepo.DeleteByKey(ctx, testKey)

		require.Equal(t, ErrStatisticsNotFound, err)
	})
}
