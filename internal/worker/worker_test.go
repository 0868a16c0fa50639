package worker

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/rocketscienceinc/othello-backend/internal/agent"
	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const responseTimeout = 10 * time.Second

type mockMoveChooser struct {
	mock.Mock
}

func (m *mockMoveChooser) ChooseMove(board entity.Board, player entity.Player, strategy entity.Strategy) (entity.Position, error) {
	args := m.Called(board, player, strategy)
	return args.Get(0).(entity.Position), args.Error(1)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func startWorker(t *testing.T, chooser moveChooser) *Worker {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	w := New(newTestLogger(), chooser)

	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, w.Run(ctx))
	}()

	t.Cleanup(func() {
		cancel()
		<-done
	})

	return w
}

func receive(t *testing.T, w *Worker) Response {
	t.Helper()

	select {
	case resp := <-w.Responses():
		return resp
	case <-time.After(responseTimeout):
		t.Fatal("timed out waiting for a response")
		return Response{}
	}
}

func TestWorker_Submit(t *testing.T) {
	t.Run("Responses echo the sequence tag in submit order", func(t *testing.T) {
		// Given: a worker backed by a real agent
		w := startWorker(t, agent.New(rand.New(rand.NewSource(1))))
		ctx := context.Background()

		// When: three requests are submitted back to back
		for seq := uint64(1); seq <= 3; seq++ {
			err := w.Submit(ctx, Request{
				Seq:      seq,
				Board:    entity.NewBoard(),
				Player:   entity.PlayerBlack,
				Strategy: entity.NegamaxAlphaBetaStrategy(2),
			})
			require.NoError(t, err)
		}

		// Then: the responses come back one per request, in order
		for seq := uint64(1); seq <= 3; seq++ {
			resp := receive(t, w)
			require.NoError(t, resp.Err)
			assert.Equal(t, seq, resp.Seq)
			assert.Equal(t, entity.Position{Row: 2, Col: 3}, resp.Move)
		}
	})

	t.Run("Invalid depth is rejected before reaching the worker", func(t *testing.T) {
		chooser := &mockMoveChooser{}
		w := startWorker(t, chooser)

		err := w.Submit(context.Background(), Request{
			Seq:      1,
			Board:    entity.NewBoard(),
			Player:   entity.PlayerBlack,
			Strategy: entity.NegamaxStrategy(0),
		})

		require.ErrorIs(t, err, apperror.ErrInvalidDepth)
		chooser.AssertNotCalled(t, "ChooseMove", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Search failures are returned in the response", func(t *testing.T) {
		// Given: an agent that finds no legal move
		chooser := &mockMoveChooser{}
		chooser.On("ChooseMove", mock.Anything, entity.PlayerWhite, entity.RandomStrategy()).
			Return(entity.Position{}, apperror.ErrNoLegalMoves).
			Once()
		w := startWorker(t, chooser)

		// When: a move is requested
		require.NoError(t, w.Submit(context.Background(), Request{
			Seq:      7,
			Board:    entity.NewBoard(),
			Player:   entity.PlayerWhite,
			Strategy: entity.RandomStrategy(),
		}))

		// Then: the error travels back with the same tag
		resp := receive(t, w)
		assert.Equal(t, uint64(7), resp.Seq)
		require.ErrorIs(t, resp.Err, apperror.ErrNoLegalMoves)
		chooser.AssertExpectations(t)
	})

	t.Run("The worker searches its own copy of the board", func(t *testing.T) {
		// Given: a caller that keeps changing its board after submitting
		board := entity.NewBoard()
		snapshot := board

		chooser := &mockMoveChooser{}
		chooser.On("ChooseMove", snapshot, entity.PlayerBlack, entity.RandomStrategy()).
			Return(entity.Position{Row: 2, Col: 3}, nil).
			Once()
		w := startWorker(t, chooser)

		require.NoError(t, w.Submit(context.Background(), Request{
			Seq:      1,
			Board:    board,
			Player:   entity.PlayerBlack,
			Strategy: entity.RandomStrategy(),
		}))
		require.NoError(t, board.SetCell(entity.Position{Row: 0, Col: 0}, entity.WhiteCell))

		// Then: the worker saw the board as it was at submit time
		resp := receive(t, w)
		require.NoError(t, resp.Err)
		chooser.AssertExpectations(t)
	})

	t.Run("Submit gives up when the context is done", func(t *testing.T) {
		// Given: a worker that is never started, with a full queue
		w := New(newTestLogger(), &mockMoveChooser{})
		for seq := range uint64(queueSize) {
			require.NoError(t, w.Submit(context.Background(), Request{Seq: seq, Strategy: entity.RandomStrategy()}))
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: one more request is submitted
		err := w.Submit(ctx, Request{Seq: 99, Strategy: entity.RandomStrategy()})

		// Then: the context error is returned
		require.ErrorIs(t, err, context.Canceled)
	})
}
