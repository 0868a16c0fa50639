// Package worker runs move searches on their own goroutine. The game loop sends a board
// snapshot in a Request and later reads the matching Response; no board is ever shared.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/othello-backend/internal/entity"
)

const queueSize = 4

// Request asks for a move. Board is a copy owned by the worker from the moment it is sent.
type Request struct {
	Seq      uint64
	Board    entity.Board
	Player   entity.Player
	Strategy entity.Strategy
}

// Response echoes the request's Seq so the caller can drop answers for outdated positions.
type Response struct {
	Seq  uint64
	Move entity.Position
	Err  error
}

type moveChooser interface {
	ChooseMove(board entity.Board, player entity.Player, strategy entity.Strategy) (entity.Position, error)
}

type Worker struct {
	logger *slog.Logger
	agent  moveChooser

	requests  chan Request
	responses chan Response
}

func New(logger *slog.Logger, agent moveChooser) *Worker {
	return &Worker{
		logger:    logger.With("component", "worker"),
		agent:     agent,
		requests:  make(chan Request, queueSize),
		responses: make(chan Response, queueSize),
	}
}

// Submit queues a request. Invalid strategies are rejected here, before any search starts.
func (that *Worker) Submit(ctx context.Context, req Request) error {
	if err := req.Strategy.Validate(); err != nil {
		return fmt.Errorf("invalid move request: %w", err)
	}

	select {
	case that.requests <- req:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to submit move request: %w", ctx.Err())
	}
}

func (that *Worker) Responses() <-chan Response {
	return that.responses
}

// Run serves requests one at a time, in the order they were submitted, until ctx is done. A
// search that has started always runs to completion.
func (that *Worker) Run(ctx context.Context) error {
	that.logger.Info("Move worker started")

	for {
		select {
		case <-ctx.Done():
			that.logger.Info("Move worker stopped")
			return nil
		case req := <-that.requests:
			resp := that.handle(req)

			select {
			case that.responses <- resp:
			case <-ctx.Done():
				that.logger.Info("Move worker stopped")
				return nil
			}
		}
	}
}

func (that *Worker) handle(req Request) Response {
	log := that.logger.With("seq", req.Seq, "player", req.Player.String(), "strategy", req.Strategy.Descriptor())

	started := time.Now()
	move, err := that.agent.ChooseMove(req.Board, req.Player, req.Strategy)
	if err != nil {
		log.Error("failed to choose move", "error", err)
		return Response{Seq: req.Seq, Err: err}
	}

	log.Debug("move chosen", "move", move.String(), "elapsed", time.Since(started))

	return Response{Seq: req.Seq, Move: move}
}
