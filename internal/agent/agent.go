package agent

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

// Result is the outcome of one move search.
type Result struct {
	Move  entity.Position
	Score int
	Nodes int
}

// Agent picks moves for a computer-controlled player. It is not safe for concurrent use: the
// random source is shared between calls.
type Agent struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Agent {
	return &Agent{rng: rng}
}

func (that *Agent) ChooseMove(board entity.Board, player entity.Player, strategy entity.Strategy) (entity.Position, error) {
	result, err := that.Analyze(board, player, strategy)
	if err != nil {
		return entity.Position{}, err
	}

	return result.Move, nil
}

// Analyze is ChooseMove with the score of the chosen move and the number of visited nodes.
func (that *Agent) Analyze(board entity.Board, player entity.Player, strategy entity.Strategy) (Result, error) {
	if err := strategy.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid strategy: %w", err)
	}

	moves := othello.LegalMoves(board, player)
	if len(moves) == 0 {
		return Result{}, fmt.Errorf("%w: %s to move", apperror.ErrNoLegalMoves, player)
	}

	switch strategy.Kind {
	case entity.StrategyRandom:
		return Result{Move: moves[that.rng.Intn(len(moves))]}, nil
	case entity.StrategyNegamax:
		s := &searcher{}
		return s.root(board, player, moves, strategy.Depth), nil
	case entity.StrategyNegamaxAlphaBeta:
		s := &searcher{pruning: true}
		return s.root(board, player, moves, strategy.Depth), nil
	default:
		return Result{}, fmt.Errorf("%w: %q", apperror.ErrUnknownStrategy, strategy.Kind)
	}
}
