package entity

import (
	"fmt"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
)

const (
	MinSearchDepth = 1
	MaxSearchDepth = 10
)

type StrategyKind string

const (
	StrategyRandom           StrategyKind = "random"
	StrategyNegamax          StrategyKind = "negamax"
	StrategyNegamaxAlphaBeta StrategyKind = "negamax-alpha-beta"
)

// Strategy selects how an AI seat picks its moves. Depth is ignored for StrategyRandom.
type Strategy struct {
	Kind  StrategyKind `json:"kind"`
	Depth int          `json:"depth,omitempty"`
}

func RandomStrategy() Strategy {
	return Strategy{Kind: StrategyRandom}
}

func NegamaxStrategy(depth int) Strategy {
	return Strategy{Kind: StrategyNegamax, Depth: depth}
}

func NegamaxAlphaBetaStrategy(depth int) Strategy {
	return Strategy{Kind: StrategyNegamaxAlphaBeta, Depth: depth}
}

func ParseStrategy(kind string, depth int) (Strategy, error) {
	strategy := Strategy{Kind: StrategyKind(kind), Depth: depth}
	if strategy.Kind == StrategyRandom {
		strategy.Depth = 0
	}

	if err := strategy.Validate(); err != nil {
		return Strategy{}, err
	}

	return strategy, nil
}

func (that Strategy) Validate() error {
	switch that.Kind {
	case StrategyRandom:
		return nil
	case StrategyNegamax, StrategyNegamaxAlphaBeta:
		if that.Depth < MinSearchDepth || that.Depth > MaxSearchDepth {
			return fmt.Errorf("%w: got %d", apperror.ErrInvalidDepth, that.Depth)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownStrategy, that.Kind)
	}
}

// Descriptor is the short label used in matchup keys and logs.
func (that Strategy) Descriptor() string {
	switch that.Kind {
	case StrategyRandom:
		return "Random"
	case StrategyNegamax:
		return fmt.Sprintf("Negamax(%d)", that.Depth)
	case StrategyNegamaxAlphaBeta:
		return fmt.Sprintf("AlphaBeta(%d)", that.Depth)
	default:
		return string(that.Kind)
	}
}
