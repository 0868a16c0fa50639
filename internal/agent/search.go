package agent

import (
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

const infinity = 1 << 30

type searcher struct {
	pruning bool
	nodes   int
}

// root scores every legal move and keeps the first one with the highest score, so ties go to
// the earliest move in row-major order. With pruning the window is (alpha, +inf) and moves
// that cannot beat alpha come back as upper bounds, which never win the strict comparison.
func (that *searcher) root(board entity.Board, player entity.Player, moves []entity.Position, depth int) Result {
	best := Result{Score: -infinity}
	alpha := -infinity

	for i, move := range moves {
		child := play(board, player, move)

		var score int
		if that.pruning {
			score = -that.alphaBeta(child, player.Opponent(), depth-1, -infinity, -alpha)
		} else {
			score = -that.negamax(child, player.Opponent(), depth-1)
		}

		if i == 0 || score > best.Score {
			best.Move = move
			best.Score = score
		}

		if score > alpha {
			alpha = score
		}
	}

	best.Nodes = that.nodes + 1

	return best
}

func (that *searcher) negamax(board entity.Board, player entity.Player, depth int) int {
	that.nodes++

	if depth <= 0 {
		return Evaluate(board, player)
	}

	moves := othello.LegalMoves(board, player)
	if len(moves) == 0 {
		if !othello.HasLegalMove(board, player.Opponent()) {
			return Evaluate(board, player)
		}

		// pass
		return -that.negamax(board, player.Opponent(), depth-1)
	}

	best := -infinity
	for _, move := range moves {
		score := -that.negamax(play(board, player, move), player.Opponent(), depth-1)
		if score > best {
			best = score
		}
	}

	return best
}

// alphaBeta is negamax with a fail-soft window: the search of a node stops as soon as its best
// score reaches beta.
func (that *searcher) alphaBeta(board entity.Board, player entity.Player, depth, alpha, beta int) int {
	that.nodes++

	if depth <= 0 {
		return Evaluate(board, player)
	}

	moves := othello.LegalMoves(board, player)
	if len(moves) == 0 {
		if !othello.HasLegalMove(board, player.Opponent()) {
			return Evaluate(board, player)
		}

		return -that.alphaBeta(board, player.Opponent(), depth-1, -beta, -alpha)
	}

	best := -infinity
	for _, move := range moves {
		score := -that.alphaBeta(play(board, player, move), player.Opponent(), depth-1, -beta, -alpha)
		if score > best {
			best = score
		}

		if best > alpha {
			alpha = best
		}

		if best >= beta {
			break
		}
	}

	return best
}

// play applies a move taken from othello.LegalMoves, which cannot fail.
func play(board entity.Board, player entity.Player, move entity.Position) entity.Board {
	next, _, err := othello.ApplyMove(board, player, move)
	if err != nil {
		panic(err)
	}

	return next
}
