package agent

import (
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

// winScore dominates any positional score, so finished games always outrank unfinished ones.
const winScore = 10_000

// positionWeights favours corners and edges and keeps the squares next to corners cheap.
var positionWeights = [entity.BoardSize][entity.BoardSize]int{
	{7, 2, 5, 4, 4, 5, 2, 7},
	{2, 1, 3, 3, 3, 3, 1, 2},
	{5, 3, 5, 5, 5, 5, 3, 5},
	{4, 3, 5, 6, 6, 5, 3, 4},
	{4, 3, 5, 6, 6, 5, 3, 4},
	{5, 3, 5, 5, 5, 5, 3, 5},
	{2, 1, 3, 3, 3, 3, 1, 2},
	{7, 2, 5, 4, 4, 5, 2, 7},
}

// Evaluate scores board from player's point of view. Finished games score winScore plus the
// disc margin (zero for a tie); otherwise the score is the weighted sum of player's discs minus
// the weighted sum of the opponent's. Evaluate(b, p) == -Evaluate(b, p.Opponent()).
func Evaluate(board entity.Board, player entity.Player) int {
	if !othello.HasLegalMove(board, player) && !othello.HasLegalMove(board, player.Opponent()) {
		return terminalScore(board, player)
	}

	return positionalScore(board, player)
}

func positionalScore(board entity.Board, player entity.Player) int {
	own, opp := player.Cell(), player.Opponent().Cell()

	score := 0
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			switch board.At(entity.Position{Row: row, Col: col}) {
			case own:
				score += positionWeights[row][col]
			case opp:
				score -= positionWeights[row][col]
			}
		}
	}

	return score
}

func terminalScore(board entity.Board, player entity.Player) int {
	black, white := board.Score()

	margin := black - white
	if player == entity.PlayerWhite {
		margin = -margin
	}

	switch {
	case margin > 0:
		return winScore + margin
	case margin < 0:
		return -winScore + margin
	default:
		return 0
	}
}
