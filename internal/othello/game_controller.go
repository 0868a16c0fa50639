package othello

import (
	"fmt"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
)

// MakeTurn plays pos for player on the game and advances the turn, handling passes and the end
// of the game. It returns the number of flipped discs.
func MakeTurn(game *entity.Game, player entity.Player, pos entity.Position) (int, error) {
	if game.IsFinished() {
		return 0, apperror.ErrGameFinished
	}

	if game.Turn != player {
		return 0, apperror.ErrNotYourTurn
	}

	board, flipped, err := ApplyMove(game.Board, player, pos)
	if err != nil {
		return 0, fmt.Errorf("invalid turn: %w", err)
	}

	game.Board = board
	game.Moves++
	updateGameStatus(game, player)

	return flipped, nil
}

// updateGameStatus - hands the turn over or closes the game after a move.
func updateGameStatus(game *entity.Game, player entity.Player) {
	next, ok := NextTurn(game.Board, player)
	if !ok {
		game.Outcome = finalOutcome(game.Board)
		game.Turn = entity.NoPlayer
		return
	}

	game.Turn = next
}
