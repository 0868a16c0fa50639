// Package othello holds the rules of the game: which moves are legal, what a move flips and
// when the game is over. All functions are pure; boards are taken and returned by value.
package othello

import (
	"fmt"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
)

// LegalMoves returns every position where player captures at least one disc, in row-major
// order. An empty result means player has to pass.
func LegalMoves(board entity.Board, player entity.Player) []entity.Position {
	var moves []entity.Position
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			pos := entity.Position{Row: row, Col: col}
			if IsLegal(board, player, pos) {
				moves = append(moves, pos)
			}
		}
	}

	return moves
}

// HasLegalMove is LegalMoves without the allocation.
func HasLegalMove(board entity.Board, player entity.Player) bool {
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if IsLegal(board, player, entity.Position{Row: row, Col: col}) {
				return true
			}
		}
	}

	return false
}

func IsLegal(board entity.Board, player entity.Player, pos entity.Position) bool {
	if !board.IsEmpty(pos) {
		return false
	}

	for _, dir := range entity.Directions {
		if _, capturable := board.Walk(pos, player, dir); capturable {
			return true
		}
	}

	return false
}

// Flips returns the discs a move at pos would turn over: the union of capturable runs in all
// 8 directions. It is empty for illegal moves.
func Flips(board entity.Board, player entity.Player, pos entity.Position) []entity.Position {
	if !board.IsEmpty(pos) {
		return nil
	}

	var flips []entity.Position
	for _, dir := range entity.Directions {
		run := board.DiscsInDirection(pos, player, dir)
		if run.Capturable {
			flips = append(flips, run.Discs...)
		}
	}

	return flips
}

// ApplyMove places player's disc at pos and flips every captured run. The given board is left
// untouched; the new board and the number of flipped discs are returned.
func ApplyMove(board entity.Board, player entity.Player, pos entity.Position) (entity.Board, int, error) {
	if !pos.InBounds() {
		return board, 0, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, pos)
	}

	if !IsLegal(board, player, pos) {
		return board, 0, fmt.Errorf("%w: %s cannot play %s", apperror.ErrIllegalMove, player, pos)
	}

	next := board
	if err := next.SetCell(pos, player.Cell()); err != nil {
		return board, 0, fmt.Errorf("failed to place disc: %w", err)
	}

	flipped := 0
	for _, dir := range entity.Directions {
		n, capturable := board.Walk(pos, player, dir)
		if !capturable {
			continue
		}

		cur := pos
		for range n {
			cur = cur.Add(dir)
			if err := next.SetCell(cur, player.Cell()); err != nil {
				return board, 0, fmt.Errorf("failed to flip disc: %w", err)
			}
		}
		flipped += n
	}

	return next, flipped, nil
}

// GameStatus reports a finished game once neither side can move.
func GameStatus(board entity.Board) entity.Outcome {
	if HasLegalMove(board, entity.PlayerBlack) || HasLegalMove(board, entity.PlayerWhite) {
		return entity.InProgress()
	}

	return finalOutcome(board)
}

func finalOutcome(board entity.Board) entity.Outcome {
	black, white := board.Score()
	switch {
	case black > white:
		return entity.WinFor(entity.PlayerBlack)
	case white > black:
		return entity.WinFor(entity.PlayerWhite)
	default:
		return entity.Tie()
	}
}

// NextTurn decides who moves after justMoved: the opponent when it can, otherwise justMoved
// again (the opponent passes). The second result is false when neither side can move.
func NextTurn(board entity.Board, justMoved entity.Player) (entity.Player, bool) {
	opponent := justMoved.Opponent()
	if HasLegalMove(board, opponent) {
		return opponent, true
	}

	if HasLegalMove(board, justMoved) {
		return justMoved, true
	}

	return entity.NoPlayer, false
}
