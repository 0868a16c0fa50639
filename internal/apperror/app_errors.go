package apperror

import "errors"

var (
	ErrOutOfBounds     = errors.New("position is out of bounds")
	ErrIllegalMove     = errors.New("illegal move")
	ErrNoLegalMoves    = errors.New("no legal moves")
	ErrInvalidDepth    = errors.New("search depth must be between 1 and 10")
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("it's not your turn")
)
