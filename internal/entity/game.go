package entity

type Game struct {
	ID      string  `json:"id"`
	Board   Board   `json:"-"`
	Turn    Player  `json:"player_turn"`
	Outcome Outcome `json:"outcome"`
	Moves   int     `json:"moves"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		Board:   NewBoard(),
		Turn:    PlayerBlack,
		Outcome: InProgress(),
	}
}

func (that *Game) IsFinished() bool {
	return that.Outcome.IsFinished()
}

func (that *Game) IsOngoing() bool {
	return !that.IsFinished()
}

// IsUntouched reports whether no move has been played yet.
func (that *Game) IsUntouched() bool {
	return that.Moves == 0
}
