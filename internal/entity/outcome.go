package entity

type OutcomeStatus string

const (
	StatusInProgress OutcomeStatus = "in_progress"
	StatusWin        OutcomeStatus = "win"
	StatusTie        OutcomeStatus = "tie"
)

type Outcome struct {
	Status OutcomeStatus `json:"status"`
	Winner Player        `json:"winner,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func WinFor(player Player) Outcome {
	return Outcome{Status: StatusWin, Winner: player}
}

func Tie() Outcome {
	return Outcome{Status: StatusTie}
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWin || that.Status == StatusTie
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWin:
		return that.Winner.String() + " won"
	case StatusTie:
		return "Tie"
	default:
		return "In progress"
	}
}
