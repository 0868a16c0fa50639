package entity

const HumanDescriptor = "Human"

// Seat describes who controls one side of the board.
type Seat struct {
	AI       bool     `json:"ai"`
	Strategy Strategy `json:"strategy,omitempty"`
}

func HumanSeat() Seat {
	return Seat{}
}

func AISeat(strategy Strategy) Seat {
	return Seat{AI: true, Strategy: strategy}
}

func (that Seat) Descriptor() string {
	if !that.AI {
		return HumanDescriptor
	}

	return that.Strategy.Descriptor()
}
