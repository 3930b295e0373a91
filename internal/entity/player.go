package entity

// Player is who occupies a seat: a person at the keyboard or the search engine.
type Player uint8

const (
	Human Player = iota
	Computer
)

func (that Player) String() string {
	if that == Computer {
		return "computer"
	}
	return "human"
}

// Seat is a turn position. The first seat always plays X.
type Seat uint8

const (
	FirstSeat Seat = iota
	SecondSeat
)

// Mark returns the symbol placed by the seat.
func (that Seat) Mark() Cell {
	if that == SecondSeat {
		return O
	}
	return X
}

// Next returns the seat that moves after this one.
func (that Seat) Next() Seat {
	if that == FirstSeat {
		return SecondSeat
	}
	return FirstSeat
}

// Number is the 1-based seat number shown to players.
func (that Seat) Number() int {
	return int(that) + 1
}
