package domain

import "fmt"

// Direction is one of the four cursor movement directions
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions returns all four directions in a stable order
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection converts "up", "down", "left" or "right" into a Direction
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions() {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
