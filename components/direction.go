package components

import "fmt"

// Direction is the way an entity faces
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every facing in the order movement keys are checked
var Directions = [...]Direction{South, North, East, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Delta returns the unit step for the direction. North is +Y.
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	panic(fmt.Sprintf("components: unknown direction %d", int(d)))
}

// ParseDirection converts a lower-case direction name
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
