package tilegrid

// Side names one of the four edges of a cell.
type Side int

// Fixed scan order used when visiting a cell's sides.
const (
	West Side = iota
	East
	North // faces +y
	South // faces -y
)

// Sides lists every side in scan order.
var Sides = [4]Side{West, East, North, South}

// Offset returns the step from a cell to its neighbor across s.
func (s Side) Offset() (int, int) {
	switch s {
	case West:
		return -1, 0
	case East:
		return 1, 0
	case North:
		return 0, 1
	case South:
		return 0, -1
	}
	return 0, 0
}

// Vertical reports whether segments on s run along the y axis.
func (s Side) Vertical() bool {
	return s == West || s == East
}

func (s Side) String() string {
	switch s {
	case West:
		return "west"
	case East:
		return "east"
	case North:
		return "north"
	case South:
		return "south"
	}
	return "unknown"
}
