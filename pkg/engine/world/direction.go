package world

// Direction labels used for exits. Rooms accept any label; these are the
// ones the game itself creates and the input layer understands.
const (
	North = "nord"
	East  = "est"
	South = "sud"
	West  = "ovest"
)

// AllDirections returns the cardinal directions for iteration
func AllDirections() []string {
	return []string{North, East, South, West}
}

// IsCardinal returns true if the label is one of the four cardinal directions
func IsCardinal(direction string) bool {
	switch direction {
	case North, East, South, West:
		return true
	default:
		return false
	}
}

// Opposite returns the opposite direction.
// Labels that are not cardinal directions are returned unchanged.
func Opposite(direction string) string {
	switch direction {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return direction
	}
}
